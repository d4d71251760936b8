// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aaset - an ordered set of unique values stored in an AA
// balanced tree with the addition of parent pointers to allow
// iteration through the values
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in a paper by Arne Andersson
// called Balanced Search Trees Made Simple.
//
// Erase never unlinks a node that has a sub-tree on both sides:
// instead the nearest value is copied over it and the donor node is
// unlinked.  An iterator addressing such a node stays usable but
// observes the replacement value.
package aaset
