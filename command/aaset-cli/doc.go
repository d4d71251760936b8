// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line inspection tool for the set
//
// This program builds a set from values given on the command line or
// standard input and can display its ordered content, run the full
// structural check suite, or verify rank and position round trips.
package main
