// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive a randomised operation mix against a set
//
// a Driver executes a Scenario: a seeded stream of insert, erase,
// find, lower bound and iterate operations over a bounded value
// range.  Every operation result is cross checked against a plain
// reference map and the tree structure is re-verified at a
// configurable interval, so a long soak either runs clean or stops
// at the first detected fault.
//
// scenarios are plain structs and can be filled in directly or read
// from a Lua configuration file via the configuration package
package workload
