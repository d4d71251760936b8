// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Long running soak program for the set
//
// This program repeats workload rounds described by a Lua
// configuration file, reloading the scenario when the file changes
// and stopping at the first verification failure.
package main
