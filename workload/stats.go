// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"sync/atomic"
)

// Counter - a cumulative count that is safe to read while the
// driver goroutine is still incrementing it
type Counter uint64

// increment - add 1 to a counter, returns new value
func (counter *Counter) increment() uint64 {
	return atomic.AddUint64((*uint64)(counter), 1)
}

// decrement - subtract 1 from a counter, returns new value
func (counter *Counter) decrement() uint64 {
	return atomic.AddUint64((*uint64)(counter), ^uint64(0))
}

// Uint64 - return current value
func (counter *Counter) Uint64() uint64 {
	return atomic.AddUint64((*uint64)(counter), 0)
}

// IsZero - check if zero
func (counter *Counter) IsZero() bool {
	return 0 == atomic.AddUint64((*uint64)(counter), 0)
}

// Stats - cumulative operation counts of a running driver
//
// Elements tracks the current set size, all others only grow
type Stats struct {
	Inserts  Counter
	Erases   Counter
	Finds    Counter
	Bounds   Counter
	Iterates Counter
	Checks   Counter
	Failures Counter
	Elements Counter
}

// Snapshot - a point in time copy of the counters
type Snapshot struct {
	Inserts  uint64
	Erases   uint64
	Finds    uint64
	Bounds   uint64
	Iterates uint64
	Checks   uint64
	Failures uint64
	Elements uint64
}

// Snapshot - copy the counters for reporting
func (stats *Stats) Snapshot() Snapshot {
	return Snapshot{
		Inserts:  stats.Inserts.Uint64(),
		Erases:   stats.Erases.Uint64(),
		Finds:    stats.Finds.Uint64(),
		Bounds:   stats.Bounds.Uint64(),
		Iterates: stats.Iterates.Uint64(),
		Checks:   stats.Checks.Uint64(),
		Failures: stats.Failures.Uint64(),
		Elements: stats.Elements.Uint64(),
	}
}

// Total - the number of set operations performed
//
// checks and failures are bookkeeping, not workload operations
func (snapshot Snapshot) Total() uint64 {
	return snapshot.Inserts + snapshot.Erases + snapshot.Finds +
		snapshot.Bounds + snapshot.Iterates
}

// Add - combine the counts of a later snapshot
//
// elements is not a cumulative count so the later value wins
func (snapshot Snapshot) Add(other Snapshot) Snapshot {
	return Snapshot{
		Inserts:  snapshot.Inserts + other.Inserts,
		Erases:   snapshot.Erases + other.Erases,
		Finds:    snapshot.Finds + other.Finds,
		Bounds:   snapshot.Bounds + other.Bounds,
		Iterates: snapshot.Iterates + other.Iterates,
		Checks:   snapshot.Checks + other.Checks,
		Failures: snapshot.Failures + other.Failures,
		Elements: other.Elements,
	}
}
