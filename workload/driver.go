// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aaset"
	"github.com/bitmark-inc/aaset/fault"
	"github.com/bitmark-inc/aaset/ratelimit"
)

// maximum number of elements walked by one iterate operation
const iterateSpan = 16

// operation selector
type operation int

const (
	opInsert operation = iota
	opErase
	opFind
	opBound
	opIterate
)

// Driver - executes a scenario against a set, cross checking every
// result against a reference map
type Driver struct {
	log       *logger.L
	scenario  Scenario
	limiter   *rate.Limiter
	stats     Stats
	rng       *rand.Rand
	set       *aaset.Set[uint64]
	reference map[uint64]struct{}
	running   uint32

	// cumulative thresholds for the operation picker
	insertBelow int
	eraseBelow  int
	findBelow   int
	boundBelow  int
}

// NewDriver - prepare a driver for a verified scenario
//
// a zero seed is replaced by the clock so that the logged value can
// reproduce the run later
func NewDriver(scenario Scenario) (*Driver, error) {

	if err := scenario.Verify(); nil != err {
		return nil, err
	}

	if 0 == scenario.Seed {
		scenario.Seed = time.Now().UnixNano()
	}

	d := &Driver{
		log:         logger.New("workload"),
		scenario:    scenario,
		rng:         rand.New(rand.NewSource(scenario.Seed)),
		set:         aaset.New[uint64](),
		reference:   make(map[uint64]struct{}),
		insertBelow: scenario.InsertPercent,
	}
	d.eraseBelow = d.insertBelow + scenario.ErasePercent
	d.findBelow = d.eraseBelow + scenario.FindPercent
	d.boundBelow = d.findBelow + scenario.BoundPercent

	if scenario.RateLimit > 0 {
		burst := int(scenario.RateLimit)
		if burst < iterateSpan {
			burst = iterateSpan
		}
		d.limiter = rate.NewLimiter(rate.Limit(scenario.RateLimit), burst)
	}

	return d, nil
}

// Stats - access to the live counters for a progress reporter
func (d *Driver) Stats() *Stats {
	return &d.stats
}

// Seed - the seed actually in use, for reproducing a run
func (d *Driver) Seed() int64 {
	return d.scenario.Seed
}

// Run - execute the scenario until it completes or shutdown closes
//
// a scenario with a zero operation count runs until shutdown; the
// returned snapshot is valid even when an error is returned
func (d *Driver) Run(shutdown <-chan bool) (Snapshot, error) {

	if !atomic.CompareAndSwapUint32(&d.running, 0, 1) {
		return d.stats.Snapshot(), fault.ErrWorkloadAlreadyRunning
	}
	defer atomic.StoreUint32(&d.running, 0)

	log := d.log
	log.Infof("run: seed: %d  operations: %d  value range: %d",
		d.scenario.Seed, d.scenario.Operations, d.scenario.ValueRange)

	ops := uint64(0)
loop:
	for 0 == d.scenario.Operations || ops < d.scenario.Operations {

		select {
		case <-shutdown:
			log.Info("shutting down")
			break loop
		default:
		}

		op := d.pick()

		if nil != d.limiter {
			var err error
			if opIterate == op {
				err = ratelimit.LimitN(d.limiter, iterateSpan, iterateSpan)
			} else {
				err = ratelimit.Limit(d.limiter)
			}
			if nil != err {
				return d.stats.Snapshot(), err
			}
		}

		if err := d.step(op); nil != err {
			return d.stats.Snapshot(), err
		}

		ops += 1
		if 0 == ops%d.scenario.CheckInterval {
			if err := d.verify(); nil != err {
				return d.stats.Snapshot(), err
			}
		}
	}

	if err := d.verify(); nil != err {
		return d.stats.Snapshot(), err
	}

	snapshot := d.stats.Snapshot()
	log.Infof("run: complete: operations: %d  elements: %d  checks: %d",
		snapshot.Total(), snapshot.Elements, snapshot.Checks)
	return snapshot, nil
}

// pick - choose the next operation from the configured mix
func (d *Driver) pick() operation {
	p := d.rng.Intn(100)
	switch {
	case p < d.insertBelow:
		return opInsert
	case p < d.eraseBelow:
		return opErase
	case p < d.findBelow:
		return opFind
	case p < d.boundBelow:
		return opBound
	default:
		return opIterate
	}
}

// pickValue - a random value from the configured range
func (d *Driver) pickValue() uint64 {
	return d.rng.Uint64() % d.scenario.ValueRange
}

// step - perform one operation and check its result
func (d *Driver) step(op operation) error {
	switch op {
	case opInsert:
		return d.doInsert()
	case opErase:
		return d.doErase()
	case opFind:
		return d.doFind()
	case opBound:
		return d.doBound()
	default:
		return d.doIterate()
	}
}

func (d *Driver) doInsert() error {
	value := d.pickValue()
	_, present := d.reference[value]

	it, added := d.set.Insert(value)
	if added == present {
		return d.failed("insert: value: %d  added: %t  reference present: %t",
			value, added, present)
	}
	if it.Value() != value {
		return d.failed("insert: value: %d  iterator at: %d", value, it.Value())
	}

	d.reference[value] = struct{}{}
	if added {
		d.stats.Elements.increment()
	}
	d.stats.Inserts.increment()
	return nil
}

func (d *Driver) doErase() error {
	value := d.pickValue()
	_, present := d.reference[value]

	expected := 0
	if present {
		expected = 1
	}
	if n := d.set.Erase(value); n != expected {
		return d.failed("erase: value: %d  removed: %d  expected: %d",
			value, n, expected)
	}

	delete(d.reference, value)
	if present {
		d.stats.Elements.decrement()
	}
	d.stats.Erases.increment()
	return nil
}

func (d *Driver) doFind() error {
	value := d.pickValue()
	_, present := d.reference[value]

	it := d.set.Find(value)
	if it.Valid() != present {
		return d.failed("find: value: %d  found: %t  reference present: %t",
			value, it.Valid(), present)
	}
	if it.Valid() && it.Value() != value {
		return d.failed("find: value: %d  iterator at: %d", value, it.Value())
	}
	if d.set.Has(value) != present {
		return d.failed("find: value: %d  has disagrees with reference", value)
	}

	d.stats.Finds.increment()
	return nil
}

// a lower bound is correct when it is at the first element not less
// than the probe: the element is a member, and its predecessor if
// any is below the probe
func (d *Driver) doBound() error {
	value := d.pickValue()

	it := d.set.LowerBound(value)
	if it.Valid() {
		found := it.Value()
		if found < value {
			return d.failed("bound: value: %d  found smaller: %d", value, found)
		}
		if _, ok := d.reference[found]; !ok {
			return d.failed("bound: value: %d  found non-member: %d", value, found)
		}
		before := it
		if before.Prev() && before.Value() >= value {
			return d.failed("bound: value: %d  skipped: %d", value, before.Value())
		}
	} else {
		last := d.set.End()
		if last.Prev() {
			if last.Value() >= value {
				return d.failed("bound: value: %d  missed maximum: %d",
					value, last.Value())
			}
		} else if 0 != d.set.Count() {
			return d.failed("bound: value: %d  no result on non-empty set", value)
		}
	}

	d.stats.Bounds.increment()
	return nil
}

func (d *Driver) doIterate() error {
	count := d.set.Count()
	if 0 == count {
		d.stats.Iterates.increment()
		return nil
	}

	it := d.set.At(d.rng.Intn(count))
	previous := it.Value()
	if _, ok := d.reference[previous]; !ok {
		return d.failed("iterate: unexpected value: %d", previous)
	}

	for step := 1; step < iterateSpan; step += 1 {
		if !it.Next() {
			break
		}
		value := it.Value()
		if value <= previous {
			return d.failed("iterate: order: %d follows %d", value, previous)
		}
		if _, ok := d.reference[value]; !ok {
			return d.failed("iterate: unexpected value: %d", value)
		}
		previous = value
	}

	d.stats.Iterates.increment()
	return nil
}

// verify - deep structural and content check against the reference
func (d *Driver) verify() error {
	d.stats.Checks.increment()

	if !d.set.CheckUp() {
		return d.failed("verify: parent link check failed")
	}
	if !d.set.CheckLevels() {
		return d.failed("verify: level check failed")
	}
	if !d.set.CheckCounts() {
		return d.failed("verify: subtree count check failed")
	}

	n := d.set.Count()
	if n != len(d.reference) {
		return d.failed("verify: count: actual: %d  expected: %d",
			n, len(d.reference))
	}
	if uint64(n) != d.stats.Elements.Uint64() {
		return d.failed("verify: element counter: actual: %d  expected: %d",
			d.stats.Elements.Uint64(), n)
	}

	seen := 0
	previous := uint64(0)
	for it := d.set.Begin(); it.Valid(); it.Next() {
		value := it.Value()
		if seen > 0 && value <= previous {
			return d.failed("verify: order: %d follows %d", value, previous)
		}
		if _, ok := d.reference[value]; !ok {
			return d.failed("verify: unexpected value: %d", value)
		}
		previous = value
		seen += 1
	}
	if seen != n {
		return d.failed("verify: traversal visited: %d  expected: %d", seen, n)
	}

	// a forward step then a backward step must return to the same
	// position
	if n > 0 {
		i := d.rng.Intn(n)
		it := d.set.At(i)
		here := it
		if it.Next() {
			it.Prev()
			if here != it {
				return d.failed("verify: iterator inverse failed at index: %d", i)
			}
		}
	}

	d.log.Debugf("verify: ok: elements: %d", n)
	return nil
}

// failed - record a verification failure and produce the canonical
// error after logging the detail
func (d *Driver) failed(format string, arguments ...interface{}) error {
	d.stats.Failures.increment()
	d.log.Criticalf(format, arguments...)
	return fault.ErrVerifyFailed
}
