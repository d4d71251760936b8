// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/aaset/fault"
)

// Scenario - a reproducible workload description
//
// the tags allow a scenario to be filled in from a Lua
// configuration table; a zero operation count runs until the driver
// is shut down
type Scenario struct {
	Seed           int64   `gluamapper:"seed" json:"seed"`
	ValueRange     uint64  `gluamapper:"value_range" json:"value_range"`
	Operations     uint64  `gluamapper:"operations" json:"operations"`
	InsertPercent  int     `gluamapper:"insert_percent" json:"insert_percent"`
	ErasePercent   int     `gluamapper:"erase_percent" json:"erase_percent"`
	FindPercent    int     `gluamapper:"find_percent" json:"find_percent"`
	BoundPercent   int     `gluamapper:"bound_percent" json:"bound_percent"`
	IteratePercent int     `gluamapper:"iterate_percent" json:"iterate_percent"`
	CheckInterval  uint64  `gluamapper:"check_interval" json:"check_interval"`
	RateLimit      float64 `gluamapper:"rate_limit" json:"rate_limit"`
}

// DefaultScenario - a balanced mix suitable as a configuration base
//
// seed zero selects a fresh seed on each run
func DefaultScenario() Scenario {
	return Scenario{
		Seed:           0,
		ValueRange:     10000,
		Operations:     50000,
		InsertPercent:  30,
		ErasePercent:   20,
		FindPercent:    30,
		BoundPercent:   10,
		IteratePercent: 10,
		CheckInterval:  1000,
		RateLimit:      0,
	}
}

// Verify - ensure that a scenario is runnable
//
// the five percentages must be non-negative and total exactly one
// hundred so the operation picker covers the whole range
func (scenario *Scenario) Verify() error {

	if scenario.InsertPercent < 0 || scenario.ErasePercent < 0 ||
		scenario.FindPercent < 0 || scenario.BoundPercent < 0 ||
		scenario.IteratePercent < 0 {
		return fault.ErrInvalidOperationMix
	}

	total := scenario.InsertPercent + scenario.ErasePercent +
		scenario.FindPercent + scenario.BoundPercent +
		scenario.IteratePercent
	if 100 != total {
		return fault.ErrInvalidOperationMix
	}

	if 0 == scenario.ValueRange {
		return fault.ErrInvalidValueRange
	}

	if 0 == scenario.CheckInterval {
		return fault.ErrInvalidCheckInterval
	}

	if scenario.RateLimit < 0 {
		return fault.ErrInvalidRateLimit
	}

	return nil
}
