// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// measure single thread operation rates of the set
//
// each phase runs for the sample time and reports its own total and
// rate so different builds and tree sizes can be compared
package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/aaset"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// fixed shuffle seed so runs are comparable between builds
const shuffleSeed = 299792458

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "time", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "items", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--time=N{h|m|s}] [--items=N]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	sampleTime := 10 * time.Second
	if len(options["time"]) > 0 {
		sampleTime, err = time.ParseDuration(options["time"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert time error: %s", program, err)
		}
		if sampleTime.Seconds() < 1 {
			exitwithstatus.Message("%s: invalid time: %d", program, sampleTime)
		}
	}

	items := 100000
	if len(options["items"]) > 0 {
		items, err = strconv.Atoi(options["items"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert items error: %s", program, err)
		}
		if items < 1 {
			exitwithstatus.Message("%s: invalid items: %d", program, items)
		}
	}

	if 0 != len(arguments) {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	// even values become members, odd values never do, so half of
	// the shuffled probes hit and half miss
	rng := rand.New(rand.NewSource(shuffleSeed))

	values := make([]uint64, items)
	for i := 0; i < items; i += 1 {
		values[i] = uint64(2 * i)
	}
	rng.Shuffle(len(values), func(i int, j int) {
		values[i], values[j] = values[j], values[i]
	})

	probes := make([]uint64, 2*items)
	for i := 0; i < len(probes); i += 1 {
		probes[i] = uint64(i)
	}
	rng.Shuffle(len(probes), func(i int, j int) {
		probes[i], probes[j] = probes[j], probes[i]
	})

	if !quiet {
		fmt.Printf("sampling each phase for: %7.1f seconds  items: %d\n",
			sampleTime.Seconds(), items)
	}

	// a prepared set for the read and erase phases
	prepared := aaset.New[uint64]()
	for _, value := range values {
		prepared.Insert(value)
	}
	if verbose {
		fmt.Printf("prepared: %d elements\n", prepared.Count())
	}

	phases := []struct {
		name string
		run  func() int
	}{
		{"insert", func() int { return measureInsert(values, sampleTime) }},
		{"find", func() int { return measureFind(prepared, probes, sampleTime) }},
		{"lower bound", func() int { return measureLowerBound(prepared, probes, sampleTime) }},
		{"iterate", func() int { return measureIterate(prepared, sampleTime) }},
		{"erase", func() int { return measureErase(prepared, values, sampleTime) }},
	}

	for _, phase := range phases {
		if verbose {
			fmt.Printf("running: %s\n", phase.name)
		}
		total := phase.run()
		fmt.Printf("%-12s total: %8d   operations in: %7.1f seconds\n",
			phase.name+":", total, sampleTime.Seconds())
		fmt.Printf("%-12s rate:  %10.1f operations/second\n",
			phase.name+":", float64(total)/sampleTime.Seconds())
	}

	if !quiet {
		fmt.Printf("finished\n")
	}
}

// repeatedly rebuild a set, clearing when every value is in
func measureInsert(values []uint64, sampleTime time.Duration) int {
	set := aaset.New[uint64]()
	total := 0
	i := 0
	end := time.Now().Add(sampleTime)
	for time.Now().Before(end) {
		if i >= len(values) {
			set.Clear()
			i = 0
		}
		set.Insert(values[i])
		i += 1
		total += 1
	}
	return total
}

// probe a prepared set, half of the probes are members
func measureFind(set *aaset.Set[uint64], probes []uint64, sampleTime time.Duration) int {
	total := 0
	i := 0
	end := time.Now().Add(sampleTime)
	for time.Now().Before(end) {
		if i >= len(probes) {
			i = 0
		}
		set.Has(probes[i])
		i += 1
		total += 1
	}
	return total
}

// locate the first member not below an arbitrary probe
func measureLowerBound(set *aaset.Set[uint64], probes []uint64, sampleTime time.Duration) int {
	total := 0
	i := 0
	end := time.Now().Add(sampleTime)
	for time.Now().Before(end) {
		if i >= len(probes) {
			i = 0
		}
		set.LowerBound(probes[i])
		i += 1
		total += 1
	}
	return total
}

// walk the whole set, restarting at the beginning after the end
func measureIterate(set *aaset.Set[uint64], sampleTime time.Duration) int {
	total := 0
	it := set.Begin()
	end := time.Now().Add(sampleTime)
	for time.Now().Before(end) {
		if !it.Valid() {
			it = set.Begin()
			continue
		}
		it.Next()
		total += 1
	}
	return total
}

// drain a copy of the prepared set, taking a fresh copy when empty
func measureErase(prepared *aaset.Set[uint64], values []uint64, sampleTime time.Duration) int {
	set := prepared.Copy()
	total := 0
	i := 0
	end := time.Now().Add(sampleTime)
	for time.Now().Before(end) {
		if i >= len(values) {
			set = prepared.Copy()
			i = 0
		}
		set.Erase(values[i])
		i += 1
		total += 1
	}
	return total
}
