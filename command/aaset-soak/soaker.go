// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aaset/workload"
)

// soakData - repeat scenario rounds until stopped
type soakData struct {
	sync.RWMutex // protects scenario, driver, base, rounds, err

	log               *logger.L
	configurationFile string
	change            <-chan struct{}
	once              bool
	quiet             bool

	scenario workload.Scenario
	driver   *workload.Driver
	base     workload.Snapshot
	rounds   uint64
	err      error

	complete chan struct{}
}

func newSoaker(configurationFile string, scenario workload.Scenario, change <-chan struct{}, once bool, quiet bool) *soakData {
	return &soakData{
		log:               logger.New("soaker"),
		configurationFile: configurationFile,
		change:            change,
		once:              once,
		quiet:             quiet,
		scenario:          scenario,
		complete:          make(chan struct{}),
	}
}

// Run - background process executing rounds
//
// stops at the first round error so a verification failure is never
// papered over by a later clean round
func (s *soakData) Run(args interface{}, shutdown <-chan bool, done chan<- bool) {
	log := s.log

rounds:
	for {
		d, err := workload.NewDriver(s.currentScenario())
		if nil != err {
			log.Criticalf("driver error: %s", err)
			s.fail(err)
			break rounds
		}

		s.Lock()
		s.driver = d
		round := s.rounds + 1
		s.Unlock()

		log.Infof("round: %d  seed: %d", round, d.Seed())

		snapshot, err := d.Run(shutdown)

		s.Lock()
		s.base = s.base.Add(snapshot)
		s.driver = nil
		s.rounds = round
		s.Unlock()

		if nil != err {
			log.Criticalf("round: %d  error: %s", round, err)
			s.fail(err)
			break rounds
		}

		if !s.quiet {
			fmt.Printf("round: %4d  operations: %10d  seed: %d\n",
				round, snapshot.Total(), d.Seed())
		}
		log.Infof("round: %d complete: operations: %d  checks: %d",
			round, snapshot.Total(), snapshot.Checks)

		if s.once {
			break rounds
		}

		select {
		case <-shutdown:
			break rounds
		case <-s.change:
			s.reload()
		default:
		}
	}

	close(s.complete)
	close(done)
}

// reload - apply a changed configuration between rounds
//
// only the scenario is replaced, logging and directories stay as
// they were at startup
func (s *soakData) reload() {
	options, err := getConfiguration(s.configurationFile)
	if nil != err {
		s.log.Warnf("reload failed: %s", err)
		return
	}
	if err := options.Scenario.Verify(); nil != err {
		s.log.Warnf("reload rejected: %s", err)
		return
	}

	s.Lock()
	s.scenario = options.Scenario
	s.Unlock()
	s.log.Infof("scenario reloaded: %+v", options.Scenario)
}

// currentScenario - the scenario for the next round
func (s *soakData) currentScenario() workload.Scenario {
	s.RLock()
	defer s.RUnlock()
	return s.scenario
}

// progress - cumulative counts including any running round
func (s *soakData) progress() (workload.Snapshot, uint64) {
	s.RLock()
	defer s.RUnlock()
	snapshot := s.base
	if nil != s.driver {
		snapshot = s.base.Add(s.driver.Stats().Snapshot())
	}
	return snapshot, s.rounds
}

// failure - the error that stopped the soak, if any
func (s *soakData) failure() error {
	s.RLock()
	defer s.RUnlock()
	return s.err
}

func (s *soakData) fail(err error) {
	s.Lock()
	s.err = err
	s.Unlock()
}

// reportData - periodic progress reporting
type reportData struct {
	log      *logger.L
	soaker   *soakData
	interval time.Duration
	quiet    bool
}

func newReporter(soaker *soakData, interval time.Duration, quiet bool) *reportData {
	return &reportData{
		log:      logger.New("reporter"),
		soaker:   soaker,
		interval: interval,
		quiet:    quiet,
	}
}

// Run - background process printing cumulative progress
func (r *reportData) Run(args interface{}, shutdown <-chan bool, done chan<- bool) {

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(r.interval):
			snapshot, rounds := r.soaker.progress()
			r.log.Infof("progress: rounds: %d  operations: %d  elements: %d  checks: %d  failures: %d",
				rounds, snapshot.Total(), snapshot.Elements, snapshot.Checks, snapshot.Failures)
			if !r.quiet {
				fmt.Printf("rounds: %4d  operations: %10d  elements: %8d  checks: %6d  failures: %d\n",
					rounds, snapshot.Total(), snapshot.Elements, snapshot.Checks, snapshot.Failures)
			}
		}
	}
	close(done)
}
