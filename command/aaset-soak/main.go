// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aaset/background"
	"github.com/bitmark-inc/aaset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "once", HasArg: getoptions.NO_ARGUMENT, Short: '1'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--once] --config-file=FILE", program)
	}

	if 0 != len(arguments) {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := masterConfiguration.Scenario.Verify(); nil != err {
		exitwithstatus.Message("%s: scenario error: %s", program, err)
	}

	reportTime, err := masterConfiguration.ReportInterval()
	if nil != err {
		exitwithstatus.Message("%s: report time: %q error: %s", program, masterConfiguration.ReportTime, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// initialise the panic logging channel
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault initialise failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	once := len(options["once"]) > 0

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	if verbose && !quiet {
		fmt.Printf("scenario: %+v\n", masterConfiguration.Scenario)
		fmt.Printf("report interval: %s\n", reportTime)
	}

	// configuration file watching: a change reloads the scenario
	// between rounds, removal shuts the soak down
	watcherChannel := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New("file-watcher"), watcherChannel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	soaker := newSoaker(configurationFile, masterConfiguration.Scenario, watcherChannel.change, once, quiet)
	reporter := newReporter(soaker, reportTime, quiet)

	// list of background processes to start
	processes := background.Processes{
		soaker.Run,
		reporter.Run,
	}

	// start background processes
	launched := background.Start(processes, nil)

	if !quiet && !once {
		fmt.Printf("waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("shutting down...\n")
		}
	case <-watcherChannel.remove:
		log.Warn("configuration file removed")
		if !quiet {
			fmt.Printf("configuration file removed\n")
		}
	case <-soaker.complete:
		log.Info("soak finished")
	}

	// stop background tasks
	background.Stop(launched)

	// final cumulative report
	snapshot, rounds := soaker.progress()
	fmt.Printf("rounds: %8d   operations: %12d\n", rounds, snapshot.Total())
	fmt.Printf("checks: %8d   failures:   %12d\n", snapshot.Checks, snapshot.Failures)

	if err := soaker.failure(); nil != err {
		exitwithstatus.Message("%s: soak failed with error: %s", program, err)
	}
}
