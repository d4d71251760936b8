// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run processes and wait for their shutdown
package background

// the shutdown and completed channels for one background process
type shutdown struct {
	shutdown chan bool
	finished chan bool
}

// T - handle used to stop a started set of processes
type T struct {
	s []shutdown
}

// Process - type signature for a background process
//
// a process loops until the shutdown channel is closed and closes
// done just before returning
type Process func(args interface{}, shutdown <-chan bool, done chan<- bool)

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
// all with the same args value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]shutdown, len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan bool)
		finished := make(chan bool)
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished
		go p(args, shutdown, finished)
	}
	return register
}

// Stop - stop a set of background processes
func Stop(t *T) {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.s {
		close(shutdown.shutdown)
	}

	// wait for finished
	for _, shutdown := range t.s {
		<-shutdown.finished
	}
}
