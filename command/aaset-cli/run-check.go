// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/aaset"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokens, err := readTokens(c)
	if nil != err {
		return err
	}

	if m.numeric {
		numbers, err := toNumbers(tokens)
		if nil != err {
			return err
		}
		return checkSet(m, numbers)
	}
	return checkSet(m, tokens)
}

// insert every value, run the structural checks, then erase back to
// empty re-checking after each removal
func checkSet[T aaset.Ordered](m *metadata, values []T) error {

	set := aaset.New[T]()
	unique := 0
	for _, value := range values {
		if _, added := set.Insert(value); added {
			unique += 1
		}
	}

	steps := []struct {
		name string
		ok   func() bool
	}{
		{"parent links", set.CheckUp},
		{"levels", set.CheckLevels},
		{"subtree counts", set.CheckCounts},
		{"count", func() bool { return unique == set.Count() }},
		{"ordering", func() bool { return isOrdered(set) }},
		{"inverse stepping", func() bool { return stepsInverse(set) }},
	}

	for _, step := range steps {
		if m.verbose {
			fmt.Fprintf(m.e, "checking: %s\n", step.name)
		}
		if !step.ok() {
			return fmt.Errorf("check failed: %s", step.name)
		}
	}

	// shrink to empty, the structure must stay valid throughout
	for _, value := range values {
		set.Erase(value)
		if !set.CheckUp() || !set.CheckLevels() || !set.CheckCounts() {
			return fmt.Errorf("check failed after erasing: %v", value)
		}
	}
	if !set.IsEmpty() {
		return fmt.Errorf("set is not empty after erasing every value")
	}

	out := struct {
		Count  int    `json:"count"`
		Result string `json:"result"`
	}{
		Count:  unique,
		Result: "ok",
	}
	return printJson(m.w, out)
}

// every traversal step must yield a strictly larger value
func isOrdered[T aaset.Ordered](set *aaset.Set[T]) bool {
	n := 0
	var previous T
	for it := set.Begin(); it.Valid(); it.Next() {
		value := it.Value()
		if n > 0 && value <= previous {
			return false
		}
		previous = value
		n += 1
	}
	return n == set.Count()
}

// a forward step followed by a backward step must return to the
// same position
func stepsInverse[T aaset.Ordered](set *aaset.Set[T]) bool {
	for it := set.Begin(); it.Valid(); {
		here := it
		if it.Next() {
			back := it
			back.Prev()
			if back != here {
				return false
			}
		}
	}
	return true
}
