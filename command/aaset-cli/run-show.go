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

type showResult[T any] struct {
	Count  int `json:"count"`
	Depth  int `json:"depth,omitempty"`
	Values []T `json:"values"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokens, err := readTokens(c)
	if nil != err {
		return err
	}

	tree := c.Bool("tree")

	if m.numeric {
		numbers, err := toNumbers(tokens)
		if nil != err {
			return err
		}
		return showSet(m, numbers, tree)
	}
	return showSet(m, tokens, tree)
}

// build a set and print its ordered content
func showSet[T aaset.Ordered](m *metadata, values []T, tree bool) error {

	set := aaset.Of(values...)

	if m.verbose {
		fmt.Fprintf(m.e, "read: %d  unique: %d\n", len(values), set.Count())
	}

	depth := 0
	if tree {
		depth = set.Print(true)
	}

	ordered := make([]T, 0, set.Count())
	for it := set.Begin(); it.Valid(); it.Next() {
		ordered = append(ordered, it.Value())
	}

	out := showResult[T]{
		Count:  set.Count(),
		Depth:  depth,
		Values: ordered,
	}
	return printJson(m.w, out)
}
