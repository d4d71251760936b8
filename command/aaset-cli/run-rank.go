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

type rankRow[T any] struct {
	Value  T    `json:"value"`
	Member bool `json:"member"`
	Rank   int  `json:"rank"`
}

type rankResult[T any] struct {
	Count int          `json:"count"`
	Rows  []rankRow[T] `json:"rows"`
}

func runRank(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokens, err := readTokens(c)
	if nil != err {
		return err
	}

	probeTokens := c.StringSlice("probe")

	if m.numeric {
		numbers, err := toNumbers(tokens)
		if nil != err {
			return err
		}
		probes, err := toNumbers(probeTokens)
		if nil != err {
			return err
		}
		return rankSet(m, numbers, probes)
	}
	return rankSet(m, tokens, probeTokens)
}

// report the rank of each probe and verify the position round trip
func rankSet[T aaset.Ordered](m *metadata, values []T, probes []T) error {

	set := aaset.Of(values...)

	// no probes means probe every member
	if 0 == len(probes) {
		probes = make([]T, 0, set.Count())
		for it := set.Begin(); it.Valid(); it.Next() {
			probes = append(probes, it.Value())
		}
	}

	rows := make([]rankRow[T], 0, len(probes))
	for _, value := range probes {
		rank, ok := set.Rank(value)
		if ok {
			// the position must lead back to the same value
			it := set.At(rank)
			if !it.Valid() || it.Value() != value {
				return fmt.Errorf("rank: %d of value: %v does not round trip", rank, value)
			}
		}
		if m.verbose {
			fmt.Fprintf(m.e, "value: %v  member: %t  rank: %d\n", value, ok, rank)
		}
		rows = append(rows, rankRow[T]{
			Value:  value,
			Member: ok,
			Rank:   rank,
		})
	}

	out := rankResult[T]{
		Count: set.Count(),
		Rows:  rows,
	}
	return printJson(m.w, out)
}
