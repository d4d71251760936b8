// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aaset"
)

// ordering function ignoring letter case
func caseless(a string, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

func TestCaselessOrdering(t *testing.T) {
	set := aaset.OfFunc(caseless, "Bee", "ant", "CAT")

	assert.Equal(t, 3, set.Count(), "wrong count")
	assert.Equal(t, []string{"ant", "Bee", "CAT"}, collect(set), "wrong order")

	// equivalence comes from the ordering, not ==
	_, added := set.Insert("ANT")
	assert.False(t, added, "case variant was added")
	assert.Equal(t, 3, set.Count(), "count changed by case variant")
	assert.True(t, set.Has("bee"), "case variant not found")

	n := set.Erase("cat")
	assert.Equal(t, 1, n, "case variant not erased")
	assert.Equal(t, []string{"ant", "Bee"}, collect(set), "wrong order after erase")
}

type account struct {
	number  uint64
	comment string
}

func byNumber(a account, b account) bool {
	return a.number < b.number
}

func TestStructOrdering(t *testing.T) {
	set := aaset.NewFunc(byNumber)

	one, added := set.Insert(account{number: 1, comment: "first"})
	assert.True(t, added, "initial insert failed")

	// same ordering key: value is kept, not overwritten
	_, added = set.Insert(account{number: 1, comment: "changed"})
	assert.False(t, added, "equivalent struct was added")
	assert.Equal(t, "first", one.Value().comment, "stored value was overwritten")

	set.Insert(account{number: 7, comment: "seventh"})
	set.Insert(account{number: 3, comment: "third"})

	numbers := []uint64{}
	for it := set.Begin(); it.Valid(); it.Next() {
		numbers = append(numbers, it.Value().number)
	}
	assert.Equal(t, []uint64{1, 3, 7}, numbers, "wrong order")

	rank, ok := set.Rank(account{number: 3})
	assert.True(t, ok, "rank by ordering key failed")
	assert.Equal(t, 1, rank, "wrong rank")
}

func TestNewFuncNil(t *testing.T) {
	assert.Panics(t, func() {
		aaset.NewFunc[int](nil)
	}, "nil ordering function was accepted")
}

func TestDescendingOrdering(t *testing.T) {
	set := aaset.OfFunc(func(a int, b int) bool { return a > b }, 1, 2, 3, 4, 5)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, collect(set), "wrong order")

	it := set.LowerBound(3) // first value not ordered before 3, descending
	assert.True(t, it.Valid(), "no bound position")
	assert.Equal(t, 3, it.Value(), "wrong bound value")
}
