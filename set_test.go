// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/aaset"
)

// run all of the structure validators, dumping the tree on failure
func checkInvariants[T any](t *testing.T, set *aaset.Set[T]) {
	t.Helper()
	if !set.CheckUp() {
		depth := set.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent up links")
	}
	if !set.CheckLevels() {
		depth := set.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent levels")
	}
	if !set.CheckCounts() {
		depth := set.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent counts")
	}
}

// read the whole set in ascending order
func collect[T any](set *aaset.Set[T]) []T {
	list := make([]T, 0, set.Count())
	for it := set.Begin(); it.Valid(); it.Next() {
		list = append(list, it.Value())
	}
	return list
}

// ascending unique copy of a value list
func sortedUnique(values []string) []string {
	unique := make(map[string]struct{})
	for _, value := range values {
		unique[value] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for value := range unique {
		expected = append(expected, value)
	}
	sort.Strings(expected)
	return expected
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doIndex(t, addList)
}

// to make sure that lots of duplicates do not increment the value
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doIndex(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
	}

	doList(t, addList)
	doTraverse(t, addList)
	doIndex(t, addList)
}

// insert the whole list then erase a leading slice followed by the
// remainder, verifying the structure at each stage
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyErased := make(map[string]struct{})

		set := aaset.New[string]()
		for _, value := range addList {
			set.Insert(value)
		}

		checkInvariants(t, set)

	erase_values:
		for _, value := range addList[:i] {
			if _, ok := alreadyErased[value]; ok {
				continue erase_values
			}
			alreadyErased[value] = struct{}{}
			if n := set.Erase(value); 1 != n {
				t.Fatalf("erase: %q removed: %d  expected: 1", value, n)
			}
		}

		checkInvariants(t, set)

	erase_remainder:
		for _, value := range addList[i:] {
			if _, ok := alreadyErased[value]; ok {
				continue erase_remainder
			}
			alreadyErased[value] = struct{}{}
			if n := set.Erase(value); 1 != n {
				t.Fatalf("erase: %q removed: %d  expected: 1", value, n)
			}
		}
		if !set.IsEmpty() {
			depth := set.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining values")
		}
		if 0 != set.Count() {
			t.Fatalf("remaining count not zero: %d", set.Count())
		}
	}
}

// traverse the set forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	set := aaset.New[string]()
	for _, value := range addList {
		set.Insert(value)
	}

	expected := sortedUnique(addList)

	it := set.Begin()
	if !it.Valid() {
		t.Fatal("no first value")
	}

	n := 0
	for i := 0; it.Valid(); i += 1 {
		if it.Value() != expected[i] {
			t.Fatalf("next value: actual: %q  expected: %q", it.Value(), expected[i])
		}
		n += 1
		it.Next()
	}

	if n != len(expected) {
		t.Fatalf("value count: actual: %d  expected: %d", n, len(expected))
	}

	it = set.End()
	if !it.Prev() {
		t.Fatal("no last value")
	}

	n = 0
	for i := len(expected) - 1; ; i -= 1 {
		if it.Value() != expected[i] {
			t.Fatalf("prev value: actual: %q  expected: %q", it.Value(), expected[i])
		}
		n += 1
		if !it.Prev() {
			break
		}
	}

	if n != len(expected) {
		t.Fatalf("value count: actual: %d  expected: %d", n, len(expected))
	}
	if n != set.Count() {
		t.Fatalf("set count: actual: %d  expected: %d", set.Count(), n)
	}

	// erase remainder
	for _, value := range expected {
		set.Erase(value)
	}

	if !set.IsEmpty() {
		depth := set.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("remaining values")
	}
	if 0 != set.Count() {
		t.Fatalf("remaining count not zero: %d", set.Count())
	}
}

// use indexing to fetch each value
func doIndex(t *testing.T, addList []string) {

	set := aaset.New[string]()
	for _, value := range addList {
		set.Insert(value)
	}

	expected := sortedUnique(addList)

	if len(expected) != set.Count() {
		t.Fatalf("expected: %d values, but set count: %d", len(expected), set.Count())
	}

	for index, value := range expected {
		it := set.At(index)
		if !it.Valid() {
			t.Fatalf("[%d] value: %q not in set (end result)", index, value)
		}
		if it.Value() != value {
			t.Fatalf("[%d]: expected: %q but found: %q", index, value, it.Value())
		}
		rank, ok := set.Rank(value)
		if !ok {
			t.Fatalf("[%d]: rank: %q returned not present", index, value)
		}
		if index != rank {
			t.Errorf("[%d]: rank: %q index: %d expected: %d", index, value, rank, index)
		}
	}

	checkInvariants(t, set)

	// erase even elements
	for index, value := range expected {
		if 0 == index%2 {
			set.Erase(value)
		}
	}

	// check odd elements are all present
odd_scan:
	for index, value := range expected {
		if 0 == index%2 {
			continue odd_scan
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		it := set.At(index)
		if !it.Valid() {
			t.Fatalf("[%d] value: %q not in set (end result)", index, value)
		}
		if it.Value() != value {
			t.Fatalf("[%d]: expected: %q but found: %q", index, value, it.Value())
		}
	}

	checkInvariants(t, set)
}

func makeValue() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomSet(t *testing.T) {

	randomSet(t, 2200, 2000)
	randomSet(t, 3400, 2760)
	randomSet(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomSet(t, 2100, 2000)
	}
}

func randomSet(t *testing.T, total int, toErase int) {

	if toErase > total {
		t.Fatalf("failed: total: %d  < erasures: %d", total, toErase)
	}

	set := aaset.New[string]()
	reference := make(map[string]struct{})
	d := make([]string, toErase)

	for i := 0; i < total; i += 1 {
		value := makeValue()
		if i < len(d) {
			d[i] = value
		}
		_, inserted := set.Insert(value)
		_, present := reference[value]
		if inserted == present {
			t.Fatalf("insert flag: %v  but reference present: %v", inserted, present)
		}
		reference[value] = struct{}{}
	}

	if len(reference) != set.Count() {
		t.Fatalf("count: actual: %d  expected: %d", set.Count(), len(reference))
	}

	checkInvariants(t, set)

	for _, value := range d {
		n := set.Erase(value)
		_, present := reference[value]
		if present && 1 != n || !present && 0 != n {
			t.Fatalf("erase: %q removed: %d  reference present: %v", value, n, present)
		}
		delete(reference, value)

		if !set.CheckUp() {
			depth := set.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent up links")
		}
		if !set.CheckLevels() {
			depth := set.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent levels")
		}
	}

	checkInvariants(t, set)

	if len(reference) != set.Count() {
		t.Fatalf("count: actual: %d  expected: %d", set.Count(), len(reference))
	}

	// remaining values still in ascending order and in the reference
	previous := ""
	n := 0
	for it := set.Begin(); it.Valid(); it.Next() {
		value := it.Value()
		if n > 0 && previous >= value {
			t.Fatalf("order fail: %q not above %q", value, previous)
		}
		if _, ok := reference[value]; !ok {
			t.Fatalf("unexpected value: %q", value)
		}
		previous = value
		n += 1
	}
	if n != len(reference) {
		t.Fatalf("traverse count: actual: %d  expected: %d", n, len(reference))
	}
}

// a complete working sequence over one small set
func TestInsertEraseExample(t *testing.T) {
	set := aaset.New[int]()
	for _, value := range []int{5, 3, 8, 1, 4, 7, 9} {
		set.Insert(value)
	}

	if got, want := fmt.Sprint(collect(set)), "[1 3 4 5 7 8 9]"; got != want {
		t.Fatalf("in-order: actual: %s  expected: %s", got, want)
	}
	if 7 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 7", set.Count())
	}

	// erase an inner value
	if n := set.Erase(5); 1 != n {
		t.Fatalf("erase removed: %d  expected: 1", n)
	}
	if 6 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 6", set.Count())
	}
	if it := set.Find(5); it != set.End() {
		t.Fatal("erased value still found")
	}

	// duplicate insert answers the stored position without growth
	it, added := set.Insert(3)
	if added {
		t.Fatal("duplicate insert reported added")
	}
	if 3 != it.Value() || 6 != set.Count() {
		t.Fatal("duplicate insert moved or grew the set")
	}

	// bounds at a gap, at a member and above the highest
	if bound := set.LowerBound(6); 7 != bound.Value() {
		t.Fatalf("lower bound: 6  actual: %d  expected: 7", bound.Value())
	}
	if bound := set.LowerBound(9); 9 != bound.Value() {
		t.Fatalf("lower bound: 9  actual: %d  expected: 9", bound.Value())
	}
	if bound := set.LowerBound(10); bound != set.End() {
		t.Fatal("lower bound above the highest is not end")
	}

	// a copy erases independently
	duplicate := set.Copy()
	if n := duplicate.Erase(1); 1 != n {
		t.Fatalf("copy erase removed: %d  expected: 1", n)
	}
	if !set.Has(1) {
		t.Fatal("erase in the copy leaked into the original")
	}
	if duplicate.Has(1) {
		t.Fatal("erased value still in the copy")
	}

	// erasing a value that was never stored changes nothing
	if n := set.Erase(42); 0 != n {
		t.Fatalf("erase absent removed: %d  expected: 0", n)
	}
	if got, want := fmt.Sprint(collect(set)), "[1 3 4 7 8 9]"; got != want {
		t.Fatalf("in-order: actual: %s  expected: %s", got, want)
	}

	checkInvariants(t, set)
	checkInvariants(t, duplicate)
}

// ascending inserts followed by erasing the even values
func TestAscendingInsertEraseEvens(t *testing.T) {
	set := aaset.New[int]()
	for i := 1; i <= 10; i += 1 {
		_, added := set.Insert(i)
		if !added {
			t.Fatalf("insert: %d reported already present", i)
		}
	}

	checkInvariants(t, set)

	for i := 2; i <= 10; i += 2 {
		if n := set.Erase(i); 1 != n {
			t.Fatalf("erase: %d removed: %d  expected: 1", i, n)
		}
	}

	checkInvariants(t, set)

	if got, want := fmt.Sprint(collect(set)), "[1 3 5 7 9]"; got != want {
		t.Fatalf("in-order: actual: %s  expected: %s", got, want)
	}

	begin := set.Begin()
	if !begin.Valid() || 1 != begin.Value() {
		t.Fatal("begin is not the lowest remaining value")
	}
}

// a duplicate insert is a no-op answering the original position
func TestInsertDuplicate(t *testing.T) {
	set := aaset.New[int]()

	first, added := set.Insert(7)
	if !added {
		t.Fatal("first insert reported already present")
	}

	second, added := set.Insert(7)
	if added {
		t.Fatal("duplicate insert reported added")
	}
	if first != second {
		t.Fatal("duplicate insert returned a different position")
	}
	if 1 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 1", set.Count())
	}
}

// erasing down to empty and erasing from empty
func TestEraseToEmpty(t *testing.T) {
	set := aaset.Of(2, 1, 3)

	for _, value := range []int{1, 2, 3} {
		if n := set.Erase(value); 1 != n {
			t.Fatalf("erase: %d removed: %d  expected: 1", value, n)
		}
	}

	if !set.IsEmpty() {
		t.Fatal("set not empty")
	}
	if 0 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 0", set.Count())
	}
	if n := set.Erase(1); 0 != n {
		t.Fatalf("erase on empty removed: %d  expected: 0", n)
	}
	if end := set.Begin(); end.Valid() {
		t.Fatal("begin of empty set is not end")
	}
}

func TestEraseAbsent(t *testing.T) {
	set := aaset.Of(10, 20, 30)

	if n := set.Erase(15); 0 != n {
		t.Fatalf("erase absent removed: %d  expected: 0", n)
	}
	if 3 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 3", set.Count())
	}
	checkInvariants(t, set)
}

func TestClear(t *testing.T) {
	set := aaset.Of(4, 2, 6, 1, 3)

	set.Clear()
	if !set.IsEmpty() {
		t.Fatal("set not empty after clear")
	}
	if 0 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 0", set.Count())
	}

	// still usable
	set.Insert(9)
	if 1 != set.Count() {
		t.Fatalf("count: actual: %d  expected: 1", set.Count())
	}
	if !set.Has(9) {
		t.Fatal("missing value after clear and insert")
	}
}
