// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// LessFunc - ordering function for the stored value type
// it must be a strict weak ordering and report true when a is ordered
// before b
type LessFunc[T any] func(a, b T) bool

// Ordered - the built in types for which the < operator works
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Set - type to hold the root node of a tree of unique values
//
// two values a and b are treated as equivalent when neither
// less(a, b) nor less(b, a) holds; an equivalent value is stored only
// once
type Set[T any] struct {
	root  *node[T]
	less  LessFunc[T]
	count int
}

// a node in the tree
type node[T any] struct {
	left       *node[T] // left sub-tree
	right      *node[T] // right sub-tree
	up         *node[T] // points to parent node
	value      T        // the stored value
	level      int      // 1 for a leaf node
	leftNodes  int      // number of nodes in left sub-tree
	rightNodes int      // number of nodes in right sub-tree
}

// New - create an initially empty set ordered by the < operator
func New[T Ordered]() *Set[T] {
	return NewFunc[T](func(a, b T) bool {
		return a < b
	})
}

// NewFunc - create an initially empty set with an explicit ordering
// function
func NewFunc[T any](less LessFunc[T]) *Set[T] {
	if nil == less {
		panic("aaset: nil less function")
	}
	return &Set[T]{
		root:  nil,
		less:  less,
		count: 0,
	}
}

// Of - create a set holding the given values
// duplicates collapse to a single stored value
func Of[T Ordered](values ...T) *Set[T] {
	set := New[T]()
	for _, value := range values {
		set.Insert(value)
	}
	return set
}

// OfFunc - create a set with an explicit ordering function holding
// the given values
func OfFunc[T any](less LessFunc[T], values ...T) *Set[T] {
	set := NewFunc(less)
	for _, value := range values {
		set.Insert(value)
	}
	return set
}

// IsEmpty - true if the set contains no values
func (set *Set[T]) IsEmpty() bool {
	return nil == set.root
}

// Count - number of values currently in the set
func (set *Set[T]) Count() int {
	return set.count
}

// Clear - remove all values
func (set *Set[T]) Clear() {
	set.root = nil
	set.count = 0
}
