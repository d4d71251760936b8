// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// Find - locate a specific value
// returns the end iterator if the value is not present
func (set *Set[T]) Find(value T) Iterator[T] {
	p, _ := search(set.less, value, set.root, 0)
	return Iterator[T]{set: set, node: p}
}

// Has - true if an equivalent value is stored in the set
func (set *Set[T]) Has(value T) bool {
	p, _ := search(set.less, value, set.root, 0)
	return nil != p
}

// Rank - zero based position of a value in the ascending order of the
// set
// returns 0 and false if the value is not present
func (set *Set[T]) Rank(value T) (int, bool) {
	p, index := search(set.less, value, set.root, 0)
	if nil == p {
		return 0, false
	}
	return index, true
}

func search[T any](less LessFunc[T], value T, p *node[T], index int) (*node[T], int) {
	if nil == p {
		return nil, -1
	}

	switch {
	case less(value, p.value):
		return search(less, value, p.left, index)
	case less(p.value, value):
		return search(less, value, p.right, index+p.leftNodes+1)
	default:
		return p, index + p.leftNodes
	}
}

// LowerBound - locate the smallest value that is not less than the
// given value, which itself need not be present
// returns the end iterator if every stored value is less
func (set *Set[T]) LowerBound(value T) Iterator[T] {
	less := set.less
	candidate := (*node[T])(nil)
	p := set.root
	for nil != p {
		if less(p.value, value) {
			p = p.right
		} else {
			candidate = p
			p = p.left
		}
	}
	return Iterator[T]{set: set, node: candidate}
}
