// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// Copy - an independent copy of the set
// the copy shares no nodes with the original, so later changes to
// either are invisible to the other
func (set *Set[T]) Copy() *Set[T] {
	return &Set[T]{
		root:  duplicate(set.root, nil),
		less:  set.less,
		count: set.count,
	}
}

// internal recursive copy preserving structure, levels and counts
func duplicate[T any](p *node[T], up *node[T]) *node[T] {
	if nil == p {
		return nil
	}

	q := &node[T]{
		value:      p.value,
		level:      p.level,
		up:         up,
		leftNodes:  p.leftNodes,
		rightNodes: p.rightNodes,
	}
	q.left = duplicate(p.left, q)
	q.right = duplicate(p.right, q)
	return q
}

// Take - move the entire contents of another set into this one
// the ordering function moves with the values; the donor keeps its
// ordering function but is left empty; any previous contents of this
// set are dropped; taking from itself is a no-op
func (set *Set[T]) Take(from *Set[T]) {
	if set == from {
		return
	}
	set.root = from.root
	set.less = from.less
	set.count = from.count
	from.root = nil
	from.count = 0
}
