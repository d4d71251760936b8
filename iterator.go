// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// Iterator - a position within the ascending order of a set
//
// iterators compare equal with == exactly when they belong to the
// same set and address the same position; the zero value behaves like
// an exhausted iterator
type Iterator[T any] struct {
	set  *Set[T]
	node *node[T]
}

// Begin - iterator addressing the lowest value of the set
// equal to End when the set is empty
func (set *Set[T]) Begin() Iterator[T] {
	return Iterator[T]{set: set, node: set.root.first()}
}

// End - iterator addressing the position after the highest value
func (set *Set[T]) End() Iterator[T] {
	return Iterator[T]{set: set, node: nil}
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Valid - true if the iterator addresses a value, false at the end
// position
func (it Iterator[T]) Valid() bool {
	return nil != it.node
}

// Value - read the value the iterator addresses
// panics when the iterator is at the end position
func (it Iterator[T]) Value() T {
	if nil == it.node {
		panic("aaset: Value of end iterator")
	}
	return it.node.value
}

// Next - advance to the next higher value
// returns false if there is no higher value, leaving the iterator at
// the end position
func (it *Iterator[T]) Next() bool {
	p := it.node
	if nil == p {
		return false
	}

	if nil == p.right {
		for {
			up := p.up
			if nil == up {
				it.node = nil
				return false
			}
			if up.left == p { // a left child: the parent is next
				it.node = up
				return true
			}
			p = up
		}
	}
	it.node = p.right.first()
	return true
}

// Prev - retreat to the next lower value
// a retreat from the end position arrives at the highest value;
// returns false if there is no lower value, leaving the iterator
// where it was
func (it *Iterator[T]) Prev() bool {
	p := it.node
	if nil == p {
		if nil == it.set || nil == it.set.root {
			return false
		}
		it.node = it.set.root.last()
		return true
	}

	if nil == p.left {
		for {
			up := p.up
			if nil == up {
				return false
			}
			if up.right == p { // a right child: the parent is previous
				it.node = up
				return true
			}
			p = up
		}
	}
	it.node = p.left.last()
	return true
}
