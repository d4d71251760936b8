// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// Insert - add a value to the set
// returns an iterator addressing the value together with true if the
// value was added or false if an equivalent value was already present
func (set *Set[T]) Insert(value T) (Iterator[T], bool) {
	added := false
	p := (*node[T])(nil)
	set.root, p, added = insert(set.less, value, set.root)
	if added {
		set.count += 1
	}
	return Iterator[T]{set: set, node: p}, added
}

// internal routine for insert
func insert[T any](less LessFunc[T], value T, p *node[T]) (*node[T], *node[T], bool) {
	if nil == p { // insert new leaf node
		p = &node[T]{
			value: value,
			level: 1,
		}
		return p, p, true
	}

	at := (*node[T])(nil)
	added := false
	switch {
	case less(value, p.value):
		p.left, at, added = insert(less, value, p.left)
		p.left.up = p
		if added {
			p.leftNodes += 1
		}
	case less(p.value, value):
		p.right, at, added = insert(less, value, p.right)
		p.right.up = p
		if added {
			p.rightNodes += 1
		}
	default: // an equivalent value is already stored, leave it untouched
		return p, p, false
	}

	p = skew(p)
	p = split(p)

	return p, at, added
}
