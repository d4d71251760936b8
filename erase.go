// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// Erase - remove a value from the set
// returns the number of values removed: 0 or 1; erasing an absent
// value is a no-op
func (set *Set[T]) Erase(value T) int {
	if !erase(set.less, value, &set.root) {
		return 0
	}
	set.count -= 1
	return 1
}

// internal erase routine
//
// a node with a sub-tree on either side is never unlinked: the
// nearest value from a child sub-tree is copied over it and the donor
// node is erased instead
func erase[T any](less LessFunc[T], value T, pp **node[T]) bool {
	p := *pp
	if nil == p { // value not in set
		return false
	}

	removed := false
	switch {
	case less(value, p.value):
		removed = erase(less, value, &p.left)
		if removed {
			p.leftNodes -= 1
		}
	case less(p.value, value):
		removed = erase(less, value, &p.right)
		if removed {
			p.rightNodes -= 1
		}
	default: // found
		if nil == p.left && nil == p.right {
			*pp = nil
			p.up = nil // detached, so a stale iterator stops cleanly
			return true
		}
		if nil == p.left {
			p.value = p.right.first().value // in-order successor
			erase(less, p.value, &p.right)
			p.rightNodes -= 1
		} else {
			p.value = p.left.last().value // in-order predecessor
			erase(less, p.value, &p.left)
			p.leftNodes -= 1
		}
		removed = true
	}

	if removed {
		decreaseLevel(p)
		p = skew(p)
		p.right = skew(p.right)
		if nil != p.right {
			p.right.right = skew(p.right.right)
		}
		p = split(p)
		p.right = split(p.right)
		*pp = p
	}
	return removed
}
