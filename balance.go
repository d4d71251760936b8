// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// balance: rotate right to remove a left horizontal link
// the caller stores the returned node in place of p; parent links and
// sub-tree counts are maintained here
func skew[T any](p *node[T]) *node[T] {
	if nil == p || nil == p.left || p.left.level != p.level {
		return p
	}

	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l

	p.leftNodes = l.rightNodes
	l.rightNodes = 1 + p.leftNodes + p.rightNodes

	return l
}

// balance: rotate left to remove a double right horizontal link
// the new sub-tree root gains a level
func split[T any](p *node[T]) *node[T] {
	if nil == p || nil == p.right || nil == p.right.right || p.right.right.level != p.level {
		return p
	}

	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r
	r.level += 1

	p.rightNodes = r.leftNodes
	r.leftNodes = 1 + p.leftNodes + p.rightNodes

	return r
}

// balance: lower a level left too high after a removal
// a right horizontal link at the old level has to drop with it
func decreaseLevel[T any](p *node[T]) {
	expected := 1
	if nil != p.left && nil != p.right {
		expected = p.left.level
		if p.right.level < expected {
			expected = p.right.level
		}
		expected += 1
	}

	if p.level > expected {
		p.level = expected
		if nil != p.right && p.right.level > expected {
			p.right.level = expected
		}
	}
}
