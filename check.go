// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (set *Set[T]) CheckUp() bool {
	return checkup(set.root, nil)
}

// internal: consistency checker
func checkup[T any](p *node[T], up *node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual up: %p  expected up: %p\n", p.value, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckLevels - check the level rules hold at every node
//
// a left child is one level down, a right child at most one level
// down, a right grandchild strictly down, and only a node with both
// children can sit above level one
func (set *Set[T]) CheckLevels() bool {
	return checklevels(set.root)
}

func checklevels[T any](p *node[T]) bool {
	if nil == p {
		return true
	}
	if lvl(p.left) != p.level-1 {
		fmt.Printf("level fail at node: %v   left level: %d  expected: %d\n", p.value, lvl(p.left), p.level-1)
		return false
	}
	if d := p.level - lvl(p.right); 0 != d && 1 != d {
		fmt.Printf("level fail at node: %v   right level: %d  node level: %d\n", p.value, lvl(p.right), p.level)
		return false
	}
	if nil != p.right && lvl(p.right.right) >= p.level {
		fmt.Printf("level fail at node: %v   double right horizontal link\n", p.value)
		return false
	}
	if p.level > 1 && (nil == p.left || nil == p.right) {
		fmt.Printf("level fail at node: %v   missing child at level: %d\n", p.value, p.level)
		return false
	}
	if !checklevels(p.left) {
		return false
	}
	return checklevels(p.right)
}

// level of a possibly missing node
func lvl[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.level
}

// CheckCounts - check the stored sub-tree counts match the structure
func (set *Set[T]) CheckCounts() bool {
	n, ok := checkcounts(set.root)
	if ok && n != set.count {
		fmt.Printf("count fail: total: %d  expected: %d\n", n, set.count)
		return false
	}
	return ok
}

func checkcounts[T any](p *node[T]) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, okl := checkcounts(p.left)
	nr, okr := checkcounts(p.right)
	if !okl || !okr {
		return 0, false
	}
	if nl != p.leftNodes || nr != p.rightNodes {
		fmt.Printf("count fail at node: %v   actual: [%d,%d]  stored: [%d,%d]\n", p.value, nl, nr, p.leftNodes, p.rightNodes)
		return 0, false
	}
	return 1 + nl + nr, true
}
