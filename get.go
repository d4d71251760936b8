// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aaset

// At - locate a value by its zero based position in the ascending
// order of the set
// returns the end iterator if the index is out of range
func (set *Set[T]) At(index int) Iterator[T] {
	if index < 0 || index >= set.count {
		return set.End()
	}
	return Iterator[T]{set: set, node: get(index, set.root)}
}

func get[T any](index int, p *node[T]) *node[T] {
	if nil == p {
		return nil
	}

	nl := p.leftNodes

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
