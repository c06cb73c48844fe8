// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key
//
// returns true if a new node was added
func (tree *Map[K, V]) Insert(key K, value V) bool {
	_, added := tree.insert(key, value)
	return added
}

// Index - pointer to the value stored for key, a zero value is
// inserted first if the key is absent
func (tree *Map[K, V]) Index(key K) *V {
	p := search(key, tree.root)
	if nil == p {
		var zero V
		p, _ = tree.insert(key, zero)
	}
	return &p.value
}

// internal routine for insert
//
// returns the node holding key and whether it was newly created
func (tree *Map[K, V]) insert(key K, value V) (*Node[K, V], bool) {
	var up *Node[K, V]
	p := tree.root
	for nil != p {
		up = p
		if key < p.key {
			p = p.left
		} else if key > p.key {
			p = p.right
		} else {
			p.value = value
			return p, false
		}
	}

	p = newNode(key, value, up)
	switch {
	case nil == up:
		tree.root = p
	case key < up.key:
		up.left = p
	default:
		up.right = p
	}
	tree.count += 1

	tree.rebalanceAfterInsert(up)
	return p, true
}
