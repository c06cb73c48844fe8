// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// allocate a new leaf node
func newNode[K Key, V any](key K, value V, up *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:     key,
		value:   value,
		up:      up,
		height:  0,
		balance: 0,
	}
}

// release a node that has been unlinked from its tree
//
// all links are cleared so that a stale iterator cannot walk back
// into the tree and the payload can be collected
func freeNode[K Key, V any](node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.up = nil
	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
	node.balance = 0
}
