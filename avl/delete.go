// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - remove the node referenced by an iterator
//
// erasing the terminal iterator or one whose node was already freed
// does nothing.  A node with two
// children takes the key and value of its in-order successor and the
// successor's node is removed instead.
func (tree *Map[K, V]) Erase(it Iterator[K, V]) {
	q := it.node
	if nil == q {
		return
	}
	if nil == q.up && q != tree.root {
		return // already freed
	}

	if nil != q.left && nil != q.right {
		r := q.right.First()
		q.key = r.key
		q.value = r.value
		q = r // at most a right child
	}

	// q has at most one child
	child := q.left
	if nil == child {
		child = q.right
	}
	up := q.up
	tree.replaceChild(q, child)
	freeNode(q)
	tree.count -= 1

	tree.rebalanceAfterDelete(up)
}

// Delete - removes a specific key from the map
//
// returns the value that was stored and whether the key was present
func (tree *Map[K, V]) Delete(key K) (V, bool) {
	p := search(key, tree.root)
	if nil == p {
		var zero V
		return zero, false
	}
	value := p.value // preserve the value part
	tree.Erase(Iterator[K, V]{node: p, tree: tree})
	return value, true
}
