// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - iterator at a specific key, End() if the key is absent
func (tree *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: search(key, tree.root), tree: tree}
}

// CFind - read only iterator at a specific key, CEnd() if the key
// is absent
func (tree *Map[K, V]) CFind(key K) ConstIterator[K, V] {
	return ConstIterator[K, V]{node: search(key, tree.root), tree: tree}
}

// Get - the value for a key and whether it was present
func (tree *Map[K, V]) Get(key K) (V, bool) {
	p := search(key, tree.root)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

func search[K Key, V any](key K, p *Node[K, V]) *Node[K, V] {
	for nil != p {
		if key < p.key {
			p = p.left
		} else if key > p.key {
			p = p.right
		} else {
			return p
		}
	}
	return nil
}
