// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Map - type to hold the root node of a tree
//
// the zero value is an empty map ready for use
type Map[K Key, V any] struct {
	root  *Node[K, V]
	count int
}

// New - create an initially empty map
func New[K Key, V any]() *Map[K, V] {
	return &Map[K, V]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if map contains no data
func (tree *Map[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the map
func (tree *Map[K, V]) Size() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Map[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the whole tree, -1 when empty
func (tree *Map[K, V]) Height() int {
	return heightOf(tree.root)
}

// Clear - remove every node, lowest key first
func (tree *Map[K, V]) Clear() {
	for nil != tree.root {
		tree.Erase(tree.Begin())
	}
}

// Clone - create an independent map with the same keys, values and
// tree shape
func (tree *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		root:  cloneTree(tree.root),
		count: tree.count,
	}
}

// Assign - replace the contents of the map by a copy of src
func (tree *Map[K, V]) Assign(src *Map[K, V]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.root = cloneTree(src.root)
	tree.count = src.count
}

// Move - transfer all nodes to a new map, leaving this map empty
func (tree *Map[K, V]) Move() *Map[K, V] {
	moved := &Map[K, V]{
		root:  tree.root,
		count: tree.count,
	}
	tree.root = nil
	tree.count = 0
	return moved
}

// MoveFrom - replace the contents of the map by the nodes of src,
// leaving src empty
func (tree *Map[K, V]) MoveFrom(src *Map[K, V]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.root = src.root
	tree.count = src.count
	src.root = nil
	src.count = 0
}

// internal: copy a sub-tree without recursion
func cloneTree[K Key, V any](src *Node[K, V]) *Node[K, V] {
	if nil == src {
		return nil
	}

	type pending struct {
		src *Node[K, V]
		dst *Node[K, V]
	}

	root := copyNode(src, nil)
	stack := []pending{{src: src, dst: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if nil != top.src.left {
			top.dst.left = copyNode(top.src.left, top.dst)
			stack = append(stack, pending{src: top.src.left, dst: top.dst.left})
		}
		if nil != top.src.right {
			top.dst.right = copyNode(top.src.right, top.dst)
			stack = append(stack, pending{src: top.src.right, dst: top.dst.right})
		}
	}
	return root
}

func copyNode[K Key, V any](src *Node[K, V], up *Node[K, V]) *Node[K, V] {
	p := newNode(src.key, src.value, up)
	p.height = src.height
	p.balance = src.balance
	return p
}
