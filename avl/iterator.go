// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// First - return the node with the lowest key value
func (tree *Map[K, V]) First() *Node[K, V] {
	return tree.root.First()
}

// First - lowest node in a sub-tree
func (p *Node[K, V]) First() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Map[K, V]) Last() *Node[K, V] {
	return tree.root.Last()
}

// Last - highest node in a sub-tree
func (p *Node[K, V]) Last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.First()
	}
	for p.up != nil && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.Last()
	}
	for p.up != nil && p == p.up.left {
		p = p.up
	}
	return p.up
}

// Iterator - a cursor over the map in ascending key order that can
// modify the values
//
// the terminal position holds a nil node, the map is only kept to
// allow stepping back from the terminal position
type Iterator[K Key, V any] struct {
	node *Node[K, V]
	tree *Map[K, V]
}

// ConstIterator - a read only cursor over the map
type ConstIterator[K Key, V any] struct {
	node *Node[K, V]
	tree *Map[K, V]
}

// Begin - iterator at the lowest key, or End() if the map is empty
func (tree *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: tree.root.First(), tree: tree}
}

// End - the terminal iterator
func (tree *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{node: nil, tree: tree}
}

// CBegin - read only iterator at the lowest key
func (tree *Map[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{node: tree.root.First(), tree: tree}
}

// CEnd - the read only terminal iterator
func (tree *Map[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{node: nil, tree: tree}
}

// Node - the referenced node, nil at the terminal position
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// IsEnd - true at the terminal position
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Key - key of the referenced node
func (it Iterator[K, V]) Key() K {
	return deref(it.node).key
}

// Value - value of the referenced node
func (it Iterator[K, V]) Value() V {
	return deref(it.node).value
}

// SetValue - replace the value of the referenced node
func (it Iterator[K, V]) SetValue(value V) {
	deref(it.node).value = value
}

// Increment - advance to the next key (pre-increment)
func (it *Iterator[K, V]) Increment() *Iterator[K, V] {
	it.node = advance(it.node)
	return it
}

// PostIncrement - advance to the next key, returning the position
// before the move
func (it *Iterator[K, V]) PostIncrement() Iterator[K, V] {
	previous := *it
	it.node = advance(it.node)
	return previous
}

// Decrement - move back to the previous key (pre-decrement), the
// terminal position moves to the last key
func (it *Iterator[K, V]) Decrement() *Iterator[K, V] {
	it.node = retreat(it.node, it.tree)
	return it
}

// PostDecrement - move back to the previous key, returning the
// position before the move
func (it *Iterator[K, V]) PostDecrement() Iterator[K, V] {
	previous := *it
	it.node = retreat(it.node, it.tree)
	return previous
}

// Equal - true if both iterators reference the same node
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Const - read only copy of this iterator
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{node: it.node, tree: it.tree}
}

// Node - the referenced node, nil at the terminal position
func (it ConstIterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// IsEnd - true at the terminal position
func (it ConstIterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Key - key of the referenced node
func (it ConstIterator[K, V]) Key() K {
	return deref(it.node).key
}

// Value - value of the referenced node
func (it ConstIterator[K, V]) Value() V {
	return deref(it.node).value
}

// Increment - advance to the next key (pre-increment)
func (it *ConstIterator[K, V]) Increment() *ConstIterator[K, V] {
	it.node = advance(it.node)
	return it
}

// PostIncrement - advance, returning the position before the move
func (it *ConstIterator[K, V]) PostIncrement() ConstIterator[K, V] {
	previous := *it
	it.node = advance(it.node)
	return previous
}

// Decrement - move back to the previous key (pre-decrement)
func (it *ConstIterator[K, V]) Decrement() *ConstIterator[K, V] {
	it.node = retreat(it.node, it.tree)
	return it
}

// PostDecrement - move back, returning the position before the move
func (it *ConstIterator[K, V]) PostDecrement() ConstIterator[K, V] {
	previous := *it
	it.node = retreat(it.node, it.tree)
	return previous
}

// Equal - true if both iterators reference the same node
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.node == other.node
}

// internal: the terminal position cannot be dereferenced
func deref[K Key, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		fault.Panic(fault.ErrTerminalIterator.Error())
	}
	return p
}

// internal: nothing follows the terminal position
func advance[K Key, V any](p *Node[K, V]) *Node[K, V] {
	return deref(p).Next()
}

// internal: before the terminal position is the highest key
func retreat[K Key, V any](p *Node[K, V], tree *Map[K, V]) *Node[K, V] {
	if nil != p {
		return p.Prev()
	}
	if nil == tree {
		return nil
	}
	return tree.root.Last()
}

// All - ascending sequence of key/value pairs
func (tree *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.First(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - descending sequence of key/value pairs
func (tree *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.Last(); nil != p; p = p.Prev() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - ascending sequence of keys
func (tree *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.root.First(); nil != p; p = p.Next() {
			if !yield(p.key) {
				return
			}
		}
	}
}
