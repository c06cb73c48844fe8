// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"io"
)

// Key - a key must be totally ordered by both < and >
type Key interface {
	cmp.Ordered
}

// Node - a node in the tree
type Node[K Key, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node, never owns it
	key     K           // key part for ordering
	value   V           // value part for data storage
	height  int         // 0 for a leaf
	balance int         // height(left) - height(right): -1, 0, +1
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the root of the left sub-tree
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the root of the right sub-tree
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Balance - cached balance factor
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if depth == 0 {
		return []*Node[K, V]{p}
	}

	nodes := []*Node[K, V]{}
	if p.left != nil {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// Print - write "key -> value" on a single line
func (p *Node[K, V]) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%v -> %v\n", p.key, p.value)
	return err
}

// an absent sub-tree has height -1
func heightOf[K Key, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the height from the children's cached heights
func (p *Node[K, V]) computeHeight() int {
	return 1 + max(heightOf(p.left), heightOf(p.right))
}

// BalanceFactor - recompute the balance factor from the children's
// cached heights
func (p *Node[K, V]) BalanceFactor() int {
	return heightOf(p.left) - heightOf(p.right)
}

// cache the height and balance factor
func (p *Node[K, V]) updateHeight() {
	p.height = p.computeHeight()
	p.balance = p.BalanceFactor()
}
