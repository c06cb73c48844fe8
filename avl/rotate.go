// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate left around y, which must have a right child
//
//	  y                x
//	 / \              / \
//	a   x     →      y   c
//	   / \          / \
//	  b   c        a   b
//
// returns x, the new root of the sub-tree
func (tree *Map[K, V]) rotateLeft(y *Node[K, V]) *Node[K, V] {
	x := y.right
	b := x.left

	y.right = b
	if nil != b {
		b.up = y
	}

	tree.replaceChild(y, x)

	x.left = y
	y.up = x

	y.updateHeight()
	x.updateHeight()
	return x
}

// rotate right around y, which must have a left child
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
//
// returns x, the new root of the sub-tree
func (tree *Map[K, V]) rotateRight(y *Node[K, V]) *Node[K, V] {
	x := y.left
	b := x.right

	y.left = b
	if nil != b {
		b.up = y
	}

	tree.replaceChild(y, x)

	x.right = y
	y.up = x

	y.updateHeight()
	x.updateHeight()
	return x
}

// put replacement (possibly nil) into the position of p below p's
// parent, or at the root
func (tree *Map[K, V]) replaceChild(p *Node[K, V], replacement *Node[K, V]) {
	up := p.up
	if nil != replacement {
		replacement.up = up
	}
	switch {
	case nil == up:
		tree.root = replacement
	case up.left == p:
		up.left = replacement
	default:
		up.right = replacement
	}
}

// restore the balance of a single node whose children are balanced
//
// a child with zero balance takes the single rotation
//
// returns the root of the sub-tree that now occupies p's position
func (tree *Map[K, V]) rebalance(p *Node[K, V]) *Node[K, V] {
	p.updateHeight()
	switch {
	case p.balance > 1: // left heavy
		if p.left.balance < 0 {
			tree.rotateLeft(p.left) // double LR rotation
		}
		return tree.rotateRight(p)

	case p.balance < -1: // right heavy
		if p.right.balance > 0 {
			tree.rotateRight(p.right) // double RL rotation
		}
		return tree.rotateLeft(p)
	}
	return p
}

// walk from the parent of a new leaf to the root
//
// at most one rotation is needed after an insertion, but every
// ancestor above it still gets its height refreshed
func (tree *Map[K, V]) rebalanceAfterInsert(p *Node[K, V]) {
	tree.retrace(p)
}

// walk from the parent of a removed node to the root
//
// a removal can need rotations at several levels so every ancestor
// is rebalanced
func (tree *Map[K, V]) rebalanceAfterDelete(p *Node[K, V]) {
	tree.retrace(p)
}

// rebalance p and each of its ancestors in turn, following the new
// sub-tree root after any rotation
func (tree *Map[K, V]) retrace(p *Node[K, V]) {
	for nil != p {
		p = tree.rebalance(p).up
	}
}
