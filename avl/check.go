// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/bitmark-inc/avlmap/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Map[K, V]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K Key, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify every structural invariant of the tree
//
// returns nil for a valid tree, otherwise all the violations found,
// each wrapping one of the fault.Err…Violation/Mismatch errors
func (tree *Map[K, V]) Check() error {
	var err error
	if nil != tree.root && nil != tree.root.up {
		err = multierr.Append(err, fmt.Errorf("%w: root: %v has a parent", fault.ErrParentMismatch, tree.root.key))
	}

	n, e := checkNode(tree.root, nil, nil)
	err = multierr.Append(err, e)
	if n != tree.count {
		err = multierr.Append(err, fmt.Errorf("%w: reachable: %d  size: %d", fault.ErrCountMismatch, n, tree.count))
	}

	return multierr.Append(err, tree.checkTraversal())
}

// internal: check a sub-tree whose keys must lie strictly between
// the optional bounds
//
// returns the number of nodes in the sub-tree
func checkNode[K Key, V any](p *Node[K, V], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}

	var err error
	if nil != low && !(p.key > *low) {
		err = multierr.Append(err, fmt.Errorf("%w: key: %v not above: %v", fault.ErrOrderViolation, p.key, *low))
	}
	if nil != high && !(p.key < *high) {
		err = multierr.Append(err, fmt.Errorf("%w: key: %v not below: %v", fault.ErrOrderViolation, p.key, *high))
	}
	if nil != p.left && p.left.up != p {
		err = multierr.Append(err, fmt.Errorf("%w: left child of: %v", fault.ErrParentMismatch, p.key))
	}
	if nil != p.right && p.right.up != p {
		err = multierr.Append(err, fmt.Errorf("%w: right child of: %v", fault.ErrParentMismatch, p.key))
	}

	nl, e := checkNode(p.left, low, &p.key)
	err = multierr.Append(err, e)
	nr, e := checkNode(p.right, &p.key, high)
	err = multierr.Append(err, e)

	// children first, so their cached heights have been verified
	if h := p.computeHeight(); h != p.height {
		err = multierr.Append(err, fmt.Errorf("%w: key: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, h))
	}
	b := p.BalanceFactor()
	if b != p.balance {
		err = multierr.Append(err, fmt.Errorf("%w: key: %v  cached balance: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.balance, b))
	}
	if b < -1 || b > 1 {
		err = multierr.Append(err, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrBalanceViolation, p.key, b))
	}

	return 1 + nl + nr, err
}

// internal: ascending traversal is strictly increasing and visits
// exactly Size() nodes
func (tree *Map[K, V]) checkTraversal() error {
	n := 0
	var previous *Node[K, V]
	for it := tree.CBegin(); !it.Equal(tree.CEnd()); it.Increment() {
		if nil != previous && !(previous.key < it.Key()) {
			return fmt.Errorf("%w: traversal: %v followed by: %v", fault.ErrOrderViolation, previous.key, it.Key())
		}
		previous = it.Node()
		n += 1
		if n > tree.count {
			break // a cycle or an unaccounted node
		}
	}
	if n != tree.count {
		return fmt.Errorf("%w: traversed: %d  size: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}
