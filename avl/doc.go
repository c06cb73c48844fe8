// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered map kept as an AVL balanced tree with the
// addition of parent pointers to allow iteration through the nodes
//
// Note: an individual map is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Every node caches its height and balance factor, both are
// recomputed on the way back up to the root after each insertion or
// removal, rotating any node whose balance leaves the range -1…+1.
//
// An insert with an existing key overwrites the value in place.
// Erasing a node that has two children copies the key and value of
// its in-order successor into it and then removes the successor's
// node, so an iterator that referenced the successor is no longer
// valid afterwards.
//
// Iterators are plain cursors holding a node pointer; the nil node
// is the terminal ("end") position and it is shared by every map, so
// the end iterators of two different maps compare equal.
package avl
