// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlmap - apply a script of operations to an in-memory AVL map
//
// Each line of a script (or each command-line argument) is one
// operation, for example:
//
//	insert 5 five
//	insert 3 three
//	erase 5
//	dump
//
// The key type, optional preloaded entries and logging are set by a
// Lua configuration file.
package main
