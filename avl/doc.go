// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with a generic non-recursive
// visitation engine
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  The same applies to a stack resource shared between
//       several trees.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// Nodes carry no parent pointers; every walk, including the
// rebalancing passes of insert and remove, recovers ancestry from an
// explicit stack resource.  Traversal depth is therefore bounded only
// by memory, never by the native call stack, and a tree may be
// configured to reuse one stack across all of its operations.
//
// Equal payloads sort to the left, so repeated inserts of equal
// payloads store separate nodes rather than overwriting.
package avl
