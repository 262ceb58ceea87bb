// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordered/stack"
)

// CompareFunc - total order over payloads, strcmp-like result
//
// must stay consistent for the lifetime of the tree
type CompareFunc func(a interface{}, b interface{}) int

// DestroyFunc - called exactly once per payload when the node
// housing it is reclaimed
type DestroyFunc func(payload interface{})

// initial capacity for stacks created by the tree
const visitStackCapacity = 64

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	payload interface{} // data item, ordering via the tree comparator
	balance int         // height(right) - height(left): -1, 0, +1
}

// Payload - read the data item from a node
func (p *Node) Payload() interface{} {
	return p.payload
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Balance - the node balance factor
func (p *Node) Balance() int {
	return p.balance
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *Node
	compare   CompareFunc
	destroy   DestroyFunc
	shared    *stack.Stack // non-nil: reused across operations
	ownsStack bool         // true only when this tree created shared
	count     int
}

// New - create an initially empty tree
//
// every visitation allocates its own private stack; returns nil if no
// comparator is supplied
func New(compare CompareFunc, destroy DestroyFunc) *Tree {
	if nil == compare {
		return nil
	}
	return &Tree{
		compare: compare,
		destroy: destroy,
	}
}

// NewReusable - create an empty tree owning one stack resource that
// is reset and reused by every operation on this tree
func NewReusable(compare CompareFunc, destroy DestroyFunc) *Tree {
	tree := New(compare, destroy)
	if nil == tree {
		return nil
	}
	tree.shared = stack.New(visitStackCapacity, stack.Grow)
	tree.ownsStack = true
	return tree
}

// NewSharedStack - create an empty tree using a stack owned elsewhere
//
// the stack may be shared with sibling structures provided the caller
// serializes all their operations; Free never releases it
func NewSharedStack(compare CompareFunc, destroy DestroyFunc, stk *stack.Stack) *Tree {
	if nil == stk {
		return nil
	}
	tree := New(compare, destroy)
	if nil == tree {
		return nil
	}
	tree.shared = stk
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree || nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	if nil == tree {
		return 0
	}
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	if nil == tree {
		return nil
	}
	return tree.root
}

// Free - tear the tree down
//
// a post-order walk invokes the destructor (if any) exactly once per
// payload and unlinks every node; an owned stack is released, a stack
// shared from outside is left to its owner
func (tree *Tree) Free() {
	if nil == tree {
		return
	}
	if nil != tree.root {
		_ = tree.Visit(freeVisitor, nil, Suffix)
		tree.root = nil
		tree.count = 0
	}
	if tree.ownsStack {
		tree.shared = nil
		tree.ownsStack = false
	}
}

// internal: destroy one node after both children are done
func freeVisitor(tree *Tree, p *Node, ctx *Context, userdata interface{}) Code {
	if nil != tree.destroy {
		tree.destroy(p.payload)
	}
	p.left = nil
	p.right = nil
	p.payload = nil
	return Continue
}

// internal: stack for one operation; a configured shared stack is
// reset and handed out, otherwise a private stack is created
func (tree *Tree) acquire() *stack.Stack {
	if nil != tree.shared {
		tree.shared.Reset()
		return tree.shared
	}
	return stack.New(visitStackCapacity, stack.Grow)
}

// internal: drop node references held by a kept stack
func (tree *Tree) release(stk *stack.Stack) {
	if stk == tree.shared {
		stk.Reset()
	}
}
