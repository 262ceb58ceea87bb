// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordered/fault"
	"github.com/bitmark-inc/ordered/stack"
)

// Mode - traversal phase selection, a bit mask
//
// Prefix, Infix and Suffix may be combined; Breadth stands alone;
// Reversed is a modifier swapping which child is walked first
type Mode int

// traversal phases and modifiers
const (
	Prefix   Mode = 1 << iota // visit a node before its children
	Infix    Mode = 1 << iota // visit a node between its children
	Suffix   Mode = 1 << iota // visit a node after its children
	Breadth  Mode = 1 << iota // level order, single phase
	Reversed Mode = 1 << iota // right child first
)

// Code - visitor result controlling the traversal
type Code int

// visitor result codes
const (
	Continue  Code = iota // descend both children per normal rules
	GoLeft    Code = iota // descend the left side only
	GoRight   Code = iota // descend the right side only
	Skip      Code = iota // node counts as visited, no descent
	Error     Code = iota // abort the visitation, report failure
	Finished  Code = iota // abort the visitation, report success
	NextVisit Code = iota // abandon this phase, ascend in the next one
)

// Visitor - called once per node per active phase
type Visitor func(tree *Tree, node *Node, ctx *Context, userdata interface{}) Code

// Context - ephemeral state handed to the visitor
//
// valid only for the duration of one visitation call
type Context struct {
	Phase Mode // phase this visit belongs to
	Depth int  // root is depth 0
	Index int  // position within the level, Breadth only

	stack *stack.Stack
}

// Ancestors - number of ancestors of the current node reachable from
// the traversal stack (depth-first phases only)
func (ctx *Context) Ancestors() int {
	if nil == ctx || nil == ctx.stack {
		return 0
	}
	n := ctx.stack.Size() - 1
	if n < 0 {
		n = 0
	}
	return n
}

// Ancestor - ancestor of the current node: 0 is the parent, 1 the
// grandparent; nil when past the root (depth-first phases only)
func (ctx *Context) Ancestor(i int) *Node {
	if nil == ctx || nil == ctx.stack || i < 0 {
		return nil
	}
	v, err := ctx.stack.Get(ctx.stack.Size() - 2 - i)
	if nil != err {
		return nil
	}
	return v.(*frame).node
}

// one stacked unit of traversal state
type frame struct {
	node       *Node
	phase      Mode // phase to run when this frame is on top
	allowLeft  bool
	allowRight bool
	depth      int // breadth only
	index      int // breadth only
}

// Visit - run the generic visitation engine
//
// the engine never inspects payloads, only structure and visitor
// return codes; it is what insert, free and all iteration walks are
// built on
func (tree *Tree) Visit(visitor Visitor, userdata interface{}, mode Mode) error {
	if nil == tree || nil == tree.compare {
		return fault.ErrInvalidTree
	}
	if nil == visitor {
		return fault.ErrInvalidVisitor
	}

	reversed := 0 != mode&Reversed
	mask := mode &^ Reversed
	if 0 != mask&Breadth {
		if Breadth != mask { // breadth cannot combine with other phases
			return fault.ErrInvalidMode
		}
		return tree.visitBreadth(visitor, userdata, reversed)
	}
	if 0 == mask || 0 != mask&^(Prefix|Infix|Suffix) {
		return fault.ErrInvalidMode
	}
	if nil == tree.root {
		return nil
	}

	stk := tree.acquire()
	defer tree.release(stk)

	ctx := &Context{stack: stk}

	err := stk.Push(&frame{
		node:       tree.root,
		phase:      Prefix,
		allowLeft:  true,
		allowRight: true,
	})
	if nil != err {
		return err
	}

	for !stk.IsEmpty() {
		top, _ := stk.Top()
		f := top.(*frame)
		ctx.Depth = stk.Size() - 1

		switch f.phase {

		case Prefix:
			code := Continue
			if 0 != mask&Prefix {
				ctx.Phase = Prefix
				code = visitor(tree, f.node, ctx, userdata)
			}
			switch code {
			case Error:
				return fault.ErrVisitAborted
			case Finished:
				return nil
			case NextVisit:
				return tree.ascend(visitor, userdata, mask, nextPhase(mask, Prefix), ctx, stk)
			case Skip:
				stk.Pop()
				continue
			case GoLeft:
				f.allowRight = false
			case GoRight:
				f.allowLeft = false
			}
			f.phase = Infix
			if p := f.firstChild(reversed); nil != p {
				stk.Push(&frame{node: p, phase: Prefix, allowLeft: true, allowRight: true})
			}

		case Infix:
			code := Continue
			if 0 != mask&Infix {
				ctx.Phase = Infix
				code = visitor(tree, f.node, ctx, userdata)
			}
			switch code {
			case Error:
				return fault.ErrVisitAborted
			case Finished:
				return nil
			case NextVisit:
				return tree.ascend(visitor, userdata, mask, nextPhase(mask, Infix), ctx, stk)
			case Skip:
				f.allowLeft = false
				f.allowRight = false
			case GoLeft:
				f.allowRight = false
			case GoRight:
				f.allowLeft = false
			}
			f.phase = Suffix
			if p := f.secondChild(reversed); nil != p {
				stk.Push(&frame{node: p, phase: Prefix, allowLeft: true, allowRight: true})
			}

		case Suffix:
			if 0 != mask&Suffix {
				ctx.Phase = Suffix
				switch visitor(tree, f.node, ctx, userdata) {
				case Error:
					return fault.ErrVisitAborted
				case Finished:
					return nil
				case NextVisit: // no phase follows suffix
					return nil
				}
			}
			stk.Pop()
		}
	}
	return nil
}

// internal: phase to ascend in after a NextVisit, zero when none
func nextPhase(mask Mode, current Mode) Mode {
	if Prefix == current && 0 != mask&Infix {
		return Infix
	}
	if current < Suffix && 0 != mask&Suffix {
		return Suffix
	}
	return 0
}

// internal: abandon the current phase and walk the stacked path from
// the current node up to the root in one later phase, popping as it
// goes; this is how insertion retraces exactly its descent
func (tree *Tree) ascend(visitor Visitor, userdata interface{}, mask Mode, phase Mode, ctx *Context, stk *stack.Stack) error {
	if 0 == phase { // no later phase in the mask: traversal is complete
		return nil
	}
	ctx.Phase = phase
	for !stk.IsEmpty() {
		top, _ := stk.Top()
		f := top.(*frame)
		ctx.Depth = stk.Size() - 1
		switch visitor(tree, f.node, ctx, userdata) {
		case Error:
			return fault.ErrVisitAborted
		case Finished:
			return nil
		case NextVisit: // switch again, restarting at this node
			phase = nextPhase(mask, phase)
			if 0 == phase {
				return nil
			}
			ctx.Phase = phase
			continue
		}
		stk.Pop()
	}
	return nil
}

// internal: level order walk, the stack used as a FIFO
func (tree *Tree) visitBreadth(visitor Visitor, userdata interface{}, reversed bool) error {
	if nil == tree.root {
		return nil
	}

	stk := tree.acquire()
	defer tree.release(stk)

	ctx := &Context{stack: stk, Phase: Breadth}

	levelDepth := 0 // depth of the most recent enqueue
	levelIndex := 0 // next sibling index at that depth

	enqueue := func(p *Node, depth int) {
		if depth != levelDepth {
			levelDepth = depth
			levelIndex = 0
		}
		stk.Push(&frame{node: p, depth: depth, index: levelIndex})
		levelIndex += 1
	}

	stk.Push(&frame{node: tree.root})

	for !stk.IsEmpty() {
		v, _ := stk.Dequeue()
		f := v.(*frame)
		ctx.Depth = f.depth
		ctx.Index = f.index

		code := visitor(tree, f.node, ctx, userdata)
		switch code {
		case Error:
			return fault.ErrVisitAborted
		case Finished, NextVisit: // breadth has no later phase
			return nil
		}

		first, second := f.node.left, f.node.right
		if reversed {
			first, second = second, first
		}
		if nil != first && allowChild(code, f.node, first) {
			enqueue(first, f.depth+1)
		}
		if nil != second && allowChild(code, f.node, second) {
			enqueue(second, f.depth+1)
		}
	}
	return nil
}

// internal: child pruning rules shared by the engine
func allowChild(code Code, p *Node, child *Node) bool {
	switch code {
	case Continue:
		return true
	case GoLeft:
		return child == p.left
	case GoRight:
		return child == p.right
	}
	return false
}

// internal: child walked before the infix point
func (f *frame) firstChild(reversed bool) *Node {
	if reversed {
		if f.allowRight {
			return f.node.right
		}
		return nil
	}
	if f.allowLeft {
		return f.node.left
	}
	return nil
}

// internal: child walked after the infix point
func (f *frame) secondChild(reversed bool) *Node {
	if reversed {
		if f.allowLeft {
			return f.node.left
		}
		return nil
	}
	if f.allowRight {
		return f.node.right
	}
	return nil
}
