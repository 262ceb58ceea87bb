// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// descending placement then ascending rebalance, one engine call
type insertState struct {
	payload interface{}
	node    *Node // the newly attached node
	prev    *Node // child the ascent arrived from
}

// Insert - add a payload to the tree
//
// equal payloads sort left, so duplicates are stored as separate
// nodes; returns the node holding the stored payload
func (tree *Tree) Insert(payload interface{}) *Node {
	if nil == tree || nil == tree.compare {
		return nil
	}
	if nil == tree.root {
		tree.root = &Node{payload: payload}
		tree.count += 1
		return tree.root
	}

	state := insertState{payload: payload}
	if err := tree.Visit(insertVisitor, &state, Prefix|Suffix); nil != err {
		return nil
	}
	tree.count += 1
	return state.node
}

// internal: one visitor drives both insertion passes
//
// prefix: binary descent; on reaching an empty slot attach the new
// node there and switch the whole traversal to the ascending phase
//
// suffix: retrace the descent path adjusting balance factors; stop as
// soon as an ancestor absorbs the height change or one rotation
// restores the invariant
func insertVisitor(tree *Tree, p *Node, ctx *Context, userdata interface{}) Code {
	state := userdata.(*insertState)

	switch ctx.Phase {

	case Prefix:
		if tree.compare(state.payload, p.payload) <= 0 {
			if nil != p.left {
				return GoLeft
			}
			p.left = &Node{payload: state.payload}
			state.node = p.left
		} else {
			if nil != p.right {
				return GoRight
			}
			p.right = &Node{payload: state.payload}
			state.node = p.right
		}
		state.prev = state.node
		return NextVisit

	case Suffix:
		if p.left == state.prev {
			p.balance -= 1
		} else {
			p.balance += 1
		}
		switch p.balance {
		case 0: // the other branch was taller: height unchanged
			return Finished
		case -1, 1: // this branch has grown
			state.prev = p
			return Continue
		}
		// balance is -2/+2: one rotation restores the whole chain
		var head *Node
		if p.balance < 0 {
			head = rebalanceLeftGrowth(p)
		} else {
			head = rebalanceRightGrowth(p)
		}
		replaceChild(tree, ctx.Ancestor(0), p, head)
		return Finished
	}
	return Error // engine never delivers other phases here
}

// internal: point the parent slot (or the root) at a rotated subtree
func replaceChild(tree *Tree, parent *Node, old *Node, head *Node) {
	if nil == parent {
		tree.root = head
		return
	}
	if parent.left == old {
		parent.left = head
	} else {
		parent.right = head
	}
}

// internal: left branch has grown too tall (balance == -2)
func rebalanceLeftGrowth(p *Node) *Node {
	p1 := p.left
	if -1 == p1.balance {
		// single LL rotation
		p.left = p1.right
		p1.right = p
		p.balance = 0
		p1.balance = 0
		return p1
	}
	// double LR rotation
	p2 := p1.right
	p1.right = p2.left
	p2.left = p1
	p.left = p2.right
	p2.right = p
	if -1 == p2.balance {
		p.balance = 1
	} else {
		p.balance = 0
	}
	if +1 == p2.balance {
		p1.balance = -1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}

// internal: right branch has grown too tall (balance == +2)
func rebalanceRightGrowth(p *Node) *Node {
	p1 := p.right
	if 1 == p1.balance {
		// single RR rotation
		p.right = p1.left
		p1.left = p
		p.balance = 0
		p1.balance = 0
		return p1
	}
	// double RL rotation
	p2 := p1.left
	p1.left = p2.right
	p2.right = p1
	p.right = p2.left
	p2.left = p
	if +1 == p2.balance {
		p.balance = -1
	} else {
		p.balance = 0
	}
	if -1 == p2.balance {
		p1.balance = 1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}
