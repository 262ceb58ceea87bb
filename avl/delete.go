// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// one recorded descent step: which child of node the path took
type step struct {
	node   *Node
	toLeft bool
}

// Remove - take a payload matching key out of the tree
//
// the removed payload is returned to the caller, the destructor is
// not run on it; unlike insertion, a removal may need rebalancing at
// more than one ancestor on the way back up
func (tree *Tree) Remove(key interface{}) (interface{}, bool) {
	if nil == tree || nil == tree.compare || nil == tree.root {
		return nil, false
	}

	stk := tree.acquire()
	defer tree.release(stk)

	// descend, recording the path
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.payload)
		if 0 == c {
			break
		}
		if c < 0 {
			stk.Push(&step{node: p, toLeft: true})
			p = p.left
		} else {
			stk.Push(&step{node: p, toLeft: false})
			p = p.right
		}
	}
	if nil == p { // descended past an empty child
		return nil, false
	}

	payload := p.payload

	if nil != p.left && nil != p.right {
		// two children: move the in-order successor payload up and
		// remove the successor node instead, it has at most one child
		stk.Push(&step{node: p, toLeft: false})
		s := p.right
		for nil != s.left {
			stk.Push(&step{node: s, toLeft: true})
			s = s.left
		}
		p.payload = s.payload
		p = s
	}

	// splice out p
	child := p.left
	if nil == child {
		child = p.right
	}
	if stk.IsEmpty() {
		tree.root = child
	} else {
		top, _ := stk.Top()
		e := top.(*step)
		if e.toLeft {
			e.node.left = child
		} else {
			e.node.right = child
		}
	}
	p.left = nil
	p.right = nil
	p.payload = nil

	// ascend while subtree heights are still shrinking
	shrunk := true
	for shrunk && !stk.IsEmpty() {
		v, _ := stk.Pop()
		e := v.(*step)
		var head *Node
		if e.toLeft {
			head, shrunk = balanceLeftShrink(e.node)
		} else {
			head, shrunk = balanceRightShrink(e.node)
		}
		if head != e.node {
			parent := (*Node)(nil)
			if !stk.IsEmpty() {
				top, _ := stk.Top()
				parent = top.(*step).node
			}
			replaceChild(tree, parent, e.node, head)
		}
	}

	tree.count -= 1
	return payload, true
}

// internal: left branch has shrunk
func balanceLeftShrink(p *Node) (*Node, bool) {
	shrunk := true
	if -1 == p.balance {
		p.balance = 0
	} else if 0 == p.balance {
		p.balance = 1
		shrunk = false
	} else { // balance = +1, rebalance
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			p.right = p1.left
			p1.left = p
			if 0 == p1.balance {
				p.balance = 1
				p1.balance = -1
				shrunk = false
			} else {
				p.balance = 0
				p1.balance = 0
			}
			return p1, shrunk
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
		return p2, shrunk
	}
	return p, shrunk
}

// internal: right branch has shrunk
func balanceRightShrink(p *Node) (*Node, bool) {
	shrunk := true
	if 1 == p.balance {
		p.balance = 0
	} else if 0 == p.balance {
		p.balance = -1
		shrunk = false
	} else { // balance = -1, rebalance
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			p.left = p1.right
			p1.right = p
			if 0 == p1.balance {
				p.balance = -1
				p1.balance = 1
				shrunk = false
			} else {
				p.balance = 0
				p1.balance = 0
			}
			return p1, shrunk
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
		return p2, shrunk
	}
	return p, shrunk
}
