// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckBalance - verify the balance invariant over the whole tree
//
// every node's stored factor must equal height(right)-height(left)
// and stay inside {-1, 0, +1}
func (tree *Tree) CheckBalance() bool {
	if nil == tree {
		return false
	}
	ok, _ := checkBalance(tree.root)
	return ok
}

// internal: consistency checker
func checkBalance(p *Node) (bool, int) {
	if nil == p {
		return true, 0
	}
	okLeft, hLeft := checkBalance(p.left)
	okRight, hRight := checkBalance(p.right)
	if !okLeft || !okRight {
		return false, 0
	}
	if p.balance != hRight-hLeft || p.balance < -1 || p.balance > 1 {
		fmt.Printf("fail at node: %v   balance: %d  heights: %d/%d\n", p.payload, p.balance, hLeft, hRight)
		return false, 0
	}
	h := hLeft
	if hRight > h {
		h = hRight
	}
	return true, h + 1
}

// Height - longest root to leaf path, zero for an empty tree
func (tree *Tree) Height() int {
	if nil == tree {
		return 0
	}
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	hLeft := height(p.left)
	hRight := height(p.right)
	if hRight > hLeft {
		return hRight + 1
	}
	return hLeft + 1
}
