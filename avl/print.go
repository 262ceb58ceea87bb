// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(printBalance bool) int {
	return tree.Fprint(os.Stdout, printBalance)
}

// Fprint - as Print but to a selectable writer
//
// returns the maximum depth of the tree
func (tree *Tree) Fprint(w io.Writer, printBalance bool) int {
	if nil == tree {
		return 0
	}
	return printTree(w, tree.root, "", root, printBalance)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, printBalance bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printBalance)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printBalance {
		fmt.Fprintf(w, "%v %+2d\n", tree.payload, tree.balance)
	} else {
		fmt.Fprintf(w, "%v\n", tree.payload)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printBalance)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
