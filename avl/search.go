// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the payload matching a key
//
// plain binary descent; an empty tree answers not-found without
// touching a root
func (tree *Tree) Search(key interface{}) (interface{}, bool) {
	if nil == tree || nil == tree.compare {
		return nil, false
	}
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.payload)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p.payload, true
		}
	}
	return nil, false
}
