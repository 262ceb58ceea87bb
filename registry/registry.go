// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strings"

	"github.com/bitmark-inc/ordered/avl"
	"github.com/bitmark-inc/ordered/fault"
)

// Register - store a sink under a name
//
// a name with a trailing '*' registers a pattern matching any name
// that starts with the part before the star
func Register(name string, sink interface{}) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	tree := globalData.byName
	if strings.HasSuffix(name, patternSuffix) {
		tree = globalData.byPattern
	}
	if _, ok := tree.Search(&entry{name: name}); ok {
		return fault.ErrSinkAlreadyExists
	}
	if nil == tree.Insert(&entry{name: name, sink: sink}) {
		return fault.ErrInvalidTree
	}
	globalData.matches.Flush()

	globalData.log.Infof("registered: %q", name)
	return nil
}

// Deregister - drop a name or pattern, returning its sink
func Deregister(name string) (interface{}, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	tree := globalData.byName
	if strings.HasSuffix(name, patternSuffix) {
		tree = globalData.byPattern
	}
	removed, ok := tree.Remove(&entry{name: name})
	if !ok {
		return nil, fault.ErrSinkNotFound
	}
	globalData.matches.Flush()

	globalData.log.Infof("deregistered: %q", name)
	return removed.(*entry).sink, nil
}

// Get - exact name lookup only, patterns are not consulted
func Get(name string) (interface{}, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	item, ok := globalData.byName.Search(&entry{name: name})
	if !ok {
		return nil, fault.ErrSinkNotFound
	}
	return item.(*entry).sink, nil
}

// Match - resolve a name to a sink
//
// an exact entry wins; otherwise the longest registered pattern whose
// prefix covers the name; recently resolved patterns are answered
// from the front cache
func Match(name string) (interface{}, error) {
	// a visitation writes to the shared stack, so this cannot be a
	// read lock even though the trees are not modified
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	if item, ok := globalData.byName.Search(&entry{name: name}); ok {
		return item.(*entry).sink, nil
	}

	if sink, ok := globalData.matches.Get(name); ok {
		return sink, nil
	}

	var best *entry
	err := globalData.byPattern.Visit(func(tree *avl.Tree, node *avl.Node, ctx *avl.Context, userdata interface{}) avl.Code {
		e := node.Payload().(*entry)
		prefix := strings.TrimSuffix(e.name, patternSuffix)
		if strings.HasPrefix(name, prefix) {
			if nil == best || len(e.name) > len(best.name) {
				best = e
			}
		}
		return avl.Continue
	}, nil, avl.Infix)
	if nil != err {
		return nil, err
	}
	if nil == best {
		return nil, fault.ErrSinkNotFound
	}

	globalData.matches.SetDefault(name, best.sink)
	return best.sink, nil
}

// Names - every registered name, exact entries first, each group in
// comparator order
func Names() []string {
	globalData.Lock() // visitation writes to the shared stack
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil
	}

	names := make([]string, 0, globalData.byName.Count()+globalData.byPattern.Count())
	collect := func(tree *avl.Tree, node *avl.Node, ctx *avl.Context, userdata interface{}) avl.Code {
		names = append(names, node.Payload().(*entry).name)
		return avl.Continue
	}
	globalData.byName.Visit(collect, nil, avl.Infix)
	globalData.byPattern.Visit(collect, nil, avl.Infix)
	return names
}

// Count - number of registered names and patterns
func Count() int {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}
	return globalData.byName.Count() + globalData.byPattern.Count()
}
