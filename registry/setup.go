// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/ordered/avl"
	"github.com/bitmark-inc/ordered/fault"
	"github.com/bitmark-inc/ordered/stack"
)

// marks a registered name as a pattern
const patternSuffix = "*"

// capacity of the stack shared by both trees
const sharedStackCapacity = 128

// lifetime of cached pattern match results
const (
	matchCacheExpiry = 60 * time.Second
	matchCachePurge  = 5 * time.Minute
)

// one registered sink
type entry struct {
	name string
	sink interface{}
}

// globals for this package
type registryData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// the two indexes, sharing one traversal stack
	byName    *avl.Tree
	byPattern *avl.Tree
	stk       *stack.Stack

	// front cache for pattern matches
	matches *gocache.Cache

	// set once during initialise
	initialised bool
}

// global data
var globalData registryData

// name ordering for both trees
func compareEntries(a interface{}, b interface{}) int {
	return strings.Compare(a.(*entry).name, b.(*entry).name)
}

// Initialise - set up the sink registry
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.stk = stack.New(sharedStackCapacity, stack.Grow)
	globalData.byName = avl.NewSharedStack(compareEntries, nil, globalData.stk)
	globalData.byPattern = avl.NewSharedStack(compareEntries, nil, globalData.stk)
	globalData.matches = gocache.New(matchCacheExpiry, matchCachePurge)

	// all data initialised
	globalData.initialised = true
	return nil
}

// Finalise - drop all registered sinks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.byName.Free()
	globalData.byPattern.Free()
	globalData.byName = nil
	globalData.byPattern = nil
	globalData.stk = nil
	globalData.matches = nil

	globalData.initialised = false
	return nil
}
