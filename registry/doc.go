// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - index log sinks by name and by name pattern
//
// Two balanced trees hold the entries: one of exact names, one of
// patterns (a name with a trailing '*' matches any name carrying that
// prefix).  Both trees share a single stack resource for their
// traversals, which is safe because one read/write lock serializes
// every operation in this package.
//
// Pattern match results are kept in a small expiring front cache that
// is flushed whenever the registered set changes.
package registry
