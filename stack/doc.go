// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a growable double-ended buffer of opaque values
//
// The buffer is circularly indexed so it serves as either a LIFO
// (Push/Pop) or a FIFO (Push/Dequeue).  On overflow it either doubles
// its capacity or overwrites the oldest element, depending on the
// policy selected at creation.  Reset empties the buffer and returns
// it to its original capacity, which allows one stack to be reused
// across many short-lived traversals without repeated allocation.
//
// Note: a stack is not thread safe; a stack shared between several
//       structures must be serialized externally.
//
// The stack never owns the values it carries; pointers pushed here
// must outlive their time on the stack.
package stack
