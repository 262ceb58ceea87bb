// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack

import (
	"github.com/bitmark-inc/ordered/fault"
)

// Policy - overflow behaviour selected at creation
type Policy int

// available overflow policies
const (
	Grow      Policy = iota // double the capacity, keep every element
	Overwrite Policy = iota // drop the oldest element, keep the capacity
)

// rough per-slot cost for MemoryEstimate: one two-word interface value
const slotBytes = 16

// approximate fixed cost of the stack record itself
const recordBytes = 64

// Stack - handle for a double-ended buffer
type Stack struct {
	buffer  []interface{}
	start   int // index of the oldest element
	count   int // number of occupied slots
	initial int // capacity at creation, restored by Reset
	policy  Policy
}

// New - create a stack with a fixed initial capacity
//
// returns nil if the capacity is not positive
func New(capacity int, policy Policy) *Stack {
	if capacity <= 0 {
		return nil
	}
	return &Stack{
		buffer:  make([]interface{}, capacity),
		initial: capacity,
		policy:  policy,
	}
}

// Push - append a value at the logical end
//
// on a full Grow stack the capacity doubles and logical order is
// preserved even when the occupied region wrapped around the old
// buffer; on a full Overwrite stack the oldest element is dropped
func (stk *Stack) Push(value interface{}) error {
	if nil == stk {
		return fault.ErrInvalidStack
	}
	if stk.count == len(stk.buffer) {
		if Overwrite == stk.policy {
			stk.buffer[stk.start] = value
			stk.start = stk.next(1)
			return nil
		}
		stk.grow(2 * len(stk.buffer))
	}
	stk.buffer[stk.next(stk.count)] = value
	stk.count += 1
	return nil
}

// Pop - remove and return the newest value (LIFO side)
func (stk *Stack) Pop() (interface{}, error) {
	if nil == stk {
		return nil, fault.ErrInvalidStack
	}
	if 0 == stk.count {
		return nil, fault.ErrStackEmpty
	}
	i := stk.next(stk.count - 1)
	value := stk.buffer[i]
	stk.buffer[i] = nil
	stk.count -= 1
	return value, nil
}

// Dequeue - remove and return the oldest value (FIFO side)
func (stk *Stack) Dequeue() (interface{}, error) {
	if nil == stk {
		return nil, fault.ErrInvalidStack
	}
	if 0 == stk.count {
		return nil, fault.ErrStackEmpty
	}
	value := stk.buffer[stk.start]
	stk.buffer[stk.start] = nil
	stk.start = stk.next(1)
	stk.count -= 1
	return value, nil
}

// Top - peek at the newest value without removing it
func (stk *Stack) Top() (interface{}, error) {
	if nil == stk {
		return nil, fault.ErrInvalidStack
	}
	if 0 == stk.count {
		return nil, fault.ErrStackEmpty
	}
	return stk.buffer[stk.next(stk.count-1)], nil
}

// Bottom - peek at the oldest value without removing it
func (stk *Stack) Bottom() (interface{}, error) {
	if nil == stk {
		return nil, fault.ErrInvalidStack
	}
	if 0 == stk.count {
		return nil, fault.ErrStackEmpty
	}
	return stk.buffer[stk.start], nil
}

// Get - read the value at an index counted from the oldest element
func (stk *Stack) Get(index int) (interface{}, error) {
	if nil == stk {
		return nil, fault.ErrInvalidStack
	}
	if index < 0 || index >= stk.count {
		return nil, fault.ErrIndexOutOfRange
	}
	return stk.buffer[stk.next(index)], nil
}

// Set - overwrite the value at an index counted from the oldest element
func (stk *Stack) Set(index int, value interface{}) error {
	if nil == stk {
		return fault.ErrInvalidStack
	}
	if index < 0 || index >= stk.count {
		return fault.ErrIndexOutOfRange
	}
	stk.buffer[stk.next(index)] = value
	return nil
}

// Reset - empty the stack, shrinking a grown buffer back to its
// original capacity so a shared stack stays cheap to keep around
func (stk *Stack) Reset() {
	if nil == stk {
		return
	}
	if len(stk.buffer) > stk.initial {
		stk.buffer = make([]interface{}, stk.initial)
	} else {
		for i := 0; i < stk.count; i += 1 {
			stk.buffer[stk.next(i)] = nil
		}
	}
	stk.start = 0
	stk.count = 0
}

// Size - number of values currently held
func (stk *Stack) Size() int {
	if nil == stk {
		return 0
	}
	return stk.count
}

// Capacity - number of slots currently allocated
func (stk *Stack) Capacity() int {
	if nil == stk {
		return 0
	}
	return len(stk.buffer)
}

// IsEmpty - true if no values are held
func (stk *Stack) IsEmpty() bool {
	return nil == stk || 0 == stk.count
}

// MemoryEstimate - approximate bytes held by this stack
func (stk *Stack) MemoryEstimate() int {
	if nil == stk {
		return 0
	}
	return recordBytes + slotBytes*len(stk.buffer)
}

// internal: physical index of a logical offset from start
func (stk *Stack) next(offset int) int {
	return (stk.start + offset) % len(stk.buffer)
}

// internal: reallocate, unwrapping the occupied region so the oldest
// element lands at physical index zero
func (stk *Stack) grow(capacity int) {
	buffer := make([]interface{}, capacity)
	n := copy(buffer, stk.buffer[stk.start:])
	if n < stk.count {
		copy(buffer[n:], stk.buffer[:stk.count-n])
	}
	stk.buffer = buffer
	stk.start = 0
}
