// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack_test

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/bitmark-inc/ordered/fault"
	"github.com/bitmark-inc/ordered/stack"
)

func makeValue() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b))
}

func TestCreate(t *testing.T) {
	if nil != stack.New(0, stack.Grow) {
		t.Fatal("zero capacity must fail")
	}
	if nil != stack.New(-3, stack.Grow) {
		t.Fatal("negative capacity must fail")
	}
	stk := stack.New(4, stack.Grow)
	if nil == stk {
		t.Fatal("create failed")
	}
	if 0 != stk.Size() || 4 != stk.Capacity() {
		t.Fatalf("size: %d  capacity: %d", stk.Size(), stk.Capacity())
	}
	if !stk.IsEmpty() {
		t.Fatal("new stack is not empty")
	}
	if 0 == stk.MemoryEstimate() {
		t.Fatal("memory estimate is zero")
	}
}

// growth beyond the initial capacity must never lose an element
func TestGrowRoundTrip(t *testing.T) {
	const capacity = 8
	const n = 100

	stk := stack.New(capacity, stack.Grow)

	values := make([]int, n)
	for i := 0; i < n; i += 1 {
		values[i] = makeValue()
		if err := stk.Push(values[i]); nil != err {
			t.Fatalf("push error: %s", err)
		}
	}
	if n != stk.Size() {
		t.Fatalf("size: actual: %d  expected: %d", stk.Size(), n)
	}
	if stk.Capacity() < n {
		t.Fatalf("capacity did not grow: %d", stk.Capacity())
	}

	// pop order is the reverse of push order
	for i := n - 1; i >= 0; i -= 1 {
		v, err := stk.Pop()
		if nil != err {
			t.Fatalf("pop error: %s", err)
		}
		if values[i] != v {
			t.Fatalf("pop[%d]: actual: %v  expected: %d", i, v, values[i])
		}
	}
	if _, err := stk.Pop(); fault.ErrStackEmpty != err {
		t.Fatalf("pop on empty: %v", err)
	}
}

// growing a wrapped buffer must preserve logical order
func TestGrowAfterWrap(t *testing.T) {
	stk := stack.New(4, stack.Grow)

	// wrap the occupied region: remove two from the front first
	for i := 1; i <= 4; i += 1 {
		stk.Push(i)
	}
	for i := 1; i <= 2; i += 1 {
		v, err := stk.Dequeue()
		if nil != err || v != i {
			t.Fatalf("dequeue: %v, %v", v, err)
		}
	}
	for i := 5; i <= 8; i += 1 { // forces wrap then growth
		stk.Push(i)
	}

	for i := 3; i <= 8; i += 1 {
		v, err := stk.Dequeue()
		if nil != err {
			t.Fatalf("dequeue error: %s", err)
		}
		if v != i {
			t.Fatalf("dequeue: actual: %v  expected: %d", v, i)
		}
	}
}

// the overwrite policy drops exactly the oldest elements
func TestOverwrite(t *testing.T) {
	const capacity = 4

	stk := stack.New(capacity, stack.Overwrite)
	for i := 1; i <= 10; i += 1 {
		stk.Push(i)
	}
	if capacity != stk.Size() {
		t.Fatalf("size: actual: %d  expected: %d", stk.Size(), capacity)
	}
	if capacity != stk.Capacity() {
		t.Fatalf("capacity changed: %d", stk.Capacity())
	}
	for i := 7; i <= 10; i += 1 {
		v, err := stk.Dequeue()
		if nil != err {
			t.Fatalf("dequeue error: %s", err)
		}
		if v != i {
			t.Fatalf("dequeue: actual: %v  expected: %d", v, i)
		}
	}
}

func TestEnds(t *testing.T) {
	stk := stack.New(4, stack.Grow)

	if _, err := stk.Top(); fault.ErrStackEmpty != err {
		t.Fatalf("top on empty: %v", err)
	}
	if _, err := stk.Bottom(); fault.ErrStackEmpty != err {
		t.Fatalf("bottom on empty: %v", err)
	}
	if _, err := stk.Dequeue(); fault.ErrStackEmpty != err {
		t.Fatalf("dequeue on empty: %v", err)
	}

	stk.Push("first")
	stk.Push("middle")
	stk.Push("last")

	if v, _ := stk.Top(); "last" != v {
		t.Fatalf("top: %v", v)
	}
	if v, _ := stk.Bottom(); "first" != v {
		t.Fatalf("bottom: %v", v)
	}
	if 3 != stk.Size() {
		t.Fatalf("size: %d", stk.Size())
	}

	if v, _ := stk.Get(1); "middle" != v {
		t.Fatalf("get: %v", v)
	}
	if err := stk.Set(1, "changed"); nil != err {
		t.Fatalf("set error: %s", err)
	}
	if v, _ := stk.Get(1); "changed" != v {
		t.Fatalf("get after set: %v", v)
	}
	if _, err := stk.Get(3); fault.ErrIndexOutOfRange != err {
		t.Fatalf("get out of range: %v", err)
	}
	if err := stk.Set(-1, nil); fault.ErrIndexOutOfRange != err {
		t.Fatalf("set out of range: %v", err)
	}
}

// an invalid handle is signalled differently from an empty stack
func TestInvalidHandle(t *testing.T) {
	var stk *stack.Stack

	if err := stk.Push(1); fault.ErrInvalidStack != err {
		t.Fatalf("push: %v", err)
	}
	if _, err := stk.Pop(); fault.ErrInvalidStack != err {
		t.Fatalf("pop: %v", err)
	}
	if _, err := stk.Dequeue(); fault.ErrInvalidStack != err {
		t.Fatalf("dequeue: %v", err)
	}
	if 0 != stk.Size() || 0 != stk.Capacity() {
		t.Fatal("nil handle reports occupancy")
	}
	stk.Reset() // must not panic
}

// reset shrinks a grown buffer back to its original capacity
func TestReset(t *testing.T) {
	const capacity = 4

	stk := stack.New(capacity, stack.Grow)
	for i := 0; i < 50; i += 1 {
		stk.Push(i)
	}
	if stk.Capacity() <= capacity {
		t.Fatalf("capacity did not grow: %d", stk.Capacity())
	}

	stk.Reset()
	if 0 != stk.Size() {
		t.Fatalf("size after reset: %d", stk.Size())
	}
	if capacity != stk.Capacity() {
		t.Fatalf("capacity after reset: actual: %d  expected: %d", stk.Capacity(), capacity)
	}

	// still usable both ways after the reset
	stk.Push("a")
	stk.Push("b")
	if v, _ := stk.Pop(); "b" != v {
		t.Fatalf("pop after reset: %v", v)
	}
	if v, _ := stk.Dequeue(); "a" != v {
		t.Fatalf("dequeue after reset: %v", v)
	}
}

// mixed LIFO and FIFO use of one buffer
func TestMixedEnds(t *testing.T) {
	stk := stack.New(3, stack.Grow)

	stk.Push(1)
	stk.Push(2)
	stk.Push(3)

	if v, _ := stk.Dequeue(); 1 != v {
		t.Fatalf("dequeue: %v", v)
	}
	if v, _ := stk.Pop(); 3 != v {
		t.Fatalf("pop: %v", v)
	}
	stk.Push(4)
	if v, _ := stk.Dequeue(); 2 != v {
		t.Fatalf("dequeue: %v", v)
	}
	if v, _ := stk.Pop(); 4 != v {
		t.Fatalf("pop: %v", v)
	}
	if !stk.IsEmpty() {
		t.Fatal("stack should be empty")
	}
}
