// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/ordered/fault"
)

var (
	ErrEmptyOne    = fault.EmptyError("empty one")
	ErrEmptyTwo    = fault.EmptyError("empty two")
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes stay distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		empty    bool
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrEmptyOne, true, false, false, false, false},
		{ErrEmptyTwo, true, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false},
		{ErrExistsTwo, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrInvalidTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEmpty(err) != e.empty {
			t.Errorf("%d: expected 'empty' == %v for err = %v", i, e.empty, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the stack empty signal must not look like an invalid handle
func TestDistinctSignals(t *testing.T) {
	if fault.IsErrInvalid(fault.ErrStackEmpty) {
		t.Error("ErrStackEmpty must not be an invalid-argument error")
	}
	if fault.IsErrEmpty(fault.ErrInvalidStack) {
		t.Error("ErrInvalidStack must not be an empty-container error")
	}
}
