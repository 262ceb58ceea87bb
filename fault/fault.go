// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised = ProcessError("already initialised")
	ErrIndexOutOfRange    = InvalidError("index is out of range")
	ErrInvalidMode        = InvalidError("traversal mode is invalid")
	ErrInvalidStack       = InvalidError("stack handle is invalid")
	ErrInvalidTree        = InvalidError("tree handle is invalid")
	ErrInvalidVisitor     = InvalidError("visitor is required")
	ErrNotInitialised     = ProcessError("not initialised")
	ErrSinkAlreadyExists  = ExistsError("sink already exists")
	ErrSinkNotFound       = NotFoundError("sink is not found")
	ErrStackEmpty         = EmptyError("stack is empty")
	ErrVisitAborted       = ProcessError("visit aborted by visitor")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
