/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package vterrors standardizes the errors produced by this module so that
// callers can inspect a Code and a State instead of pattern-matching error
// text, while still preserving Go's usual wrapping and stack-trace idioms.
package vterrors

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code loosely mirrors the canonical gRPC status codes. No RPC transport is
// involved here, but the taxonomy is a convenient, already-understood
// vocabulary for classifying failures.
type Code int

const (
	Code_OK Code = iota
	Code_CANCELED
	Code_UNKNOWN
	Code_INVALID_ARGUMENT
	Code_DEADLINE_EXCEEDED
	Code_NOT_FOUND
	Code_ALREADY_EXISTS
	Code_PERMISSION_DENIED
	Code_RESOURCE_EXHAUSTED
	Code_FAILED_PRECONDITION
	Code_ABORTED
	Code_OUT_OF_RANGE
	Code_UNIMPLEMENTED
	Code_INTERNAL
	Code_UNAVAILABLE
	Code_DATA_LOSS
	Code_UNAUTHENTICATED
)

func (c Code) String() string {
	switch c {
	case Code_OK:
		return "OK"
	case Code_CANCELED:
		return "CANCELED"
	case Code_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case Code_DEADLINE_EXCEEDED:
		return "DEADLINE_EXCEEDED"
	case Code_NOT_FOUND:
		return "NOT_FOUND"
	case Code_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case Code_PERMISSION_DENIED:
		return "PERMISSION_DENIED"
	case Code_RESOURCE_EXHAUSTED:
		return "RESOURCE_EXHAUSTED"
	case Code_FAILED_PRECONDITION:
		return "FAILED_PRECONDITION"
	case Code_ABORTED:
		return "ABORTED"
	case Code_OUT_OF_RANGE:
		return "OUT_OF_RANGE"
	case Code_UNIMPLEMENTED:
		return "UNIMPLEMENTED"
	case Code_INTERNAL:
		return "INTERNAL"
	case Code_UNAVAILABLE:
		return "UNAVAILABLE"
	case Code_DATA_LOSS:
		return "DATA_LOSS"
	case Code_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}

// LogErrStacks controls whether %v formatting of a wrapped error includes
// its stack trace. Off by default; the package's tests turn it on to
// check the stack rendering.
var LogErrStacks = false

type vtError struct {
	err   error
	cause error
	code  Code
	state State
}

func (e *vtError) Error() string { return e.err.Error() }

// Cause returns the error this one wraps, or nil if it was constructed
// directly via New/Errorf rather than Wrap/Wrapf.
func (e *vtError) Cause() error { return e.cause }

func (e *vtError) ErrorCode() Code   { return e.code }
func (e *vtError) ErrorState() State { return e.state }
func (e *vtError) Unwrap() error     { return e.cause }

func (e *vtError) Format(s fmt.State, verb rune) {
	if LogErrStacks {
		// Force the "+v" rendering regardless of the verb the caller used,
		// so a plain %v still surfaces the stack when diagnostics are on.
		_, _ = fmt.Fprintf(s, "%+v", e.err)
		return
	}
	_, _ = fmt.Fprint(s, e.err.Error())
}

// New creates an error with the given Code and message.
func New(code Code, message string) error {
	return &vtError{err: pkgerrors.New(message), code: code}
}

// NewWithState creates an error with the given Code, State and message.
func NewWithState(code Code, state State, message string) error {
	return &vtError{err: pkgerrors.New(message), code: code, state: state}
}

// Errorf creates an error with the given Code, formatting the message
// the way fmt.Errorf does.
func Errorf(code Code, format string, args ...any) error {
	return &vtError{err: pkgerrors.Errorf(format, args...), code: code}
}

// Wrap annotates err with a message, preserving its Code and State if it
// carries any. Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &vtError{
		err:   pkgerrors.WithMessage(pkgerrors.WithStack(err), message),
		cause: err,
		code:  CodeOf(err),
		state: StateOf(err),
	}
}

// Wrapf is like Wrap but takes a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &vtError{
		err:   pkgerrors.WithMessage(pkgerrors.WithStack(err), fmt.Sprintf(format, args...)),
		cause: err,
		code:  CodeOf(err),
		state: StateOf(err),
	}
}

type causer interface {
	Cause() error
}

// Cause returns the immediate cause of err, or nil if err wasn't produced
// by Wrap/Wrapf.
func Cause(err error) error {
	if err == nil {
		return nil
	}
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return nil
}

// RootCause walks the chain of wrapped causes to the bottom and returns the
// innermost error. If err was never wrapped, it returns err unchanged.
func RootCause(err error) error {
	for err != nil {
		c, ok := err.(causer)
		if !ok {
			break
		}
		next := c.Cause()
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// CodeOf extracts the Code embedded in err, mapping a couple of well-known
// stdlib sentinel errors along the way. nil carries Code_OK, and any plain
// error with no embedded Code carries Code_UNKNOWN.
func CodeOf(err error) Code {
	if err == nil {
		return Code_OK
	}
	if wc, ok := err.(ErrorWithCode); ok {
		return wc.ErrorCode()
	}
	if errors.Is(err, context.Canceled) {
		return Code_CANCELED
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Code_DEADLINE_EXCEEDED
	}
	return Code_UNKNOWN
}

// StateOf extracts the State embedded in err, if any.
func StateOf(err error) State {
	if err == nil {
		return Undefined
	}
	if ws, ok := err.(ErrorWithState); ok {
		return ws.ErrorState()
	}
	return Undefined
}
