// Copyright 2022 The Vexflow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vferr

import (
	"context"
	"fmt"
)

// Error codes.  0 is OK, everything else is an error.  Codes are grouped
// the same way the engine classifies failures: internal errors abort the
// query and are never retried, input errors are caller mistakes.
const (
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101

	// Group 2: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301
	ErrInvalidArg   uint16 = 20303

	// Group 3: unexpected state
	ErrInvalidState uint16 = 20400
)

type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) Succeeded() bool {
	return e.code == Ok
}

func newError(code uint16, message string) *Error {
	return &Error{code: code, message: message}
}

// IsVfErrCode reports whether err is a vexflow error carrying the given code.
func IsVfErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	me, ok := err.(*Error)
	if !ok {
		return false
	}
	return me.code == code
}

// The ctx argument is reserved for error tracing; the constructors keep it
// in their signatures so call sites do not churn when tracing lands.

func NewInternalError(_ context.Context, msg string, args ...any) *Error {
	return newError(ErrInternal, "internal error: "+fmt.Sprintf(msg, args...))
}

func NewInternalErrorNoCtx(msg string, args ...any) *Error {
	return NewInternalError(context.Background(), msg, args...)
}

func NewBadConfig(_ context.Context, msg string, args ...any) *Error {
	return newError(ErrBadConfig, "invalid configuration: "+fmt.Sprintf(msg, args...))
}

func NewInvalidInput(_ context.Context, msg string, args ...any) *Error {
	return newError(ErrInvalidInput, "invalid input: "+fmt.Sprintf(msg, args...))
}

func NewInvalidArg(_ context.Context, arg string, val any) *Error {
	return newError(ErrInvalidArg, fmt.Sprintf("invalid argument %s, bad value %v", arg, val))
}

func NewInvalidState(_ context.Context, msg string, args ...any) *Error {
	return newError(ErrInvalidState, "invalid state: "+fmt.Sprintf(msg, args...))
}
