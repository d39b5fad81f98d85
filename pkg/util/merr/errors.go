// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merr

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	CanceledCode int32 = 10000
	TimeoutCode  int32 = 10001
)

type ErrorType int32

const (
	SystemError ErrorType = 0
	InputError  ErrorType = 1
)

var ErrorTypeName = map[ErrorType]string{
	SystemError: "system_error",
	InputError:  "input_error",
}

func (err ErrorType) String() string {
	return ErrorTypeName[err]
}

// Define leaf errors here,
// WARN: take care to add new error,
// check whether you can use the errors below before adding a new one.
// Name: Err + related prefix + error name
var (
	// Packet related
	ErrPacketUnknownID = newMcError("unknown packet id", 100, false, WithErrorType(InputError),
		WithDetail("no packet is registered for this id in the current state and direction"))
	ErrPacketDeserializeFailed = newMcError("packet deserialize failed", 101, false, WithErrorType(InputError))
	ErrPacketTrailingBytes     = newMcError("packet has trailing bytes", 102, false, WithErrorType(InputError),
		WithDetail("packet body decoded but bytes remain in the frame"))
	ErrPacketSerializeFailed   = newMcError("packet serialize failed", 103, false)
	ErrPacketNotRegistered     = newMcError("packet type not registered", 104, false)
	ErrPacketDirectionMismatch = newMcError("packet direction mismatch", 105, false)

	// Registry related
	ErrRegistryDuplicateID   = newMcError("duplicate packet identity", 200, false)
	ErrRegistryDuplicateName = newMcError("duplicate packet name", 201, false)
	ErrRegistryInvalid       = newMcError("invalid registry definition", 202, false)

	// Frame related
	ErrFrameTooLarge      = newMcError("frame too large", 300, false, WithErrorType(InputError))
	ErrFrameMalformed     = newMcError("malformed frame", 301, false, WithErrorType(InputError))
	ErrFrameCompression   = newMcError("frame compression failed", 302, false)
	ErrFrameDecompression = newMcError("frame decompression failed", 303, false, WithErrorType(InputError))
	ErrFrameEncryption    = newMcError("frame encryption failed", 304, false)

	// IO related
	ErrIoFailed      = newMcError("IO failed", 1001, false)
	ErrIoUnexpectEOF = newMcError("unexpected EOF", 1002, true)

	// Parameter related
	ErrParameterInvalid = newMcError("invalid parameter", 1100, false)
	ErrParameterMissing = newMcError("missing parameter", 1101, false)

	// General
	ErrOperationNotSupported = newMcError("unsupported operation", 3000, false)

	// Do NOT export this,
	// never allow programmer using this, keep only for converting unknown error to mcError
	errUnexpected = newMcError("unexpected error", (1<<16)-1, false)
)

type errorOption func(*mcError)

func WithDetail(detail string) errorOption {
	return func(err *mcError) {
		err.detail = detail
	}
}

func WithErrorType(etype ErrorType) errorOption {
	return func(err *mcError) {
		err.errType = etype
	}
}

type mcError struct {
	msg       string
	detail    string
	retriable bool
	errCode   int32
	errType   ErrorType
}

func newMcError(msg string, code int32, retriable bool, options ...errorOption) mcError {
	err := mcError{
		msg:       msg,
		detail:    msg,
		retriable: retriable,
		errCode:   code,
	}

	for _, option := range options {
		option(&err)
	}
	return err
}

func (e mcError) code() int32 {
	return e.errCode
}

func (e mcError) Error() string {
	return e.msg
}

func (e mcError) Detail() string {
	return e.detail
}

func (e mcError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(mcError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// cause of multi errors is defined as the last error
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

// Combine 将多个错误合并为一个，nil 会被忽略。
// 合并后的错误对每一个成员都满足 errors.Is，errors.As 沿最后一个成员展开。
func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return multiErrors{
		errs,
	}
}
