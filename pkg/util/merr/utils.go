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
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Code 返回给定错误对应的错误码。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	if me, ok := asMcError(err); ok {
		return me.code()
	}
	if errors.Is(err, context.Canceled) {
		return CanceledCode
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TimeoutCode
	}
	return errUnexpected.code()
}

// IsRetryableErr 判断错误是否可以重试。
func IsRetryableErr(err error) bool {
	if me, ok := asMcError(err); ok {
		return me.retriable
	}
	return false
}

// Detail 返回错误链上第一个带错误码的错误的详细描述，非 mcError 返回空串。
func Detail(err error) string {
	if me, ok := asMcError(err); ok {
		return me.Detail()
	}
	return ""
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

// GetErrorType 返回错误类型；输入类错误通常意味着对端发送了非法数据。
func GetErrorType(err error) ErrorType {
	if me, ok := asMcError(err); ok {
		return me.errType
	}
	return SystemError
}

// asMcError 查找错误链上的第一个 mcError，合并错误按成员顺序查找。
func asMcError(err error) (mcError, bool) {
	var multi multiErrors
	if errors.As(err, &multi) {
		for _, item := range multi.errs {
			if me, ok := asMcError(item); ok {
				return me, true
			}
		}
	}
	var me mcError
	if errors.As(err, &me) {
		return me, true
	}
	return mcError{}, false
}

// Packet related

func WrapErrPacketUnknownID(id int32, state, direction string, msg ...string) error {
	err := wrapFields(ErrPacketUnknownID,
		value("id", fmt.Sprintf("0x%02x", id)),
		value("state", state),
		value("direction", direction),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// WrapErrPacketDeserializeFailed 将报文体解码失败包装为报文级错误。
// 返回值同时满足 errors.Is(err, ErrPacketDeserializeFailed) 与对 cause 的 errors.Is/As。
func WrapErrPacketDeserializeFailed(packet string, id int32, cause error) error {
	if cause == nil {
		return nil
	}
	return Combine(
		wrapFieldsWithDesc(ErrPacketDeserializeFailed, cause.Error(),
			value("packet", packet),
			value("id", fmt.Sprintf("0x%02x", id)),
		),
		cause,
	)
}

func WrapErrPacketTrailingBytes(packet string, remaining int, msg ...string) error {
	err := wrapFields(ErrPacketTrailingBytes,
		value("packet", packet),
		value("remaining", remaining),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrPacketSerializeFailed(packet string, cause error) error {
	if cause == nil {
		return nil
	}
	return Combine(
		wrapFieldsWithDesc(ErrPacketSerializeFailed, cause.Error(), value("packet", packet)),
		cause,
	)
}

func WrapErrPacketNotRegistered(packet any, msg ...string) error {
	err := wrapFields(ErrPacketNotRegistered, value("type", fmt.Sprintf("%T", packet)))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrPacketDirectionMismatch(packet string, expected, actual string) error {
	return wrapFields(ErrPacketDirectionMismatch,
		value("packet", packet),
		value("expected", expected),
		value("actual", actual),
	)
}

// Registry related

func WrapErrRegistryDuplicateID(id int32, state, direction, existing, packet string) error {
	return wrapFields(ErrRegistryDuplicateID,
		value("id", fmt.Sprintf("0x%02x", id)),
		value("state", state),
		value("direction", direction),
		value("existing", existing),
		value("packet", packet),
	)
}

func WrapErrRegistryDuplicateName(packet string) error {
	return wrapFields(ErrRegistryDuplicateName, value("packet", packet))
}

func WrapErrRegistryInvalid(reason string, msg ...string) error {
	err := wrapFieldsWithDesc(ErrRegistryInvalid, reason)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Frame related

func WrapErrFrameTooLarge(size, limit int, msg ...string) error {
	err := wrapFields(ErrFrameTooLarge, bound("size", size, 0, limit))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrFrameMalformed(reason string, msg ...string) error {
	err := wrapFieldsWithDesc(ErrFrameMalformed, reason)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrFrameCompression(algorithm string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrFrameCompression, err.Error(), value("algorithm", algorithm))
}

func WrapErrFrameDecompression(algorithm string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrFrameDecompression, err.Error(), value("algorithm", algorithm))
}

func WrapErrFrameEncryption(err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrFrameEncryption, err.Error())
}

// IO related

func WrapErrIoFailed(key string, err error) error {
	if err == nil {
		return nil
	}
	return Combine(wrapFieldsWithDesc(ErrIoFailed, err.Error(), value("key", key)), err)
}

func WrapErrIoUnexpectEOF(key string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrIoUnexpectEOF, err.Error(), value("key", key))
}

// Parameter related

func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalidMsg(fmt string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, fmt, args...)
}

func WrapErrParameterMissing[T any](param T, msg ...string) error {
	err := wrapFields(ErrParameterMissing,
		value("missing_param", param),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrOperationNotSupported(operation string, msg ...string) error {
	err := wrapFields(ErrOperationNotSupported, value("operation", operation))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func wrapFields(err mcError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.detail = err.msg
	return err
}

func wrapFieldsWithDesc(err mcError, desc string, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.msg += ": " + desc
	err.detail = err.msg
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}

type boundField struct {
	name  string
	value any
	lower any
	upper any
}

func bound(name string, value, lower, upper any) boundField {
	return boundField{
		name,
		value,
		lower,
		upper,
	}
}

func (f boundField) String() string {
	return fmt.Sprintf("%v out of range %v <= %s <= %v", f.value, f.lower, f.name, f.upper)
}
