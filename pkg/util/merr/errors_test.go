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
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrPacketUnknownID(0x7f, "Play", "ClientBound")
	err = errors.Wrap(err, "failed to decode packet")
	s.ErrorIs(err, ErrPacketUnknownID)
	s.Equal(Code(ErrPacketUnknownID), Code(err))
	s.Equal(TimeoutCode, Code(context.DeadlineExceeded))
	s.Equal(CanceledCode, Code(context.Canceled))
	s.Equal(errUnexpected.errCode, Code(errUnexpected))
	s.Equal(errUnexpected.errCode, Code(io.EOF))
	s.Equal(int32(0), Code(nil))

	sameCodeErr := newMcError("new error", ErrPacketUnknownID.errCode, false)
	s.True(sameCodeErr.Is(ErrPacketUnknownID))
}

func (s *ErrSuite) TestDetail() {
	err := errors.Wrap(WrapErrPacketUnknownID(0x7f, "Play", "ClientBound"), "decode")
	s.Equal(ErrPacketUnknownID.Detail(), Detail(err))
	s.Contains(Detail(err), "no packet is registered")
	s.NotEqual(ErrPacketTrailingBytes.Error(), ErrPacketTrailingBytes.Detail())

	// 未指定 detail 时与 msg 相同。
	s.Equal(ErrFrameTooLarge.Error(), Detail(WrapErrFrameTooLarge(1<<22, 1<<21)))
	s.Empty(Detail(io.EOF))
}

func (s *ErrSuite) TestErrorType() {
	s.Equal(InputError, GetErrorType(WrapErrPacketTrailingBytes("JoinGame", 3)))
	s.Equal(InputError, GetErrorType(WrapErrFrameTooLarge(1<<22, 1<<21)))
	s.Equal(SystemError, GetErrorType(WrapErrIoFailed("conn", io.ErrClosedPipe)))
	s.Equal(SystemError, GetErrorType(io.EOF))
	s.Equal("input_error", InputError.String())
}

func (s *ErrSuite) TestRetriable() {
	s.True(IsRetryableErr(WrapErrIoUnexpectEOF("frame", io.ErrUnexpectedEOF)))
	s.False(IsRetryableErr(WrapErrPacketUnknownID(1, "Play", "ServerBound")))
	s.False(IsRetryableErr(io.EOF))
}

func (s *ErrSuite) TestCanceledOrTimeout() {
	s.True(IsCanceledOrTimeout(errors.Wrap(context.Canceled, "read")))
	s.True(IsCanceledOrTimeout(context.DeadlineExceeded))
	s.False(IsCanceledOrTimeout(io.EOF))
}

func (s *ErrSuite) TestCombine() {
	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
		errThird  = errors.New("third")
	)

	err := Combine(errFirst, errSecond)
	s.True(errors.Is(err, errFirst))
	s.True(errors.Is(err, errSecond))
	s.False(errors.Is(err, errThird))

	err = Combine(errFirst, nil, errSecond)
	s.Equal("first: second", err.Error())
	s.Equal(errSecond, errors.Unwrap(err))

	s.Nil(Combine())
	s.Nil(Combine(nil, nil))
	s.Equal(errFirst, Combine(nil, errFirst))
}

func (s *ErrSuite) TestDeserializeFailedKeepsCause() {
	cause := errors.New("unexpected end of input")
	err := WrapErrPacketDeserializeFailed("JoinGame", 0x26, cause)

	s.ErrorIs(err, ErrPacketDeserializeFailed)
	s.ErrorIs(err, cause)
	s.Equal(ErrPacketDeserializeFailed.errCode, Code(err))
	s.Equal(InputError, GetErrorType(err))
	s.Contains(err.Error(), "packet=JoinGame")
	s.Contains(err.Error(), "id=0x26")

	s.Nil(WrapErrPacketDeserializeFailed("JoinGame", 0x26, nil))
	s.Nil(WrapErrPacketSerializeFailed("JoinGame", nil))
}

func (s *ErrSuite) TestWrap() {
	// Packet related
	s.ErrorIs(WrapErrPacketUnknownID(0x55, "Play", "ClientBound", "registry v578"), ErrPacketUnknownID)
	s.ErrorIs(WrapErrPacketTrailingBytes("SetSlot", 2, "after body"), ErrPacketTrailingBytes)
	s.ErrorIs(WrapErrPacketSerializeFailed("SetSlot", io.ErrShortWrite), ErrPacketSerializeFailed)
	s.ErrorIs(WrapErrPacketNotRegistered(struct{}{}), ErrPacketNotRegistered)
	s.ErrorIs(WrapErrPacketDirectionMismatch("Handshake", "ServerBound", "ClientBound"), ErrPacketDirectionMismatch)

	// Registry related
	s.ErrorIs(WrapErrRegistryDuplicateID(0x00, "Play", "ClientBound", "SpawnEntity", "Other"), ErrRegistryDuplicateID)
	s.ErrorIs(WrapErrRegistryDuplicateName("SpawnEntity"), ErrRegistryDuplicateName)
	s.ErrorIs(WrapErrRegistryInvalid("empty name", "builder"), ErrRegistryInvalid)

	// Frame related
	s.ErrorIs(WrapErrFrameTooLarge(3<<20, 2097151, "read"), ErrFrameTooLarge)
	s.ErrorIs(WrapErrFrameMalformed("bad length prefix"), ErrFrameMalformed)
	s.ErrorIs(WrapErrFrameCompression("zlib", io.ErrShortWrite), ErrFrameCompression)
	s.ErrorIs(WrapErrFrameDecompression("zlib", io.ErrUnexpectedEOF), ErrFrameDecompression)
	s.ErrorIs(WrapErrFrameEncryption(io.ErrShortBuffer), ErrFrameEncryption)
	s.Nil(WrapErrFrameCompression("zlib", nil))

	// IO related
	s.ErrorIs(WrapErrIoFailed("conn", io.ErrClosedPipe), ErrIoFailed)
	s.ErrorIs(WrapErrIoFailed("conn", io.ErrClosedPipe), io.ErrClosedPipe)
	s.ErrorIs(WrapErrIoUnexpectEOF("frame", io.ErrUnexpectedEOF), ErrIoUnexpectEOF)

	// Parameter related
	s.ErrorIs(WrapErrParameterInvalid(8, 9, "threshold"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterInvalidMsg("bad format %s", "xml"), ErrParameterInvalid)
	s.ErrorIs(WrapErrParameterMissing("format"), ErrParameterMissing)
	s.ErrorIs(WrapErrOperationNotSupported("encrypt"), ErrOperationNotSupported)
}

func (s *ErrSuite) TestFieldMessage() {
	err := WrapErrFrameTooLarge(10, 5)
	s.Contains(err.Error(), "10 out of range 0 <= size <= 5")

	err = WrapErrParameterInvalid("json", "xml")
	s.Contains(err.Error(), "expected=json")
	s.Contains(err.Error(), "actual=xml")
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
