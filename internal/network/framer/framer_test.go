package framer

import (
	"bytes"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
)

type FramerSuite struct {
	suite.Suite
	framer *LengthPrefixedFramer
}

func (s *FramerSuite) SetupTest() {
	s.framer = NewLengthPrefixedFramer(0)
}

func (s *FramerSuite) TestRoundTrip() {
	for _, size := range []int{0, 1, 127, 128, 300, 70000} {
		payload := bytes.Repeat([]byte{0x5a}, size)
		var buf bytes.Buffer
		s.Require().NoError(s.framer.WriteFrame(&buf, payload))

		got, err := s.framer.ReadFrame(&buf)
		s.Require().NoError(err, "size=%d", size)
		s.Equal(payload, got)
		s.Zero(buf.Len())
	}
}

func (s *FramerSuite) TestPrefixLayout() {
	var buf bytes.Buffer
	s.Require().NoError(s.framer.WriteFrame(&buf, make([]byte, 300)))
	s.Equal([]byte{0xac, 0x02}, buf.Bytes()[:2])
	s.Equal(302, buf.Len())
}

func (s *FramerSuite) TestConsecutiveFrames() {
	var buf bytes.Buffer
	s.Require().NoError(s.framer.WriteFrame(&buf, []byte{1, 2, 3}))
	s.Require().NoError(s.framer.WriteFrame(&buf, []byte{4}))

	first, err := s.framer.ReadFrame(&buf)
	s.Require().NoError(err)
	second, err := s.framer.ReadFrame(&buf)
	s.Require().NoError(err)
	s.Equal([]byte{1, 2, 3}, first)
	s.Equal([]byte{4}, second)

	_, err = s.framer.ReadFrame(&buf)
	s.Equal(io.EOF, err)
}

func (s *FramerSuite) TestTruncated() {
	_, err := s.framer.ReadFrame(bytes.NewReader([]byte{0x05, 0x01, 0x02}))
	s.True(errors.Is(err, merr.ErrIoUnexpectEOF))

	_, err = s.framer.ReadFrame(bytes.NewReader([]byte{0x80}))
	s.True(errors.Is(err, merr.ErrIoUnexpectEOF))
}

func (s *FramerSuite) TestLimits() {
	small := NewLengthPrefixedFramer(16)
	err := small.WriteFrame(io.Discard, make([]byte, 17))
	s.True(errors.Is(err, merr.ErrFrameTooLarge))

	_, err = small.ReadFrame(bytes.NewReader([]byte{0x11}))
	s.True(errors.Is(err, merr.ErrFrameTooLarge))

	// 超过 3 字节的长度前缀。
	_, err = s.framer.ReadFrame(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x01}))
	s.True(errors.Is(err, merr.ErrFrameMalformed))

	s.Equal(DefaultMaxFrameSize, NewLengthPrefixedFramer(1<<30).MaxFrameSize)
}

func (s *FramerSuite) TestNilArguments() {
	s.True(errors.Is(s.framer.WriteFrame(nil, nil), merr.ErrParameterMissing))
	_, err := s.framer.ReadFrame(nil)
	s.True(errors.Is(err, merr.ErrParameterMissing))
}

func TestFramer(t *testing.T) {
	suite.Run(t, new(FramerSuite))
}
