package compressor

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
)

type CompressorSuite struct {
	suite.Suite
}

func (s *CompressorSuite) compressors() []Compressor {
	zl, err := NewZlibCompressor(0)
	s.Require().NoError(err)
	zs, err := NewZstdCompressorWithConcurrency(1)
	s.Require().NoError(err)
	s.T().Cleanup(zs.Close)
	return []Compressor{NopCompressor{}, zl, zs}
}

func (s *CompressorSuite) TestRoundTrip() {
	payload := bytes.Repeat([]byte("minecraft:stone "), 256)
	for _, c := range s.compressors() {
		packed, err := c.Compress(nil, payload)
		s.Require().NoError(err, c.Algorithm())
		if c.Algorithm() != AlgorithmNone {
			s.Less(len(packed), len(payload), c.Algorithm())
		}

		plain, err := c.Decompress(nil, packed)
		s.Require().NoError(err, c.Algorithm())
		s.Equal(payload, plain, c.Algorithm())
	}
}

func (s *CompressorSuite) TestReuseBuffers() {
	zl, err := NewZlibCompressor(9)
	s.Require().NoError(err)

	scratch := make([]byte, 0, 1024)
	for i := 0; i < 3; i++ {
		payload := bytes.Repeat([]byte{byte(i)}, 100*(i+1))
		packed, err := zl.Compress(scratch, payload)
		s.Require().NoError(err)
		plain, err := zl.Decompress(nil, packed)
		s.Require().NoError(err)
		s.Equal(payload, plain)
	}
}

func (s *CompressorSuite) TestCorruptInput() {
	zl, err := NewZlibCompressor(0)
	s.Require().NoError(err)
	_, err = zl.Decompress(nil, []byte{0x01, 0x02, 0x03})
	s.Error(err)

	_, err = NewZlibCompressor(42)
	s.Error(err)
}

func (s *CompressorSuite) TestZstdClosed() {
	zs, err := NewZstdCompressor()
	s.Require().NoError(err)
	zs.Close()
	_, err = zs.Compress(nil, []byte{1})
	s.Error(err)
	_, err = zs.Decompress(nil, []byte{1})
	s.Error(err)
}

func (s *CompressorSuite) TestNew() {
	for name, want := range map[string]string{"": AlgorithmNone, "none": AlgorithmNone, "zlib": AlgorithmZlib, "zstd": AlgorithmZstd} {
		c, err := New(name, 0)
		s.Require().NoError(err)
		s.Equal(want, c.Algorithm())
	}

	_, err := New("lz4", 0)
	s.True(errors.Is(err, merr.ErrParameterInvalid))
}

func TestCompressor(t *testing.T) {
	suite.Run(t, new(CompressorSuite))
}
