package codec

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/mcproto-go/internal/network"
	"github.com/lk2023060901/mcproto-go/internal/network/compressor"
	"github.com/lk2023060901/mcproto-go/internal/network/crypto"
	"github.com/lk2023060901/mcproto-go/internal/network/framer"
	"github.com/lk2023060901/mcproto-go/pkg/chat"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/protocol/v578"
	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

type CodecSuite struct {
	suite.Suite
	secret []byte
}

func (s *CodecSuite) SetupTest() {
	s.secret = []byte("fedcba9876543210")
}

func (s *CodecSuite) newCodec(opts Options) Codec {
	opts.Registry = v578.Registry()
	c, err := New(opts)
	s.Require().NoError(err)
	return c
}

func longChat() *v578.PlayServerChatMessage {
	return &v578.PlayServerChatMessage{
		Message:  chat.Text(strings.Repeat("compress me ", 50)),
		Position: v578.ChatSystemMessage,
	}
}

func (s *CodecSuite) TestPlainLayout() {
	c := s.newCodec(Options{})
	var buf bytes.Buffer
	s.Require().NoError(c.Encode(&buf, &v578.StatusPing{Payload: 1}))
	s.Equal([]byte{0x09, 0x01, 0, 0, 0, 0, 0, 0, 0, 1}, buf.Bytes())

	pkt, err := c.Decode(&buf, protocol.Status, protocol.ServerBound)
	s.Require().NoError(err)
	s.Equal(&v578.StatusPing{Payload: 1}, pkt)
}

func (s *CodecSuite) TestHandshakeThenLogin() {
	c := s.newCodec(Options{})
	var buf bytes.Buffer
	hs := &v578.Handshake{Version: v578.ProtocolVersion, ServerAddress: "localhost", ServerPort: 25565, NextState: v578.NextStateLogin}
	s.Require().NoError(c.Encode(&buf, hs))
	s.Require().NoError(c.Encode(&buf, &v578.LoginStart{Name: "Notch"}))

	got, err := c.Decode(&buf, protocol.Handshaking, protocol.ServerBound)
	s.Require().NoError(err)
	s.Equal(hs, got)
	got, err = c.Decode(&buf, protocol.Login, protocol.ServerBound)
	s.Require().NoError(err)
	s.Equal(&v578.LoginStart{Name: "Notch"}, got)
}

func (s *CodecSuite) TestCompressionThreshold() {
	c := s.newCodec(Options{EnableCompression: true, CompressionThreshold: 64})
	var buf bytes.Buffer

	small := &v578.PlayServerKeepAlive{ID: 7}
	s.Require().NoError(c.Encode(&buf, small))
	frame, err := framer.NewLengthPrefixedFramer(0).ReadFrame(bytes.NewReader(buf.Bytes()))
	s.Require().NoError(err)
	s.Equal(byte(0x00), frame[0], "below threshold keeps data uncompressed")
	s.Equal(byte(0x21), frame[1])

	pkt, err := c.Decode(&buf, protocol.Play, protocol.ClientBound)
	s.Require().NoError(err)
	s.Equal(small, pkt)

	big := longChat()
	body, err := v578.Registry().Marshal(big)
	s.Require().NoError(err)
	s.Require().NoError(c.Encode(&buf, big))

	frame, err = framer.NewLengthPrefixedFramer(0).ReadFrame(bytes.NewReader(buf.Bytes()))
	s.Require().NoError(err)
	dataLength, err := wire.VarIntCodec.Deserialize(frame)
	s.Require().NoError(err)
	s.Equal(wire.VarInt(len(body)+1), dataLength.Value)
	s.Less(len(frame), len(body))

	pkt, err = c.Decode(&buf, protocol.Play, protocol.ClientBound)
	s.Require().NoError(err)
	s.Equal(big, pkt)
}

func (s *CodecSuite) TestEncryptedCompressedStream() {
	clientEnc, err := crypto.NewCFB8Encryptor(s.secret)
	s.Require().NoError(err)
	serverEnc, err := crypto.NewCFB8Encryptor(s.secret)
	s.Require().NoError(err)

	client := s.newCodec(Options{})
	server := s.newCodec(Options{})

	// 先以明文完成压缩协商，再同时切换加密。
	var pipe bytes.Buffer
	s.Require().NoError(server.Encode(&pipe, &v578.LoginSetCompression{Threshold: 32}))
	got, err := client.Decode(&pipe, protocol.Login, protocol.ClientBound)
	s.Require().NoError(err)
	client.SetCompressionThreshold(int(got.(*v578.LoginSetCompression).Threshold))
	server.SetCompressionThreshold(32)

	client.EnableEncryption(clientEnc)
	server.EnableEncryption(serverEnc)

	sent := []protocol.Packet{
		&v578.PlayClientChatMessage{Message: strings.Repeat("hi ", 40)},
		&v578.PlayClientKeepAlive{ID: 99},
		&v578.PlayPlayerMovement{OnGround: true},
	}
	for _, p := range sent {
		s.Require().NoError(client.Encode(&pipe, p))
	}
	s.NotContains(pipe.String(), "hi hi")

	for _, want := range sent {
		got, err := server.Decode(&pipe, protocol.Play, protocol.ServerBound)
		s.Require().NoError(err)
		s.Equal(want, got)
	}

	_, err = server.Decode(&pipe, protocol.Play, protocol.ServerBound)
	s.True(errors.Is(err, io.EOF))
}

func (s *CodecSuite) TestZstdPrivateLink() {
	zs, err := compressor.NewZstdCompressorWithConcurrency(1)
	s.Require().NoError(err)
	defer zs.Close()

	c := s.newCodec(Options{Compressor: zs, EnableCompression: true, CompressionThreshold: 16})
	var buf bytes.Buffer
	s.Require().NoError(c.Encode(&buf, longChat()))
	got, err := c.Decode(&buf, protocol.Play, protocol.ClientBound)
	s.Require().NoError(err)
	s.Equal(longChat(), got)
}

func (s *CodecSuite) TestRawPassThrough() {
	c, err := New(Options{})
	s.Require().NoError(err)

	raw := protocol.RawPacket{ID: protocol.NewID(0x7f, protocol.Play, protocol.ServerBound), Data: []byte{1, 2, 3}}
	var buf bytes.Buffer
	s.Require().NoError(c.EncodeRaw(&buf, raw))
	got, err := c.DecodeRaw(&buf, protocol.Play, protocol.ServerBound)
	s.Require().NoError(err)
	s.Equal(raw, got)

	// 未注册的编号只在按注册表解码时报错。
	s.Require().NoError(c.EncodeRaw(&buf, raw))
	_, err = c.Decode(&buf, protocol.Play, protocol.ServerBound)
	s.True(errors.Is(err, merr.ErrParameterMissing))
}

func (s *CodecSuite) TestDecodeErrors() {
	c := s.newCodec(Options{})
	var buf bytes.Buffer
	s.Require().NoError(c.EncodeRaw(&buf, protocol.RawPacket{ID: protocol.NewID(0x7f, protocol.Play, protocol.ServerBound)}))

	_, err := c.Decode(&buf, protocol.Play, protocol.ServerBound)
	s.True(errors.Is(err, merr.ErrPacketUnknownID))
	s.True(errors.Is(err, network.ErrDecodeFailed))
	id, ok := protocol.UnknownIDOf(err)
	s.True(ok)
	s.Equal(int32(0x7f), id.ID)
	stage, ok := network.StageOf(err)
	s.True(ok)
	s.Equal(network.StageDecode, stage)

	_, err = c.Decode(bytes.NewReader(nil), protocol.Play, protocol.ServerBound)
	s.True(errors.Is(err, io.EOF))
	s.True(errors.Is(err, network.ErrRecvFailed))

	_, err = c.Decode(bytes.NewReader([]byte{0x03, 0x0f}), protocol.Play, protocol.ServerBound)
	s.True(errors.Is(err, merr.ErrIoUnexpectEOF))
}

func (s *CodecSuite) TestMalformedCompressedFrames() {
	c := s.newCodec(Options{EnableCompression: true, CompressionThreshold: 256})
	f := framer.NewLengthPrefixedFramer(0)
	zl, err := compressor.NewZlibCompressor(0)
	s.Require().NoError(err)

	packed, err := zl.Compress(nil, []byte{0x0f, 1, 2, 3, 4, 5, 6, 7, 8})
	s.Require().NoError(err)

	cases := []struct {
		name  string
		frame []byte
		want  error
	}{
		{"below threshold", append([]byte{0x09}, packed...), merr.ErrFrameMalformed},
		{"too large", append(wire.AppendVarNum(nil, DefaultMaxUncompressedSize+1), packed...), merr.ErrFrameTooLarge},
		{"length mismatch", append(wire.AppendVarNum(nil, 300), packed...), merr.ErrFrameMalformed},
		{"not zlib", append(wire.AppendVarNum(nil, 300), 0x01, 0x02), merr.ErrFrameDecompression},
		{"negative", []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, merr.ErrFrameMalformed},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		s.Require().NoError(f.WriteFrame(&buf, tc.frame))
		_, err := c.DecodeRaw(&buf, protocol.Play, protocol.ServerBound)
		s.True(errors.Is(err, tc.want), "%s: %v", tc.name, err)
		s.True(errors.Is(err, network.ErrDecodeFailed), tc.name)
	}
}

func (s *CodecSuite) TestEncodeErrors() {
	c := s.newCodec(Options{})
	err := c.Encode(io.Discard, &v578.PlayWorldBorder{})
	s.True(errors.Is(err, merr.ErrPacketSerializeFailed))
	s.True(errors.Is(err, network.ErrEncodeFailed))

	err = c.Encode(failingWriter{}, &v578.PlayClientKeepAlive{ID: 1})
	s.True(errors.Is(err, merr.ErrIoFailed))
	s.True(errors.Is(err, network.ErrSendFailed))

	s.True(errors.Is(c.EncodeRaw(nil, protocol.RawPacket{}), merr.ErrParameterMissing))
}

func (s *CodecSuite) TestThresholdSettings() {
	c := s.newCodec(Options{})
	s.Equal(DisabledThreshold, c.CompressionThreshold())
	c.SetCompressionThreshold(256)
	s.Equal(256, c.CompressionThreshold())
	c.SetCompressionThreshold(-5)
	s.Equal(DisabledThreshold, c.CompressionThreshold())

	_, err := New(Options{EnableCompression: true, CompressionThreshold: -1})
	s.True(errors.Is(err, merr.ErrParameterInvalid))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestCodec(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}
