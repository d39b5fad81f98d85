package codec

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/lk2023060901/mcproto-go/internal/network"
	"github.com/lk2023060901/mcproto-go/internal/network/compressor"
	"github.com/lk2023060901/mcproto-go/internal/network/crypto"
	"github.com/lk2023060901/mcproto-go/internal/network/framer"
	"github.com/lk2023060901/mcproto-go/internal/pool/bytebuffer"
	"github.com/lk2023060901/mcproto-go/pkg/log"
	"github.com/lk2023060901/mcproto-go/pkg/metrics"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// Codec 抽象了“从报文到网络帧，以及从网络帧回到报文”的完整编解码流程。
//
// Pipeline（写出 Encode）：
//
//	packet --> registry --> VarInt id + body --> [threshold compress?] --> frame --> [encrypt?] --> w
//
// Pipeline（读入 Decode）：
//
//	r --> [decrypt?] --> frame --> [decompress?] --> VarInt id + body --> registry --> packet
//
// 同一个 Codec 对应一条连接，写端与读端可以分别在不同 goroutine 中使用。
type Codec interface {
	// Encode 将报文编码并写入到底层流。
	Encode(w io.Writer, pkt protocol.Packet) error

	// EncodeRaw 将已拆分出编号的报文写入到底层流，不经过注册表。
	EncodeRaw(w io.Writer, raw protocol.RawPacket) error

	// Decode 从底层流中读取一帧并按 state/direction 解码为具体报文。
	Decode(r io.Reader, state protocol.State, direction protocol.Direction) (protocol.Packet, error)

	// DecodeRaw 从底层流中读取一帧，返回完成解密/解压后的 RawPacket，不解析报文体。
	DecodeRaw(r io.Reader, state protocol.State, direction protocol.Direction) (protocol.RawPacket, error)

	// SetCompressionThreshold 切换压缩阈值，负数表示关闭压缩格式。
	SetCompressionThreshold(threshold int)
	CompressionThreshold() int

	// EnableEncryption 在之后的读写上启用 enc，通常在登录阶段加密协商完成后调用一次。
	EnableEncryption(enc crypto.Encryptor)
}

const (
	// DisabledThreshold 表示未启用压缩格式，帧内容直接是 VarInt 编号 + 报文体。
	DisabledThreshold = -1

	// DefaultMaxUncompressedSize 为解压后报文允许的最大长度。
	DefaultMaxUncompressedSize = 8 * 1024 * 1024
)

// Options 用于构造 Codec 的依赖注入参数。
type Options struct {
	Registry   *protocol.Registry    // Encode/Decode 需要，仅使用 Raw 接口时允许为 nil
	Framer     framer.Framer         // 允许为 nil（内部会用默认的 LengthPrefixedFramer）
	Compressor compressor.Compressor // 允许为 nil（内部会用 zlib）
	Encryptor  crypto.Encryptor      // 允许为 nil，表示初始为明文

	EnableCompression    bool // 是否从一开始就使用压缩格式
	CompressionThreshold int  // 报文长度达到该值时压缩，EnableCompression 为 false 时忽略

	MaxUncompressedSize int // 为 0 时使用 DefaultMaxUncompressedSize
}

type encryptorHolder struct {
	crypto.Encryptor
}

type codec struct {
	registry   *protocol.Registry
	framer     framer.Framer
	compressor compressor.Compressor

	threshold   *atomic.Int64
	encryptor   *atomic.Pointer[encryptorHolder]
	maxDataSize int
}

var _ Codec = (*codec)(nil)

// New 创建一个基于给定依赖的 Codec。
func New(opts Options) (Codec, error) {
	c := &codec{
		registry:    opts.Registry,
		framer:      opts.Framer,
		compressor:  opts.Compressor,
		threshold:   atomic.NewInt64(DisabledThreshold),
		encryptor:   atomic.NewPointer[encryptorHolder](nil),
		maxDataSize: opts.MaxUncompressedSize,
	}

	if c.framer == nil {
		c.framer = framer.NewLengthPrefixedFramer(0)
	}
	if c.compressor == nil {
		zc, err := compressor.NewZlibCompressor(0)
		if err != nil {
			return nil, err
		}
		c.compressor = zc
	}
	if c.maxDataSize <= 0 {
		c.maxDataSize = DefaultMaxUncompressedSize
	}
	if opts.EnableCompression {
		if opts.CompressionThreshold < 0 {
			return nil, merr.WrapErrParameterInvalidMsg("compression threshold %d must not be negative", opts.CompressionThreshold)
		}
		c.threshold.Store(int64(opts.CompressionThreshold))
	}
	if opts.Encryptor != nil {
		c.EnableEncryption(opts.Encryptor)
	}
	return c, nil
}

func (c *codec) SetCompressionThreshold(threshold int) {
	if threshold < 0 {
		threshold = DisabledThreshold
	}
	c.threshold.Store(int64(threshold))
}

func (c *codec) CompressionThreshold() int { return int(c.threshold.Load()) }

func (c *codec) EnableEncryption(enc crypto.Encryptor) {
	if enc == nil {
		enc = crypto.NopEncryptor{}
	}
	c.encryptor.Store(&encryptorHolder{Encryptor: enc})
}

// Encode 实现 Codec.Encode。
func (c *codec) Encode(w io.Writer, pkt protocol.Packet) error {
	if c.registry == nil {
		return merr.WrapErrParameterMissing("registry")
	}
	raw, err := c.registry.MarshalRaw(pkt)
	if err != nil {
		return c.fail(network.StageEncode, metrics.OutboundLabel, err)
	}
	return c.EncodeRaw(w, raw)
}

// EncodeRaw 实现 Codec.EncodeRaw。
func (c *codec) EncodeRaw(w io.Writer, raw protocol.RawPacket) error {
	if w == nil {
		return merr.WrapErrParameterMissing("writer")
	}

	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)
	buf.B = wire.AppendVarNum(buf.B[:0], uint64(uint32(raw.ID.ID)))
	buf.B = append(buf.B, raw.Data...)

	body, err := c.compress(buf.B)
	if err != nil {
		return c.fail(network.StageEncode, metrics.OutboundLabel, err, raw.ID)
	}

	if holder := c.encryptor.Load(); holder != nil {
		w = crypto.NewWriter(w, holder.Encryptor)
	}
	if err := c.framer.WriteFrame(w, body); err != nil {
		return c.fail(network.StageSend, metrics.OutboundLabel, err, raw.ID)
	}

	metrics.NetworkPackets.WithLabelValues(metrics.OutboundLabel, raw.ID.State.String()).Inc()
	metrics.NetworkFrameBytes.WithLabelValues(metrics.OutboundLabel).Observe(float64(len(body)))
	return nil
}

// compress 按当前阈值生成帧内容，返回的切片可能与 payload 共享内存。
//
// 启用压缩格式后，帧内容为 VarInt 解压后长度 + 数据，长度为 0 表示数据未压缩。
func (c *codec) compress(payload []byte) ([]byte, error) {
	threshold := c.threshold.Load()
	if threshold < 0 {
		return payload, nil
	}
	if int64(len(payload)) < threshold {
		out := make([]byte, 0, len(payload)+1)
		out = append(out, 0x00)
		return append(out, payload...), nil
	}

	compressed, err := c.compressor.Compress(nil, payload)
	if err != nil {
		return nil, merr.WrapErrFrameCompression(c.compressor.Algorithm(), err)
	}
	out := wire.AppendVarNum(make([]byte, 0, wire.VarIntSize(int32(len(payload)))+len(compressed)), uint64(len(payload)))
	metrics.NetworkCompressed.WithLabelValues(metrics.OutboundLabel, c.compressor.Algorithm()).Inc()
	return append(out, compressed...), nil
}

// DecodeRaw 实现 Codec.DecodeRaw。
func (c *codec) DecodeRaw(r io.Reader, state protocol.State, direction protocol.Direction) (protocol.RawPacket, error) {
	if r == nil {
		return protocol.RawPacket{}, merr.WrapErrParameterMissing("reader")
	}
	if holder := c.encryptor.Load(); holder != nil {
		r = crypto.NewReader(r, holder.Encryptor)
	}

	frame, err := c.framer.ReadFrame(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return protocol.RawPacket{}, network.WrapStage(network.StageRecvRaw, err)
		}
		return protocol.RawPacket{}, c.fail(network.StageRecvRaw, metrics.InboundLabel, err)
	}

	payload, err := c.decompress(frame)
	if err != nil {
		return protocol.RawPacket{}, c.fail(network.StageDecode, metrics.InboundLabel, err)
	}
	raw, err := protocol.ParseRawPacket(payload, state, direction)
	if err != nil {
		return protocol.RawPacket{}, c.fail(network.StageDecode, metrics.InboundLabel, err)
	}

	metrics.NetworkPackets.WithLabelValues(metrics.InboundLabel, state.String()).Inc()
	metrics.NetworkFrameBytes.WithLabelValues(metrics.InboundLabel).Observe(float64(len(frame)))
	return raw, nil
}

func (c *codec) decompress(frame []byte) ([]byte, error) {
	threshold := c.threshold.Load()
	if threshold < 0 {
		return frame, nil
	}

	d, err := wire.VarIntCodec.Deserialize(frame)
	if err != nil {
		return nil, merr.WrapErrFrameMalformed("data length: " + err.Error())
	}
	dataLength := int64(d.Value)
	switch {
	case dataLength == 0:
		return d.Data, nil
	case dataLength < 0:
		return nil, merr.WrapErrFrameMalformed("negative data length")
	case dataLength < threshold:
		return nil, merr.WrapErrFrameMalformed("compressed payload below threshold")
	case dataLength > int64(c.maxDataSize):
		return nil, merr.WrapErrFrameTooLarge(int(dataLength), c.maxDataSize)
	}

	plain, err := c.compressor.Decompress(make([]byte, 0, dataLength), d.Data)
	if err != nil {
		return nil, merr.WrapErrFrameDecompression(c.compressor.Algorithm(), err)
	}
	if int64(len(plain)) != dataLength {
		return nil, merr.WrapErrFrameMalformed("decompressed length mismatch")
	}
	return plain, nil
}

// Decode 实现 Codec.Decode。
func (c *codec) Decode(r io.Reader, state protocol.State, direction protocol.Direction) (protocol.Packet, error) {
	if c.registry == nil {
		return nil, merr.WrapErrParameterMissing("registry")
	}
	raw, err := c.DecodeRaw(r, state, direction)
	if err != nil {
		return nil, err
	}
	pkt, err := c.registry.Decode(raw)
	if err != nil {
		return nil, c.fail(network.StageDecode, metrics.InboundLabel, err, raw.ID)
	}
	return pkt, nil
}

// fail 记录失败指标与限流日志，并为错误标记阶段。
func (c *codec) fail(stage network.Stage, direction string, err error, ids ...protocol.ID) error {
	metrics.NetworkErrors.WithLabelValues(string(stage)).Inc()

	fields := []zap.Field{
		log.FieldModule("network"),
		zap.String("stage", string(stage)),
		zap.String("io", direction),
		zap.Error(err),
	}
	if detail := merr.Detail(err); detail != "" {
		fields = append(fields, zap.String("detail", detail))
	}
	for _, id := range ids {
		fields = append(fields,
			log.FieldState(id.State.String()),
			log.FieldDirection(id.Direction.String()),
			log.FieldPacketID(id.ID))
	}
	log.RatedWarn(1, "transport pipeline failed", fields...)
	return network.WrapStage(stage, err)
}
