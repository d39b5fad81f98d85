package framer

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/mcproto-go/internal/pool/bytebuffer"
	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// Framer 抽象了基于长度前缀的打包/解包能力。
//
// 约定：
//   - 一帧数据的格式为：VarInt 长度 + 帧内容，帧内容的解释（压缩、报文编号）交给上层。
//   - 加密作用在整个字节流上，因此 Framer 不能预读超出当前帧的字节。
type Framer interface {
	// WriteFrame 将 payload 打包为一帧并一次性写入 w。
	WriteFrame(w io.Writer, payload []byte) error

	// ReadFrame 从 r 中读取一帧，返回的切片归调用方所有。
	ReadFrame(r io.Reader) ([]byte, error)
}

// LengthPrefixedFramer 使用 VarInt 长度前缀作为帧边界。
type LengthPrefixedFramer struct {
	// MaxFrameSize 为允许的最大帧大小，单位字节。
	// 为 0 时使用默认值 DefaultMaxFrameSize。
	MaxFrameSize int
}

const (
	// DefaultMaxFrameSize 为 3 字节 VarInt 能表示的最大值。
	DefaultMaxFrameSize = 1<<21 - 1

	maxPrefixBytes = 3
)

var _ Framer = (*LengthPrefixedFramer)(nil)

// NewLengthPrefixedFramer 创建一个长度前缀帧编码器。
// maxFrameSize 不在 (0, DefaultMaxFrameSize] 内时使用默认值。
func NewLengthPrefixedFramer(maxFrameSize int) *LengthPrefixedFramer {
	if maxFrameSize <= 0 || maxFrameSize > DefaultMaxFrameSize {
		maxFrameSize = DefaultMaxFrameSize
	}
	return &LengthPrefixedFramer{
		MaxFrameSize: maxFrameSize,
	}
}

// WriteFrame 将 payload 编码为长度前缀帧并写入。
func (f *LengthPrefixedFramer) WriteFrame(w io.Writer, payload []byte) error {
	if w == nil {
		return merr.WrapErrParameterMissing("writer")
	}
	if len(payload) > f.effectiveMaxSize() {
		return merr.WrapErrFrameTooLarge(len(payload), f.effectiveMaxSize())
	}

	// 前缀与内容合并为一次写入，避免在加密流上产生额外的小写入。
	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)

	buf.B = wire.AppendVarNum(buf.B[:0], uint64(len(payload)))
	buf.B = append(buf.B, payload...)
	if _, err := w.Write(buf.B); err != nil {
		return merr.WrapErrIoFailed("frame", err)
	}
	return nil
}

// ReadFrame 从流中读取一帧数据。
//
// 在帧边界上遇到流结束时原样返回 io.EOF，便于调用方识别对端正常关闭。
func (f *LengthPrefixedFramer) ReadFrame(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, merr.WrapErrParameterMissing("reader")
	}

	var prefix [maxPrefixBytes]byte
	n := 0
	for {
		if n == maxPrefixBytes {
			return nil, merr.WrapErrFrameMalformed("length prefix longer than 3 bytes")
		}
		if _, err := io.ReadFull(r, prefix[n:n+1]); err != nil {
			if n == 0 && errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, merr.WrapErrIoUnexpectEOF("frame length", err)
		}
		n++
		if prefix[n-1]&0x80 == 0 {
			break
		}
	}

	d, err := wire.ReadVarNum(prefix[:n], maxPrefixBytes)
	if err != nil {
		return nil, merr.WrapErrFrameMalformed(err.Error())
	}
	length := int(d.Value)
	if length > f.effectiveMaxSize() {
		return nil, merr.WrapErrFrameTooLarge(length, f.effectiveMaxSize())
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, merr.WrapErrIoUnexpectEOF("frame body", err)
	}
	return body, nil
}

func (f *LengthPrefixedFramer) effectiveMaxSize() int {
	if f == nil || f.MaxFrameSize <= 0 {
		return DefaultMaxFrameSize
	}
	return f.MaxFrameSize
}
