package wire

import (
	"io"

	"github.com/lk2023060901/mcproto-go/internal/pool/bytebuffer"
)

// Serializer 是编码输出的目标，可以是可增长的内存缓冲区，也可以是流。
type Serializer interface {
	SerializeBytes(p []byte) error
	SerializeByte(b byte) error
}

// BytesSerializer 将编码结果累积在内存中。
type BytesSerializer struct {
	data []byte
}

func NewBytesSerializer(capacity int) *BytesSerializer {
	return &BytesSerializer{data: make([]byte, 0, capacity)}
}

func (s *BytesSerializer) SerializeBytes(p []byte) error {
	s.data = append(s.data, p...)
	return nil
}

func (s *BytesSerializer) SerializeByte(b byte) error {
	s.data = append(s.data, b)
	return nil
}

// Bytes 返回目前为止写入的全部字节。
func (s *BytesSerializer) Bytes() []byte { return s.data }

func (s *BytesSerializer) Len() int { return len(s.data) }

func (s *BytesSerializer) Reset() { s.data = s.data[:0] }

// WriterSerializer 直接写入 io.Writer，底层写入失败会转换为 ErrSinkFailed。
type WriterSerializer struct {
	w       io.Writer
	written int64
	one     [1]byte
}

func NewWriterSerializer(w io.Writer) *WriterSerializer {
	return &WriterSerializer{w: w}
}

func (s *WriterSerializer) SerializeBytes(p []byte) error {
	n, err := s.w.Write(p)
	s.written += int64(n)
	if err != nil {
		return NewSinkFailedError(err)
	}
	if n != len(p) {
		return NewSinkFailedError(io.ErrShortWrite)
	}
	return nil
}

func (s *WriterSerializer) SerializeByte(b byte) error {
	s.one[0] = b
	return s.SerializeBytes(s.one[:])
}

// Written 返回已成功写出的字节数。
func (s *WriterSerializer) Written() int64 { return s.written }

// bufferSerializer 将池化的 ByteBuffer 适配为 Serializer。
type bufferSerializer struct {
	buf *bytebuffer.ByteBuffer
}

func (s bufferSerializer) SerializeBytes(p []byte) error {
	s.buf.B = append(s.buf.B, p...)
	return nil
}

func (s bufferSerializer) SerializeByte(b byte) error {
	s.buf.B = append(s.buf.B, b)
	return nil
}

var (
	_ Serializer = (*BytesSerializer)(nil)
	_ Serializer = (*WriterSerializer)(nil)
	_ Serializer = bufferSerializer{}
)
