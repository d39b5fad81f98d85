package compressor

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor 基于 github.com/klauspost/compress/zlib 的压缩实现，即协议本身使用的压缩格式。
//
// 写端复用 zlib.Writer，读端每次创建 Reader，二者都可以被多个 goroutine 并发调用。
type ZlibCompressor struct {
	level   int
	writers sync.Pool
}

// 编译期断言：确保 ZlibCompressor 实现了 Compressor 接口。
var _ Compressor = (*ZlibCompressor)(nil)

// NewZlibCompressor 创建一个 ZlibCompressor，level 为 0 时使用 zlib.DefaultCompression。
func NewZlibCompressor(level int) (*ZlibCompressor, error) {
	if level == 0 {
		level = zlib.DefaultCompression
	}
	// 提前创建一次以校验压缩级别。
	w, err := zlib.NewWriterLevel(io.Discard, level)
	if err != nil {
		return nil, err
	}
	c := &ZlibCompressor{level: level}
	c.writers.Put(w)
	return c, nil
}

func (c *ZlibCompressor) Algorithm() string { return AlgorithmZlib }

// Compress 实现 Compressor 接口。
func (c *ZlibCompressor) Compress(dst, src []byte) ([]byte, error) {
	out := bytes.NewBuffer(dst[:0])
	w, ok := c.writers.Get().(*zlib.Writer)
	if !ok {
		var err error
		if w, err = zlib.NewWriterLevel(out, c.level); err != nil {
			return nil, err
		}
	} else {
		w.Reset(out)
	}
	defer c.writers.Put(w)

	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decompress 实现 Compressor 接口。
func (c *ZlibCompressor) Decompress(dst, src []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out := bytes.NewBuffer(dst[:0])
	if _, err := out.ReadFrom(r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
