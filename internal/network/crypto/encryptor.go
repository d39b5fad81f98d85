package crypto

import (
	"io"

	"github.com/lk2023060901/mcproto-go/internal/pool/bytebuffer"
)

// Encryptor 抽象了连接级的对称流加密。
//
// 加密作用在整个字节流上而不是单个报文：Encrypt 与 Decrypt 各自维护独立的流状态，
// 因此同一实例的 Encrypt 只能由写端顺序调用，Decrypt 只能由读端顺序调用。
// dst 与 src 可以完全重叠（原地加解密），但不能部分重叠。
type Encryptor interface {
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// NopEncryptor 是一个空实现：不做加密，直接透传数据。
//
// 适用于：
//   - 登录阶段完成加密协商之前的明文链路
//   - 本地调试，不希望引入加解密开销
type NopEncryptor struct{}

func (NopEncryptor) Encrypt(dst, src []byte) { copy(dst, src) }

func (NopEncryptor) Decrypt(dst, src []byte) { copy(dst, src) }

// 编译期断言：确保 NopEncryptor 实现了 Encryptor 接口。
var _ Encryptor = NopEncryptor{}

type decryptReader struct {
	r   io.Reader
	enc Encryptor
}

// NewReader 返回一个对读取内容原地解密的 Reader，不做任何预读。
func NewReader(r io.Reader, enc Encryptor) io.Reader {
	return &decryptReader{r: r, enc: enc}
}

func (d *decryptReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if n > 0 {
		d.enc.Decrypt(p[:n], p[:n])
	}
	return n, err
}

type encryptWriter struct {
	w   io.Writer
	enc Encryptor
}

// NewWriter 返回一个先加密再写出的 Writer，调用方传入的切片不会被修改。
func NewWriter(w io.Writer, enc Encryptor) io.Writer {
	return &encryptWriter{w: w, enc: enc}
}

func (e *encryptWriter) Write(p []byte) (int, error) {
	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)

	buf.B = append(buf.B[:0], p...)
	e.enc.Encrypt(buf.B, buf.B)
	// 流状态已经前进，部分写入后无法重试，只能把错误交给调用方关闭连接。
	return e.w.Write(buf.B)
}
