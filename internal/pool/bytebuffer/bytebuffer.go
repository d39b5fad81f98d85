// Package bytebuffer 提供全局复用的字节缓冲区，用于降低编码与分帧时频繁分配带来的 GC 压力。
package bytebuffer

import "github.com/valyala/bytebufferpool"

// ByteBuffer 为可复用的字节缓冲区，直接操作 B 字段即可读写底层切片。
type ByteBuffer = bytebufferpool.ByteBuffer

var builtinPool bytebufferpool.Pool

// Get 从全局池中获取一个空的 ByteBuffer。
func Get() *ByteBuffer { return builtinPool.Get() }

// Put 将 ByteBuffer 归还到全局池中，调用后不得再访问该缓冲区。
func Put(b *ByteBuffer) {
	if b != nil {
		builtinPool.Put(b)
	}
}

// Clone 复制缓冲区当前内容，返回的切片不与池中内存共享。
func Clone(b *ByteBuffer) []byte {
	if b == nil || len(b.B) == 0 {
		return []byte{}
	}
	out := make([]byte, len(b.B))
	copy(out, b.B)
	return out
}
