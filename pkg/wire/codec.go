package wire

import (
	"github.com/lk2023060901/mcproto-go/internal/pool/bytebuffer"
)

// Codec 描述一种类型在协议中的编码与解码方式。
//
// Name 为该类型在协议描述中使用的名字，例如 "VarInt"、"Optional<Slot>"。
// 所有实现都必须是无状态的，可被多个 goroutine 并发使用。
type Codec[T any] interface {
	Name() string
	Serialize(to Serializer, v T) error
	Deserialize(data []byte) (Deserialized[T], error)
}

// EncodeFunc 与 DecodeFunc 为 NewCodec 使用的编码/解码函数签名。
type (
	EncodeFunc[T any] func(to Serializer, v T) error
	DecodeFunc[T any] func(data []byte) (Deserialized[T], error)
)

type funcCodec[T any] struct {
	name string
	enc  EncodeFunc[T]
	dec  DecodeFunc[T]
}

// NewCodec 由一对编码/解码函数构造 Codec。
func NewCodec[T any](name string, enc EncodeFunc[T], dec DecodeFunc[T]) Codec[T] {
	return funcCodec[T]{name: name, enc: enc, dec: dec}
}

func (c funcCodec[T]) Name() string { return c.name }

func (c funcCodec[T]) Serialize(to Serializer, v T) error { return c.enc(to, v) }

func (c funcCodec[T]) Deserialize(data []byte) (Deserialized[T], error) { return c.dec(data) }

// Marshal 使用池化缓冲区编码 v，返回的切片归调用方所有。
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	buf := bytebuffer.Get()
	defer bytebuffer.Put(buf)

	if err := c.Serialize(bufferSerializer{buf: buf}, v); err != nil {
		return nil, err
	}
	return bytebuffer.Clone(buf), nil
}

// Unmarshal 解码 data 开头的一个值，并返回未消费的剩余字节。
func Unmarshal[T any](c Codec[T], data []byte) (T, []byte, error) {
	d, err := c.Deserialize(data)
	if err != nil {
		var zero T
		return zero, data, err
	}
	return d.Value, d.Data, nil
}
