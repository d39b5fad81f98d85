package wire

import (
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// StringCodec 编码为 VarInt 字节长度前缀加 UTF-8 文本。
var StringCodec = NewCodec[string]("String", serializeString, deserializeString)

// RemainingBytesCodec 无条件消费剩余的全部输入，解码后剩余字节总是为空。
var RemainingBytesCodec = NewCodec[[]byte]("RemainingBytes",
	func(to Serializer, v []byte) error {
		return to.SerializeBytes(v)
	},
	func(data []byte) (Deserialized[[]byte], error) {
		out := make([]byte, len(data))
		copy(out, data)
		return Ok(out, data[len(data):])
	},
)

func serializeString(to Serializer, v string) error {
	if len(v) > math.MaxInt32 {
		return NewCountOverflowError("VarInt", len(v))
	}
	if err := serializeVarInt(to, VarInt(len(v))); err != nil {
		return err
	}
	return to.SerializeBytes([]byte(v))
}

func deserializeString(data []byte) (Deserialized[string], error) {
	n, err := deserializeVarInt(data)
	if err != nil {
		return Deserialized[string]{}, err
	}
	if n.Value < 0 {
		return Deserialized[string]{}, NewNegativeLengthError(int64(n.Value))
	}
	raw, err := Take(n.Data, int(n.Value))
	if err != nil {
		return Deserialized[string]{}, err
	}
	if !utf8.Valid(raw.Value) {
		return Deserialized[string]{}, NewBadStringEncodingError(raw.Value,
			errors.Newf("invalid utf-8 sequence at byte %d", invalidUTF8Offset(raw.Value)))
	}
	return Ok(string(raw.Value), raw.Data)
}

func invalidUTF8Offset(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(p)
}

// Optional 在值前加一个布尔存在标记，nil 表示不存在。
func Optional[T any](c Codec[T]) Codec[*T] {
	return NewCodec[*T]("Optional<"+c.Name()+">",
		func(to Serializer, v *T) error {
			if v == nil {
				return serializeBool(to, false)
			}
			if err := serializeBool(to, true); err != nil {
				return err
			}
			return c.Serialize(to, *v)
		},
		func(data []byte) (Deserialized[*T], error) {
			present, err := deserializeBool(data)
			if err != nil {
				return Deserialized[*T]{}, err
			}
			if !present.Value {
				return Ok[*T](nil, present.Data)
			}
			inner, err := c.Deserialize(present.Data)
			if err != nil {
				return Deserialized[*T]{}, err
			}
			v := inner.Value
			return Ok(&v, inner.Data)
		},
	)
}

// Counter 描述计数数组前缀的数值类型以及它与元素个数之间的转换。
type Counter struct {
	Name  string
	Max   int
	Write func(to Serializer, n int) error
	Read  func(data []byte) (Deserialized[int64], error)
}

var (
	VarIntCounter = Counter{
		Name:  "VarInt",
		Max:   math.MaxInt32,
		Write: func(to Serializer, n int) error { return serializeVarInt(to, VarInt(n)) },
		Read: func(data []byte) (Deserialized[int64], error) {
			d, err := deserializeVarInt(data)
			return Deserialized[int64]{Value: int64(d.Value), Data: d.Data}, err
		},
	}
	ByteCounter = Counter{
		Name:  "Byte",
		Max:   math.MaxInt8,
		Write: func(to Serializer, n int) error { return serializeInt8(to, int8(n)) },
		Read: func(data []byte) (Deserialized[int64], error) {
			d, err := deserializeInt8(data)
			return Deserialized[int64]{Value: int64(d.Value), Data: d.Data}, err
		},
	}
	ShortCounter = Counter{
		Name:  "Short",
		Max:   math.MaxInt16,
		Write: func(to Serializer, n int) error { return serializeInt16(to, int16(n)) },
		Read: func(data []byte) (Deserialized[int64], error) {
			d, err := deserializeInt16(data)
			return Deserialized[int64]{Value: int64(d.Value), Data: d.Data}, err
		},
	}
	IntCounter = Counter{
		Name:  "Int",
		Max:   math.MaxInt32,
		Write: func(to Serializer, n int) error { return serializeInt32(to, int32(n)) },
		Read: func(data []byte) (Deserialized[int64], error) {
			d, err := deserializeInt32(data)
			return Deserialized[int64]{Value: int64(d.Value), Data: d.Data}, err
		},
	}
)

// CountedArray 先写元素个数前缀，再依次写每个元素。
//
// 解码时负数个数返回 ErrNegativeLength；预分配容量不超过剩余输入字节数，
// 避免按对端给出的个数直接分配内存。
func CountedArray[T any](counter Counter, elem Codec[T]) Codec[[]T] {
	return NewCodec[[]T](counter.Name+"CountedArray<"+elem.Name()+">",
		func(to Serializer, v []T) error {
			if len(v) > counter.Max {
				return NewCountOverflowError(counter.Name, len(v))
			}
			if err := counter.Write(to, len(v)); err != nil {
				return err
			}
			for i := range v {
				if err := elem.Serialize(to, v[i]); err != nil {
					return err
				}
			}
			return nil
		},
		func(data []byte) (Deserialized[[]T], error) {
			count, err := counter.Read(data)
			if err != nil {
				return Deserialized[[]T]{}, err
			}
			if count.Value < 0 {
				return Deserialized[[]T]{}, NewNegativeLengthError(count.Value)
			}
			rest := count.Data
			out := make([]T, 0, min(count.Value, int64(len(rest))))
			for i := int64(0); i < count.Value; i++ {
				item, err := elem.Deserialize(rest)
				if err != nil {
					return Deserialized[[]T]{}, err
				}
				out = append(out, item.Value)
				rest = item.Data
			}
			return Ok(out, rest)
		},
	)
}

func VarIntCountedArray[T any](elem Codec[T]) Codec[[]T] { return CountedArray(VarIntCounter, elem) }

func ByteCountedArray[T any](elem Codec[T]) Codec[[]T] { return CountedArray(ByteCounter, elem) }

func ShortCountedArray[T any](elem Codec[T]) Codec[[]T] { return CountedArray(ShortCounter, elem) }

func IntCountedArray[T any](elem Codec[T]) Codec[[]T] { return CountedArray(IntCounter, elem) }
