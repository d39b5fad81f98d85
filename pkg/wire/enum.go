package wire

import (
	"fmt"
	"slices"
)

// Integer 为可以作为枚举底层表示的整数类型。
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// EnumEntry 为枚举表中的一项。
type EnumEntry[T Integer] struct {
	Value T
	Name  string
}

// Entry 构造一个枚举项。
func Entry[T Integer](value T, name string) EnumEntry[T] {
	return EnumEntry[T]{Value: value, Name: name}
}

// EnumTable 维护封闭取值集合中数值与名字的双向映射。
// 未知数值解码时一律报错，不会落到默认值上。
type EnumTable[T Integer] struct {
	typeName string
	names    map[T]string
	values   map[string]T
	order    []T
}

// NewEnumTable 构造枚举表，重复的数值或名字会导致 panic，只应在包初始化时调用。
func NewEnumTable[T Integer](typeName string, entries ...EnumEntry[T]) *EnumTable[T] {
	t := &EnumTable[T]{
		typeName: typeName,
		names:    make(map[T]string, len(entries)),
		values:   make(map[string]T, len(entries)),
		order:    make([]T, 0, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.names[e.Value]; dup {
			panic(fmt.Sprintf("wire: duplicate value %d in enum %s", int64(e.Value), typeName))
		}
		if _, dup := t.values[e.Name]; dup {
			panic(fmt.Sprintf("wire: duplicate name %s in enum %s", e.Name, typeName))
		}
		t.names[e.Value] = e.Name
		t.values[e.Name] = e.Value
		t.order = append(t.order, e.Value)
	}
	return t
}

func (t *EnumTable[T]) TypeName() string { return t.typeName }

// Name 返回取值的名字，未知取值返回空字符串。
func (t *EnumTable[T]) Name(v T) string { return t.names[v] }

func (t *EnumTable[T]) Valid(v T) bool {
	_, ok := t.names[v]
	return ok
}

// Parse 按名字查找取值。
func (t *EnumTable[T]) Parse(name string) (T, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Values 按声明顺序返回全部取值。
func (t *EnumTable[T]) Values() []T { return slices.Clone(t.order) }

// Format 返回形如 "Difficulty(0x02)" 的可读形式。
func (t *EnumTable[T]) Format(v T) string {
	name, ok := t.names[v]
	if !ok {
		name = "Unknown" + t.typeName
	}
	return fmt.Sprintf("%s(0x%02x)", name, int64(v))
}

// Check 校验解码得到的数值，未知数值返回 ErrCannotUnderstandValue。
func (t *EnumTable[T]) Check(v T) error {
	if t.Valid(v) {
		return nil
	}
	return NewCannotUnderstandValueError(int64(v), "invalid %s %d", t.typeName, int64(v))
}

func enumCodec[T Integer, W any](t *EnumTable[T], inner Codec[W], to func(T) W, from func(W) T) Codec[T] {
	return NewCodec[T](t.typeName,
		func(s Serializer, v T) error {
			return inner.Serialize(s, to(v))
		},
		func(data []byte) (Deserialized[T], error) {
			d, err := inner.Deserialize(data)
			if err != nil {
				return Deserialized[T]{}, err
			}
			v := from(d.Value)
			if err := t.Check(v); err != nil {
				return Deserialized[T]{}, err
			}
			return Ok(v, d.Data)
		},
	)
}

// ByteEnum 以单个无符号字节编码枚举。
func ByteEnum[T ~uint8](t *EnumTable[T]) Codec[T] {
	return enumCodec(t, UnsignedByteCodec, func(v T) uint8 { return uint8(v) }, func(b uint8) T { return T(b) })
}

// VarIntEnum 以 VarInt 编码枚举。
func VarIntEnum[T ~int32](t *EnumTable[T]) Codec[T] {
	return enumCodec(t, VarIntCodec, func(v T) VarInt { return VarInt(v) }, func(b VarInt) T { return T(b) })
}

// IntEnum 以 4 字节有符号整数编码枚举。
func IntEnum[T ~int32](t *EnumTable[T]) Codec[T] {
	return enumCodec(t, IntCodec, func(v T) int32 { return int32(v) }, func(b int32) T { return T(b) })
}
