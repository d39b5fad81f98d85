package protocol

import (
	"fmt"

	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// UnionCase 为带标签联合中的一个分支。
type UnionCase[T any] struct {
	Tag  int32
	Name string

	match       func(v T) bool
	serialize   func(to wire.Serializer, v T) error
	deserialize func(data []byte) (wire.Deserialized[T], error)
}

// Case 声明一个分支：标签值 tag 对应具体类型 V，V 必须实现联合接口 T。
func Case[T, V any](tag int32, codec wire.Codec[V]) UnionCase[T] {
	var zero V
	if _, ok := any(zero).(T); !ok {
		panic(fmt.Sprintf("protocol: union case %s does not implement %T", codec.Name(), (*T)(nil)))
	}
	return UnionCase[T]{
		Tag:  tag,
		Name: codec.Name(),
		match: func(v T) bool {
			_, ok := any(v).(V)
			return ok
		},
		serialize: func(to wire.Serializer, v T) error {
			return codec.Serialize(to, any(v).(V))
		},
		deserialize: func(data []byte) (wire.Deserialized[T], error) {
			d, err := codec.Deserialize(data)
			if err != nil {
				return wire.Deserialized[T]{}, err
			}
			return wire.Ok(any(d.Value).(T), d.Data)
		},
	}
}

// EmptyCase 声明一个没有负载的分支。
func EmptyCase[T, V any](tag int32, name string) UnionCase[T] {
	return Case[T](tag, wire.NewCodec[V](name,
		func(wire.Serializer, V) error { return nil },
		func(data []byte) (wire.Deserialized[V], error) {
			var v V
			return wire.Ok(v, data)
		},
	))
}

// Union 构造带标签联合的编解码器：先写标签，再写对应分支的负载。
// label 用于错误信息，未知标签返回 ErrCannotUnderstandValue，例如 "invalid world border action id 9"。
func Union[T any](typeName, label string, tag wire.Codec[int32], cases ...UnionCase[T]) wire.Codec[T] {
	byTag := make(map[int32]UnionCase[T], len(cases))
	for _, c := range cases {
		if _, dup := byTag[c.Tag]; dup {
			panic(fmt.Sprintf("protocol: duplicate tag %d in union %s", c.Tag, typeName))
		}
		byTag[c.Tag] = c
	}
	return wire.NewCodec[T](typeName,
		func(to wire.Serializer, v T) error {
			for _, c := range cases {
				if c.match(v) {
					if err := tag.Serialize(to, c.Tag); err != nil {
						return err
					}
					return c.serialize(to, v)
				}
			}
			return wire.NewInvalidValueError("%T is not a variant of %s", v, typeName)
		},
		func(data []byte) (wire.Deserialized[T], error) {
			t, err := tag.Deserialize(data)
			if err != nil {
				return wire.Deserialized[T]{}, err
			}
			c, ok := byTag[t.Value]
			if !ok {
				return wire.Deserialized[T]{}, wire.NewCannotUnderstandValueError(int64(t.Value), "invalid %s id %d", label, t.Value)
			}
			return c.deserialize(t.Data)
		},
	)
}

// VarIntTag 与 ByteTag 为常用的联合标签编码。
var (
	VarIntTag = wire.NewCodec[int32]("VarInt",
		func(to wire.Serializer, v int32) error {
			return wire.VarIntCodec.Serialize(to, wire.VarInt(v))
		},
		func(data []byte) (wire.Deserialized[int32], error) {
			d, err := wire.VarIntCodec.Deserialize(data)
			return wire.Deserialized[int32]{Value: int32(d.Value), Data: d.Data}, err
		},
	)
	ByteTag = wire.NewCodec[int32]("UnsignedByte",
		func(to wire.Serializer, v int32) error {
			return wire.UnsignedByteCodec.Serialize(to, uint8(v))
		},
		func(data []byte) (wire.Deserialized[int32], error) {
			d, err := wire.UnsignedByteCodec.Deserialize(data)
			return wire.Deserialized[int32]{Value: int32(d.Value), Data: d.Data}, err
		},
	)
)
