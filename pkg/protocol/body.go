package protocol

import (
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// FieldDef 为报文体中的一个字段：名字、编解码器以及定位到结构体字段的方式。
type FieldDef[B any] struct {
	name        string
	kind        string
	serialize   func(to wire.Serializer, b *B) error
	deserialize func(data []byte, b *B) ([]byte, error)
}

// Field 声明一个字段，ref 返回结构体中对应字段的指针。
func Field[B, T any](name string, codec wire.Codec[T], ref func(*B) *T) FieldDef[B] {
	return FieldDef[B]{
		name: name,
		kind: codec.Name(),
		serialize: func(to wire.Serializer, b *B) error {
			return codec.Serialize(to, *ref(b))
		},
		deserialize: func(data []byte, b *B) ([]byte, error) {
			d, err := codec.Deserialize(data)
			if err != nil {
				return nil, err
			}
			*ref(b) = d.Value
			return d.Data, nil
		},
	}
}

// Body 为按声明顺序拼接各字段编解码器得到的记录编解码器，字段描述来自同一张表。
type Body[B any] struct {
	fields []FieldDef[B]
}

// NewBody 由字段表构造报文体。没有字段的报文体编码为空。
func NewBody[B any](fields ...FieldDef[B]) Body[B] {
	return Body[B]{fields: fields}
}

// Serialize 按声明顺序写出全部字段，遇到第一个错误即返回。
func (b Body[B]) Serialize(to wire.Serializer, v *B) error {
	for i := range b.fields {
		if err := b.fields[i].serialize(to, v); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize 按声明顺序读取全部字段，并返回未消费的剩余字节。
func (b Body[B]) Deserialize(data []byte) (wire.Deserialized[B], error) {
	var v B
	rest := data
	for i := range b.fields {
		next, err := b.fields[i].deserialize(rest, &v)
		if err != nil {
			return wire.Deserialized[B]{}, err
		}
		rest = next
	}
	return wire.Ok(v, rest)
}

// Fields 返回字段名与声明类型。
func (b Body[B]) Fields() []FieldSpec {
	out := make([]FieldSpec, 0, len(b.fields))
	for _, f := range b.fields {
		out = append(out, FieldSpec{Name: f.name, Kind: f.kind})
	}
	return out
}

// Codec 将报文体包装为 wire.Codec，便于作为其它记录的字段嵌套使用。
func (b Body[B]) Codec(name string) wire.Codec[B] {
	return wire.NewCodec[B](name,
		func(to wire.Serializer, v B) error {
			return b.Serialize(to, &v)
		},
		b.Deserialize,
	)
}
