package nbt

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// MaxDepth 为 List/Compound 允许的最大嵌套层数。
const MaxDepth = 512

// NamedTagCodec 为以命名 Compound 为根的标签树字段编解码器。
var NamedTagCodec = wire.NewCodec[NamedTag]("NamedNbtTag", Encode, DecodeNamedRoot)

// Encode 写出一棵以命名 Compound 为根的标签树，与 DecodeNamedRoot 对称。
// 其他类型的根无法被读回，返回 InvalidValue。
func Encode(to wire.Serializer, t NamedTag) error {
	if t.Payload == nil {
		return wire.NewInvalidValueError("nbt tag %q has no payload", t.Name)
	}
	if id := t.Payload.ID(); id != TagCompound {
		return wire.NewInvalidValueError("nbt root %q must be Compound, got %s", t.Name, id)
	}
	return encodeNamed(to, t, 0)
}

// EncodeNamed 写出任意类型的命名标签：类型字节、名字、负载。End 标签只有类型字节。
func EncodeNamed(to wire.Serializer, t NamedTag) error {
	if t.Payload == nil {
		return wire.NewInvalidValueError("nbt tag %q has no payload", t.Name)
	}
	return encodeNamed(to, t, 0)
}

// Bytes 返回标签的完整编码。
func Bytes(t NamedTag) ([]byte, error) {
	return wire.Marshal(NamedTagCodec, t)
}

// DecodeNamedRoot 解码一棵以命名 Compound 为根的标签树，并返回未消费的剩余字节。
func DecodeNamedRoot(data []byte) (wire.Deserialized[NamedTag], error) {
	id, err := wire.ReadOneByte(data)
	if err != nil {
		return wire.Deserialized[NamedTag]{}, err
	}
	if TagID(id.Value) != TagCompound {
		return wire.Deserialized[NamedTag]{}, wire.NewNBTInvalidStartTagError(id.Value)
	}
	return DecodeNamed(data)
}

// DecodeNamed 解码任意类型的命名标签。
func DecodeNamed(data []byte) (wire.Deserialized[NamedTag], error) {
	return decodeNamed(data, 0)
}

func encodeNamed(to wire.Serializer, t NamedTag, depth int) error {
	id := t.Payload.ID()
	if err := to.SerializeByte(byte(id)); err != nil {
		return err
	}
	if id == TagEnd {
		return nil
	}
	if err := encodeString(to, t.Name); err != nil {
		return err
	}
	return encodePayload(to, t.Payload, depth)
}

func encodeString(to wire.Serializer, s string) error {
	if len(s) > math.MaxUint16 {
		return wire.NewCountOverflowError("UnsignedShort", len(s))
	}
	if err := wire.UnsignedShortCodec.Serialize(to, uint16(len(s))); err != nil {
		return err
	}
	return to.SerializeBytes([]byte(s))
}

func encodeLength(to wire.Serializer, n int) error {
	if n > math.MaxInt32 {
		return wire.NewCountOverflowError("Int", n)
	}
	return wire.IntCodec.Serialize(to, int32(n))
}

func encodePayload(to wire.Serializer, t Tag, depth int) error {
	switch v := t.(type) {
	case End:
		return nil
	case Byte:
		return wire.ByteCodec.Serialize(to, int8(v))
	case Short:
		return wire.ShortCodec.Serialize(to, int16(v))
	case Int:
		return wire.IntCodec.Serialize(to, int32(v))
	case Long:
		return wire.LongCodec.Serialize(to, int64(v))
	case Float:
		return wire.FloatCodec.Serialize(to, float32(v))
	case Double:
		return wire.DoubleCodec.Serialize(to, float64(v))
	case String:
		return encodeString(to, string(v))
	case ByteArray:
		if err := encodeLength(to, len(v)); err != nil {
			return err
		}
		return to.SerializeBytes(v)
	case IntArray:
		if err := encodeLength(to, len(v)); err != nil {
			return err
		}
		buf := make([]byte, 4*len(v))
		for i, x := range v {
			binary.BigEndian.PutUint32(buf[4*i:], uint32(x))
		}
		return to.SerializeBytes(buf)
	case LongArray:
		if err := encodeLength(to, len(v)); err != nil {
			return err
		}
		buf := make([]byte, 8*len(v))
		for i, x := range v {
			binary.BigEndian.PutUint64(buf[8*i:], uint64(x))
		}
		return to.SerializeBytes(buf)
	case List:
		if depth >= MaxDepth {
			return wire.NewInvalidValueError("nbt nesting deeper than %d", MaxDepth)
		}
		if !v.Type.Valid() {
			return wire.NewInvalidValueError("nbt list has unknown element type %s", v.Type)
		}
		if err := to.SerializeByte(byte(v.Type)); err != nil {
			return err
		}
		if err := encodeLength(to, len(v.Values)); err != nil {
			return err
		}
		for i, item := range v.Values {
			if item == nil || item.ID() != v.Type {
				return wire.NewInvalidValueError("nbt list of %s has element %d of another type", v.Type, i)
			}
			if err := encodePayload(to, item, depth+1); err != nil {
				return err
			}
		}
		return nil
	case Compound:
		if depth >= MaxDepth {
			return wire.NewInvalidValueError("nbt nesting deeper than %d", MaxDepth)
		}
		for _, item := range v {
			if item.Payload == nil || item.Payload.ID() == TagEnd {
				return wire.NewInvalidValueError("nbt compound entry %q has no payload", item.Name)
			}
			if err := encodeNamed(to, item, depth+1); err != nil {
				return err
			}
		}
		return to.SerializeByte(byte(TagEnd))
	default:
		return wire.NewInvalidValueError("unsupported nbt tag %T", t)
	}
}

func decodeNamed(data []byte, depth int) (wire.Deserialized[NamedTag], error) {
	id, err := readTagID(data)
	if err != nil {
		return wire.Deserialized[NamedTag]{}, err
	}
	if id.Value == TagEnd {
		return wire.Ok(NamedTag{Payload: End{}}, id.Data)
	}
	name, err := decodeString(id.Data)
	if err != nil {
		return wire.Deserialized[NamedTag]{}, err
	}
	payload, err := decodePayload(id.Value, name.Data, depth)
	if err != nil {
		return wire.Deserialized[NamedTag]{}, err
	}
	return wire.Ok(NamedTag{Name: name.Value, Payload: payload.Value}, payload.Data)
}

func readTagID(data []byte) (wire.Deserialized[TagID], error) {
	b, err := wire.ReadOneByte(data)
	if err != nil {
		return wire.Deserialized[TagID]{}, err
	}
	id := TagID(b.Value)
	if !id.Valid() {
		return wire.Deserialized[TagID]{}, wire.NewNBTUnknownTagTypeError(b.Value)
	}
	return wire.Ok(id, b.Data)
}

func decodeString(data []byte) (wire.Deserialized[string], error) {
	n, err := wire.UnsignedShortCodec.Deserialize(data)
	if err != nil {
		return wire.Deserialized[string]{}, err
	}
	raw, err := wire.Take(n.Data, int(n.Value))
	if err != nil {
		return wire.Deserialized[string]{}, err
	}
	if !utf8.Valid(raw.Value) {
		return wire.Deserialized[string]{}, wire.NewBadStringEncodingError(raw.Value, errors.New("invalid utf-8 in nbt string"))
	}
	return wire.Ok(string(raw.Value), raw.Data)
}

// decodeLength 读取数组/列表长度，负数返回 ErrNBTBadLength，
// 剩余字节不足以容纳 n 个 elemSize 字节的元素时返回 ErrEOF。
func decodeLength(data []byte, elemSize int) (wire.Deserialized[int], error) {
	n, err := wire.IntCodec.Deserialize(data)
	if err != nil {
		return wire.Deserialized[int]{}, err
	}
	if n.Value < 0 {
		return wire.Deserialized[int]{}, wire.NewNBTBadLengthError(int64(n.Value))
	}
	if int64(n.Value)*int64(elemSize) > int64(len(n.Data)) {
		return wire.Deserialized[int]{}, wire.NewEOFError()
	}
	return wire.Ok(int(n.Value), n.Data)
}

func decodePayload(id TagID, data []byte, depth int) (wire.Deserialized[Tag], error) {
	switch id {
	case TagEnd:
		return wire.Ok[Tag](End{}, data)
	case TagByte:
		d, err := wire.ByteCodec.Deserialize(data)
		return toTag(d, err, func(v int8) Tag { return Byte(v) })
	case TagShort:
		d, err := wire.ShortCodec.Deserialize(data)
		return toTag(d, err, func(v int16) Tag { return Short(v) })
	case TagInt:
		d, err := wire.IntCodec.Deserialize(data)
		return toTag(d, err, func(v int32) Tag { return Int(v) })
	case TagLong:
		d, err := wire.LongCodec.Deserialize(data)
		return toTag(d, err, func(v int64) Tag { return Long(v) })
	case TagFloat:
		d, err := wire.FloatCodec.Deserialize(data)
		return toTag(d, err, func(v float32) Tag { return Float(v) })
	case TagDouble:
		d, err := wire.DoubleCodec.Deserialize(data)
		return toTag(d, err, func(v float64) Tag { return Double(v) })
	case TagString:
		d, err := decodeString(data)
		return toTag(d, err, func(v string) Tag { return String(v) })
	case TagByteArray:
		n, err := decodeLength(data, 1)
		if err != nil {
			return wire.Deserialized[Tag]{}, err
		}
		out := make(ByteArray, n.Value)
		copy(out, n.Data)
		return wire.Ok[Tag](out, n.Data[n.Value:])
	case TagIntArray:
		n, err := decodeLength(data, 4)
		if err != nil {
			return wire.Deserialized[Tag]{}, err
		}
		out := make(IntArray, n.Value)
		for i := range out {
			out[i] = int32(binary.BigEndian.Uint32(n.Data[4*i:]))
		}
		return wire.Ok[Tag](out, n.Data[4*n.Value:])
	case TagLongArray:
		n, err := decodeLength(data, 8)
		if err != nil {
			return wire.Deserialized[Tag]{}, err
		}
		out := make(LongArray, n.Value)
		for i := range out {
			out[i] = int64(binary.BigEndian.Uint64(n.Data[8*i:]))
		}
		return wire.Ok[Tag](out, n.Data[8*n.Value:])
	case TagList:
		return decodeList(data, depth)
	case TagCompound:
		return decodeCompound(data, depth)
	default:
		return wire.Deserialized[Tag]{}, wire.NewNBTUnknownTagTypeError(byte(id))
	}
}

func toTag[T any](d wire.Deserialized[T], err error, f func(T) Tag) (wire.Deserialized[Tag], error) {
	if err != nil {
		return wire.Deserialized[Tag]{}, err
	}
	return wire.Map(d, f), nil
}

func checkDepth(depth int) error {
	if depth >= MaxDepth {
		return wire.NewCannotUnderstandValueError(int64(depth), "nbt nesting deeper than %d", MaxDepth)
	}
	return nil
}

func decodeList(data []byte, depth int) (wire.Deserialized[Tag], error) {
	if err := checkDepth(depth); err != nil {
		return wire.Deserialized[Tag]{}, err
	}
	elem, err := readTagID(data)
	if err != nil {
		return wire.Deserialized[Tag]{}, err
	}
	n, err := decodeLength(elem.Data, 0)
	if err != nil {
		return wire.Deserialized[Tag]{}, err
	}
	if elem.Value == TagEnd && n.Value > 0 {
		return wire.Deserialized[Tag]{}, wire.NewNBTBadLengthError(int64(n.Value))
	}
	rest := n.Data
	var values []Tag
	if n.Value > 0 {
		values = make([]Tag, 0, min(n.Value, len(rest)))
	}
	for i := 0; i < n.Value; i++ {
		item, err := decodePayload(elem.Value, rest, depth+1)
		if err != nil {
			return wire.Deserialized[Tag]{}, err
		}
		values = append(values, item.Value)
		rest = item.Data
	}
	return wire.Ok[Tag](List{Type: elem.Value, Values: values}, rest)
}

func decodeCompound(data []byte, depth int) (wire.Deserialized[Tag], error) {
	if err := checkDepth(depth); err != nil {
		return wire.Deserialized[Tag]{}, err
	}
	out := Compound{}
	rest := data
	for {
		item, err := decodeNamed(rest, depth+1)
		if err != nil {
			return wire.Deserialized[Tag]{}, err
		}
		rest = item.Data
		if item.Value.Payload.ID() == TagEnd {
			return wire.Ok[Tag](out, rest)
		}
		out = append(out, item.Value)
	}
}
