package wire

import (
	"encoding/binary"
	"math"
)

// 定长整数与浮点数一律按大端序编码，有符号与无符号同宽类型共享字节布局。
var (
	BoolCodec          = NewCodec[bool]("Boolean", serializeBool, deserializeBool)
	ByteCodec          = NewCodec[int8]("Byte", serializeInt8, deserializeInt8)
	UnsignedByteCodec  = NewCodec[uint8]("UnsignedByte", serializeUint8, deserializeUint8)
	ShortCodec         = NewCodec[int16]("Short", serializeInt16, deserializeInt16)
	UnsignedShortCodec = NewCodec[uint16]("UnsignedShort", serializeUint16, deserializeUint16)
	IntCodec           = NewCodec[int32]("Int", serializeInt32, deserializeInt32)
	UnsignedIntCodec   = NewCodec[uint32]("UnsignedInt", serializeUint32, deserializeUint32)
	LongCodec          = NewCodec[int64]("Long", serializeInt64, deserializeInt64)
	UnsignedLongCodec  = NewCodec[uint64]("UnsignedLong", serializeUint64, deserializeUint64)
	FloatCodec         = NewCodec[float32]("Float", serializeFloat32, deserializeFloat32)
	DoubleCodec        = NewCodec[float64]("Double", serializeFloat64, deserializeFloat64)
)

func serializeBool(to Serializer, v bool) error {
	if v {
		return to.SerializeByte(0x01)
	}
	return to.SerializeByte(0x00)
}

func deserializeBool(data []byte) (Deserialized[bool], error) {
	b, err := ReadOneByte(data)
	if err != nil {
		return Deserialized[bool]{}, err
	}
	switch b.Value {
	case 0x00:
		return Ok(false, b.Data)
	case 0x01:
		return Ok(true, b.Data)
	default:
		return Deserialized[bool]{}, NewInvalidBoolError(b.Value)
	}
}

func serializeUint8(to Serializer, v uint8) error {
	return to.SerializeByte(v)
}

func deserializeUint8(data []byte) (Deserialized[uint8], error) {
	return ReadOneByte(data)
}

func serializeInt8(to Serializer, v int8) error {
	return to.SerializeByte(uint8(v))
}

func deserializeInt8(data []byte) (Deserialized[int8], error) {
	b, err := ReadOneByte(data)
	if err != nil {
		return Deserialized[int8]{}, err
	}
	return Ok(int8(b.Value), b.Data)
}

func serializeUint16(to Serializer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return to.SerializeBytes(b[:])
}

func deserializeUint16(data []byte) (Deserialized[uint16], error) {
	if len(data) < 2 {
		return Deserialized[uint16]{}, NewEOFError()
	}
	return Ok(binary.BigEndian.Uint16(data), data[2:])
}

func serializeInt16(to Serializer, v int16) error {
	return serializeUint16(to, uint16(v))
}

func deserializeInt16(data []byte) (Deserialized[int16], error) {
	d, err := deserializeUint16(data)
	if err != nil {
		return Deserialized[int16]{}, err
	}
	return Ok(int16(d.Value), d.Data)
}

func serializeUint32(to Serializer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return to.SerializeBytes(b[:])
}

func deserializeUint32(data []byte) (Deserialized[uint32], error) {
	if len(data) < 4 {
		return Deserialized[uint32]{}, NewEOFError()
	}
	return Ok(binary.BigEndian.Uint32(data), data[4:])
}

func serializeInt32(to Serializer, v int32) error {
	return serializeUint32(to, uint32(v))
}

func deserializeInt32(data []byte) (Deserialized[int32], error) {
	d, err := deserializeUint32(data)
	if err != nil {
		return Deserialized[int32]{}, err
	}
	return Ok(int32(d.Value), d.Data)
}

func serializeUint64(to Serializer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return to.SerializeBytes(b[:])
}

func deserializeUint64(data []byte) (Deserialized[uint64], error) {
	if len(data) < 8 {
		return Deserialized[uint64]{}, NewEOFError()
	}
	return Ok(binary.BigEndian.Uint64(data), data[8:])
}

func serializeInt64(to Serializer, v int64) error {
	return serializeUint64(to, uint64(v))
}

func deserializeInt64(data []byte) (Deserialized[int64], error) {
	d, err := deserializeUint64(data)
	if err != nil {
		return Deserialized[int64]{}, err
	}
	return Ok(int64(d.Value), d.Data)
}

// 浮点数先按同宽整数解码，再按位重新解释，而不是数值转换。
func serializeFloat32(to Serializer, v float32) error {
	return serializeUint32(to, math.Float32bits(v))
}

func deserializeFloat32(data []byte) (Deserialized[float32], error) {
	d, err := deserializeUint32(data)
	if err != nil {
		return Deserialized[float32]{}, err
	}
	return Ok(math.Float32frombits(d.Value), d.Data)
}

func serializeFloat64(to Serializer, v float64) error {
	return serializeUint64(to, math.Float64bits(v))
}

func deserializeFloat64(data []byte) (Deserialized[float64], error) {
	d, err := deserializeUint64(data)
	if err != nil {
		return Deserialized[float64]{}, err
	}
	return Ok(math.Float64frombits(d.Value), d.Data)
}
