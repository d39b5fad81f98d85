package wire

import "strconv"

// 变长整数的最大字节数。
const (
	VarIntMaxBytes  = 5
	VarLongMaxBytes = 10
)

// VarInt 为按 7 位分组编码的 32 位有符号整数。
type VarInt int32

// VarLong 为按 7 位分组编码的 64 位有符号整数。
type VarLong int64

func (v VarInt) String() string { return strconv.FormatInt(int64(v), 10) }

func (v VarLong) String() string { return strconv.FormatInt(int64(v), 10) }

var (
	VarIntCodec  = NewCodec[VarInt]("VarInt", serializeVarInt, deserializeVarInt)
	VarLongCodec = NewCodec[VarLong]("VarLong", serializeVarLong, deserializeVarLong)
)

// AppendVarNum 将 u 按变长格式追加到 dst：每次输出低 7 位，
// 还有剩余位时置 0x80 延续位，剩余值为 0 时停止。
func AppendVarNum(dst []byte, u uint64) []byte {
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// ReadVarNum 读取一个变长整数，maxBytes 为允许读取的最大字节数。
//
// 在延续位清零之前读满 maxBytes 个字节会返回 ErrVarNumTooLong，错误中带有已读取的字节；
// 超出目标宽度的高位由调用方截断，不做范围校验。
func ReadVarNum(data []byte, maxBytes int) (Deserialized[uint64], error) {
	var (
		v     uint64
		shift uint
	)
	for i := 0; ; i++ {
		if i == maxBytes {
			return Deserialized[uint64]{}, NewVarNumTooLongError(data[:i])
		}
		if i >= len(data) {
			return Deserialized[uint64]{}, NewEOFError()
		}
		b := data[i]
		if shift < 64 {
			v |= uint64(b&0x7f) << shift
		}
		shift += 7
		if b&0x80 == 0 {
			return Ok(v, data[i+1:])
		}
	}
}

// VarIntSize 返回 v 编码为 VarInt 后的字节数。
func VarIntSize(v int32) int {
	u := uint32(v)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

func serializeVarInt(to Serializer, v VarInt) error {
	var buf [VarIntMaxBytes]byte
	return to.SerializeBytes(AppendVarNum(buf[:0], uint64(uint32(v))))
}

func deserializeVarInt(data []byte) (Deserialized[VarInt], error) {
	d, err := ReadVarNum(data, VarIntMaxBytes)
	if err != nil {
		return Deserialized[VarInt]{}, err
	}
	return Ok(VarInt(int32(uint32(d.Value))), d.Data)
}

func serializeVarLong(to Serializer, v VarLong) error {
	var buf [VarLongMaxBytes]byte
	return to.SerializeBytes(AppendVarNum(buf[:0], uint64(v)))
}

func deserializeVarLong(data []byte) (Deserialized[VarLong], error) {
	d, err := ReadVarNum(data, VarLongMaxBytes)
	if err != nil {
		return Deserialized[VarLong]{}, err
	}
	return Ok(VarLong(int64(d.Value)), d.Data)
}
