package wire

import (
	"fmt"
	"math"
)

// Position 为打包进一个 64 位整数的方块坐标：x、z 各 26 位，y 为 12 位。
type Position struct {
	X int32
	Y int16
	Z int32
}

const (
	positionXZBits = 26
	positionYBits  = 12

	positionXZMask = 1<<positionXZBits - 1
	positionYMask  = 1<<positionYBits - 1

	positionXZSign = 1 << (positionXZBits - 1)
	positionYSign  = 1 << (positionYBits - 1)
)

// 合法坐标范围。
const (
	PositionMinXZ = -positionXZSign
	PositionMaxXZ = positionXZSign - 1
	PositionMinY  = -positionYSign
	PositionMaxY  = positionYSign - 1
)

var PositionCodec = NewCodec[Position]("Position",
	func(to Serializer, v Position) error {
		return serializeUint64(to, v.Pack())
	},
	func(data []byte) (Deserialized[Position], error) {
		d, err := deserializeUint64(data)
		if err != nil {
			return Deserialized[Position]{}, err
		}
		return Ok(UnpackPosition(d.Value), d.Data)
	},
)

// Pack 按 (x<<38)|(z<<12)|y 打包。负数先在各自字段宽度内取补码，再截断到字段宽度。
func (p Position) Pack() uint64 {
	x := uint64(uint32(p.X)) & positionXZMask
	z := uint64(uint32(p.Z)) & positionXZMask
	y := uint64(uint16(p.Y)) & positionYMask
	return x<<38 | z<<12 | y
}

// UnpackPosition 为 Pack 的逆操作，符号位（x/z 为第 25 位，y 为第 11 位）置位时做符号扩展。
func UnpackPosition(raw uint64) Position {
	x := int64(raw>>38) & positionXZMask
	z := int64(raw>>12) & positionXZMask
	y := int64(raw) & positionYMask
	if x&positionXZSign != 0 {
		x -= 1 << positionXZBits
	}
	if z&positionXZSign != 0 {
		z -= 1 << positionXZBits
	}
	if y&positionYSign != 0 {
		y -= 1 << positionYBits
	}
	return Position{X: int32(x), Y: int16(y), Z: int32(z)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Angle 以 1/256 圈为单位表示旋转角度，所有 256 个取值都合法。
type Angle uint8

var AngleCodec = NewCodec[Angle]("Angle",
	func(to Serializer, v Angle) error {
		return to.SerializeByte(uint8(v))
	},
	func(data []byte) (Deserialized[Angle], error) {
		b, err := ReadOneByte(data)
		if err != nil {
			return Deserialized[Angle]{}, err
		}
		return Ok(Angle(b.Value), b.Data)
	},
)

// AngleFromDegrees 将角度换算为 Angle，超出一圈的部分回绕。
func AngleFromDegrees(deg float64) Angle {
	steps := math.Round(deg / 360 * 256)
	return Angle(uint8(int64(steps) & 0xff))
}

// Degrees 返回 [0, 360) 范围内的角度。
func (a Angle) Degrees() float64 {
	return float64(a) * 360 / 256
}

// FixedInt 为定点数的原始 32 位表示，实际值为 raw / 2^bits，转换会丢失精度。
type FixedInt int32

var FixedIntCodec = NewCodec[FixedInt]("FixedInt",
	func(to Serializer, v FixedInt) error {
		return serializeInt32(to, int32(v))
	},
	func(data []byte) (Deserialized[FixedInt], error) {
		d, err := deserializeInt32(data)
		if err != nil {
			return Deserialized[FixedInt]{}, err
		}
		return Ok(FixedInt(d.Value), d.Data)
	},
)

// NewFixedInt 将 v 乘以 2^bits 后向零截断。
func NewFixedInt(v float64, bits uint) FixedInt {
	return FixedInt(int32(v * float64(uint64(1)<<bits)))
}

// Float 将定点数还原为浮点数。
func (f FixedInt) Float(bits uint) float64 {
	return float64(f) / float64(uint64(1)<<bits)
}
