package wire

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CodecSuite struct {
	suite.Suite
}

// assertRoundTrip 校验 decode(encode(v)) == (v, 空剩余)，且再次编码得到相同字节。
func assertRoundTrip[T any](s *suite.Suite, c Codec[T], v T) []byte {
	data, err := Marshal(c, v)
	s.Require().NoError(err, "%s: serialize %v", c.Name(), v)

	d, err := c.Deserialize(data)
	s.Require().NoError(err, "%s: deserialize % x", c.Name(), data)
	s.Empty(d.Data, "%s: remaining bytes", c.Name())
	s.Equal(v, d.Value, c.Name())

	again, err := Marshal(c, d.Value)
	s.Require().NoError(err)
	s.Equal(data, again, c.Name())
	return data
}

func (s *CodecSuite) TestPrimitiveRoundTrip() {
	for _, v := range []bool{true, false} {
		assertRoundTrip(&s.Suite, BoolCodec, v)
	}
	for _, v := range []int8{0, 127, -15, math.MinInt8} {
		assertRoundTrip(&s.Suite, ByteCodec, v)
	}
	for _, v := range []uint8{0, 128, 255} {
		assertRoundTrip(&s.Suite, UnsignedByteCodec, v)
	}
	for _, v := range []int16{0, -88, 25521} {
		assertRoundTrip(&s.Suite, ShortCodec, v)
	}
	for _, v := range []uint16{0, 1723, 65534} {
		assertRoundTrip(&s.Suite, UnsignedShortCodec, v)
	}
	for _, v := range []int32{0, 123127, -171238, math.MaxInt32} {
		assertRoundTrip(&s.Suite, IntCodec, v)
	}
	for _, v := range []uint32{0, math.MaxUint32} {
		assertRoundTrip(&s.Suite, UnsignedIntCodec, v)
	}
	for _, v := range []int64{0, -12123127, -10170482028482} {
		assertRoundTrip(&s.Suite, LongCodec, v)
	}
	for _, v := range []uint64{0, math.MaxUint64} {
		assertRoundTrip(&s.Suite, UnsignedLongCodec, v)
	}
	for _, v := range []float32{0.2313, 0, 123123213, -123123} {
		assertRoundTrip(&s.Suite, FloatCodec, v)
	}
	for _, v := range []float64{0.2313, 0, 123123213, -123123} {
		assertRoundTrip(&s.Suite, DoubleCodec, v)
	}
}

func (s *CodecSuite) TestPrimitiveLayout() {
	data, err := Marshal(IntCodec, int32(-2))
	s.NoError(err)
	s.Equal([]byte{0xff, 0xff, 0xff, 0xfe}, data)

	data, err = Marshal(UnsignedShortCodec, uint16(0x1234))
	s.NoError(err)
	s.Equal([]byte{0x12, 0x34}, data)

	data, err = Marshal(DoubleCodec, 1.0)
	s.NoError(err)
	s.Equal([]byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, data)

	// 有符号与无符号同宽类型共享字节布局。
	d, err := UnsignedIntCodec.Deserialize([]byte{0xff, 0xff, 0xff, 0xfe, 0x09})
	s.NoError(err)
	s.Equal(uint32(0xfffffffe), d.Value)
	s.Equal([]byte{0x09}, d.Data)
}

func (s *CodecSuite) TestBool() {
	_, err := BoolCodec.Deserialize([]byte{0x02})
	s.ErrorIs(err, ErrInvalidBool)
	de, ok := AsDeserializeError(err)
	s.True(ok)
	s.Equal(int64(2), de.Value)

	_, err = BoolCodec.Deserialize(nil)
	s.ErrorIs(err, ErrEOF)
}

func (s *CodecSuite) TestShortInput() {
	_, err := LongCodec.Deserialize([]byte{1, 2, 3})
	s.ErrorIs(err, ErrEOF)
	_, err = FloatCodec.Deserialize([]byte{1})
	s.ErrorIs(err, ErrEOF)
	_, err = UUIDCodec.Deserialize(make([]byte, 15))
	s.ErrorIs(err, ErrEOF)
}

func (s *CodecSuite) TestVarInt() {
	for _, v := range []VarInt{0, 1231231, math.MaxInt32, math.MinInt32, -1, -1001237} {
		data := assertRoundTrip(&s.Suite, VarIntCodec, v)
		s.Equal(VarIntSize(int32(v)), len(data))
	}
	for _, v := range []VarLong{0, 1231231, 12312319123, math.MaxInt64, -1, -12312319123, math.MinInt64} {
		assertRoundTrip(&s.Suite, VarLongCodec, v)
	}

	cases := []struct {
		v    VarInt
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{math.MaxInt32, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{math.MinInt32, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, c := range cases {
		data, err := Marshal(VarIntCodec, c.v)
		s.NoError(err)
		s.Equal(c.want, data, "VarInt(%d)", c.v)
	}

	data, err := Marshal(VarLongCodec, VarLong(-1))
	s.NoError(err)
	s.Equal([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, data)
}

func (s *CodecSuite) TestVarIntTooLong() {
	input := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := VarIntCodec.Deserialize(input)
	s.ErrorIs(err, ErrVarNumTooLong)
	de, ok := AsDeserializeError(err)
	s.Require().True(ok)
	s.Equal(input[:5], de.Data)

	long := bytes.Repeat([]byte{0xff}, 11)
	_, err = VarLongCodec.Deserialize(long)
	s.ErrorIs(err, ErrVarNumTooLong)
	de, _ = AsDeserializeError(err)
	s.Len(de.Data, 10)

	_, err = VarIntCodec.Deserialize([]byte{0x80, 0x80})
	s.ErrorIs(err, ErrEOF)
}

func (s *CodecSuite) TestVarIntWraps() {
	// 超出 32 位的高位被截断而不是拒绝。
	d, err := VarIntCodec.Deserialize([]byte{0xff, 0xff, 0xff, 0xff, 0x7f, 0x42})
	s.NoError(err)
	s.Equal(VarInt(-1), d.Value)
	s.Equal([]byte{0x42}, d.Data)

	u, err := ReadVarNum([]byte{0xac, 0x02}, VarIntMaxBytes)
	s.NoError(err)
	s.Equal(uint64(300), u.Value)
	s.Equal([]byte{0xac, 0x02}, AppendVarNum(nil, 300))
}

func (s *CodecSuite) TestString() {
	data := assertRoundTrip(&s.Suite, StringCodec, "")
	s.Equal([]byte{0x00}, data)

	assertRoundTrip(&s.Suite, StringCodec, "hello my name is joey 123")
	assertRoundTrip(&s.Suite, StringCodec, "AAAA")
	assertRoundTrip(&s.Suite, StringCodec, "§a方块")
	assertRoundTrip(&s.Suite, StringCodec, strings.Repeat("hello my name is joey 123", 1000))
}

func (s *CodecSuite) TestStringNegativeLength() {
	input := append([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, "abc"...)
	_, err := StringCodec.Deserialize(input)
	s.ErrorIs(err, ErrNegativeLength)
	de, _ := AsDeserializeError(err)
	s.Equal(int64(-1), de.Value)
}

func (s *CodecSuite) TestStringErrors() {
	_, err := StringCodec.Deserialize([]byte{0x03, 'a', 0xff, 'b'})
	s.ErrorIs(err, ErrBadStringEncoding)
	s.Contains(err.Error(), "byte 1")

	_, err = StringCodec.Deserialize([]byte{0x05, 'a'})
	s.ErrorIs(err, ErrEOF)

	// 解码结果不与输入共享内存。
	input := []byte{0x02, 'o', 'k'}
	d, err := StringCodec.Deserialize(input)
	s.NoError(err)
	input[1] = 'n'
	s.Equal("ok", d.Value)
}

func (s *CodecSuite) TestOptional() {
	c := Optional(UnsignedByteCodec)
	s.Equal("Optional<UnsignedByte>", c.Name())

	d, err := c.Deserialize([]byte{0x00})
	s.NoError(err)
	s.Nil(d.Value)
	s.Empty(d.Data)

	d, err = c.Deserialize([]byte{0x01, 0x05, 0x06})
	s.NoError(err)
	s.Require().NotNil(d.Value)
	s.Equal(uint8(5), *d.Value)
	s.Equal([]byte{0x06}, d.Data)

	v := "present"
	assertRoundTrip(&s.Suite, Optional(StringCodec), &v)
	assertRoundTrip(&s.Suite, Optional(StringCodec), nil)

	_, err = c.Deserialize([]byte{0x01})
	s.ErrorIs(err, ErrEOF)
	_, err = c.Deserialize([]byte{0x03})
	s.ErrorIs(err, ErrInvalidBool)
}

func (s *CodecSuite) TestCountedArray() {
	c := VarIntCountedArray(UnsignedByteCodec)
	s.Equal("VarIntCountedArray<UnsignedByte>", c.Name())
	data := assertRoundTrip(&s.Suite, c, []uint8{1, 2, 3})
	s.Equal([]byte{0x03, 0x01, 0x02, 0x03}, data)
	assertRoundTrip(&s.Suite, c, []uint8{})

	assertRoundTrip(&s.Suite, ShortCountedArray(StringCodec), []string{"a", "", "ccc"})
	assertRoundTrip(&s.Suite, IntCountedArray(VarIntCodec), []VarInt{-1, 0, 300})
	data = assertRoundTrip(&s.Suite, ByteCountedArray(ShortCodec), []int16{7})
	s.Equal([]byte{0x01, 0x00, 0x07}, data)
}

func (s *CodecSuite) TestCountedArrayErrors() {
	_, err := IntCountedArray(UnsignedByteCodec).Deserialize([]byte{0xff, 0xff, 0xff, 0xff})
	s.ErrorIs(err, ErrNegativeLength)

	_, err = ByteCountedArray(UnsignedByteCodec).Deserialize([]byte{0x80})
	s.ErrorIs(err, ErrNegativeLength)

	// 声明了大量元素但输入很短，不应按声明个数分配内存。
	_, err = IntCountedArray(UnsignedByteCodec).Deserialize([]byte{0x7f, 0xff, 0xff, 0xff, 0x01, 0x02})
	s.ErrorIs(err, ErrEOF)

	_, err = Marshal(ByteCountedArray(UnsignedByteCodec), make([]uint8, 128))
	s.ErrorIs(err, ErrCountOverflow)
	_, err = Marshal(ByteCountedArray(UnsignedByteCodec), make([]uint8, 127))
	s.NoError(err)
}

func (s *CodecSuite) TestRemainingBytes() {
	input := []byte{0x01, 0x02, 0x03}
	d, err := RemainingBytesCodec.Deserialize(input)
	s.NoError(err)
	s.Empty(d.Data)
	input[0] = 0xff
	s.Equal([]byte{0x01, 0x02, 0x03}, d.Value)

	d, err = RemainingBytesCodec.Deserialize(nil)
	s.NoError(err)
	s.Empty(d.Value)
	assertRoundTrip(&s.Suite, RemainingBytesCodec, []byte("payload"))
}

func (s *CodecSuite) TestPosition() {
	positions := []Position{
		{X: 12312, Y: -32, Z: 321312},
		{X: 12312, Y: -32, Z: -321312},
		{X: -12312, Y: -32, Z: -321312},
		{X: -12312, Y: 32, Z: 321312},
		{X: 0, Y: 0, Z: 0},
		{X: 48, Y: 232, Z: 12},
		{X: PositionMaxXZ, Y: PositionMaxY, Z: PositionMaxXZ},
		{X: PositionMinXZ, Y: PositionMinY, Z: PositionMinXZ},
		{X: 3, Y: 0, Z: 110655},
	}
	for _, p := range positions {
		assertRoundTrip(&s.Suite, PositionCodec, p)
	}

	s.Equal(int32(33554431), int32(PositionMaxXZ))
	s.Equal(int16(-2048), int16(PositionMinY))
	s.Equal(uint64(1)<<38, Position{X: 1}.Pack())
	s.Equal(uint64(1)<<12, Position{Z: 1}.Pack())
	s.Equal(uint64(math.MaxUint64), Position{X: -1, Y: -1, Z: -1}.Pack())
	s.Equal(Position{X: -1, Y: -1, Z: -1}, UnpackPosition(math.MaxUint64))
}

func (s *CodecSuite) TestAngleAndFixedInt() {
	for _, a := range []Angle{0, 8, 24, 255} {
		assertRoundTrip(&s.Suite, AngleCodec, a)
	}
	s.Equal(Angle(64), AngleFromDegrees(90))
	s.Equal(Angle(192), AngleFromDegrees(-90))
	s.Equal(Angle(0), AngleFromDegrees(360))
	s.InDelta(90.0, Angle(64).Degrees(), 1e-9)

	s.Equal(FixedInt(48), NewFixedInt(1.5, 5))
	s.InDelta(1.5, FixedInt(48).Float(5), 1e-9)
	s.Equal(FixedInt(-1), NewFixedInt(-1.99, 0))
	s.Equal(FixedInt(-63), NewFixedInt(-1.99, 5))
	assertRoundTrip(&s.Suite, FixedIntCodec, NewFixedInt(-12.125, 3))
}

func (s *CodecSuite) TestUUID() {
	for i := 0; i < 5; i++ {
		assertRoundTrip(&s.Suite, UUIDCodec, uuid.New())
	}
	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	data, err := Marshal(UUIDCodec, id)
	s.NoError(err)
	s.Equal([]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, data)
}

type difficulty uint8

var difficulties = NewEnumTable[difficulty]("Difficulty",
	Entry[difficulty](0, "Peaceful"),
	Entry[difficulty](1, "Easy"),
	Entry[difficulty](2, "Normal"),
	Entry[difficulty](3, "Hard"),
)

type chatMode int32

var chatModes = NewEnumTable[chatMode]("ChatMode",
	Entry[chatMode](0, "Enabled"),
	Entry[chatMode](1, "CommandsOnly"),
	Entry[chatMode](2, "Hidden"),
)

func (s *CodecSuite) TestEnum() {
	c := ByteEnum(difficulties)
	s.Equal("Difficulty", c.Name())
	for _, v := range difficulties.Values() {
		assertRoundTrip(&s.Suite, c, v)
	}
	s.Equal("Normal(0x02)", difficulties.Format(2))
	s.Equal("Hard", difficulties.Name(3))
	s.Equal("", difficulties.Name(9))
	v, ok := difficulties.Parse("Easy")
	s.True(ok)
	s.Equal(difficulty(1), v)

	_, err := c.Deserialize([]byte{0x07})
	s.ErrorIs(err, ErrCannotUnderstandValue)
	de, _ := AsDeserializeError(err)
	s.Equal("invalid Difficulty 7", de.Detail)
	s.Equal(int64(7), de.Value)

	vc := VarIntEnum(chatModes)
	data := assertRoundTrip(&s.Suite, vc, chatMode(2))
	s.Equal([]byte{0x02}, data)
	_, err = vc.Deserialize([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})
	s.ErrorIs(err, ErrCannotUnderstandValue)

	ic := IntEnum(chatModes)
	data = assertRoundTrip(&s.Suite, ic, chatMode(1))
	s.Equal([]byte{0, 0, 0, 1}, data)

	s.Panics(func() {
		NewEnumTable[difficulty]("Dup", Entry[difficulty](0, "A"), Entry[difficulty](0, "B"))
	})
}

type skinParts uint8

func (s *CodecSuite) TestFlags() {
	var v skinParts
	v = SetFlag(v, 0x01, true)
	v = SetFlag(v, 0x04, true)
	s.True(HasFlag(v, 0x01))
	s.False(HasFlag(v, 0x02))
	s.Equal(skinParts(0x05), v)

	v = SetFlag(v, 0x01, false)
	s.Equal(skinParts(0x04), v)
	// 清除一个未置位的位不会把它置上。
	v = SetFlag(v, 0x01, false)
	s.Equal(skinParts(0x04), v)

	s.Equal(skinParts(0x06), ToggleFlag(v, 0x02))
	assertRoundTrip(&s.Suite, FlagCodec[skinParts]("SkinParts"), skinParts(0x7f))
}

func (s *CodecSuite) TestCombinators() {
	d := Deserialized[int32]{Value: 2, Data: []byte{0x09}}

	m := Map(d, func(v int32) string { return "n" })
	s.Equal("n", m.Value)
	s.Equal(d.Data, m.Data)

	r := Replace(d, true)
	s.True(r.Value)
	s.Equal(d.Data, r.Data)

	t, err := TryMap(d, func(v int32) (int64, error) { return int64(v) * 2, nil })
	s.NoError(err)
	s.Equal(int64(4), t.Value)

	_, err = TryMap(d, func(v int32) (int64, error) { return 0, NewInvalidBoolError(3) })
	s.ErrorIs(err, ErrInvalidBool)

	a, err := AndThen(d, func(v int32, rest []byte) (Deserialized[uint8], error) {
		return UnsignedByteCodec.Deserialize(rest)
	})
	s.NoError(err)
	s.Equal(uint8(9), a.Value)
	s.Empty(a.Data)

	_, err = Take([]byte{1}, 2)
	s.ErrorIs(err, ErrEOF)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func (s *CodecSuite) TestSerializers() {
	var buf bytes.Buffer
	ws := NewWriterSerializer(&buf)
	s.NoError(StringCodec.Serialize(ws, "abc"))
	s.Equal([]byte{0x03, 'a', 'b', 'c'}, buf.Bytes())
	s.Equal(int64(4), ws.Written())

	err := VarIntCodec.Serialize(NewWriterSerializer(failingWriter{}), 1)
	s.ErrorIs(err, ErrSinkFailed)
	s.ErrorIs(err, io.ErrClosedPipe)

	bs := NewBytesSerializer(8)
	s.NoError(BoolCodec.Serialize(bs, true))
	s.NoError(ShortCodec.Serialize(bs, 1))
	s.Equal([]byte{0x01, 0x00, 0x01}, bs.Bytes())
	s.Equal(3, bs.Len())
	bs.Reset()
	s.Equal(0, bs.Len())

	v, rest, err := Unmarshal(ShortCodec, []byte{0x00, 0x02, 0x03})
	s.NoError(err)
	s.Equal(int16(2), v)
	s.Equal([]byte{0x03}, rest)
}

func (s *CodecSuite) TestErrorsPropagate() {
	_, err := VarIntCountedArray(Optional(StringCodec)).Deserialize([]byte{0x01, 0x01, 0x02, 0xc3})
	s.ErrorIs(err, ErrEOF)

	wrapped := errors.Wrap(NewNegativeLengthError(-3), "decode field")
	s.ErrorIs(wrapped, ErrNegativeLength)
	s.NotErrorIs(wrapped, ErrEOF)
	de, ok := AsDeserializeError(wrapped)
	s.True(ok)
	s.Equal(KindNegativeLength, de.Kind)
	s.Equal("negative_length", de.Kind.String())

	s.Contains(NewVarNumTooLongError([]byte{0x80, 0x80}).Error(), "80 80")
	s.Contains(NewFailedJSONDeserializeError("chat", io.ErrUnexpectedEOF).Error(), "unexpected EOF")
	s.ErrorIs(NewFailedJSONEncodeError("chat", nil), ErrFailedJSONEncode)
}

func TestCodec(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}
