package wire

// HasFlag 判断 mask 对应的位是否置位。
func HasFlag[T ~uint8](v T, mask uint8) bool {
	return uint8(v)&mask != 0
}

// SetFlag 置位或清除 mask 对应的位。清除总是无条件的，与原值是否置位无关。
func SetFlag[T ~uint8](v T, mask uint8, on bool) T {
	if on {
		return T(uint8(v) | mask)
	}
	return T(uint8(v) &^ mask)
}

// ToggleFlag 翻转 mask 对应的位。
func ToggleFlag[T ~uint8](v T, mask uint8) T {
	return T(uint8(v) ^ mask)
}

// FlagCodec 以单个字节编码位标记集合，所有取值都合法。
func FlagCodec[T ~uint8](name string) Codec[T] {
	return NewCodec[T](name,
		func(to Serializer, v T) error {
			return to.SerializeByte(uint8(v))
		},
		func(data []byte) (Deserialized[T], error) {
			b, err := ReadOneByte(data)
			if err != nil {
				return Deserialized[T]{}, err
			}
			return Ok(T(b.Value), b.Data)
		},
	)
}
