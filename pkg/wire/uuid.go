package wire

import "github.com/google/uuid"

// UUIDCodec 将 UUID 编码为 16 个字节，顺序与 128 位整数的大端序一致，不做分组重排。
var UUIDCodec = NewCodec[uuid.UUID]("UUID",
	func(to Serializer, v uuid.UUID) error {
		return to.SerializeBytes(v[:])
	},
	func(data []byte) (Deserialized[uuid.UUID], error) {
		raw, err := Take(data, 16)
		if err != nil {
			return Deserialized[uuid.UUID]{}, err
		}
		var id uuid.UUID
		copy(id[:], raw.Value)
		return Ok(id, raw.Data)
	},
)
