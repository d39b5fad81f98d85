// Package inventory 实现物品栏格子的编解码。
package inventory

import (
	"fmt"

	"github.com/lk2023060901/mcproto-go/pkg/nbt"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// Slot 为一个非空的物品栏格子：物品编号、数量以及可选的标签树。
type Slot struct {
	ItemID wire.VarInt
	Count  int8
	NBT    *nbt.NamedTag
}

// NewSlot 构造一个不带标签树的格子。
func NewSlot(itemID int32, count int8) Slot {
	return Slot{ItemID: wire.VarInt(itemID), Count: count}
}

// WithNBT 返回附带标签树的副本。
func (s Slot) WithNBT(tag nbt.NamedTag) Slot {
	s.NBT = &tag
	return s
}

func (s Slot) String() string {
	if s.NBT == nil {
		return fmt.Sprintf("Slot{item=%d, count=%d}", s.ItemID, s.Count)
	}
	return fmt.Sprintf("Slot{item=%d, count=%d, nbt=%s}", s.ItemID, s.Count, s.NBT)
}

var (
	// SlotCodec 依次编码物品编号与数量，之后是标签树；没有标签树时写入单个 End 类型字节。
	SlotCodec = wire.NewCodec[Slot]("Slot", serializeSlot, deserializeSlot)

	// OptionalSlotCodec 为带存在标记的格子，nil 表示空格子。
	OptionalSlotCodec = wire.Optional(SlotCodec)
)

func serializeSlot(to wire.Serializer, s Slot) error {
	if err := wire.VarIntCodec.Serialize(to, s.ItemID); err != nil {
		return err
	}
	if err := wire.ByteCodec.Serialize(to, s.Count); err != nil {
		return err
	}
	if s.NBT == nil {
		return to.SerializeByte(byte(nbt.TagEnd))
	}
	return nbt.Encode(to, *s.NBT)
}

// deserializeSlot 读取编号与数量后预读一个字节：为 End 类型时标签树不存在并消费该字节，
// 否则把包含该字节在内的剩余数据交给标签树解码器，由它决定自身长度。
func deserializeSlot(data []byte) (wire.Deserialized[Slot], error) {
	id, err := wire.VarIntCodec.Deserialize(data)
	if err != nil {
		return wire.Deserialized[Slot]{}, err
	}
	count, err := wire.ByteCodec.Deserialize(id.Data)
	if err != nil {
		return wire.Deserialized[Slot]{}, err
	}
	rest := count.Data
	if len(rest) == 0 {
		return wire.Deserialized[Slot]{}, wire.NewEOFError()
	}

	slot := Slot{ItemID: id.Value, Count: count.Value}
	if nbt.TagID(rest[0]) == nbt.TagEnd {
		return wire.Ok(slot, rest[1:])
	}
	tag, err := nbt.DecodeNamedRoot(rest)
	if err != nil {
		return wire.Deserialized[Slot]{}, err
	}
	slot.NBT = &tag.Value
	return wire.Ok(slot, tag.Data)
}
