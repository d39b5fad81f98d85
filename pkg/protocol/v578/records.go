package v578

import (
	"fmt"

	"github.com/lk2023060901/mcproto-go/pkg/inventory"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// BlockChangeHorizontalPosition 为区块内的相对水平坐标，两个 4 位分量打包在一个字节中：高 4 位为 x，低 4 位为 z。
type BlockChangeHorizontalPosition struct {
	RelX uint8
	RelZ uint8
}

func (p BlockChangeHorizontalPosition) Pack() uint8 {
	return (p.RelX&0x0f)<<4 | p.RelZ&0x0f
}

func UnpackHorizontalPosition(b uint8) BlockChangeHorizontalPosition {
	return BlockChangeHorizontalPosition{RelX: b >> 4 & 0x0f, RelZ: b & 0x0f}
}

func (p BlockChangeHorizontalPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.RelX, p.RelZ)
}

var BlockChangeHorizontalPositionCodec = wire.NewCodec[BlockChangeHorizontalPosition]("BlockChangeHorizontalPosition",
	func(to wire.Serializer, p BlockChangeHorizontalPosition) error {
		return to.SerializeByte(p.Pack())
	},
	func(data []byte) (wire.Deserialized[BlockChangeHorizontalPosition], error) {
		b, err := wire.ReadOneByte(data)
		if err != nil {
			return wire.Deserialized[BlockChangeHorizontalPosition]{}, err
		}
		return wire.Map(b, UnpackHorizontalPosition), nil
	},
)

type MultiBlockChangeRecord struct {
	HorizontalPosition BlockChangeHorizontalPosition
	YCoordinate        uint8
	BlockID            wire.VarInt
}

var MultiBlockChangeRecordCodec = protocol.NewBody(
	protocol.Field("horizontal_position", BlockChangeHorizontalPositionCodec, func(r *MultiBlockChangeRecord) *BlockChangeHorizontalPosition { return &r.HorizontalPosition }),
	protocol.Field("y_coordinate", wire.UnsignedByteCodec, func(r *MultiBlockChangeRecord) *uint8 { return &r.YCoordinate }),
	protocol.Field("block_id", wire.VarIntCodec, func(r *MultiBlockChangeRecord) *wire.VarInt { return &r.BlockID }),
).Codec("MultiBlockChangeRecord")

// ExplosionRecord 为相对爆炸中心被破坏的方块偏移。
type ExplosionRecord struct {
	X, Y, Z int8
}

var ExplosionRecordCodec = protocol.NewBody(
	protocol.Field("x", wire.ByteCodec, func(r *ExplosionRecord) *int8 { return &r.X }),
	protocol.Field("y", wire.ByteCodec, func(r *ExplosionRecord) *int8 { return &r.Y }),
	protocol.Field("z", wire.ByteCodec, func(r *ExplosionRecord) *int8 { return &r.Z }),
).Codec("ExplosionRecord")

// TradeSpec 为村民交易列表中的一项。
type TradeSpec struct {
	InputItem1      *inventory.Slot
	OutputItem      *inventory.Slot
	InputItem2      *inventory.Slot
	TradeDisabled   bool
	TradeUses       int32
	MaxTradeUses    int32
	XP              int32
	SpecialPrice    int32
	PriceMultiplier float32
	Demand          int32
}

var TradeSpecCodec = protocol.NewBody(
	protocol.Field("input_item_1", inventory.OptionalSlotCodec, func(t *TradeSpec) **inventory.Slot { return &t.InputItem1 }),
	protocol.Field("output_item", inventory.OptionalSlotCodec, func(t *TradeSpec) **inventory.Slot { return &t.OutputItem }),
	protocol.Field("input_item_2", inventory.OptionalSlotCodec, func(t *TradeSpec) **inventory.Slot { return &t.InputItem2 }),
	protocol.Field("trade_disabled", wire.BoolCodec, func(t *TradeSpec) *bool { return &t.TradeDisabled }),
	protocol.Field("trade_uses", wire.IntCodec, func(t *TradeSpec) *int32 { return &t.TradeUses }),
	protocol.Field("max_trade_uses", wire.IntCodec, func(t *TradeSpec) *int32 { return &t.MaxTradeUses }),
	protocol.Field("xp", wire.IntCodec, func(t *TradeSpec) *int32 { return &t.XP }),
	protocol.Field("special_price", wire.IntCodec, func(t *TradeSpec) *int32 { return &t.SpecialPrice }),
	protocol.Field("price_multiplier", wire.FloatCodec, func(t *TradeSpec) *float32 { return &t.PriceMultiplier }),
	protocol.Field("demand", wire.IntCodec, func(t *TradeSpec) *int32 { return &t.Demand }),
).Codec("TradeSpec")

// WorldBorderAction 为世界边界报文的动作，以 VarInt 标签区分：
//
//	0 SetSize, 1 LerpSize, 2 SetCenter, 3 Initialize, 4 SetWarningTime, 5 SetWarningBlocks
type WorldBorderAction interface {
	isWorldBorderAction()
}

type WorldBorderSetSize struct {
	Diameter float64
}

type WorldBorderLerpSize struct {
	OldDiameter float64
	NewDiameter float64
	Speed       wire.VarLong
}

type WorldBorderSetCenter struct {
	X, Z float64
}

type WorldBorderInitialize struct {
	X                      float64
	Z                      float64
	OldDiameter            float64
	NewDiameter            float64
	Speed                  wire.VarLong
	PortalTeleportBoundary wire.VarLong
	WarningTime            wire.VarInt
	WarningBlocks          wire.VarInt
}

type WorldBorderSetWarningTime struct {
	WarningTime wire.VarInt
}

type WorldBorderSetWarningBlocks struct {
	WarningBlocks wire.VarInt
}

func (WorldBorderSetSize) isWorldBorderAction()          {}
func (WorldBorderLerpSize) isWorldBorderAction()         {}
func (WorldBorderSetCenter) isWorldBorderAction()        {}
func (WorldBorderInitialize) isWorldBorderAction()       {}
func (WorldBorderSetWarningTime) isWorldBorderAction()   {}
func (WorldBorderSetWarningBlocks) isWorldBorderAction() {}

var WorldBorderActionCodec = protocol.Union[WorldBorderAction]("WorldBorderAction", "world border action", protocol.VarIntTag,
	protocol.Case[WorldBorderAction](0x00, protocol.NewBody(
		protocol.Field("diameter", wire.DoubleCodec, func(a *WorldBorderSetSize) *float64 { return &a.Diameter }),
	).Codec("SetSize")),
	protocol.Case[WorldBorderAction](0x01, protocol.NewBody(
		protocol.Field("old_diameter", wire.DoubleCodec, func(a *WorldBorderLerpSize) *float64 { return &a.OldDiameter }),
		protocol.Field("new_diameter", wire.DoubleCodec, func(a *WorldBorderLerpSize) *float64 { return &a.NewDiameter }),
		protocol.Field("speed", wire.VarLongCodec, func(a *WorldBorderLerpSize) *wire.VarLong { return &a.Speed }),
	).Codec("LerpSize")),
	protocol.Case[WorldBorderAction](0x02, protocol.NewBody(
		protocol.Field("x", wire.DoubleCodec, func(a *WorldBorderSetCenter) *float64 { return &a.X }),
		protocol.Field("z", wire.DoubleCodec, func(a *WorldBorderSetCenter) *float64 { return &a.Z }),
	).Codec("SetCenter")),
	protocol.Case[WorldBorderAction](0x03, protocol.NewBody(
		protocol.Field("x", wire.DoubleCodec, func(a *WorldBorderInitialize) *float64 { return &a.X }),
		protocol.Field("z", wire.DoubleCodec, func(a *WorldBorderInitialize) *float64 { return &a.Z }),
		protocol.Field("old_diameter", wire.DoubleCodec, func(a *WorldBorderInitialize) *float64 { return &a.OldDiameter }),
		protocol.Field("new_diameter", wire.DoubleCodec, func(a *WorldBorderInitialize) *float64 { return &a.NewDiameter }),
		protocol.Field("speed", wire.VarLongCodec, func(a *WorldBorderInitialize) *wire.VarLong { return &a.Speed }),
		protocol.Field("portal_teleport_boundary", wire.VarLongCodec, func(a *WorldBorderInitialize) *wire.VarLong { return &a.PortalTeleportBoundary }),
		protocol.Field("warning_time", wire.VarIntCodec, func(a *WorldBorderInitialize) *wire.VarInt { return &a.WarningTime }),
		protocol.Field("warning_blocks", wire.VarIntCodec, func(a *WorldBorderInitialize) *wire.VarInt { return &a.WarningBlocks }),
	).Codec("Initialize")),
	protocol.Case[WorldBorderAction](0x04, protocol.NewBody(
		protocol.Field("warning_time", wire.VarIntCodec, func(a *WorldBorderSetWarningTime) *wire.VarInt { return &a.WarningTime }),
	).Codec("SetWarningTime")),
	protocol.Case[WorldBorderAction](0x05, protocol.NewBody(
		protocol.Field("warning_blocks", wire.VarIntCodec, func(a *WorldBorderSetWarningBlocks) *wire.VarInt { return &a.WarningBlocks }),
	).Codec("SetWarningBlocks")),
)

// InteractKind 为实体交互的类型：0 Interact, 1 Attack, 2 InteractAt。
type InteractKind interface {
	isInteractKind()
}

type Interact struct{}

type Attack struct{}

// InteractAt 携带交互点相对实体的坐标。
type InteractAt struct {
	TargetX float32
	TargetY float32
	TargetZ float32
	Hand    Hand
}

func (Interact) isInteractKind()   {}
func (Attack) isInteractKind()     {}
func (InteractAt) isInteractKind() {}

var InteractKindCodec = protocol.Union[InteractKind]("InteractKind", "entity interact kind", protocol.VarIntTag,
	protocol.EmptyCase[InteractKind, Interact](0x00, "Interact"),
	protocol.EmptyCase[InteractKind, Attack](0x01, "Attack"),
	protocol.Case[InteractKind](0x02, protocol.NewBody(
		protocol.Field("target_x", wire.FloatCodec, func(a *InteractAt) *float32 { return &a.TargetX }),
		protocol.Field("target_y", wire.FloatCodec, func(a *InteractAt) *float32 { return &a.TargetY }),
		protocol.Field("target_z", wire.FloatCodec, func(a *InteractAt) *float32 { return &a.TargetZ }),
		protocol.Field("hand", HandCodec, func(a *InteractAt) *Hand { return &a.Hand }),
	).Codec("InteractAt")),
)
