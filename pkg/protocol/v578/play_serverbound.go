package v578

import (
	"github.com/google/uuid"

	"github.com/lk2023060901/mcproto-go/pkg/inventory"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

func serverBound(id int32) protocol.ID {
	return protocol.NewID(id, protocol.Play, protocol.ServerBound)
}

type PlayTeleportConfirm struct {
	TeleportID wire.VarInt
}

func (*PlayTeleportConfirm) PacketID() protocol.ID { return serverBound(0x00) }

var playTeleportConfirmBody = protocol.NewBody(
	protocol.Field("teleport_id", wire.VarIntCodec, func(p *PlayTeleportConfirm) *wire.VarInt { return &p.TeleportID }),
)

type PlayQueryBlockNbt struct {
	TransactionID wire.VarInt
	Location      wire.Position
}

func (*PlayQueryBlockNbt) PacketID() protocol.ID { return serverBound(0x01) }

var playQueryBlockNbtBody = protocol.NewBody(
	protocol.Field("transaction_id", wire.VarIntCodec, func(p *PlayQueryBlockNbt) *wire.VarInt { return &p.TransactionID }),
	protocol.Field("location", wire.PositionCodec, func(p *PlayQueryBlockNbt) *wire.Position { return &p.Location }),
)

type PlaySetDifficulty struct {
	NewDifficulty Difficulty
}

func (*PlaySetDifficulty) PacketID() protocol.ID { return serverBound(0x02) }

var playSetDifficultyBody = protocol.NewBody(
	protocol.Field("new_difficulty", DifficultyCodec, func(p *PlaySetDifficulty) *Difficulty { return &p.NewDifficulty }),
)

// PlayClientChatMessage 的内容为原始文本而非 JSON 组件。
type PlayClientChatMessage struct {
	Message string
}

func (*PlayClientChatMessage) PacketID() protocol.ID { return serverBound(0x03) }

var playClientChatMessageBody = protocol.NewBody(
	protocol.Field("message", wire.StringCodec, func(p *PlayClientChatMessage) *string { return &p.Message }),
)

type PlayClientStatus struct {
	Action ClientStatusAction
}

func (*PlayClientStatus) PacketID() protocol.ID { return serverBound(0x04) }

var playClientStatusBody = protocol.NewBody(
	protocol.Field("action", ClientStatusActionCodec, func(p *PlayClientStatus) *ClientStatusAction { return &p.Action }),
)

type PlayClientSettings struct {
	Locale             string
	ViewDistance       int8
	ChatMode           ClientChatMode
	ChatColors         bool
	DisplayedSkinParts ClientDisplayedSkinParts
	MainHand           ClientMainHand
}

func (*PlayClientSettings) PacketID() protocol.ID { return serverBound(0x05) }

var playClientSettingsBody = protocol.NewBody(
	protocol.Field("locale", wire.StringCodec, func(p *PlayClientSettings) *string { return &p.Locale }),
	protocol.Field("view_distance", wire.ByteCodec, func(p *PlayClientSettings) *int8 { return &p.ViewDistance }),
	protocol.Field("chat_mode", ClientChatModeCodec, func(p *PlayClientSettings) *ClientChatMode { return &p.ChatMode }),
	protocol.Field("chat_colors", wire.BoolCodec, func(p *PlayClientSettings) *bool { return &p.ChatColors }),
	protocol.Field("displayed_skin_parts", ClientDisplayedSkinPartsCodec, func(p *PlayClientSettings) *ClientDisplayedSkinParts { return &p.DisplayedSkinParts }),
	protocol.Field("main_hand", ClientMainHandCodec, func(p *PlayClientSettings) *ClientMainHand { return &p.MainHand }),
)

type PlayClickWindow struct {
	WindowID     uint8
	Slot         int16
	Button       int8
	ActionNumber int16
	Mode         InventoryOperationMode
	ClickedItem  *inventory.Slot
}

func (*PlayClickWindow) PacketID() protocol.ID { return serverBound(0x09) }

var playClickWindowBody = protocol.NewBody(
	protocol.Field("window_id", wire.UnsignedByteCodec, func(p *PlayClickWindow) *uint8 { return &p.WindowID }),
	protocol.Field("slot", wire.ShortCodec, func(p *PlayClickWindow) *int16 { return &p.Slot }),
	protocol.Field("button", wire.ByteCodec, func(p *PlayClickWindow) *int8 { return &p.Button }),
	protocol.Field("action_number", wire.ShortCodec, func(p *PlayClickWindow) *int16 { return &p.ActionNumber }),
	protocol.Field("mode", InventoryOperationModeCodec, func(p *PlayClickWindow) *InventoryOperationMode { return &p.Mode }),
	protocol.Field("clicked_item", inventory.OptionalSlotCodec, func(p *PlayClickWindow) **inventory.Slot { return &p.ClickedItem }),
)

type PlayClientPluginMessage struct {
	Channel string
	Data    []byte
}

func (*PlayClientPluginMessage) PacketID() protocol.ID { return serverBound(0x0b) }

var playClientPluginMessageBody = protocol.NewBody(
	protocol.Field("channel", wire.StringCodec, func(p *PlayClientPluginMessage) *string { return &p.Channel }),
	protocol.Field("data", wire.RemainingBytesCodec, func(p *PlayClientPluginMessage) *[]byte { return &p.Data }),
)

type PlayInteractEntity struct {
	EntityID wire.VarInt
	Kind     InteractKind
}

func (*PlayInteractEntity) PacketID() protocol.ID { return serverBound(0x0e) }

var playInteractEntityBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayInteractEntity) *wire.VarInt { return &p.EntityID }),
	protocol.Field("kind", InteractKindCodec, func(p *PlayInteractEntity) *InteractKind { return &p.Kind }),
)

type PlayClientKeepAlive struct {
	ID int64
}

func (*PlayClientKeepAlive) PacketID() protocol.ID { return serverBound(0x0f) }

var playClientKeepAliveBody = protocol.NewBody(
	protocol.Field("id", wire.LongCodec, func(p *PlayClientKeepAlive) *int64 { return &p.ID }),
)

type PlayPlayerPosition struct {
	X        float64
	FeetY    float64
	Z        float64
	OnGround bool
}

func (*PlayPlayerPosition) PacketID() protocol.ID { return serverBound(0x11) }

var playPlayerPositionBody = protocol.NewBody(
	protocol.Field("x", wire.DoubleCodec, func(p *PlayPlayerPosition) *float64 { return &p.X }),
	protocol.Field("feet_y", wire.DoubleCodec, func(p *PlayPlayerPosition) *float64 { return &p.FeetY }),
	protocol.Field("z", wire.DoubleCodec, func(p *PlayPlayerPosition) *float64 { return &p.Z }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayPlayerPosition) *bool { return &p.OnGround }),
)

type PlayClientPlayerPositionAndRotation struct {
	X        float64
	FeetY    float64
	Z        float64
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (*PlayClientPlayerPositionAndRotation) PacketID() protocol.ID { return serverBound(0x12) }

var playClientPlayerPositionAndRotationBody = protocol.NewBody(
	protocol.Field("x", wire.DoubleCodec, func(p *PlayClientPlayerPositionAndRotation) *float64 { return &p.X }),
	protocol.Field("feet_y", wire.DoubleCodec, func(p *PlayClientPlayerPositionAndRotation) *float64 { return &p.FeetY }),
	protocol.Field("z", wire.DoubleCodec, func(p *PlayClientPlayerPositionAndRotation) *float64 { return &p.Z }),
	protocol.Field("yaw", wire.FloatCodec, func(p *PlayClientPlayerPositionAndRotation) *float32 { return &p.Yaw }),
	protocol.Field("pitch", wire.FloatCodec, func(p *PlayClientPlayerPositionAndRotation) *float32 { return &p.Pitch }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayClientPlayerPositionAndRotation) *bool { return &p.OnGround }),
)

type PlayPlayerRotation struct {
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (*PlayPlayerRotation) PacketID() protocol.ID { return serverBound(0x13) }

var playPlayerRotationBody = protocol.NewBody(
	protocol.Field("yaw", wire.FloatCodec, func(p *PlayPlayerRotation) *float32 { return &p.Yaw }),
	protocol.Field("pitch", wire.FloatCodec, func(p *PlayPlayerRotation) *float32 { return &p.Pitch }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayPlayerRotation) *bool { return &p.OnGround }),
)

type PlayPlayerMovement struct {
	OnGround bool
}

func (*PlayPlayerMovement) PacketID() protocol.ID { return serverBound(0x14) }

var playPlayerMovementBody = protocol.NewBody(
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayPlayerMovement) *bool { return &p.OnGround }),
)

type PlayClientPlayerAbilities struct {
	Flags        ClientPlayerAbilities
	FlyingSpeed  float32
	WalkingSpeed float32
}

func (*PlayClientPlayerAbilities) PacketID() protocol.ID { return serverBound(0x19) }

var playClientPlayerAbilitiesBody = protocol.NewBody(
	protocol.Field("flags", ClientPlayerAbilitiesCodec, func(p *PlayClientPlayerAbilities) *ClientPlayerAbilities { return &p.Flags }),
	protocol.Field("flying_speed", wire.FloatCodec, func(p *PlayClientPlayerAbilities) *float32 { return &p.FlyingSpeed }),
	protocol.Field("walking_speed", wire.FloatCodec, func(p *PlayClientPlayerAbilities) *float32 { return &p.WalkingSpeed }),
)

type PlayPlayerDigging struct {
	Status   PlayerDiggingStatus
	Location wire.Position
	Face     DiggingFace
}

func (*PlayPlayerDigging) PacketID() protocol.ID { return serverBound(0x1a) }

var playPlayerDiggingBody = protocol.NewBody(
	protocol.Field("status", PlayerDiggingStatusCodec, func(p *PlayPlayerDigging) *PlayerDiggingStatus { return &p.Status }),
	protocol.Field("location", wire.PositionCodec, func(p *PlayPlayerDigging) *wire.Position { return &p.Location }),
	protocol.Field("face", DiggingFaceCodec, func(p *PlayPlayerDigging) *DiggingFace { return &p.Face }),
)

type PlayEntityAction struct {
	EntityID  wire.VarInt
	Action    EntityActionKind
	JumpBoost wire.VarInt
}

func (*PlayEntityAction) PacketID() protocol.ID { return serverBound(0x1b) }

var playEntityActionBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityAction) *wire.VarInt { return &p.EntityID }),
	protocol.Field("action", EntityActionKindCodec, func(p *PlayEntityAction) *EntityActionKind { return &p.Action }),
	protocol.Field("jump_boost", wire.VarIntCodec, func(p *PlayEntityAction) *wire.VarInt { return &p.JumpBoost }),
)

type PlaySteerVehicle struct {
	Sideways float32
	Forward  float32
	Flags    SteerVehicleFlags
}

func (*PlaySteerVehicle) PacketID() protocol.ID { return serverBound(0x1c) }

var playSteerVehicleBody = protocol.NewBody(
	protocol.Field("sideways", wire.FloatCodec, func(p *PlaySteerVehicle) *float32 { return &p.Sideways }),
	protocol.Field("forward", wire.FloatCodec, func(p *PlaySteerVehicle) *float32 { return &p.Forward }),
	protocol.Field("flags", SteerVehicleFlagsCodec, func(p *PlaySteerVehicle) *SteerVehicleFlags { return &p.Flags }),
)

type PlayClientHeldItemChange struct {
	Slot int16
}

func (*PlayClientHeldItemChange) PacketID() protocol.ID { return serverBound(0x23) }

var playClientHeldItemChangeBody = protocol.NewBody(
	protocol.Field("slot", wire.ShortCodec, func(p *PlayClientHeldItemChange) *int16 { return &p.Slot }),
)

type PlayCreativeInventoryAction struct {
	Slot        int16
	ClickedItem *inventory.Slot
}

func (*PlayCreativeInventoryAction) PacketID() protocol.ID { return serverBound(0x26) }

var playCreativeInventoryActionBody = protocol.NewBody(
	protocol.Field("slot", wire.ShortCodec, func(p *PlayCreativeInventoryAction) *int16 { return &p.Slot }),
	protocol.Field("clicked_item", inventory.OptionalSlotCodec, func(p *PlayCreativeInventoryAction) **inventory.Slot { return &p.ClickedItem }),
)

type PlayClientAnimation struct {
	Hand Hand
}

func (*PlayClientAnimation) PacketID() protocol.ID { return serverBound(0x2a) }

var playClientAnimationBody = protocol.NewBody(
	protocol.Field("hand", HandCodec, func(p *PlayClientAnimation) *Hand { return &p.Hand }),
)

type PlaySpectate struct {
	Target uuid.UUID
}

func (*PlaySpectate) PacketID() protocol.ID { return serverBound(0x2b) }

var playSpectateBody = protocol.NewBody(
	protocol.Field("target", wire.UUIDCodec, func(p *PlaySpectate) *uuid.UUID { return &p.Target }),
)

type PlayBlockPlacement struct {
	Hand            Hand
	Location        wire.Position
	Face            DiggingFace
	CursorPositionX float32
	CursorPositionY float32
	CursorPositionZ float32
	InsideBlock     bool
}

func (*PlayBlockPlacement) PacketID() protocol.ID { return serverBound(0x2c) }

var playBlockPlacementBody = protocol.NewBody(
	protocol.Field("hand", HandCodec, func(p *PlayBlockPlacement) *Hand { return &p.Hand }),
	protocol.Field("location", wire.PositionCodec, func(p *PlayBlockPlacement) *wire.Position { return &p.Location }),
	protocol.Field("face", DiggingFaceCodec, func(p *PlayBlockPlacement) *DiggingFace { return &p.Face }),
	protocol.Field("cursor_position_x", wire.FloatCodec, func(p *PlayBlockPlacement) *float32 { return &p.CursorPositionX }),
	protocol.Field("cursor_position_y", wire.FloatCodec, func(p *PlayBlockPlacement) *float32 { return &p.CursorPositionY }),
	protocol.Field("cursor_position_z", wire.FloatCodec, func(p *PlayBlockPlacement) *float32 { return &p.CursorPositionZ }),
	protocol.Field("inside_block", wire.BoolCodec, func(p *PlayBlockPlacement) *bool { return &p.InsideBlock }),
)

type PlayUseItem struct {
	Hand Hand
}

func (*PlayUseItem) PacketID() protocol.ID { return serverBound(0x2d) }

var playUseItemBody = protocol.NewBody(
	protocol.Field("hand", HandCodec, func(p *PlayUseItem) *Hand { return &p.Hand }),
)
