package v578

import (
	"github.com/google/uuid"

	"github.com/lk2023060901/mcproto-go/pkg/chat"
	"github.com/lk2023060901/mcproto-go/pkg/inventory"
	"github.com/lk2023060901/mcproto-go/pkg/nbt"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

func clientBound(id int32) protocol.ID {
	return protocol.NewID(id, protocol.Play, protocol.ClientBound)
}

type PlaySpawnEntity struct {
	EntityID   wire.VarInt
	ObjectUUID uuid.UUID
	EntityType wire.VarInt
	X, Y, Z    float64
	Pitch      wire.Angle
	Yaw        wire.Angle
	Data       int32
	VelocityX  int16
	VelocityY  int16
	VelocityZ  int16
}

func (*PlaySpawnEntity) PacketID() protocol.ID { return clientBound(0x00) }

var playSpawnEntityBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlaySpawnEntity) *wire.VarInt { return &p.EntityID }),
	protocol.Field("object_uuid", wire.UUIDCodec, func(p *PlaySpawnEntity) *uuid.UUID { return &p.ObjectUUID }),
	protocol.Field("entity_type", wire.VarIntCodec, func(p *PlaySpawnEntity) *wire.VarInt { return &p.EntityType }),
	protocol.Field("x", wire.DoubleCodec, func(p *PlaySpawnEntity) *float64 { return &p.X }),
	protocol.Field("y", wire.DoubleCodec, func(p *PlaySpawnEntity) *float64 { return &p.Y }),
	protocol.Field("z", wire.DoubleCodec, func(p *PlaySpawnEntity) *float64 { return &p.Z }),
	protocol.Field("pitch", wire.AngleCodec, func(p *PlaySpawnEntity) *wire.Angle { return &p.Pitch }),
	protocol.Field("yaw", wire.AngleCodec, func(p *PlaySpawnEntity) *wire.Angle { return &p.Yaw }),
	protocol.Field("data", wire.IntCodec, func(p *PlaySpawnEntity) *int32 { return &p.Data }),
	protocol.Field("velocity_x", wire.ShortCodec, func(p *PlaySpawnEntity) *int16 { return &p.VelocityX }),
	protocol.Field("velocity_y", wire.ShortCodec, func(p *PlaySpawnEntity) *int16 { return &p.VelocityY }),
	protocol.Field("velocity_z", wire.ShortCodec, func(p *PlaySpawnEntity) *int16 { return &p.VelocityZ }),
)

type PlayEntityAnimation struct {
	EntityID  wire.VarInt
	Animation EntityAnimationKind
}

func (*PlayEntityAnimation) PacketID() protocol.ID { return clientBound(0x06) }

var playEntityAnimationBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityAnimation) *wire.VarInt { return &p.EntityID }),
	protocol.Field("animation", EntityAnimationKindCodec, func(p *PlayEntityAnimation) *EntityAnimationKind { return &p.Animation }),
)

type PlayBlockEntityData struct {
	Location wire.Position
	Action   BlockEntityDataAction
	NBTData  nbt.NamedTag
}

func (*PlayBlockEntityData) PacketID() protocol.ID { return clientBound(0x0a) }

var playBlockEntityDataBody = protocol.NewBody(
	protocol.Field("location", wire.PositionCodec, func(p *PlayBlockEntityData) *wire.Position { return &p.Location }),
	protocol.Field("action", BlockEntityDataActionCodec, func(p *PlayBlockEntityData) *BlockEntityDataAction { return &p.Action }),
	protocol.Field("nbt_data", nbt.NamedTagCodec, func(p *PlayBlockEntityData) *nbt.NamedTag { return &p.NBTData }),
)

type PlayBlockChange struct {
	Location wire.Position
	BlockID  wire.VarInt
}

func (*PlayBlockChange) PacketID() protocol.ID { return clientBound(0x0c) }

var playBlockChangeBody = protocol.NewBody(
	protocol.Field("location", wire.PositionCodec, func(p *PlayBlockChange) *wire.Position { return &p.Location }),
	protocol.Field("block_id", wire.VarIntCodec, func(p *PlayBlockChange) *wire.VarInt { return &p.BlockID }),
)

type PlayServerDifficulty struct {
	Difficulty Difficulty
	Locked     bool
}

func (*PlayServerDifficulty) PacketID() protocol.ID { return clientBound(0x0e) }

var playServerDifficultyBody = protocol.NewBody(
	protocol.Field("difficulty", DifficultyCodec, func(p *PlayServerDifficulty) *Difficulty { return &p.Difficulty }),
	protocol.Field("locked", wire.BoolCodec, func(p *PlayServerDifficulty) *bool { return &p.Locked }),
)

type PlayServerChatMessage struct {
	Message  chat.Message
	Position ChatPosition
}

func (*PlayServerChatMessage) PacketID() protocol.ID { return clientBound(0x0f) }

var playServerChatMessageBody = protocol.NewBody(
	protocol.Field("message", chat.Codec, func(p *PlayServerChatMessage) *chat.Message { return &p.Message }),
	protocol.Field("position", ChatPositionCodec, func(p *PlayServerChatMessage) *ChatPosition { return &p.Position }),
)

type PlayMultiBlockChange struct {
	ChunkX  int32
	ChunkZ  int32
	Changes []MultiBlockChangeRecord
}

func (*PlayMultiBlockChange) PacketID() protocol.ID { return clientBound(0x10) }

var playMultiBlockChangeBody = protocol.NewBody(
	protocol.Field("chunk_x", wire.IntCodec, func(p *PlayMultiBlockChange) *int32 { return &p.ChunkX }),
	protocol.Field("chunk_z", wire.IntCodec, func(p *PlayMultiBlockChange) *int32 { return &p.ChunkZ }),
	protocol.Field("changes", wire.VarIntCountedArray(MultiBlockChangeRecordCodec), func(p *PlayMultiBlockChange) *[]MultiBlockChangeRecord { return &p.Changes }),
)

// PlayWindowItems 中的空格子为 nil。
type PlayWindowItems struct {
	WindowID uint8
	Slots    []*inventory.Slot
}

func (*PlayWindowItems) PacketID() protocol.ID { return clientBound(0x15) }

var playWindowItemsBody = protocol.NewBody(
	protocol.Field("window_id", wire.UnsignedByteCodec, func(p *PlayWindowItems) *uint8 { return &p.WindowID }),
	protocol.Field("slots", wire.ShortCountedArray(inventory.OptionalSlotCodec), func(p *PlayWindowItems) *[]*inventory.Slot { return &p.Slots }),
)

type PlaySetSlot struct {
	WindowID uint8
	Slot     int16
	SlotData *inventory.Slot
}

func (*PlaySetSlot) PacketID() protocol.ID { return clientBound(0x17) }

var playSetSlotBody = protocol.NewBody(
	protocol.Field("window_id", wire.UnsignedByteCodec, func(p *PlaySetSlot) *uint8 { return &p.WindowID }),
	protocol.Field("slot", wire.ShortCodec, func(p *PlaySetSlot) *int16 { return &p.Slot }),
	protocol.Field("slot_data", inventory.OptionalSlotCodec, func(p *PlaySetSlot) **inventory.Slot { return &p.SlotData }),
)

type PlayServerPluginMessage struct {
	Channel string
	Data    []byte
}

func (*PlayServerPluginMessage) PacketID() protocol.ID { return clientBound(0x19) }

var playServerPluginMessageBody = protocol.NewBody(
	protocol.Field("channel", wire.StringCodec, func(p *PlayServerPluginMessage) *string { return &p.Channel }),
	protocol.Field("data", wire.RemainingBytesCodec, func(p *PlayServerPluginMessage) *[]byte { return &p.Data }),
)

// PlayNamedSoundEffect 的坐标为 3 位小数位的定点数。
type PlayNamedSoundEffect struct {
	SoundName     string
	SoundCategory SoundCategory
	PositionX     wire.FixedInt
	PositionY     wire.FixedInt
	PositionZ     wire.FixedInt
	Volume        float32
	Pitch         float32
}

func (*PlayNamedSoundEffect) PacketID() protocol.ID { return clientBound(0x1a) }

var playNamedSoundEffectBody = protocol.NewBody(
	protocol.Field("sound_name", wire.StringCodec, func(p *PlayNamedSoundEffect) *string { return &p.SoundName }),
	protocol.Field("sound_category", SoundCategoryCodec, func(p *PlayNamedSoundEffect) *SoundCategory { return &p.SoundCategory }),
	protocol.Field("position_x", wire.FixedIntCodec, func(p *PlayNamedSoundEffect) *wire.FixedInt { return &p.PositionX }),
	protocol.Field("position_y", wire.FixedIntCodec, func(p *PlayNamedSoundEffect) *wire.FixedInt { return &p.PositionY }),
	protocol.Field("position_z", wire.FixedIntCodec, func(p *PlayNamedSoundEffect) *wire.FixedInt { return &p.PositionZ }),
	protocol.Field("volume", wire.FloatCodec, func(p *PlayNamedSoundEffect) *float32 { return &p.Volume }),
	protocol.Field("pitch", wire.FloatCodec, func(p *PlayNamedSoundEffect) *float32 { return &p.Pitch }),
)

type PlayDisconnect struct {
	Reason chat.Message
}

func (*PlayDisconnect) PacketID() protocol.ID { return clientBound(0x1b) }

var playDisconnectBody = protocol.NewBody(
	protocol.Field("reason", chat.Codec, func(p *PlayDisconnect) *chat.Message { return &p.Reason }),
)

type PlayExplosion struct {
	X, Y, Z       float32
	Strength      float32
	Records       []ExplosionRecord
	PlayerMotionX float32
	PlayerMotionY float32
	PlayerMotionZ float32
}

func (*PlayExplosion) PacketID() protocol.ID { return clientBound(0x1d) }

var playExplosionBody = protocol.NewBody(
	protocol.Field("x", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.X }),
	protocol.Field("y", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.Y }),
	protocol.Field("z", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.Z }),
	protocol.Field("strength", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.Strength }),
	protocol.Field("records", wire.IntCountedArray(ExplosionRecordCodec), func(p *PlayExplosion) *[]ExplosionRecord { return &p.Records }),
	protocol.Field("player_motion_x", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.PlayerMotionX }),
	protocol.Field("player_motion_y", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.PlayerMotionY }),
	protocol.Field("player_motion_z", wire.FloatCodec, func(p *PlayExplosion) *float32 { return &p.PlayerMotionZ }),
)

type PlayUnloadChunk struct {
	X int32
	Z int32
}

func (*PlayUnloadChunk) PacketID() protocol.ID { return clientBound(0x1e) }

var playUnloadChunkBody = protocol.NewBody(
	protocol.Field("x", wire.IntCodec, func(p *PlayUnloadChunk) *int32 { return &p.X }),
	protocol.Field("z", wire.IntCodec, func(p *PlayUnloadChunk) *int32 { return &p.Z }),
)

type PlayServerKeepAlive struct {
	ID int64
}

func (*PlayServerKeepAlive) PacketID() protocol.ID { return clientBound(0x21) }

var playServerKeepAliveBody = protocol.NewBody(
	protocol.Field("id", wire.LongCodec, func(p *PlayServerKeepAlive) *int64 { return &p.ID }),
)

type PlayJoinGame struct {
	EntityID            int32
	GameMode            GameMode
	Dimension           Dimension
	HashedSeed          int64
	MaxPlayers          uint8
	LevelType           string
	ViewDistance        wire.VarInt
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
}

func (*PlayJoinGame) PacketID() protocol.ID { return clientBound(0x26) }

var playJoinGameBody = protocol.NewBody(
	protocol.Field("entity_id", wire.IntCodec, func(p *PlayJoinGame) *int32 { return &p.EntityID }),
	protocol.Field("gamemode", GameModeCodec, func(p *PlayJoinGame) *GameMode { return &p.GameMode }),
	protocol.Field("dimension", DimensionCodec, func(p *PlayJoinGame) *Dimension { return &p.Dimension }),
	protocol.Field("hashed_seed", wire.LongCodec, func(p *PlayJoinGame) *int64 { return &p.HashedSeed }),
	protocol.Field("max_players", wire.UnsignedByteCodec, func(p *PlayJoinGame) *uint8 { return &p.MaxPlayers }),
	protocol.Field("level_type", wire.StringCodec, func(p *PlayJoinGame) *string { return &p.LevelType }),
	protocol.Field("view_distance", wire.VarIntCodec, func(p *PlayJoinGame) *wire.VarInt { return &p.ViewDistance }),
	protocol.Field("reduced_debug_info", wire.BoolCodec, func(p *PlayJoinGame) *bool { return &p.ReducedDebugInfo }),
	protocol.Field("enable_respawn_screen", wire.BoolCodec, func(p *PlayJoinGame) *bool { return &p.EnableRespawnScreen }),
)

type PlayTradeList struct {
	WindowID        wire.VarInt
	Trades          []TradeSpec
	VillagerLevel   wire.VarInt
	Experience      wire.VarInt
	RegularVillager bool
	CanRestock      bool
}

func (*PlayTradeList) PacketID() protocol.ID { return clientBound(0x28) }

var playTradeListBody = protocol.NewBody(
	protocol.Field("window_id", wire.VarIntCodec, func(p *PlayTradeList) *wire.VarInt { return &p.WindowID }),
	protocol.Field("trades", wire.ByteCountedArray(TradeSpecCodec), func(p *PlayTradeList) *[]TradeSpec { return &p.Trades }),
	protocol.Field("villager_level", wire.VarIntCodec, func(p *PlayTradeList) *wire.VarInt { return &p.VillagerLevel }),
	protocol.Field("experience", wire.VarIntCodec, func(p *PlayTradeList) *wire.VarInt { return &p.Experience }),
	protocol.Field("regular_villager", wire.BoolCodec, func(p *PlayTradeList) *bool { return &p.RegularVillager }),
	protocol.Field("can_restock", wire.BoolCodec, func(p *PlayTradeList) *bool { return &p.CanRestock }),
)

// PlayEntityPosition 的位移单位为 1/4096 格。
type PlayEntityPosition struct {
	EntityID wire.VarInt
	DeltaX   int16
	DeltaY   int16
	DeltaZ   int16
	OnGround bool
}

func (*PlayEntityPosition) PacketID() protocol.ID { return clientBound(0x29) }

var playEntityPositionBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityPosition) *wire.VarInt { return &p.EntityID }),
	protocol.Field("delta_x", wire.ShortCodec, func(p *PlayEntityPosition) *int16 { return &p.DeltaX }),
	protocol.Field("delta_y", wire.ShortCodec, func(p *PlayEntityPosition) *int16 { return &p.DeltaY }),
	protocol.Field("delta_z", wire.ShortCodec, func(p *PlayEntityPosition) *int16 { return &p.DeltaZ }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayEntityPosition) *bool { return &p.OnGround }),
)

type PlayEntityPositionAndRotation struct {
	EntityID wire.VarInt
	DeltaX   int16
	DeltaY   int16
	DeltaZ   int16
	Yaw      wire.Angle
	Pitch    wire.Angle
	OnGround bool
}

func (*PlayEntityPositionAndRotation) PacketID() protocol.ID { return clientBound(0x2a) }

var playEntityPositionAndRotationBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityPositionAndRotation) *wire.VarInt { return &p.EntityID }),
	protocol.Field("delta_x", wire.ShortCodec, func(p *PlayEntityPositionAndRotation) *int16 { return &p.DeltaX }),
	protocol.Field("delta_y", wire.ShortCodec, func(p *PlayEntityPositionAndRotation) *int16 { return &p.DeltaY }),
	protocol.Field("delta_z", wire.ShortCodec, func(p *PlayEntityPositionAndRotation) *int16 { return &p.DeltaZ }),
	protocol.Field("yaw", wire.AngleCodec, func(p *PlayEntityPositionAndRotation) *wire.Angle { return &p.Yaw }),
	protocol.Field("pitch", wire.AngleCodec, func(p *PlayEntityPositionAndRotation) *wire.Angle { return &p.Pitch }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayEntityPositionAndRotation) *bool { return &p.OnGround }),
)

type PlayEntityRotation struct {
	EntityID wire.VarInt
	Yaw      wire.Angle
	Pitch    wire.Angle
	OnGround bool
}

func (*PlayEntityRotation) PacketID() protocol.ID { return clientBound(0x2b) }

var playEntityRotationBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityRotation) *wire.VarInt { return &p.EntityID }),
	protocol.Field("yaw", wire.AngleCodec, func(p *PlayEntityRotation) *wire.Angle { return &p.Yaw }),
	protocol.Field("pitch", wire.AngleCodec, func(p *PlayEntityRotation) *wire.Angle { return &p.Pitch }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayEntityRotation) *bool { return &p.OnGround }),
)

type PlayServerPlayerAbilities struct {
	Flags               PlayerAbilityFlags
	FlyingSpeed         float32
	FieldOfViewModifier float32
}

func (*PlayServerPlayerAbilities) PacketID() protocol.ID { return clientBound(0x32) }

var playServerPlayerAbilitiesBody = protocol.NewBody(
	protocol.Field("flags", PlayerAbilityFlagsCodec, func(p *PlayServerPlayerAbilities) *PlayerAbilityFlags { return &p.Flags }),
	protocol.Field("flying_speed", wire.FloatCodec, func(p *PlayServerPlayerAbilities) *float32 { return &p.FlyingSpeed }),
	protocol.Field("field_of_view_modifier", wire.FloatCodec, func(p *PlayServerPlayerAbilities) *float32 { return &p.FieldOfViewModifier }),
)

type PlayServerPlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw        float32
	Pitch      float32
	Flags      PositionAndLookFlags
	TeleportID wire.VarInt
}

func (*PlayServerPlayerPositionAndLook) PacketID() protocol.ID { return clientBound(0x36) }

var playServerPlayerPositionAndLookBody = protocol.NewBody(
	protocol.Field("x", wire.DoubleCodec, func(p *PlayServerPlayerPositionAndLook) *float64 { return &p.X }),
	protocol.Field("y", wire.DoubleCodec, func(p *PlayServerPlayerPositionAndLook) *float64 { return &p.Y }),
	protocol.Field("z", wire.DoubleCodec, func(p *PlayServerPlayerPositionAndLook) *float64 { return &p.Z }),
	protocol.Field("yaw", wire.FloatCodec, func(p *PlayServerPlayerPositionAndLook) *float32 { return &p.Yaw }),
	protocol.Field("pitch", wire.FloatCodec, func(p *PlayServerPlayerPositionAndLook) *float32 { return &p.Pitch }),
	protocol.Field("flags", PositionAndLookFlagsCodec, func(p *PlayServerPlayerPositionAndLook) *PositionAndLookFlags { return &p.Flags }),
	protocol.Field("teleport_id", wire.VarIntCodec, func(p *PlayServerPlayerPositionAndLook) *wire.VarInt { return &p.TeleportID }),
)

type PlayDestroyEntities struct {
	EntityIDs []wire.VarInt
}

func (*PlayDestroyEntities) PacketID() protocol.ID { return clientBound(0x38) }

var playDestroyEntitiesBody = protocol.NewBody(
	protocol.Field("entity_ids", wire.VarIntCountedArray(wire.VarIntCodec), func(p *PlayDestroyEntities) *[]wire.VarInt { return &p.EntityIDs }),
)

type PlayEntityHeadLook struct {
	EntityID wire.VarInt
	HeadYaw  wire.Angle
}

func (*PlayEntityHeadLook) PacketID() protocol.ID { return clientBound(0x3c) }

var playEntityHeadLookBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityHeadLook) *wire.VarInt { return &p.EntityID }),
	protocol.Field("head_yaw", wire.AngleCodec, func(p *PlayEntityHeadLook) *wire.Angle { return &p.HeadYaw }),
)

// PlaySelectAdvancementTab 的 Identifier 为 nil 时表示关闭进度界面。
type PlaySelectAdvancementTab struct {
	Identifier *string
}

func (*PlaySelectAdvancementTab) PacketID() protocol.ID { return clientBound(0x3d) }

var playSelectAdvancementTabBody = protocol.NewBody(
	protocol.Field("identifier", wire.Optional(wire.StringCodec), func(p *PlaySelectAdvancementTab) **string { return &p.Identifier }),
)

type PlayWorldBorder struct {
	Action WorldBorderAction
}

func (*PlayWorldBorder) PacketID() protocol.ID { return clientBound(0x3e) }

var playWorldBorderBody = protocol.NewBody(
	protocol.Field("action", WorldBorderActionCodec, func(p *PlayWorldBorder) *WorldBorderAction { return &p.Action }),
)

type PlayServerHeldItemChange struct {
	Slot int8
}

func (*PlayServerHeldItemChange) PacketID() protocol.ID { return clientBound(0x40) }

var playServerHeldItemChangeBody = protocol.NewBody(
	protocol.Field("slot", wire.ByteCodec, func(p *PlayServerHeldItemChange) *int8 { return &p.Slot }),
)

type PlayEntityEquipment struct {
	EntityID wire.VarInt
	Slot     EquipmentSlot
	Item     *inventory.Slot
}

func (*PlayEntityEquipment) PacketID() protocol.ID { return clientBound(0x47) }

var playEntityEquipmentBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityEquipment) *wire.VarInt { return &p.EntityID }),
	protocol.Field("slot", EquipmentSlotCodec, func(p *PlayEntityEquipment) *EquipmentSlot { return &p.Slot }),
	protocol.Field("item", inventory.OptionalSlotCodec, func(p *PlayEntityEquipment) **inventory.Slot { return &p.Item }),
)

type PlayUpdateHealth struct {
	Health     float32
	Food       wire.VarInt
	Saturation float32
}

func (*PlayUpdateHealth) PacketID() protocol.ID { return clientBound(0x49) }

var playUpdateHealthBody = protocol.NewBody(
	protocol.Field("health", wire.FloatCodec, func(p *PlayUpdateHealth) *float32 { return &p.Health }),
	protocol.Field("food", wire.VarIntCodec, func(p *PlayUpdateHealth) *wire.VarInt { return &p.Food }),
	protocol.Field("saturation", wire.FloatCodec, func(p *PlayUpdateHealth) *float32 { return &p.Saturation }),
)

type PlayTimeUpdate struct {
	WorldAge  int64
	TimeOfDay int64
}

func (*PlayTimeUpdate) PacketID() protocol.ID { return clientBound(0x4f) }

var playTimeUpdateBody = protocol.NewBody(
	protocol.Field("world_age", wire.LongCodec, func(p *PlayTimeUpdate) *int64 { return &p.WorldAge }),
	protocol.Field("time_of_day", wire.LongCodec, func(p *PlayTimeUpdate) *int64 { return &p.TimeOfDay }),
)

type PlaySoundEffect struct {
	SoundID       wire.VarInt
	SoundCategory SoundCategory
	PositionX     wire.FixedInt
	PositionY     wire.FixedInt
	PositionZ     wire.FixedInt
	Volume        float32
	Pitch         float32
}

func (*PlaySoundEffect) PacketID() protocol.ID { return clientBound(0x52) }

var playSoundEffectBody = protocol.NewBody(
	protocol.Field("sound_id", wire.VarIntCodec, func(p *PlaySoundEffect) *wire.VarInt { return &p.SoundID }),
	protocol.Field("sound_category", SoundCategoryCodec, func(p *PlaySoundEffect) *SoundCategory { return &p.SoundCategory }),
	protocol.Field("position_x", wire.FixedIntCodec, func(p *PlaySoundEffect) *wire.FixedInt { return &p.PositionX }),
	protocol.Field("position_y", wire.FixedIntCodec, func(p *PlaySoundEffect) *wire.FixedInt { return &p.PositionY }),
	protocol.Field("position_z", wire.FixedIntCodec, func(p *PlaySoundEffect) *wire.FixedInt { return &p.PositionZ }),
	protocol.Field("volume", wire.FloatCodec, func(p *PlaySoundEffect) *float32 { return &p.Volume }),
	protocol.Field("pitch", wire.FloatCodec, func(p *PlaySoundEffect) *float32 { return &p.Pitch }),
)

type PlayNbtQueryResponse struct {
	TransactionID wire.VarInt
	NBT           nbt.NamedTag
}

func (*PlayNbtQueryResponse) PacketID() protocol.ID { return clientBound(0x55) }

var playNbtQueryResponseBody = protocol.NewBody(
	protocol.Field("transaction_id", wire.VarIntCodec, func(p *PlayNbtQueryResponse) *wire.VarInt { return &p.TransactionID }),
	protocol.Field("nbt", nbt.NamedTagCodec, func(p *PlayNbtQueryResponse) *nbt.NamedTag { return &p.NBT }),
)

type PlayEntityTeleport struct {
	EntityID wire.VarInt
	X, Y, Z  float64
	Yaw      wire.Angle
	Pitch    wire.Angle
	OnGround bool
}

func (*PlayEntityTeleport) PacketID() protocol.ID { return clientBound(0x57) }

var playEntityTeleportBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityTeleport) *wire.VarInt { return &p.EntityID }),
	protocol.Field("x", wire.DoubleCodec, func(p *PlayEntityTeleport) *float64 { return &p.X }),
	protocol.Field("y", wire.DoubleCodec, func(p *PlayEntityTeleport) *float64 { return &p.Y }),
	protocol.Field("z", wire.DoubleCodec, func(p *PlayEntityTeleport) *float64 { return &p.Z }),
	protocol.Field("yaw", wire.AngleCodec, func(p *PlayEntityTeleport) *wire.Angle { return &p.Yaw }),
	protocol.Field("pitch", wire.AngleCodec, func(p *PlayEntityTeleport) *wire.Angle { return &p.Pitch }),
	protocol.Field("on_ground", wire.BoolCodec, func(p *PlayEntityTeleport) *bool { return &p.OnGround }),
)

type PlayEntityEffect struct {
	EntityID      wire.VarInt
	EffectID      EntityEffectKind
	Amplifier     int8
	DurationTicks wire.VarInt
	Flags         EntityEffectFlags
}

func (*PlayEntityEffect) PacketID() protocol.ID { return clientBound(0x5a) }

var playEntityEffectBody = protocol.NewBody(
	protocol.Field("entity_id", wire.VarIntCodec, func(p *PlayEntityEffect) *wire.VarInt { return &p.EntityID }),
	protocol.Field("effect_id", EntityEffectKindCodec, func(p *PlayEntityEffect) *EntityEffectKind { return &p.EffectID }),
	protocol.Field("amplifier", wire.ByteCodec, func(p *PlayEntityEffect) *int8 { return &p.Amplifier }),
	protocol.Field("duration_ticks", wire.VarIntCodec, func(p *PlayEntityEffect) *wire.VarInt { return &p.DurationTicks }),
	protocol.Field("flags", EntityEffectFlagsCodec, func(p *PlayEntityEffect) *EntityEffectFlags { return &p.Flags }),
)
