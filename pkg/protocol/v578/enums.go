package v578

import (
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// HandshakeNextState 为握手后要进入的状态。
type HandshakeNextState uint8

const (
	NextStateStatus HandshakeNextState = 0x01
	NextStateLogin  HandshakeNextState = 0x02
)

var handshakeNextStates = wire.NewEnumTable("HandshakeNextState",
	wire.Entry(NextStateStatus, "Status"),
	wire.Entry(NextStateLogin, "Login"),
)

var HandshakeNextStateCodec = wire.ByteEnum(handshakeNextStates)

func (v HandshakeNextState) String() string { return handshakeNextStates.Format(v) }

type EntityAnimationKind uint8

const (
	AnimationSwingMainArm EntityAnimationKind = iota
	AnimationTakeDamage
	AnimationLeaveBed
	AnimationSwingOffHand
	AnimationCriticalEffect
	AnimationMagicCriticalEffect
)

var entityAnimationKinds = wire.NewEnumTable("EntityAnimationKind",
	wire.Entry(AnimationSwingMainArm, "SwingMainArm"),
	wire.Entry(AnimationTakeDamage, "TakeDamage"),
	wire.Entry(AnimationLeaveBed, "LeaveBed"),
	wire.Entry(AnimationSwingOffHand, "SwingOffHand"),
	wire.Entry(AnimationCriticalEffect, "CriticalEffect"),
	wire.Entry(AnimationMagicCriticalEffect, "MagicCriticalEffect"),
)

var EntityAnimationKindCodec = wire.ByteEnum(entityAnimationKinds)

func (v EntityAnimationKind) String() string { return entityAnimationKinds.Format(v) }

// BlockEntityDataAction 标识方块实体数据的用途，0x0a 未被使用。
type BlockEntityDataAction uint8

const (
	BlockEntitySetMobSpawnerData          BlockEntityDataAction = 0x01
	BlockEntitySetCommandBlockText        BlockEntityDataAction = 0x02
	BlockEntitySetBeaconLevelAndPower     BlockEntityDataAction = 0x03
	BlockEntitySetMobHeadRotationAndSkin  BlockEntityDataAction = 0x04
	BlockEntityDeclareConduit             BlockEntityDataAction = 0x05
	BlockEntitySetBannerColorAndPatterns  BlockEntityDataAction = 0x06
	BlockEntitySetStructureTileEntityData BlockEntityDataAction = 0x07
	BlockEntitySetEndGatewayDestination   BlockEntityDataAction = 0x08
	BlockEntitySetSignText                BlockEntityDataAction = 0x09
	BlockEntityDeclareBed                 BlockEntityDataAction = 0x0b
	BlockEntitySetJigsawBlockData         BlockEntityDataAction = 0x0c
	BlockEntitySetCampfireItems           BlockEntityDataAction = 0x0d
	BlockEntityBeehiveInformation         BlockEntityDataAction = 0x0e
)

var blockEntityDataActions = wire.NewEnumTable("BlockEntityDataAction",
	wire.Entry(BlockEntitySetMobSpawnerData, "SetMobSpawnerData"),
	wire.Entry(BlockEntitySetCommandBlockText, "SetCommandBlockText"),
	wire.Entry(BlockEntitySetBeaconLevelAndPower, "SetBeaconLevelAndPower"),
	wire.Entry(BlockEntitySetMobHeadRotationAndSkin, "SetMobHeadRotationAndSkin"),
	wire.Entry(BlockEntityDeclareConduit, "DeclareConduit"),
	wire.Entry(BlockEntitySetBannerColorAndPatterns, "SetBannerColorAndPatterns"),
	wire.Entry(BlockEntitySetStructureTileEntityData, "SetStructureTileEntityData"),
	wire.Entry(BlockEntitySetEndGatewayDestination, "SetEndGatewayDestination"),
	wire.Entry(BlockEntitySetSignText, "SetSignText"),
	wire.Entry(BlockEntityDeclareBed, "DeclareBed"),
	wire.Entry(BlockEntitySetJigsawBlockData, "SetJigsawBlockData"),
	wire.Entry(BlockEntitySetCampfireItems, "SetCampfireItems"),
	wire.Entry(BlockEntityBeehiveInformation, "BeehiveInformation"),
)

var BlockEntityDataActionCodec = wire.ByteEnum(blockEntityDataActions)

func (v BlockEntityDataAction) String() string { return blockEntityDataActions.Format(v) }

type Difficulty uint8

const (
	DifficultyPeaceful Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
)

var difficulties = wire.NewEnumTable("Difficulty",
	wire.Entry(DifficultyPeaceful, "Peaceful"),
	wire.Entry(DifficultyEasy, "Easy"),
	wire.Entry(DifficultyNormal, "Normal"),
	wire.Entry(DifficultyHard, "Hard"),
)

var DifficultyCodec = wire.ByteEnum(difficulties)

func (v Difficulty) String() string { return difficulties.Format(v) }

// ParseDifficulty 按名字查找难度，例如 "Hard"。
func ParseDifficulty(name string) (Difficulty, bool) { return difficulties.Parse(name) }

type ChatPosition uint8

const (
	ChatBox ChatPosition = iota
	ChatSystemMessage
	ChatHotbar
)

var chatPositions = wire.NewEnumTable("ChatPosition",
	wire.Entry(ChatBox, "ChatBox"),
	wire.Entry(ChatSystemMessage, "SystemMessage"),
	wire.Entry(ChatHotbar, "Hotbar"),
)

var ChatPositionCodec = wire.ByteEnum(chatPositions)

func (v ChatPosition) String() string { return chatPositions.Format(v) }

type SoundCategory int32

const (
	SoundMaster SoundCategory = iota
	SoundMusic
	SoundRecords
	SoundWeather
	SoundBlock
	SoundHostile
	SoundNeutral
	SoundPlayer
	SoundAmbient
	SoundVoice
)

var soundCategories = wire.NewEnumTable("SoundCategory",
	wire.Entry(SoundMaster, "Master"),
	wire.Entry(SoundMusic, "Music"),
	wire.Entry(SoundRecords, "Records"),
	wire.Entry(SoundWeather, "Weather"),
	wire.Entry(SoundBlock, "Block"),
	wire.Entry(SoundHostile, "Hostile"),
	wire.Entry(SoundNeutral, "Neutral"),
	wire.Entry(SoundPlayer, "Player"),
	wire.Entry(SoundAmbient, "Ambient"),
	wire.Entry(SoundVoice, "Voice"),
)

var SoundCategoryCodec = wire.VarIntEnum(soundCategories)

func (v SoundCategory) String() string { return soundCategories.Format(v) }

type GameMode uint8

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSpectator
)

var gameModes = wire.NewEnumTable("GameMode",
	wire.Entry(GameModeSurvival, "Survival"),
	wire.Entry(GameModeCreative, "Creative"),
	wire.Entry(GameModeAdventure, "Adventure"),
	wire.Entry(GameModeSpectator, "Spectator"),
)

var GameModeCodec = wire.ByteEnum(gameModes)

func (v GameMode) String() string { return gameModes.Format(v) }

// Dimension 以 4 字节有符号整数编码，下界为 -1。
type Dimension int32

const (
	DimensionNether    Dimension = -1
	DimensionOverworld Dimension = 0
	DimensionEnd       Dimension = 1
)

var dimensions = wire.NewEnumTable("Dimension",
	wire.Entry(DimensionNether, "Nether"),
	wire.Entry(DimensionOverworld, "Overworld"),
	wire.Entry(DimensionEnd, "End"),
)

var DimensionCodec = wire.IntEnum(dimensions)

func (v Dimension) String() string { return dimensions.Format(v) }

type Hand int32

const (
	MainHand Hand = iota
	OffHand
)

var hands = wire.NewEnumTable("Hand",
	wire.Entry(MainHand, "MainHand"),
	wire.Entry(OffHand, "OffHand"),
)

var HandCodec = wire.VarIntEnum(hands)

func (v Hand) String() string { return hands.Format(v) }

type EquipmentSlot int32

const (
	EquipmentMainHand EquipmentSlot = iota
	EquipmentOffHand
	EquipmentArmorBoots
	EquipmentArmorLeggings
	EquipmentArmorChestplate
	EquipmentArmorHelmet
)

var equipmentSlots = wire.NewEnumTable("EquipmentSlot",
	wire.Entry(EquipmentMainHand, "MainHand"),
	wire.Entry(EquipmentOffHand, "OffHand"),
	wire.Entry(EquipmentArmorBoots, "ArmorBoots"),
	wire.Entry(EquipmentArmorLeggings, "ArmorLeggings"),
	wire.Entry(EquipmentArmorChestplate, "ArmorChestplate"),
	wire.Entry(EquipmentArmorHelmet, "ArmorHelmet"),
)

var EquipmentSlotCodec = wire.VarIntEnum(equipmentSlots)

func (v EquipmentSlot) String() string { return equipmentSlots.Format(v) }

// EntityEffectKind 从 1 开始编号。
type EntityEffectKind uint8

const (
	EffectSpeed EntityEffectKind = iota + 1
	EffectSlowness
	EffectHaste
	EffectMiningFatigue
	EffectStrength
	EffectInstantHealth
	EffectInstantDamage
	EffectJumpBoost
	EffectNausea
	EffectRegeneration
	EffectResistance
	EffectFireResistance
	EffectWaterBreathing
	EffectInvisibility
	EffectBlindness
	EffectNightVision
	EffectHunger
	EffectWeakness
	EffectPoison
	EffectWither
	EffectHealthBoost
	EffectAbsorption
	EffectSaturation
	EffectGlowing
	EffectLevitation
	EffectLuck
	EffectUnluck
	EffectSlowFalling
	EffectConduitPower
	EffectDolphinsGrace
	EffectBadOmen
	EffectHeroOfTheVillage
)

var entityEffectKinds = wire.NewEnumTable("EntityEffectKind",
	wire.Entry(EffectSpeed, "Speed"),
	wire.Entry(EffectSlowness, "Slowness"),
	wire.Entry(EffectHaste, "Haste"),
	wire.Entry(EffectMiningFatigue, "MiningFatigue"),
	wire.Entry(EffectStrength, "Strength"),
	wire.Entry(EffectInstantHealth, "InstantHealth"),
	wire.Entry(EffectInstantDamage, "InstantDamage"),
	wire.Entry(EffectJumpBoost, "JumpBoost"),
	wire.Entry(EffectNausea, "Nausea"),
	wire.Entry(EffectRegeneration, "Regeneration"),
	wire.Entry(EffectResistance, "Resistance"),
	wire.Entry(EffectFireResistance, "FireResistance"),
	wire.Entry(EffectWaterBreathing, "WaterBreathing"),
	wire.Entry(EffectInvisibility, "Invisibility"),
	wire.Entry(EffectBlindness, "Blindness"),
	wire.Entry(EffectNightVision, "NightVision"),
	wire.Entry(EffectHunger, "Hunger"),
	wire.Entry(EffectWeakness, "Weakness"),
	wire.Entry(EffectPoison, "Poison"),
	wire.Entry(EffectWither, "Wither"),
	wire.Entry(EffectHealthBoost, "HealthBoost"),
	wire.Entry(EffectAbsorption, "Absorption"),
	wire.Entry(EffectSaturation, "Saturation"),
	wire.Entry(EffectGlowing, "Glowing"),
	wire.Entry(EffectLevitation, "Levitation"),
	wire.Entry(EffectLuck, "Luck"),
	wire.Entry(EffectUnluck, "Unluck"),
	wire.Entry(EffectSlowFalling, "SlowFalling"),
	wire.Entry(EffectConduitPower, "ConduitPower"),
	wire.Entry(EffectDolphinsGrace, "DolphinsGrace"),
	wire.Entry(EffectBadOmen, "BadOmen"),
	wire.Entry(EffectHeroOfTheVillage, "HeroOfTheVillage"),
)

var EntityEffectKindCodec = wire.ByteEnum(entityEffectKinds)

func (v EntityEffectKind) String() string { return entityEffectKinds.Format(v) }

type ClientStatusAction int32

const (
	ClientPerformRespawn ClientStatusAction = iota
	ClientRequestStats
)

var clientStatusActions = wire.NewEnumTable("ClientStatusAction",
	wire.Entry(ClientPerformRespawn, "PerformRespawn"),
	wire.Entry(ClientRequestStats, "RequestStats"),
)

var ClientStatusActionCodec = wire.VarIntEnum(clientStatusActions)

func (v ClientStatusAction) String() string { return clientStatusActions.Format(v) }

type ClientChatMode int32

const (
	ChatModeEnabled ClientChatMode = iota
	ChatModeCommandsOnly
	ChatModeHidden
)

var clientChatModes = wire.NewEnumTable("ClientChatMode",
	wire.Entry(ChatModeEnabled, "Enabled"),
	wire.Entry(ChatModeCommandsOnly, "CommandsOnly"),
	wire.Entry(ChatModeHidden, "Hidden"),
)

var ClientChatModeCodec = wire.VarIntEnum(clientChatModes)

func (v ClientChatMode) String() string { return clientChatModes.Format(v) }

type ClientMainHand int32

const (
	MainHandLeft ClientMainHand = iota
	MainHandRight
)

var clientMainHands = wire.NewEnumTable("ClientMainHand",
	wire.Entry(MainHandLeft, "Left"),
	wire.Entry(MainHandRight, "Right"),
)

var ClientMainHandCodec = wire.VarIntEnum(clientMainHands)

func (v ClientMainHand) String() string { return clientMainHands.Format(v) }

type InventoryOperationMode int32

const (
	ModeMouseClick InventoryOperationMode = iota
	ModeShiftClick
	ModeNumberClick
	ModeMiddleClick
	ModeDropClick
	ModeDrag
	ModeDoubleClick
)

var inventoryOperationModes = wire.NewEnumTable("InventoryOperationMode",
	wire.Entry(ModeMouseClick, "MouseClick"),
	wire.Entry(ModeShiftClick, "ShiftClick"),
	wire.Entry(ModeNumberClick, "NumberClick"),
	wire.Entry(ModeMiddleClick, "MiddleClick"),
	wire.Entry(ModeDropClick, "DropClick"),
	wire.Entry(ModeDrag, "Drag"),
	wire.Entry(ModeDoubleClick, "DoubleClick"),
)

var InventoryOperationModeCodec = wire.VarIntEnum(inventoryOperationModes)

func (v InventoryOperationMode) String() string { return inventoryOperationModes.Format(v) }

type PlayerDiggingStatus int32

const (
	DiggingStarted PlayerDiggingStatus = iota
	DiggingCancelled
	DiggingFinished
	DiggingDropStack
	DiggingDropItem
	DiggingShootArrowOrFinishEating
	DiggingSwapItemInHand
)

var playerDiggingStatuses = wire.NewEnumTable("PlayerDiggingStatus",
	wire.Entry(DiggingStarted, "Started"),
	wire.Entry(DiggingCancelled, "Cancelled"),
	wire.Entry(DiggingFinished, "Finished"),
	wire.Entry(DiggingDropStack, "DropStack"),
	wire.Entry(DiggingDropItem, "DropItem"),
	wire.Entry(DiggingShootArrowOrFinishEating, "ShootArrowOrFinishEating"),
	wire.Entry(DiggingSwapItemInHand, "SwapItemInHand"),
)

var PlayerDiggingStatusCodec = wire.VarIntEnum(playerDiggingStatuses)

func (v PlayerDiggingStatus) String() string { return playerDiggingStatuses.Format(v) }

type DiggingFace uint8

const (
	FaceBottom DiggingFace = iota
	FaceTop
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast
)

var diggingFaces = wire.NewEnumTable("DiggingFace",
	wire.Entry(FaceBottom, "Bottom"),
	wire.Entry(FaceTop, "Top"),
	wire.Entry(FaceNorth, "North"),
	wire.Entry(FaceSouth, "South"),
	wire.Entry(FaceWest, "West"),
	wire.Entry(FaceEast, "East"),
)

var DiggingFaceCodec = wire.ByteEnum(diggingFaces)

func (v DiggingFace) String() string { return diggingFaces.Format(v) }

type EntityActionKind int32

const (
	ActionStartSneaking EntityActionKind = iota
	ActionStopSneaking
	ActionLeaveBed
	ActionStartSprinting
	ActionStopSprinting
	ActionStartJumpWithHorse
	ActionStopJumpWithHorse
	ActionOpenHorseInventory
	ActionStartFlyingWithElytra
)

var entityActionKinds = wire.NewEnumTable("EntityActionKind",
	wire.Entry(ActionStartSneaking, "StartSneaking"),
	wire.Entry(ActionStopSneaking, "StopSneaking"),
	wire.Entry(ActionLeaveBed, "LeaveBed"),
	wire.Entry(ActionStartSprinting, "StartSprinting"),
	wire.Entry(ActionStopSprinting, "StopSprinting"),
	wire.Entry(ActionStartJumpWithHorse, "StartJumpWithHorse"),
	wire.Entry(ActionStopJumpWithHorse, "StopJumpWithHorse"),
	wire.Entry(ActionOpenHorseInventory, "OpenHorseInventory"),
	wire.Entry(ActionStartFlyingWithElytra, "StartFlyingWithElytra"),
)

var EntityActionKindCodec = wire.VarIntEnum(entityActionKinds)

func (v EntityActionKind) String() string { return entityActionKinds.Format(v) }
