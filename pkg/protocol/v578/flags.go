package v578

import (
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// 以下位标记类型均编码为单个字节，未定义的位原样保留。

type PlayerAbilityFlags uint8

const (
	AbilityInvulnerable uint8 = 0x01
	AbilityFlying       uint8 = 0x02
	AbilityAllowFlying  uint8 = 0x04
	AbilityInstantBreak uint8 = 0x08
)

var PlayerAbilityFlagsCodec = wire.FlagCodec[PlayerAbilityFlags]("PlayerAbilityFlags")

func (f PlayerAbilityFlags) IsInvulnerable() bool { return wire.HasFlag(f, AbilityInvulnerable) }
func (f PlayerAbilityFlags) IsFlying() bool       { return wire.HasFlag(f, AbilityFlying) }
func (f PlayerAbilityFlags) IsAllowFlying() bool  { return wire.HasFlag(f, AbilityAllowFlying) }
func (f PlayerAbilityFlags) IsInstantBreak() bool { return wire.HasFlag(f, AbilityInstantBreak) }

func (f *PlayerAbilityFlags) SetInvulnerable(on bool) { *f = wire.SetFlag(*f, AbilityInvulnerable, on) }
func (f *PlayerAbilityFlags) SetFlying(on bool)       { *f = wire.SetFlag(*f, AbilityFlying, on) }
func (f *PlayerAbilityFlags) SetAllowFlying(on bool)  { *f = wire.SetFlag(*f, AbilityAllowFlying, on) }
func (f *PlayerAbilityFlags) SetInstantBreak(on bool) { *f = wire.SetFlag(*f, AbilityInstantBreak, on) }

// PositionAndLookFlags 中置位的分量表示相对坐标，未置位表示绝对坐标。
type PositionAndLookFlags uint8

const (
	RelativeX         uint8 = 0x01
	RelativeY         uint8 = 0x02
	RelativeZ         uint8 = 0x04
	RelativeYRotation uint8 = 0x08
	RelativeXRotation uint8 = 0x10
)

var PositionAndLookFlagsCodec = wire.FlagCodec[PositionAndLookFlags]("PositionAndLookFlags")

func (f PositionAndLookFlags) IsX() bool         { return wire.HasFlag(f, RelativeX) }
func (f PositionAndLookFlags) IsY() bool         { return wire.HasFlag(f, RelativeY) }
func (f PositionAndLookFlags) IsZ() bool         { return wire.HasFlag(f, RelativeZ) }
func (f PositionAndLookFlags) IsYRotation() bool { return wire.HasFlag(f, RelativeYRotation) }
func (f PositionAndLookFlags) IsXRotation() bool { return wire.HasFlag(f, RelativeXRotation) }

func (f *PositionAndLookFlags) SetX(on bool)         { *f = wire.SetFlag(*f, RelativeX, on) }
func (f *PositionAndLookFlags) SetY(on bool)         { *f = wire.SetFlag(*f, RelativeY, on) }
func (f *PositionAndLookFlags) SetZ(on bool)         { *f = wire.SetFlag(*f, RelativeZ, on) }
func (f *PositionAndLookFlags) SetYRotation(on bool) { *f = wire.SetFlag(*f, RelativeYRotation, on) }
func (f *PositionAndLookFlags) SetXRotation(on bool) { *f = wire.SetFlag(*f, RelativeXRotation, on) }

type EntityEffectFlags uint8

const (
	EffectAmbient       uint8 = 0x01
	EffectShowParticles uint8 = 0x02
	EffectShowIcon      uint8 = 0x04
)

var EntityEffectFlagsCodec = wire.FlagCodec[EntityEffectFlags]("EntityEffectFlags")

func (f EntityEffectFlags) IsAmbient() bool       { return wire.HasFlag(f, EffectAmbient) }
func (f EntityEffectFlags) IsShowParticles() bool { return wire.HasFlag(f, EffectShowParticles) }
func (f EntityEffectFlags) IsShowIcon() bool      { return wire.HasFlag(f, EffectShowIcon) }

func (f *EntityEffectFlags) SetAmbient(on bool)       { *f = wire.SetFlag(*f, EffectAmbient, on) }
func (f *EntityEffectFlags) SetShowParticles(on bool) { *f = wire.SetFlag(*f, EffectShowParticles, on) }
func (f *EntityEffectFlags) SetShowIcon(on bool)      { *f = wire.SetFlag(*f, EffectShowIcon, on) }

// ClientDisplayedSkinParts 为客户端显示的皮肤部件。
type ClientDisplayedSkinParts uint8

const (
	SkinCape          uint8 = 0x01
	SkinJacket        uint8 = 0x02
	SkinLeftSleeve    uint8 = 0x04
	SkinRightSleeve   uint8 = 0x08
	SkinLeftPantsLeg  uint8 = 0x10
	SkinRightPantsLeg uint8 = 0x20
	SkinHat           uint8 = 0x40
)

var ClientDisplayedSkinPartsCodec = wire.FlagCodec[ClientDisplayedSkinParts]("ClientDisplayedSkinParts")

func (f ClientDisplayedSkinParts) IsCapeEnabled() bool          { return wire.HasFlag(f, SkinCape) }
func (f ClientDisplayedSkinParts) IsJacketEnabled() bool        { return wire.HasFlag(f, SkinJacket) }
func (f ClientDisplayedSkinParts) IsLeftSleeveEnabled() bool    { return wire.HasFlag(f, SkinLeftSleeve) }
func (f ClientDisplayedSkinParts) IsRightSleeveEnabled() bool   { return wire.HasFlag(f, SkinRightSleeve) }
func (f ClientDisplayedSkinParts) IsLeftPantsLegEnabled() bool  { return wire.HasFlag(f, SkinLeftPantsLeg) }
func (f ClientDisplayedSkinParts) IsRightPantsLegEnabled() bool { return wire.HasFlag(f, SkinRightPantsLeg) }
func (f ClientDisplayedSkinParts) IsHatEnabled() bool           { return wire.HasFlag(f, SkinHat) }

func (f *ClientDisplayedSkinParts) SetCapeEnabled(on bool)          { *f = wire.SetFlag(*f, SkinCape, on) }
func (f *ClientDisplayedSkinParts) SetJacketEnabled(on bool)        { *f = wire.SetFlag(*f, SkinJacket, on) }
func (f *ClientDisplayedSkinParts) SetLeftSleeveEnabled(on bool)    { *f = wire.SetFlag(*f, SkinLeftSleeve, on) }
func (f *ClientDisplayedSkinParts) SetRightSleeveEnabled(on bool)   { *f = wire.SetFlag(*f, SkinRightSleeve, on) }
func (f *ClientDisplayedSkinParts) SetLeftPantsLegEnabled(on bool)  { *f = wire.SetFlag(*f, SkinLeftPantsLeg, on) }
func (f *ClientDisplayedSkinParts) SetRightPantsLegEnabled(on bool) { *f = wire.SetFlag(*f, SkinRightPantsLeg, on) }
func (f *ClientDisplayedSkinParts) SetHatEnabled(on bool)           { *f = wire.SetFlag(*f, SkinHat, on) }

// ClientPlayerAbilities 为服务端方向的能力标记。
type ClientPlayerAbilities uint8

const (
	ClientAbilityCreative       uint8 = 0x01
	ClientAbilityFlying         uint8 = 0x02
	ClientAbilityFlyEnabled     uint8 = 0x04
	ClientAbilityDamageDisabled uint8 = 0x08
)

var ClientPlayerAbilitiesCodec = wire.FlagCodec[ClientPlayerAbilities]("ClientPlayerAbilities")

func (f ClientPlayerAbilities) IsCreative() bool       { return wire.HasFlag(f, ClientAbilityCreative) }
func (f ClientPlayerAbilities) IsFlying() bool         { return wire.HasFlag(f, ClientAbilityFlying) }
func (f ClientPlayerAbilities) IsFlyEnabled() bool     { return wire.HasFlag(f, ClientAbilityFlyEnabled) }
func (f ClientPlayerAbilities) IsDamageDisabled() bool { return wire.HasFlag(f, ClientAbilityDamageDisabled) }

func (f *ClientPlayerAbilities) SetCreative(on bool)       { *f = wire.SetFlag(*f, ClientAbilityCreative, on) }
func (f *ClientPlayerAbilities) SetFlying(on bool)         { *f = wire.SetFlag(*f, ClientAbilityFlying, on) }
func (f *ClientPlayerAbilities) SetFlyEnabled(on bool)     { *f = wire.SetFlag(*f, ClientAbilityFlyEnabled, on) }
func (f *ClientPlayerAbilities) SetDamageDisabled(on bool) { *f = wire.SetFlag(*f, ClientAbilityDamageDisabled, on) }

type SteerVehicleFlags uint8

const (
	SteerJump    uint8 = 0x01
	SteerUnmount uint8 = 0x02
)

var SteerVehicleFlagsCodec = wire.FlagCodec[SteerVehicleFlags]("SteerVehicleFlags")

func (f SteerVehicleFlags) IsJump() bool    { return wire.HasFlag(f, SteerJump) }
func (f SteerVehicleFlags) IsUnmount() bool { return wire.HasFlag(f, SteerUnmount) }

func (f *SteerVehicleFlags) SetJump(on bool)    { *f = wire.SetFlag(*f, SteerJump, on) }
func (f *SteerVehicleFlags) SetUnmount(on bool) { *f = wire.SetFlag(*f, SteerUnmount, on) }
