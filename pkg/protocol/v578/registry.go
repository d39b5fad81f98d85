// Package v578 为协议版本 578（游戏版本 1.15.2）的报文目录。
//
// 握手、状态与登录阶段的报文是完整的；游戏阶段只收录了一部分常用报文，
// 覆盖全部字段编码类型。
package v578

import (
	"sync"

	"github.com/lk2023060901/mcproto-go/pkg/protocol"
)

const (
	Name            = "v578"
	GameVersion     = "1.15.2"
	ProtocolVersion = 578
)

var registry = sync.OnceValue(func() *protocol.Registry {
	b := protocol.NewBuilder(Name, GameVersion, ProtocolVersion)

	// handshaking
	protocol.Register(b, "Handshake", handshakeBody)

	// status
	protocol.Register(b, "StatusRequest", statusRequestBody)
	protocol.Register(b, "StatusPing", statusPingBody)
	protocol.Register(b, "StatusResponse", statusResponseBody)
	protocol.Register(b, "StatusPong", statusPongBody)

	// login
	protocol.Register(b, "LoginDisconnect", loginDisconnectBody)
	protocol.Register(b, "LoginEncryptionRequest", loginEncryptionRequestBody)
	protocol.Register(b, "LoginSuccess", loginSuccessBody)
	protocol.Register(b, "LoginSetCompression", loginSetCompressionBody)
	protocol.Register(b, "LoginPluginRequest", loginPluginRequestBody)
	protocol.Register(b, "LoginStart", loginStartBody)
	protocol.Register(b, "LoginEncryptionResponse", loginEncryptionResponseBody)
	protocol.Register(b, "LoginPluginResponse", loginPluginResponseBody)

	// play, client bound
	protocol.Register(b, "PlaySpawnEntity", playSpawnEntityBody)
	protocol.Register(b, "PlayEntityAnimation", playEntityAnimationBody)
	protocol.Register(b, "PlayBlockEntityData", playBlockEntityDataBody)
	protocol.Register(b, "PlayBlockChange", playBlockChangeBody)
	protocol.Register(b, "PlayServerDifficulty", playServerDifficultyBody)
	protocol.Register(b, "PlayServerChatMessage", playServerChatMessageBody)
	protocol.Register(b, "PlayMultiBlockChange", playMultiBlockChangeBody)
	protocol.Register(b, "PlayWindowItems", playWindowItemsBody)
	protocol.Register(b, "PlaySetSlot", playSetSlotBody)
	protocol.Register(b, "PlayServerPluginMessage", playServerPluginMessageBody)
	protocol.Register(b, "PlayNamedSoundEffect", playNamedSoundEffectBody)
	protocol.Register(b, "PlayDisconnect", playDisconnectBody)
	protocol.Register(b, "PlayExplosion", playExplosionBody)
	protocol.Register(b, "PlayUnloadChunk", playUnloadChunkBody)
	protocol.Register(b, "PlayServerKeepAlive", playServerKeepAliveBody)
	protocol.Register(b, "PlayJoinGame", playJoinGameBody)
	protocol.Register(b, "PlayTradeList", playTradeListBody)
	protocol.Register(b, "PlayEntityPosition", playEntityPositionBody)
	protocol.Register(b, "PlayEntityPositionAndRotation", playEntityPositionAndRotationBody)
	protocol.Register(b, "PlayEntityRotation", playEntityRotationBody)
	protocol.Register(b, "PlayServerPlayerAbilities", playServerPlayerAbilitiesBody)
	protocol.Register(b, "PlayServerPlayerPositionAndLook", playServerPlayerPositionAndLookBody)
	protocol.Register(b, "PlayDestroyEntities", playDestroyEntitiesBody)
	protocol.Register(b, "PlayEntityHeadLook", playEntityHeadLookBody)
	protocol.Register(b, "PlaySelectAdvancementTab", playSelectAdvancementTabBody)
	protocol.Register(b, "PlayWorldBorder", playWorldBorderBody)
	protocol.Register(b, "PlayServerHeldItemChange", playServerHeldItemChangeBody)
	protocol.Register(b, "PlayEntityEquipment", playEntityEquipmentBody)
	protocol.Register(b, "PlayUpdateHealth", playUpdateHealthBody)
	protocol.Register(b, "PlayTimeUpdate", playTimeUpdateBody)
	protocol.Register(b, "PlaySoundEffect", playSoundEffectBody)
	protocol.Register(b, "PlayNbtQueryResponse", playNbtQueryResponseBody)
	protocol.Register(b, "PlayEntityTeleport", playEntityTeleportBody)
	protocol.Register(b, "PlayEntityEffect", playEntityEffectBody)

	// play, server bound
	protocol.Register(b, "PlayTeleportConfirm", playTeleportConfirmBody)
	protocol.Register(b, "PlayQueryBlockNbt", playQueryBlockNbtBody)
	protocol.Register(b, "PlaySetDifficulty", playSetDifficultyBody)
	protocol.Register(b, "PlayClientChatMessage", playClientChatMessageBody)
	protocol.Register(b, "PlayClientStatus", playClientStatusBody)
	protocol.Register(b, "PlayClientSettings", playClientSettingsBody)
	protocol.Register(b, "PlayClickWindow", playClickWindowBody)
	protocol.Register(b, "PlayClientPluginMessage", playClientPluginMessageBody)
	protocol.Register(b, "PlayInteractEntity", playInteractEntityBody)
	protocol.Register(b, "PlayClientKeepAlive", playClientKeepAliveBody)
	protocol.Register(b, "PlayPlayerPosition", playPlayerPositionBody)
	protocol.Register(b, "PlayClientPlayerPositionAndRotation", playClientPlayerPositionAndRotationBody)
	protocol.Register(b, "PlayPlayerRotation", playPlayerRotationBody)
	protocol.Register(b, "PlayPlayerMovement", playPlayerMovementBody)
	protocol.Register(b, "PlayClientPlayerAbilities", playClientPlayerAbilitiesBody)
	protocol.Register(b, "PlayPlayerDigging", playPlayerDiggingBody)
	protocol.Register(b, "PlayEntityAction", playEntityActionBody)
	protocol.Register(b, "PlaySteerVehicle", playSteerVehicleBody)
	protocol.Register(b, "PlayClientHeldItemChange", playClientHeldItemChangeBody)
	protocol.Register(b, "PlayCreativeInventoryAction", playCreativeInventoryActionBody)
	protocol.Register(b, "PlayClientAnimation", playClientAnimationBody)
	protocol.Register(b, "PlaySpectate", playSpectateBody)
	protocol.Register(b, "PlayBlockPlacement", playBlockPlacementBody)
	protocol.Register(b, "PlayUseItem", playUseItemBody)

	return b.MustBuild()
})

// Registry 返回本协议版本的注册表，首次调用时构建，之后共享同一实例。
func Registry() *protocol.Registry {
	return registry()
}

// Describe 返回本协议版本的描述。
func Describe() protocol.ProtocolSpec {
	return registry().Describe()
}
