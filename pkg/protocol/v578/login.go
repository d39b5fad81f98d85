package v578

import (
	"github.com/google/uuid"

	"github.com/lk2023060901/mcproto-go/pkg/chat"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

type LoginDisconnect struct {
	Message chat.Message
}

func (*LoginDisconnect) PacketID() protocol.ID {
	return protocol.NewID(0x00, protocol.Login, protocol.ClientBound)
}

var loginDisconnectBody = protocol.NewBody(
	protocol.Field("message", chat.Codec, func(p *LoginDisconnect) *chat.Message { return &p.Message }),
)

type LoginEncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (*LoginEncryptionRequest) PacketID() protocol.ID {
	return protocol.NewID(0x01, protocol.Login, protocol.ClientBound)
}

var byteArrayCodec = wire.VarIntCountedArray(wire.UnsignedByteCodec)

var loginEncryptionRequestBody = protocol.NewBody(
	protocol.Field("server_id", wire.StringCodec, func(p *LoginEncryptionRequest) *string { return &p.ServerID }),
	protocol.Field("public_key", byteArrayCodec, func(p *LoginEncryptionRequest) *[]byte { return &p.PublicKey }),
	protocol.Field("verify_token", byteArrayCodec, func(p *LoginEncryptionRequest) *[]byte { return &p.VerifyToken }),
)

// LoginSuccess 中的 UUID 以带连字符的字符串形式传输。
type LoginSuccess struct {
	UUIDString string
	Username   string
}

func (*LoginSuccess) PacketID() protocol.ID {
	return protocol.NewID(0x02, protocol.Login, protocol.ClientBound)
}

// NewLoginSuccess 以标准字符串形式写入 id。
func NewLoginSuccess(id uuid.UUID, username string) *LoginSuccess {
	return &LoginSuccess{UUIDString: id.String(), Username: username}
}

// UUID 解析 UUIDString。
func (p *LoginSuccess) UUID() (uuid.UUID, error) {
	return uuid.Parse(p.UUIDString)
}

var loginSuccessBody = protocol.NewBody(
	protocol.Field("uuid_string", wire.StringCodec, func(p *LoginSuccess) *string { return &p.UUIDString }),
	protocol.Field("username", wire.StringCodec, func(p *LoginSuccess) *string { return &p.Username }),
)

// LoginSetCompression 之后的所有帧都使用压缩格式，Threshold 为负表示关闭压缩。
type LoginSetCompression struct {
	Threshold wire.VarInt
}

func (*LoginSetCompression) PacketID() protocol.ID {
	return protocol.NewID(0x03, protocol.Login, protocol.ClientBound)
}

var loginSetCompressionBody = protocol.NewBody(
	protocol.Field("threshold", wire.VarIntCodec, func(p *LoginSetCompression) *wire.VarInt { return &p.Threshold }),
)

type LoginPluginRequest struct {
	MessageID wire.VarInt
	Channel   string
	Data      []byte
}

func (*LoginPluginRequest) PacketID() protocol.ID {
	return protocol.NewID(0x04, protocol.Login, protocol.ClientBound)
}

var loginPluginRequestBody = protocol.NewBody(
	protocol.Field("message_id", wire.VarIntCodec, func(p *LoginPluginRequest) *wire.VarInt { return &p.MessageID }),
	protocol.Field("channel", wire.StringCodec, func(p *LoginPluginRequest) *string { return &p.Channel }),
	protocol.Field("data", wire.RemainingBytesCodec, func(p *LoginPluginRequest) *[]byte { return &p.Data }),
)

type LoginStart struct {
	Name string
}

func (*LoginStart) PacketID() protocol.ID {
	return protocol.NewID(0x00, protocol.Login, protocol.ServerBound)
}

var loginStartBody = protocol.NewBody(
	protocol.Field("name", wire.StringCodec, func(p *LoginStart) *string { return &p.Name }),
)

type LoginEncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (*LoginEncryptionResponse) PacketID() protocol.ID {
	return protocol.NewID(0x01, protocol.Login, protocol.ServerBound)
}

var loginEncryptionResponseBody = protocol.NewBody(
	protocol.Field("shared_secret", byteArrayCodec, func(p *LoginEncryptionResponse) *[]byte { return &p.SharedSecret }),
	protocol.Field("verify_token", byteArrayCodec, func(p *LoginEncryptionResponse) *[]byte { return &p.VerifyToken }),
)

type LoginPluginResponse struct {
	MessageID  wire.VarInt
	Successful bool
	Data       []byte
}

func (*LoginPluginResponse) PacketID() protocol.ID {
	return protocol.NewID(0x02, protocol.Login, protocol.ServerBound)
}

var loginPluginResponseBody = protocol.NewBody(
	protocol.Field("message_id", wire.VarIntCodec, func(p *LoginPluginResponse) *wire.VarInt { return &p.MessageID }),
	protocol.Field("successful", wire.BoolCodec, func(p *LoginPluginResponse) *bool { return &p.Successful }),
	protocol.Field("data", wire.RemainingBytesCodec, func(p *LoginPluginResponse) *[]byte { return &p.Data }),
)
