package v578

import (
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

type Handshake struct {
	Version       wire.VarInt
	ServerAddress string
	ServerPort    uint16
	NextState     HandshakeNextState
}

func (*Handshake) PacketID() protocol.ID {
	return protocol.NewID(0x00, protocol.Handshaking, protocol.ServerBound)
}

var handshakeBody = protocol.NewBody(
	protocol.Field("version", wire.VarIntCodec, func(p *Handshake) *wire.VarInt { return &p.Version }),
	protocol.Field("server_address", wire.StringCodec, func(p *Handshake) *string { return &p.ServerAddress }),
	protocol.Field("server_port", wire.UnsignedShortCodec, func(p *Handshake) *uint16 { return &p.ServerPort }),
	protocol.Field("next_state", HandshakeNextStateCodec, func(p *Handshake) *HandshakeNextState { return &p.NextState }),
)

type StatusRequest struct{}

func (*StatusRequest) PacketID() protocol.ID {
	return protocol.NewID(0x00, protocol.Status, protocol.ServerBound)
}

var statusRequestBody = protocol.NewBody[StatusRequest]()

type StatusPing struct {
	Payload int64
}

func (*StatusPing) PacketID() protocol.ID {
	return protocol.NewID(0x01, protocol.Status, protocol.ServerBound)
}

var statusPingBody = protocol.NewBody(
	protocol.Field("payload", wire.LongCodec, func(p *StatusPing) *int64 { return &p.Payload }),
)

type StatusResponse struct {
	Response StatusSpec
}

func (*StatusResponse) PacketID() protocol.ID {
	return protocol.NewID(0x00, protocol.Status, protocol.ClientBound)
}

var statusResponseBody = protocol.NewBody(
	protocol.Field("response", StatusSpecCodec, func(p *StatusResponse) *StatusSpec { return &p.Response }),
)

// StatusPong 原样回送 StatusPing 的负载。
type StatusPong struct {
	Payload int64
}

func (*StatusPong) PacketID() protocol.ID {
	return protocol.NewID(0x01, protocol.Status, protocol.ClientBound)
}

var statusPongBody = protocol.NewBody(
	protocol.Field("payload", wire.LongCodec, func(p *StatusPong) *int64 { return &p.Payload }),
)
