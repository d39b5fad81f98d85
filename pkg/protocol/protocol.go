// Package protocol 将 (编号, 连接状态, 方向) 三元组映射到具体的报文结构，并提供报文体的声明式构造方式。
//
// 报文编号之外的状态与方向不在线上传输，由传输层在带外提供。
package protocol

import (
	"fmt"

	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// State 为连接状态。
type State uint8

const (
	Handshaking State = iota
	Status
	Login
	Play
)

var stateNames = [...]string{
	Handshaking: "Handshaking",
	Status:      "Status",
	Login:       "Login",
	Play:        "Play",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// States 返回全部连接状态。
func States() []State { return []State{Handshaking, Status, Login, Play} }

// Direction 为报文方向。
type Direction uint8

const (
	ClientBound Direction = iota
	ServerBound
)

func (d Direction) String() string {
	switch d {
	case ClientBound:
		return "ClientBound"
	case ServerBound:
		return "ServerBound"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Opposite 返回相反方向。
func (d Direction) Opposite() Direction {
	if d == ClientBound {
		return ServerBound
	}
	return ClientBound
}

// Directions 返回全部方向。
func Directions() []Direction { return []Direction{ClientBound, ServerBound} }

// ID 为报文身份三元组，在同一协议版本内唯一确定一种报文结构。
// 不同状态可以复用同一个数字编号。
type ID struct {
	ID        int32
	State     State
	Direction Direction
}

// NewID 构造报文身份。
func NewID(id int32, state State, direction Direction) ID {
	return ID{ID: id, State: state, Direction: direction}
}

func (id ID) String() string {
	return fmt.Sprintf("%s/%s/0x%02x", id.State, id.Direction, id.ID)
}

// Serialize 只写出 VarInt 编号。
func (id ID) Serialize(to wire.Serializer) error {
	return wire.VarIntCodec.Serialize(to, wire.VarInt(id.ID))
}

// DecodeID 从 data 中读出 VarInt 编号，状态与方向由调用方提供。
func DecodeID(data []byte, state State, direction Direction) (wire.Deserialized[ID], error) {
	d, err := wire.VarIntCodec.Deserialize(data)
	if err != nil {
		return wire.Deserialized[ID]{}, err
	}
	return wire.Ok(NewID(int32(d.Value), state, direction), d.Data)
}

// Packet 为所有报文体实现的接口。
type Packet interface {
	PacketID() ID
}

// RawPacket 为已经取出身份、尚未解析报文体的报文。
type RawPacket struct {
	ID   ID
	Data []byte
}

// ParseRawPacket 将一个完整的报文（VarInt 编号 + 报文体）拆分为 RawPacket，Data 与输入共享内存。
func ParseRawPacket(data []byte, state State, direction Direction) (RawPacket, error) {
	id, err := DecodeID(data, state, direction)
	if err != nil {
		return RawPacket{}, err
	}
	return RawPacket{ID: id.Value, Data: id.Data}, nil
}

// Bytes 返回 VarInt 编号与报文体拼接后的字节。
func (p RawPacket) Bytes() []byte {
	out := wire.AppendVarNum(make([]byte, 0, wire.VarIntSize(p.ID.ID)+len(p.Data)), uint64(uint32(p.ID.ID)))
	return append(out, p.Data...)
}
