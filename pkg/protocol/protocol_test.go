package protocol

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

type pingPacket struct {
	Payload int64
}

func (*pingPacket) PacketID() ID { return NewID(0x01, Status, ServerBound) }

var pingBody = NewBody(
	Field("payload", wire.LongCodec, func(p *pingPacket) *int64 { return &p.Payload }),
)

type helloPacket struct {
	Name    string
	Version wire.VarInt
	Tags    []string
}

func (*helloPacket) PacketID() ID { return NewID(0x00, Handshaking, ServerBound) }

var helloBody = NewBody(
	Field("name", wire.StringCodec, func(p *helloPacket) *string { return &p.Name }),
	Field("version", wire.VarIntCodec, func(p *helloPacket) *wire.VarInt { return &p.Version }),
	Field("tags", wire.VarIntCountedArray(wire.StringCodec), func(p *helloPacket) *[]string { return &p.Tags }),
)

type emptyPacket struct{}

func (emptyPacket) PacketID() ID { return NewID(0x05, Play, ClientBound) }

// 与 pingPacket 复用同一个编号。
type otherPingPacket struct {
	Payload int64
}

func (*otherPingPacket) PacketID() ID { return NewID(0x01, Status, ServerBound) }

type action interface{ isAction() }

type moveAction struct{ Distance int32 }

func (moveAction) isAction() {}

type stopAction struct{}

func (stopAction) isAction() {}

var actionCodec = Union[action]("Action", "action",
	VarIntTag,
	Case[action](0, wire.NewCodec[moveAction]("Move",
		func(to wire.Serializer, v moveAction) error { return wire.IntCodec.Serialize(to, v.Distance) },
		func(data []byte) (wire.Deserialized[moveAction], error) {
			d, err := wire.IntCodec.Deserialize(data)
			if err != nil {
				return wire.Deserialized[moveAction]{}, err
			}
			return wire.Map(d, func(v int32) moveAction { return moveAction{Distance: v} }), nil
		},
	)),
	EmptyCase[action, stopAction](1, "Stop"),
)

type RegistrySuite struct {
	suite.Suite
	registry *Registry
}

func (s *RegistrySuite) SetupSuite() {
	b := NewBuilder("toy", "1.15.2", 578)
	Register(b, "Ping", pingBody)
	Register(b, "Hello", helloBody)
	Register(b, "Empty", NewBody[emptyPacket]())
	r, err := b.Build()
	s.Require().NoError(err)
	s.registry = r
}

func (s *RegistrySuite) TestRoundTrip() {
	for _, pkt := range []Packet{
		&pingPacket{Payload: -42},
		&helloPacket{Name: "localhost", Version: 578, Tags: []string{"a", "", "ccc"}},
		&emptyPacket{},
	} {
		raw, err := s.registry.MarshalRaw(pkt)
		s.Require().NoError(err)
		s.Equal(pkt.PacketID(), raw.ID)

		got, err := s.registry.Decode(raw)
		s.Require().NoError(err)
		s.Equal(pkt, got)
	}
}

func (s *RegistrySuite) TestSerializeAcceptsValue() {
	byValue, err := s.registry.Marshal(emptyPacket{})
	s.Require().NoError(err)
	s.Empty(byValue)

	body, err := s.registry.Marshal(&pingPacket{Payload: 1})
	s.Require().NoError(err)
	s.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 1}, body)
}

func (s *RegistrySuite) TestRawPacketBytes() {
	raw, err := s.registry.MarshalRaw(&pingPacket{Payload: 7})
	s.Require().NoError(err)
	full := raw.Bytes()
	s.Equal(byte(0x01), full[0])

	parsed, err := ParseRawPacket(full, Status, ServerBound)
	s.Require().NoError(err)
	s.Equal(raw, parsed)
}

func (s *RegistrySuite) TestUnknownID() {
	for _, state := range States() {
		for _, dir := range Directions() {
			registered := s.registry.IDs(state, dir)
			for id := int32(0); id <= 0x7f; id++ {
				if contains(registered, id) {
					continue
				}
				_, err := s.registry.Decode(RawPacket{ID: NewID(id, state, dir)})
				s.Require().Error(err)
				s.True(errors.Is(err, merr.ErrPacketUnknownID), "%s/%s/%d", state, dir, id)
				s.Equal(merr.Code(merr.ErrPacketUnknownID), merr.Code(err))
				got, ok := UnknownIDOf(err)
				s.Require().True(ok, "%s/%s/%d", state, dir, id)
				s.Equal(NewID(id, state, dir), got)
				s.Contains(err.Error(), state.String())
				s.Contains(err.Error(), dir.String())
			}
		}
	}
}

func contains(ids []int32, id int32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *RegistrySuite) TestSameNumberDifferentState() {
	// 0x01 在 Status/ServerBound 下已注册，在 Play 下未注册。
	_, err := s.registry.Decode(RawPacket{ID: NewID(0x01, Play, ServerBound), Data: make([]byte, 8)})
	s.True(errors.Is(err, merr.ErrPacketUnknownID))
	got, ok := UnknownIDOf(err)
	s.True(ok)
	s.Equal(NewID(0x01, Play, ServerBound), got)

	// 超出单字节范围的编号同样以数值形式携带。
	_, err = s.registry.Decode(RawPacket{ID: NewID(0x12c, Play, ServerBound)})
	got, ok = UnknownIDOf(err)
	s.True(ok)
	s.Equal(int32(0x12c), got.ID)
	_, ok = UnknownIDOf(errors.New("other"))
	s.False(ok)

	_, err = s.registry.Decode(RawPacket{ID: NewID(0x01, Status, ClientBound), Data: make([]byte, 8)})
	s.True(errors.Is(err, merr.ErrPacketUnknownID))
}

func (s *RegistrySuite) TestDecodeFailureKeepsCause() {
	_, err := s.registry.Decode(RawPacket{ID: NewID(0x01, Status, ServerBound), Data: []byte{1, 2, 3}})
	s.Require().Error(err)
	s.True(errors.Is(err, merr.ErrPacketDeserializeFailed))
	s.True(errors.Is(err, wire.ErrEOF))
	s.Equal(merr.Code(merr.ErrPacketDeserializeFailed), merr.Code(err))

	_, err = s.registry.Decode(RawPacket{ID: NewID(0x00, Handshaking, ServerBound), Data: []byte{0x01, 0xff}})
	s.True(errors.Is(err, wire.ErrBadStringEncoding))
}

func (s *RegistrySuite) TestTrailingBytes() {
	_, err := s.registry.Decode(RawPacket{ID: NewID(0x05, Play, ClientBound), Data: []byte{0x00}})
	s.Require().Error(err)
	s.True(errors.Is(err, merr.ErrPacketTrailingBytes))
}

func (s *RegistrySuite) TestNotRegistered() {
	_, err := s.registry.Marshal(&otherPingPacket{})
	s.True(errors.Is(err, merr.ErrPacketNotRegistered))

	_, err = s.registry.Marshal(nil)
	s.True(errors.Is(err, merr.ErrParameterMissing))
}

func (s *RegistrySuite) TestSerializeFailure() {
	to := wire.NewWriterSerializer(failingWriter{})
	err := s.registry.Serialize(to, &pingPacket{})
	s.True(errors.Is(err, merr.ErrPacketSerializeFailed))
	s.True(errors.Is(err, wire.ErrSinkFailed))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func (s *RegistrySuite) TestLookup() {
	spec, ok := s.registry.Lookup(NewID(0x00, Handshaking, ServerBound))
	s.Require().True(ok)
	s.Equal("Hello", spec.Name)
	s.Equal([]FieldSpec{
		{Name: "name", Kind: "String"},
		{Name: "version", Kind: "VarInt"},
		{Name: "tags", Kind: "VarIntCountedArray<String>"},
	}, spec.Fields)

	_, ok = s.registry.Lookup(NewID(0x00, Handshaking, ClientBound))
	s.False(ok)

	id, ok := s.registry.LookupName("Ping")
	s.True(ok)
	s.Equal(NewID(0x01, Status, ServerBound), id)
}

func (s *RegistrySuite) TestDescribe() {
	desc := s.registry.Describe()
	s.Equal("toy", desc.Name)
	s.Equal("1.15.2", desc.GameVersion)
	s.Equal(int32(578), desc.ProtocolVersion)
	s.Require().Len(desc.Packets, 3)
	s.Equal([]string{"Hello", "Ping", "Empty"}, []string{desc.Packets[0].Name, desc.Packets[1].Name, desc.Packets[2].Name})

	groups := desc.Grouped()
	s.Require().Len(groups, 3)
	s.Equal("Handshaking", groups[0].State)
	s.Equal("ServerBound", groups[0].Direction)
	s.Equal("Play", groups[2].State)
	s.Equal("ClientBound", groups[2].Direction)

	// 返回副本，修改不影响注册表。
	desc.Packets[0].Fields[0].Name = "changed"
	s.Equal("name", s.registry.Describe().Packets[0].Fields[0].Name)

	p, ok := desc.Find("Empty")
	s.True(ok)
	s.Empty(p.Fields)
}

func (s *RegistrySuite) TestBuildRejectsDuplicates() {
	b := NewBuilder("dup", "1.15.2", 578)
	Register(b, "Ping", pingBody)
	Register(b, "OtherPing", NewBody(
		Field("payload", wire.LongCodec, func(p *otherPingPacket) *int64 { return &p.Payload }),
	))
	_, err := b.Build()
	s.True(errors.Is(err, merr.ErrRegistryDuplicateID))
	s.Contains(err.Error(), "OtherPing")

	b = NewBuilder("dup", "1.15.2", 578)
	Register(b, "Ping", pingBody)
	Register(b, "Ping", helloBody)
	_, err = b.Build()
	s.True(errors.Is(err, merr.ErrRegistryDuplicateName))
}

func (s *RegistrySuite) TestBuildRejectsBadVersion() {
	_, err := NewBuilder("bad", "1.15", 578).Build()
	s.True(errors.Is(err, merr.ErrRegistryInvalid))

	_, err = NewBuilder("", "1.15.2", 578).Build()
	s.True(errors.Is(err, merr.ErrRegistryInvalid))

	s.Panics(func() { NewBuilder("bad", "x", 1).MustBuild() })
}

func (s *RegistrySuite) TestBodyNesting() {
	inner := helloBody.Codec("Hello")
	d, err := wire.Marshal(inner, helloPacket{Name: "a", Version: 1})
	s.Require().NoError(err)
	s.Equal([]byte{0x01, 'a', 0x01, 0x00}, d)

	got, rest, err := wire.Unmarshal(inner, append(d, 0x09))
	s.Require().NoError(err)
	s.Equal([]byte{0x09}, rest)
	s.Equal("a", got.Name)
	s.Empty(got.Tags)
}

func (s *RegistrySuite) TestUnion() {
	data, err := wire.Marshal(actionCodec, action(moveAction{Distance: 3}))
	s.Require().NoError(err)
	s.Equal([]byte{0x00, 0, 0, 0, 3}, data)

	d, err := actionCodec.Deserialize(data)
	s.Require().NoError(err)
	s.Equal(moveAction{Distance: 3}, d.Value)

	data, err = wire.Marshal(actionCodec, action(stopAction{}))
	s.Require().NoError(err)
	s.Equal([]byte{0x01}, data)

	_, err = actionCodec.Deserialize([]byte{0x09})
	s.True(errors.Is(err, wire.ErrCannotUnderstandValue))
	s.Contains(err.Error(), "invalid action id 9")

	_, err = wire.Marshal[action](actionCodec, nil)
	s.True(errors.Is(err, wire.ErrInvalidValue))
}

func (s *RegistrySuite) TestIdentity() {
	id := NewID(0x21, Play, ClientBound)
	s.Equal("Play/ClientBound/0x21", id.String())
	s.Equal(ServerBound, ClientBound.Opposite())
	s.Equal(ClientBound, ServerBound.Opposite())

	to := wire.NewBytesSerializer(4)
	s.Require().NoError(id.Serialize(to))
	s.Equal([]byte{0x21}, to.Bytes())

	d, err := DecodeID([]byte{0x80, 0x01, 0xaa}, Login, ServerBound)
	s.Require().NoError(err)
	s.Equal(NewID(0x80, Login, ServerBound), d.Value)
	s.Equal([]byte{0xaa}, d.Data)
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}
