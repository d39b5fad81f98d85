package protocol

import (
	"reflect"
	"slices"

	"github.com/blang/semver/v4"
	"go.uber.org/zap"

	"github.com/lk2023060901/mcproto-go/pkg/log"
	"github.com/lk2023060901/mcproto-go/pkg/metrics"
	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
	"github.com/lk2023060901/mcproto-go/pkg/util/typeutil"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

type entry struct {
	id     ID
	name   string
	types  []reflect.Type
	fields []FieldSpec

	serialize   func(to wire.Serializer, p Packet) error
	deserialize func(data []byte) (Packet, []byte, error)
}

// Builder 收集一个协议版本的报文定义，Build 后得到不可变的 Registry。
type Builder struct {
	name            string
	gameVersion     string
	protocolVersion int32
	entries         []*entry
}

// NewBuilder 创建注册表构造器，gameVersion 必须是合法的语义化版本号，例如 "1.15.2"。
func NewBuilder(name, gameVersion string, protocolVersion int32) *Builder {
	return &Builder{
		name:            name,
		gameVersion:     gameVersion,
		protocolVersion: protocolVersion,
	}
}

// Register 将报文体 body 绑定到 (*B).PacketID() 返回的身份三元组上。
//
// 解码得到的报文为 *B；编码时 B 与 *B 都可以接受。
func Register[B any, P interface {
	*B
	Packet
}](b *Builder, name string, body Body[B]) {
	var zero B
	id := P(&zero).PacketID()
	b.entries = append(b.entries, &entry{
		id:     id,
		name:   name,
		types:  []reflect.Type{reflect.TypeOf((*B)(nil)).Elem(), reflect.TypeOf((*P)(nil)).Elem()},
		fields: body.Fields(),
		serialize: func(to wire.Serializer, p Packet) error {
			if v, ok := p.(P); ok {
				return body.Serialize(to, v)
			}
			if v, ok := any(p).(B); ok {
				return body.Serialize(to, &v)
			}
			return merr.WrapErrPacketNotRegistered(p)
		},
		deserialize: func(data []byte) (Packet, []byte, error) {
			d, err := body.Deserialize(data)
			if err != nil {
				return nil, nil, err
			}
			v := d.Value
			return P(&v), d.Data, nil
		},
	})
}

// Build 校验并生成注册表：身份三元组与报文名都必须唯一。
func (b *Builder) Build() (*Registry, error) {
	if b.name == "" {
		return nil, merr.WrapErrRegistryInvalid("empty protocol name")
	}
	version, err := semver.Parse(b.gameVersion)
	if err != nil {
		return nil, merr.Combine(merr.WrapErrRegistryInvalid("bad game version", b.gameVersion), err)
	}

	r := &Registry{
		name:            b.name,
		gameVersion:     version,
		protocolVersion: b.protocolVersion,
		byID:            make(map[ID]*entry, len(b.entries)),
		byName:          make(map[string]*entry, len(b.entries)),
		byType:          make(map[reflect.Type]*entry, 2*len(b.entries)),
	}

	var errs []error
	names := typeutil.NewSet[string]()
	for _, e := range b.entries {
		if e.name == "" {
			errs = append(errs, merr.WrapErrRegistryInvalid("empty packet name", e.id.String()))
			continue
		}
		if existing, ok := r.byID[e.id]; ok {
			errs = append(errs, merr.WrapErrRegistryDuplicateID(e.id.ID, e.id.State.String(), e.id.Direction.String(), existing.name, e.name))
			continue
		}
		if names.Contain(e.name) {
			errs = append(errs, merr.WrapErrRegistryDuplicateName(e.name))
			continue
		}
		names.Insert(e.name)
		r.byID[e.id] = e
		r.byName[e.name] = e
		for _, t := range e.types {
			r.byType[t] = e
		}
	}
	if len(errs) > 0 {
		metrics.RegistryBuilds.WithLabelValues(b.name, metrics.FailLabel).Inc()
		return nil, merr.Combine(errs...)
	}

	r.spec = r.describe()
	metrics.RegistryBuilds.WithLabelValues(r.name, metrics.SuccessLabel).Inc()
	for _, g := range r.spec.Grouped() {
		metrics.RegistryPackets.WithLabelValues(r.name, g.State, g.Direction).Set(float64(len(g.Packets)))
	}
	log.L().Debug("protocol registry built",
		log.FieldModule("protocol"),
		zap.String("protocol", r.name),
		zap.String("gameVersion", version.String()),
		zap.Int32("protocolVersion", r.protocolVersion),
		zap.Int("packets", len(r.byID)))
	return r, nil
}

// MustBuild 与 Build 相同，失败时 panic，只用于包级别的静态注册表。
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// Registry 为一个协议版本的报文分发表，构建后只读，可被并发使用。
type Registry struct {
	name            string
	gameVersion     semver.Version
	protocolVersion int32

	byID   map[ID]*entry
	byName map[string]*entry
	byType map[reflect.Type]*entry

	spec ProtocolSpec
}

func (r *Registry) Name() string { return r.name }

func (r *Registry) GameVersion() semver.Version { return r.gameVersion }

func (r *Registry) ProtocolVersion() int32 { return r.protocolVersion }

// Len 返回注册的报文种类数。
func (r *Registry) Len() int { return len(r.byID) }

// Decode 按身份三元组查找报文结构并解析报文体，报文体必须被完整消费。
func (r *Registry) Decode(raw RawPacket) (Packet, error) {
	e, ok := r.byID[raw.ID]
	if !ok {
		return nil, NewUnknownIDError(raw.ID, r.name)
	}
	pkt, rest, err := e.deserialize(raw.Data)
	if err != nil {
		return nil, merr.WrapErrPacketDeserializeFailed(e.name, raw.ID.ID, err)
	}
	if len(rest) > 0 {
		return nil, merr.WrapErrPacketTrailingBytes(e.name, len(rest))
	}
	return pkt, nil
}

// Serialize 只写出报文体，编号由传输层单独处理。
func (r *Registry) Serialize(to wire.Serializer, p Packet) error {
	e, err := r.lookupPacket(p)
	if err != nil {
		return err
	}
	if err := e.serialize(to, p); err != nil {
		return merr.WrapErrPacketSerializeFailed(e.name, err)
	}
	return nil
}

// Marshal 返回不含编号的报文体字节。
func (r *Registry) Marshal(p Packet) ([]byte, error) {
	s := wire.NewBytesSerializer(64)
	if err := r.Serialize(s, p); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// MarshalRaw 编码报文并附带其身份三元组。
func (r *Registry) MarshalRaw(p Packet) (RawPacket, error) {
	e, err := r.lookupPacket(p)
	if err != nil {
		return RawPacket{}, err
	}
	data, err := r.Marshal(p)
	if err != nil {
		return RawPacket{}, err
	}
	return RawPacket{ID: e.id, Data: data}, nil
}

func (r *Registry) lookupPacket(p Packet) (*entry, error) {
	if p == nil {
		return nil, merr.WrapErrParameterMissing("packet")
	}
	e, ok := r.byType[reflect.TypeOf(p)]
	if !ok {
		return nil, merr.WrapErrPacketNotRegistered(p, r.name)
	}
	if id := p.PacketID(); id != e.id {
		return nil, merr.WrapErrPacketDirectionMismatch(e.name, e.id.String(), id.String())
	}
	return e, nil
}

// Lookup 返回身份三元组对应的报文描述。
func (r *Registry) Lookup(id ID) (PacketSpec, bool) {
	e, ok := r.byID[id]
	if !ok {
		return PacketSpec{}, false
	}
	return e.spec(), true
}

// LookupName 按报文名查找身份三元组。
func (r *Registry) LookupName(name string) (ID, bool) {
	e, ok := r.byName[name]
	if !ok {
		return ID{}, false
	}
	return e.id, true
}

// IDs 返回指定状态与方向下注册的全部编号，按升序排列。
func (r *Registry) IDs(state State, direction Direction) []int32 {
	var out []int32
	for id := range r.byID {
		if id.State == state && id.Direction == direction {
			out = append(out, id.ID)
		}
	}
	slices.Sort(out)
	return out
}

// Describe 返回协议描述的副本。
func (r *Registry) Describe() ProtocolSpec {
	return r.spec.clone()
}

func (e *entry) spec() PacketSpec {
	return PacketSpec{
		State:     e.id.State.String(),
		Direction: e.id.Direction.String(),
		ID:        e.id.ID,
		Name:      e.name,
		Fields:    slices.Clone(e.fields),
	}
}

func (r *Registry) describe() ProtocolSpec {
	entries := make([]*entry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *entry) int {
		if a.id.State != b.id.State {
			return int(a.id.State) - int(b.id.State)
		}
		if a.id.Direction != b.id.Direction {
			return int(a.id.Direction) - int(b.id.Direction)
		}
		return int(a.id.ID) - int(b.id.ID)
	})

	packets := make([]PacketSpec, 0, len(entries))
	for _, e := range entries {
		packets = append(packets, e.spec())
	}
	return ProtocolSpec{
		Name:            r.name,
		GameVersion:     r.gameVersion.String(),
		ProtocolVersion: r.protocolVersion,
		Packets:         packets,
	}
}
