package protocol

import (
	"slices"

	"github.com/samber/lo"
)

// ProtocolSpec 为协议版本的只读描述，由注册表在构建时从编解码器派生，供文档与工具使用。
type ProtocolSpec struct {
	Name            string       `json:"name" toml:"name"`
	GameVersion     string       `json:"game_version" toml:"game_version"`
	ProtocolVersion int32        `json:"protocol_version" toml:"protocol_version"`
	Packets         []PacketSpec `json:"packets" toml:"packets"`
}

// PacketSpec 描述一种报文。
type PacketSpec struct {
	State     string      `json:"state" toml:"state"`
	Direction string      `json:"direction" toml:"direction"`
	ID        int32       `json:"id" toml:"id"`
	Name      string      `json:"name" toml:"name"`
	Fields    []FieldSpec `json:"fields" toml:"fields"`
}

// FieldSpec 描述报文中的一个字段及其声明类型。
type FieldSpec struct {
	Name string `json:"name" toml:"name"`
	Kind string `json:"kind" toml:"kind"`
}

// PacketGroup 为同一状态与方向下的报文集合。
type PacketGroup struct {
	State     string       `json:"state" toml:"state"`
	Direction string       `json:"direction" toml:"direction"`
	Packets   []PacketSpec `json:"packets" toml:"packets"`
}

// Grouped 按状态与方向分组，分组顺序与组内顺序都与 Packets 一致。
func (s ProtocolSpec) Grouped() []PacketGroup {
	type key struct{ state, direction string }
	groups := lo.GroupBy(s.Packets, func(p PacketSpec) key {
		return key{p.State, p.Direction}
	})
	keys := lo.Uniq(lo.Map(s.Packets, func(p PacketSpec, _ int) key {
		return key{p.State, p.Direction}
	}))
	return lo.Map(keys, func(k key, _ int) PacketGroup {
		return PacketGroup{State: k.state, Direction: k.direction, Packets: groups[k]}
	})
}

// Find 按名字查找报文描述。
func (s ProtocolSpec) Find(name string) (PacketSpec, bool) {
	return lo.Find(s.Packets, func(p PacketSpec) bool { return p.Name == name })
}

func (s ProtocolSpec) clone() ProtocolSpec {
	out := s
	out.Packets = lo.Map(s.Packets, func(p PacketSpec, _ int) PacketSpec {
		p.Fields = slices.Clone(p.Fields)
		return p
	})
	return out
}
