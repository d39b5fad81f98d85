package v578

import (
	"github.com/google/uuid"

	"github.com/lk2023060901/mcproto-go/internal/json"
	"github.com/lk2023060901/mcproto-go/pkg/chat"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// StatusSpec 为服务器列表查询返回的 JSON 文档。
type StatusSpec struct {
	Version     StatusVersionSpec `json:"version"`
	Players     StatusPlayersSpec `json:"players"`
	Description chat.Message      `json:"description"`
	// Favicon 为 "data:image/png;base64," 开头的数据 URL。
	Favicon string `json:"favicon,omitempty"`
}

type StatusVersionSpec struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type StatusPlayersSpec struct {
	Max    int32                    `json:"max"`
	Online int32                    `json:"online"`
	Sample []StatusPlayerSampleSpec `json:"sample,omitempty"`
}

type StatusPlayerSampleSpec struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

// NewStatus 构造本协议版本的状态文档。
func NewStatus(max, online int32, description chat.Message) StatusSpec {
	return StatusSpec{
		Version:     StatusVersionSpec{Name: GameVersion, Protocol: ProtocolVersion},
		Players:     StatusPlayersSpec{Max: max, Online: online},
		Description: description,
	}
}

// WithSample 返回附带在线玩家样本的副本。
func (s StatusSpec) WithSample(players ...StatusPlayerSampleSpec) StatusSpec {
	s.Players.Sample = append([]StatusPlayerSampleSpec(nil), players...)
	return s
}

// StatusSpecCodec 在线上表现为一个 String 字段，内容为 JSON 文档。
var StatusSpecCodec = wire.NewCodec[StatusSpec]("StatusSpec",
	func(to wire.Serializer, s StatusSpec) error {
		text, err := json.MarshalToString(s)
		if err != nil {
			return wire.NewFailedJSONEncodeError("failed to serialize status", err)
		}
		return wire.StringCodec.Serialize(to, text)
	},
	func(data []byte) (wire.Deserialized[StatusSpec], error) {
		s, err := wire.StringCodec.Deserialize(data)
		if err != nil {
			return wire.Deserialized[StatusSpec]{}, err
		}
		return wire.TryMap(s, func(text string) (StatusSpec, error) {
			var out StatusSpec
			if err := json.UnmarshalFromString(text, &out); err != nil {
				return StatusSpec{}, wire.NewFailedJSONDeserializeError("failed to deserialize status", err)
			}
			return out, nil
		})
	},
)
