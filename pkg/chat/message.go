// Package chat 实现协议中的富文本消息：JSON 文本组件与旧式 § 格式码。
package chat

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/mcproto-go/internal/json"
	"github.com/lk2023060901/mcproto-go/pkg/wire"
)

// Message 为一个 JSON 文本组件，子组件继承父组件的样式。
type Message struct {
	Text          string    `json:"text"`
	Bold          *bool     `json:"bold,omitempty"`
	Italic        *bool     `json:"italic,omitempty"`
	Underlined    *bool     `json:"underlined,omitempty"`
	Strikethrough *bool     `json:"strikethrough,omitempty"`
	Obfuscated    *bool     `json:"obfuscated,omitempty"`
	Color         string    `json:"color,omitempty"`
	Extra         []Message `json:"extra,omitempty"`
}

// Text 构造一个纯文本组件。
func Text(s string) Message { return Message{Text: s} }

// WithColor 返回设置了颜色的副本。
func (m Message) WithColor(c ColorCode) Message {
	m.Color = c.Name()
	return m
}

// WithBold 返回设置了粗体的副本。
func (m Message) WithBold(on bool) Message {
	m.Bold = &on
	return m
}

func (m Message) WithItalic(on bool) Message {
	m.Italic = &on
	return m
}

// Append 追加子组件。
func (m Message) Append(children ...Message) Message {
	m.Extra = append(append([]Message(nil), m.Extra...), children...)
	return m
}

// String 返回去掉样式后的纯文本。
func (m Message) String() string {
	var sb strings.Builder
	m.writePlain(&sb)
	return sb.String()
}

func (m Message) writePlain(sb *strings.Builder) {
	sb.WriteString(m.Text)
	for _, child := range m.Extra {
		child.writePlain(sb)
	}
}

// ToTraditional 将组件转换为旧式 § 格式文本。
//
// 每一段先输出颜色码再输出格式码，因为颜色码会清除之前的格式；子组件继承父组件已开启的格式与颜色。
func (m Message) ToTraditional() string {
	var sb strings.Builder
	m.writeTraditional(&sb, nil, nil)
	return sb.String()
}

func (m Message) writeTraditional(sb *strings.Builder, inherited []Formatter, color *ColorCode) {
	own := append([]Formatter(nil), inherited...)
	own = addFormatter(own, Bold, m.Bold)
	own = addFormatter(own, Italic, m.Italic)
	own = addFormatter(own, Underline, m.Underlined)
	own = addFormatter(own, Strikethrough, m.Strikethrough)
	own = addFormatter(own, Obfuscated, m.Obfuscated)

	if c, ok := ColorFromName(m.Color); ok {
		color = &c
	}
	if color != nil {
		sb.WriteString(ColorFormatter(*color).String())
	}
	for _, f := range own {
		sb.WriteString(f.String())
	}
	sb.WriteString(m.Text)

	for _, child := range m.Extra {
		child.writeTraditional(sb, own, color)
	}
}

func addFormatter(to []Formatter, f Formatter, v *bool) []Formatter {
	if v == nil || !*v {
		return to
	}
	for _, existing := range to {
		if existing == f {
			return to
		}
	}
	return append(to, f)
}

// UnmarshalJSON 兼容纯字符串与数组两种简写形式：数组的第一个元素作为父组件，其余元素追加为子组件。
func (m *Message) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("chat: empty json")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Message{Text: s}
	case '[':
		var parts []Message
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			*m = Message{}
			return nil
		}
		*m = parts[0]
		m.Extra = append(m.Extra, parts[1:]...)
	default:
		type plain Message
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*m = Message(p)
	}
	return nil
}

// Encode 返回组件的 JSON 文本。
func Encode(m Message) (string, error) {
	s, err := json.MarshalToString(m)
	if err != nil {
		return "", wire.NewFailedJSONEncodeError("failed to serialize chat", err)
	}
	return s, nil
}

// Decode 解析 JSON 文本组件。
func Decode(text string) (Message, error) {
	var m Message
	if err := json.UnmarshalFromString(text, &m); err != nil {
		return Message{}, wire.NewFailedJSONDeserializeError("failed to deserialize chat", err)
	}
	return m, nil
}

// Codec 在线上表现为一个 String 字段，内容为 JSON 文本。
var Codec = wire.NewCodec[Message]("Chat",
	func(to wire.Serializer, m Message) error {
		text, err := Encode(m)
		if err != nil {
			return err
		}
		return wire.StringCodec.Serialize(to, text)
	},
	func(data []byte) (wire.Deserialized[Message], error) {
		s, err := wire.StringCodec.Deserialize(data)
		if err != nil {
			return wire.Deserialized[Message]{}, err
		}
		return wire.TryMap(s, Decode)
	},
)
