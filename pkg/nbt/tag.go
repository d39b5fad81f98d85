// Package nbt 实现协议中用于承载物品、方块实体等嵌套元数据的二进制标签树。
//
// 编码规则：所有数值为大端序；标签名与字符串负载使用 2 字节无符号长度前缀加 UTF-8 文本；
// 数组与列表使用 4 字节有符号长度前缀。
package nbt

import (
	"fmt"
	"strings"
)

// TagID 为标签类型编号。
type TagID byte

const (
	TagEnd TagID = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var tagNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

func (id TagID) Valid() bool { return int(id) < len(tagNames) }

func (id TagID) String() string {
	if id.Valid() {
		return tagNames[id]
	}
	return fmt.Sprintf("Unknown(0x%02x)", byte(id))
}

// Tag 为标签负载，实现集合是封闭的。
type Tag interface {
	ID() TagID
	isTag()
}

type (
	End       struct{}
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64

	// List 中所有元素的类型都必须等于 Type，空列表的 Type 通常为 TagEnd。
	List struct {
		Type   TagID
		Values []Tag
	}

	// Compound 为有序的命名标签集合，编码时以 End 标签结尾。
	Compound []NamedTag
)

func (End) ID() TagID       { return TagEnd }
func (Byte) ID() TagID      { return TagByte }
func (Short) ID() TagID     { return TagShort }
func (Int) ID() TagID       { return TagInt }
func (Long) ID() TagID      { return TagLong }
func (Float) ID() TagID     { return TagFloat }
func (Double) ID() TagID    { return TagDouble }
func (ByteArray) ID() TagID { return TagByteArray }
func (String) ID() TagID    { return TagString }
func (List) ID() TagID      { return TagList }
func (Compound) ID() TagID  { return TagCompound }
func (IntArray) ID() TagID  { return TagIntArray }
func (LongArray) ID() TagID { return TagLongArray }

func (End) isTag()       {}
func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (ByteArray) isTag() {}
func (String) isTag()    {}
func (List) isTag()      {}
func (Compound) isTag()  {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}

// NamedTag 为带名字的标签，协议中的根节点总是一个命名的 Compound。
type NamedTag struct {
	Name    string
	Payload Tag
}

// Named 为标签附加名字。
func Named(name string, payload Tag) NamedTag {
	return NamedTag{Name: name, Payload: payload}
}

// NewList 构造元素类型为 id 的列表。
func NewList(id TagID, values ...Tag) List {
	return List{Type: id, Values: values}
}

// Get 按名字查找子标签，同名时返回第一个。
func (c Compound) Get(name string) (Tag, bool) {
	for _, t := range c {
		if t.Name == name {
			return t.Payload, true
		}
	}
	return nil, false
}

// Names 按顺序返回全部子标签名。
func (c Compound) Names() []string {
	names := make([]string, 0, len(c))
	for _, t := range c {
		names = append(names, t.Name)
	}
	return names
}

// String 返回类似 SNBT 的可读形式，仅用于日志与调试。
func (t NamedTag) String() string {
	var sb strings.Builder
	if t.Name != "" {
		fmt.Fprintf(&sb, "%q: ", t.Name)
	}
	writeTag(&sb, t.Payload)
	return sb.String()
}

func writeTag(sb *strings.Builder, t Tag) {
	switch v := t.(type) {
	case nil:
		sb.WriteString("<nil>")
	case End:
		sb.WriteString("end")
	case Byte:
		fmt.Fprintf(sb, "%db", int8(v))
	case Short:
		fmt.Fprintf(sb, "%ds", int16(v))
	case Int:
		fmt.Fprintf(sb, "%d", int32(v))
	case Long:
		fmt.Fprintf(sb, "%dL", int64(v))
	case Float:
		fmt.Fprintf(sb, "%gf", float32(v))
	case Double:
		fmt.Fprintf(sb, "%gd", float64(v))
	case String:
		fmt.Fprintf(sb, "%q", string(v))
	case ByteArray:
		fmt.Fprintf(sb, "[B;% x]", []byte(v))
	case IntArray:
		fmt.Fprintf(sb, "[I;%v]", []int32(v))
	case LongArray:
		fmt.Fprintf(sb, "[L;%v]", []int64(v))
	case List:
		sb.WriteByte('[')
		for i, item := range v.Values {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeTag(sb, item)
		}
		sb.WriteByte(']')
	case Compound:
		sb.WriteByte('{')
		for i, item := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%q:", item.Name)
			writeTag(sb, item.Payload)
		}
		sb.WriteByte('}')
	}
}
