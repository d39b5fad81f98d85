package chat

import "strings"

// SectionSign 为旧式格式码的前缀字符。
const SectionSign = '§'

// ColorCode 为 16 种预定义颜色。
type ColorCode uint8

const (
	Black ColorCode = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

var colorNames = [...]string{
	"black", "dark_blue", "dark_green", "dark_aqua",
	"dark_red", "dark_purple", "gold", "gray",
	"dark_gray", "blue", "green", "aqua",
	"red", "light_purple", "yellow", "white",
}

const colorCodes = "0123456789abcdef"

// Code 返回颜色对应的格式码字符 0-9a-f。
func (c ColorCode) Code() byte { return colorCodes[c&0x0f] }

// Name 返回 JSON 文本中使用的颜色名，例如 "dark_aqua"。
func (c ColorCode) Name() string { return colorNames[c&0x0f] }

func (c ColorCode) String() string { return c.Name() }

// ColorFromCode 按格式码查找颜色。
func ColorFromCode(code byte) (ColorCode, bool) {
	i := strings.IndexByte(colorCodes, code)
	if i < 0 {
		return 0, false
	}
	return ColorCode(i), true
}

// ColorFromName 按颜色名查找颜色，忽略大小写。
func ColorFromName(name string) (ColorCode, bool) {
	name = strings.ToLower(name)
	for i, n := range colorNames {
		if n == name {
			return ColorCode(i), true
		}
	}
	return 0, false
}

// Formatter 为一个旧式格式码，取值为格式码字符本身。
type Formatter byte

const (
	Obfuscated    Formatter = 'k'
	Bold          Formatter = 'l'
	Strikethrough Formatter = 'm'
	Underline     Formatter = 'n'
	Italic        Formatter = 'o'
	Reset         Formatter = 'r'
)

var formatterNames = map[Formatter]string{
	Obfuscated:    "obfuscated",
	Bold:          "bold",
	Strikethrough: "strikethrough",
	Underline:     "underline",
	Italic:        "italic",
	Reset:         "reset",
}

// ColorFormatter 返回颜色对应的格式码。
func ColorFormatter(c ColorCode) Formatter { return Formatter(c.Code()) }

// FormatterFromCode 按格式码字符查找，忽略大小写。
func FormatterFromCode(code byte) (Formatter, bool) {
	if 'A' <= code && code <= 'Z' {
		code += 'a' - 'A'
	}
	if _, ok := formatterNames[Formatter(code)]; ok {
		return Formatter(code), true
	}
	if c, ok := ColorFromCode(code); ok {
		return ColorFormatter(c), true
	}
	return 0, false
}

// FormatterFromName 按名字查找，颜色名同样适用。
func FormatterFromName(name string) (Formatter, bool) {
	name = strings.ToLower(name)
	for f, n := range formatterNames {
		if n == name {
			return f, true
		}
	}
	if c, ok := ColorFromName(name); ok {
		return ColorFormatter(c), true
	}
	return 0, false
}

// Color 在格式码表示颜色时返回对应颜色。
func (f Formatter) Color() (ColorCode, bool) {
	return ColorFromCode(byte(f))
}

func (f Formatter) Name() string {
	if c, ok := f.Color(); ok {
		return c.Name()
	}
	return formatterNames[f]
}

// String 返回带 § 前缀的格式码，例如 "§l"。
func (f Formatter) String() string {
	return string(SectionSign) + string(rune(f))
}
