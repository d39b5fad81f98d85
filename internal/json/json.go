// Package json 统一项目内的 JSON 编解码入口，底层使用 bytedance/sonic 的标准兼容配置。
package json

import (
	"github.com/bytedance/sonic"
)

var (
	api = sonic.ConfigStd

	// Marshal 与 encoding/json.Marshal 行为一致。
	Marshal = api.Marshal
	// Unmarshal 与 encoding/json.Unmarshal 行为一致。
	Unmarshal = api.Unmarshal
	// MarshalIndent 与 encoding/json.MarshalIndent 行为一致。
	MarshalIndent = api.MarshalIndent
	// MarshalToString 返回字符串形式的编码结果。
	MarshalToString = api.MarshalToString
	// UnmarshalFromString 从字符串解码。
	UnmarshalFromString = api.UnmarshalFromString
	// Valid 判断输入是否为合法 JSON。
	Valid = api.Valid
)
