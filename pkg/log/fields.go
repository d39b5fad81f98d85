package log

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	FieldNameModule    = "module"
	FieldNameComponent = "component"

	FieldNameState     = "state"
	FieldNameDirection = "direction"
	FieldNamePacketID  = "packet_id"
	FieldNamePacket    = "packet"
)

// FieldModule 返回一个包含模块名的 zap 字段。
func FieldModule(module string) zap.Field {
	return zap.String(FieldNameModule, module)
}

// FieldComponent 返回一个包含组件名的 zap 字段。
func FieldComponent(component string) zap.Field {
	return zap.String(FieldNameComponent, component)
}

// FieldState 记录连接状态（handshaking/status/login/play）。
func FieldState(state string) zap.Field {
	return zap.String(FieldNameState, state)
}

// FieldDirection 记录报文方向。
func FieldDirection(direction string) zap.Field {
	return zap.String(FieldNameDirection, direction)
}

// FieldPacketID 以十六进制记录报文编号，与协议文档保持一致。
func FieldPacketID(id int32) zap.Field {
	return zap.String(FieldNamePacketID, fmt.Sprintf("0x%02x", id))
}

// FieldPacket 记录报文名。
func FieldPacket(name string) zap.Field {
	return zap.String(FieldNamePacket, name)
}
