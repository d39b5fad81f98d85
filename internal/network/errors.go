package network

import (
	"github.com/cockroachdb/errors"
)

// Stage 表示网络收发链路中的处理阶段。
//
// 主要用于在日志与监控中标记错误发生的位置，便于排查。
type Stage string

const (
	StageRecvRaw  Stage = "recv_raw" // 读取并解密一帧原始字节
	StageDecode   Stage = "decode"   // 帧 -> 解压 -> RawPacket/Packet
	StageDispatch Stage = "dispatch" // Packet -> 业务处理
	StageEncode   Stage = "encode"   // Packet -> 报文字节 -> 压缩
	StageSend     Stage = "send"     // 加密并写出一帧
)

// 统一的错误码常量。
//
// 注意：这些是用于日志/监控的稳定字符串，真正的 error 对象在下面通过 errors.New 构造。
const (
	ErrCodeRecvFailed     = "network:recv_failed"
	ErrCodeDecodeFailed   = "network:decode_failed"
	ErrCodeDispatchFailed = "network:dispatch_failed"
	ErrCodeEncodeFailed   = "network:encode_failed"
	ErrCodeSendFailed     = "network:send_failed"
)

var (
	// ErrRecvFailed 表示在读取底层连接数据或拆帧时发生错误。
	ErrRecvFailed = errors.New(ErrCodeRecvFailed)

	// ErrDecodeFailed 表示在将帧解码为报文时发生错误。
	ErrDecodeFailed = errors.New(ErrCodeDecodeFailed)

	// ErrDispatchFailed 表示在将报文分发给业务处理时发生错误。
	ErrDispatchFailed = errors.New(ErrCodeDispatchFailed)

	// ErrEncodeFailed 表示在将报文编码为帧内容时发生错误。
	ErrEncodeFailed = errors.New(ErrCodeEncodeFailed)

	// ErrSendFailed 表示在发送数据到对端时发生错误。
	ErrSendFailed = errors.New(ErrCodeSendFailed)
)

var stageErrors = map[Stage]error{
	StageRecvRaw:  ErrRecvFailed,
	StageDecode:   ErrDecodeFailed,
	StageDispatch: ErrDispatchFailed,
	StageEncode:   ErrEncodeFailed,
	StageSend:     ErrSendFailed,
}

// StageError 为带阶段信息的错误，同时匹配阶段哨兵错误与原始原因。
type StageError struct {
	Stage Stage
	Err   error
}

// WrapStage 将 err 标记为发生在 stage 阶段，err 为 nil 时返回 nil。
func WrapStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	return "network: " + string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

// Is 使 errors.Is(err, ErrDecodeFailed) 等判断成立。
func (e *StageError) Is(target error) bool {
	sentinel, ok := stageErrors[e.Stage]
	return ok && sentinel == target
}

// Code 返回阶段对应的稳定错误码。
func (e *StageError) Code() string {
	if sentinel, ok := stageErrors[e.Stage]; ok {
		return sentinel.Error()
	}
	return "network:" + string(e.Stage)
}

// StageOf 提取 err 链中的阶段信息。
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
