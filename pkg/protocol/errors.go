package protocol

import (
	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
)

// UnknownIDError 表示身份三元组没有对应的报文结构。
// 它满足 errors.Is(err, merr.ErrPacketUnknownID)，同时以数据形式携带编号、状态与方向。
type UnknownIDError struct {
	ID  ID
	err error
}

// NewUnknownIDError 构造未知编号错误，msg 追加到错误信息中。
func NewUnknownIDError(id ID, msg ...string) *UnknownIDError {
	return &UnknownIDError{
		ID:  id,
		err: merr.WrapErrPacketUnknownID(id.ID, id.State.String(), id.Direction.String(), msg...),
	}
}

func (e *UnknownIDError) Error() string { return e.err.Error() }

func (e *UnknownIDError) Unwrap() error { return e.err }

// UnknownIDOf 从错误链中取出未知的报文身份。
func UnknownIDOf(err error) (ID, bool) {
	var e *UnknownIDError
	if errors.As(err, &e) {
		return e.ID, true
	}
	return ID{}, false
}
