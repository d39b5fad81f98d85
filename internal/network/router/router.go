package router

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lk2023060901/mcproto-go/internal/network"
	"github.com/lk2023060901/mcproto-go/pkg/log"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
)

// Handler 是暴露给业务层的通用处理函数签名。
//
// pkt 为已经解码的具体报文，类型与注册时的报文编号一一对应。
type Handler func(ctx context.Context, pkt protocol.Packet) error

// Router 维护报文编号（编号、状态、方向三元组）到 Handler 的映射。
//
// 典型调用链：
//  1. Codec 从底层连接读取一帧，按当前连接状态解码为 Packet；
//  2. 上层调用 Router.Handle(ctx, pkt)；
//  3. Router 根据 pkt.PacketID() 找到 Handler 并调用。
type Router interface {
	// Register 为报文编号 id 注册处理函数，同一编号不允许重复注册。
	Register(id protocol.ID, h Handler) error

	// Handle 将报文分发给对应的 Handler，未注册的编号返回 ErrPacketUnknownID。
	Handle(ctx context.Context, pkt protocol.Packet) error
}

// defaultRouter 是 Router 接口的基础实现，注册与分发可以并发进行。
type defaultRouter struct {
	mu     sync.RWMutex
	routes map[protocol.ID]Handler
}

// 编译期断言：确保 defaultRouter 实现了 Router 接口。
var _ Router = (*defaultRouter)(nil)

// New 创建一个空的 Router。
func New() Router {
	return &defaultRouter{
		routes: make(map[protocol.ID]Handler),
	}
}

// On 以具体报文类型注册处理函数，编号取自 P 的 PacketID。
//
// P 通常为报文结构体指针，PacketID 只返回常量，因此可以在零值上调用。
func On[P protocol.Packet](r Router, h func(ctx context.Context, pkt P) error) error {
	if h == nil {
		return merr.WrapErrParameterMissing("handler")
	}
	var zero P
	return r.Register(zero.PacketID(), func(ctx context.Context, pkt protocol.Packet) error {
		p, ok := pkt.(P)
		if !ok {
			return merr.WrapErrParameterInvalidMsg("router: unexpected packet type %T for %s", pkt, zero.PacketID())
		}
		return h(ctx, p)
	})
}

// Register 实现 Router.Register。
func (r *defaultRouter) Register(id protocol.ID, h Handler) error {
	if h == nil {
		return merr.WrapErrParameterMissing("handler", id.String())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.routes[id]; exists {
		return errors.Newf("router: %s already registered", id)
	}
	r.routes[id] = h
	return nil
}

// Handle 实现 Router.Handle。
func (r *defaultRouter) Handle(ctx context.Context, pkt protocol.Packet) error {
	if pkt == nil {
		return merr.WrapErrParameterMissing("packet")
	}
	id := pkt.PacketID()

	r.mu.RLock()
	h, ok := r.routes[id]
	r.mu.RUnlock()
	if !ok {
		return network.WrapStage(network.StageDispatch, protocol.NewUnknownIDError(id, "no handler"))
	}

	if err := h(ctx, pkt); err != nil {
		log.Ctx(ctx).Debug("packet handler failed",
			log.FieldModule("network"),
			log.FieldPacketID(id.ID),
			log.FieldState(id.State.String()),
			log.FieldDirection(id.Direction.String()),
			zap.Error(err))
		return network.WrapStage(network.StageDispatch, err)
	}
	return nil
}
