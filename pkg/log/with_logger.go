package log

import "go.uber.org/atomic"

var (
	_ WithLogger   = &Binder{}
	_ LoggerBinder = &Binder{}
)

// WithLogger 是一个用于访问组件 Logger 的接口。
type WithLogger interface {
	Logger() *MLogger
}

// LoggerBinder 是一个用于设置组件 Logger 的接口。
type LoggerBinder interface {
	SetLogger(logger *MLogger)
}

// Binder 嵌入到编解码管线、路由等组件中，统一管理组件自身的 Logger。
type Binder struct {
	logger    atomic.Pointer[MLogger]
	component atomic.String
}

// SetLogger 将 Logger 绑定到 Binder 上。
func (w *Binder) SetLogger(logger *MLogger) {
	w.logger.Store(logger)
}

// SetComponent 设置未绑定 Logger 时回退使用的组件名。
func (w *Binder) SetComponent(name string) {
	w.component.Store(name)
}

// Logger 返回当前绑定的 Logger。
// 尚未绑定时回退到携带组件名的全局 Logger。
func (w *Binder) Logger() *MLogger {
	if l := w.logger.Load(); l != nil {
		return l
	}
	if name := w.component.Load(); name != "" {
		return With(FieldComponent(name))
	}
	return With()
}
