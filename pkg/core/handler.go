package core

import (
	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// ResponseEvent tells how a command is resolved.
type ResponseEvent int

const (
	// ResponseReceived means a matching response arrived.
	ResponseReceived ResponseEvent = iota
	// ResponseTimeout means no response arrived after all retries. The
	// message carries the header of the command without payload.
	ResponseTimeout
)

// String implements fmt.Stringer.
func (ev ResponseEvent) String() string {
	if ev == ResponseTimeout {
		return "TIMEOUT"
	}
	return "RECEIVED"
}

// Handler receives dispatched messages. All methods are invoked on the
// engine goroutine and must not block or call back into the engine
// synchronously. Messages are only valid during the call, use
// Message.Clone to retain them.
type Handler interface {
	HandleResponse(ev ResponseEvent, msg *uci.Message)
	HandleNotification(msg *uci.Message)
	HandleData(msg *uci.Message)
}

// RecoveryHandler is optionally implemented by a Handler to learn about
// completed recoveries.
type RecoveryHandler interface {
	HandleRecovery()
}

// HandlerFuncs implements Handler with optional funcs.
type HandlerFuncs struct {
	ResponseFunc     func(ResponseEvent, *uci.Message)
	NotificationFunc func(*uci.Message)
	DataFunc         func(*uci.Message)
	RecoveryFunc     func()
}

// HandleResponse implements Handler.
func (h *HandlerFuncs) HandleResponse(ev ResponseEvent, msg *uci.Message) {
	if h.ResponseFunc != nil {
		h.ResponseFunc(ev, msg)
	}
}

// HandleNotification implements Handler.
func (h *HandlerFuncs) HandleNotification(msg *uci.Message) {
	if h.NotificationFunc != nil {
		h.NotificationFunc(msg)
	}
}

// HandleData implements Handler.
func (h *HandlerFuncs) HandleData(msg *uci.Message) {
	if h.DataFunc != nil {
		h.DataFunc(msg)
	}
}

// HandleRecovery implements RecoveryHandler.
func (h *HandlerFuncs) HandleRecovery() {
	if h.RecoveryFunc != nil {
		h.RecoveryFunc()
	}
}

// RawCallback receives the response of a raw command, or ErrTimeout
// with the command header when none arrives. It runs on the engine
// goroutine.
type RawCallback func(msg *uci.Message, err error)

// ExtHandler receives notifications of the proprietary groups. It runs
// on the engine goroutine.
type ExtHandler func(msg *uci.Message)

// Transport is the part of hal.HAL used by the engine.
type Transport interface {
	Write(pkt []byte) error
	Ioctl(op hal.IoctlOp, data []byte) error
}
