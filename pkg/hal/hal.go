// Package hal defines the transport adapter between the UCI engine and
// a UWB controller, plus a generic packet stream implementation.
package hal

import (
	"errors"
	"fmt"
)

// Event is a transport lifecycle event.
type Event int

// Transport events.
const (
	EventOpenComplete Event = iota
	EventCloseComplete
	EventError
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case EventOpenComplete:
		return "OPEN_COMPLETE"
	case EventCloseComplete:
		return "CLOSE_COMPLETE"
	case EventError:
		return "ERROR"
	default:
		return fmt.Sprintf("EVENT(%d)", int(e))
	}
}

// IoctlOp is a hardware specific control operation.
type IoctlOp int

// Supported ioctl operations.
const (
	// IoctlResetSE resets the secure element attached to the controller.
	IoctlResetSE IoctlOp = iota + 1
	// IoctlHardReset pulses the controller reset line.
	IoctlHardReset
)

// String implements fmt.Stringer.
func (op IoctlOp) String() string {
	switch op {
	case IoctlResetSE:
		return "RESET_SE"
	case IoctlHardReset:
		return "HARD_RESET"
	default:
		return fmt.Sprintf("IOCTL(%d)", int(op))
	}
}

// EventCallback receives lifecycle events. err is set with EventError
// and on failed open.
type EventCallback func(ev Event, err error)

// DataCallback receives one complete UCI packet. The buffer is owned by
// the callee after the call.
type DataCallback func(pkt []byte)

// HAL is the transport to a UWB controller. Open and Close report
// completion asynchronously through the EventCallback.
type HAL interface {
	Open(EventCallback, DataCallback) error
	Close() error
	Write(pkt []byte) error
	Ioctl(op IoctlOp, data []byte) error
}

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketConn is a packet oriented connection to a controller.
type PacketConn interface {
	PacketReader
	PacketWriter
	Close() error
}

var (
	// ErrNotOpen indicates the transport is not open.
	ErrNotOpen = errors.New("hal: not open")
	// ErrAlreadyOpen indicates Open is called twice.
	ErrAlreadyOpen = errors.New("hal: already open")
	// ErrUnsupportedIoctl indicates the transport doesn't support the op.
	ErrUnsupportedIoctl = errors.New("hal: unsupported ioctl")
)
