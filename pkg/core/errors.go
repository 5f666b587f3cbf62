package core

import "errors"

var (
	// ErrTimeout indicates a command got no response after all retries.
	ErrTimeout = errors.New("uci command timeout")
	// ErrBusy indicates the command window is exhausted.
	ErrBusy = errors.New("uci command window busy")
	// ErrClosed indicates the engine stopped.
	ErrClosed = errors.New("uci engine closed")
	// ErrAlreadyRunning indicates Run is called more than once.
	ErrAlreadyRunning = errors.New("uci engine already running")
	// ErrSlotUsed indicates a Slot is used after Send or Release.
	ErrSlotUsed = errors.New("command slot already used")
	// ErrNoPacket indicates nothing is given to send.
	ErrNoPacket = errors.New("no packet to send")
)
