package uwb

import (
	"context"
	"errors"
	"fmt"

	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/uci"
)

var (
	// ErrNotEnabled indicates the device is not enabled.
	ErrNotEnabled = errors.New("uwb: device not enabled")
	// ErrEnableFailed indicates the transport failed to open.
	ErrEnableFailed = errors.New("uwb: enable failed")
	// ErrInvalidParam indicates invalid arguments.
	ErrInvalidParam = errors.New("uwb: invalid parameter")
	// ErrSessionNotExist indicates an unknown session handle.
	ErrSessionNotExist = errors.New("uwb: session not exist")
	// ErrInvalidState indicates the session is not in a state allowing
	// the operation, or didn't reach the expected state.
	ErrInvalidState = errors.New("uwb: invalid session state")
	// ErrRecovered indicates the engine recovered while waiting.
	ErrRecovered = errors.New("uwb: command aborted by recovery")
	// ErrTimeout indicates no response or notification in time.
	ErrTimeout = core.ErrTimeout
)

// TransitionError reports a rejected device state transition.
type TransitionError struct {
	Event string
	State State
	Err   error
}

// Error implements error.
func (e *TransitionError) Error() string {
	return fmt.Sprintf("uwb: %s not allowed in state %s: %v", e.Event, e.State, e.Err)
}

// Unwrap returns the underlying state machine error.
func (e *TransitionError) Unwrap() error {
	return e.Err
}

// Status is the result code of the device API.
type Status int

// API status codes.
const (
	StatusOK Status = iota
	StatusFailed
	StatusInvalidParam
	StatusTimeout
	StatusNotEnabled
	StatusSessionNotExist
	StatusSessionDuplicate
	StatusMaxSessionsExceeded
	StatusRejected
	StatusInvalidState
	StatusBusy
)

var statusNames = []string{
	"OK",
	"FAILED",
	"INVALID_PARAM",
	"TIMEOUT",
	"NOT_ENABLED",
	"SESSION_NOT_EXIST",
	"SESSION_DUPLICATE",
	"MAX_SESSIONS_EXCEEDED",
	"REJECTED",
	"INVALID_STATE",
	"BUSY",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("STATUS(%d)", int(s))
}

// StatusOf maps an error returned by the device API to a Status.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var st uci.Status
	if errors.As(err, &st) {
		switch st {
		case uci.StatusOK:
			return StatusOK
		case uci.StatusInvalidParam, uci.StatusInvalidRange, uci.StatusSyntaxError, uci.StatusInvalidMessageSize:
			return StatusInvalidParam
		case uci.StatusSessionNotExist:
			return StatusSessionNotExist
		case uci.StatusSessionDuplicate:
			return StatusSessionDuplicate
		case uci.StatusMaxSessionsExceeded:
			return StatusMaxSessionsExceeded
		case uci.StatusRejected:
			return StatusRejected
		}
		return StatusFailed
	}
	var te *TransitionError
	switch {
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, ErrInvalidParam):
		return StatusInvalidParam
	case errors.Is(err, ErrSessionNotExist):
		return StatusSessionNotExist
	case errors.Is(err, ErrNotEnabled), errors.Is(err, core.ErrClosed):
		return StatusNotEnabled
	case errors.Is(err, ErrInvalidState), errors.As(err, &te):
		return StatusInvalidState
	case errors.Is(err, core.ErrBusy):
		return StatusBusy
	}
	return StatusFailed
}
