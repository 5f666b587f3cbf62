package uwb

import (
	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// deviceHandler runs on the engine goroutine. It resolves the wait
// token, mirrors session states and forwards everything to the
// application handler.
type deviceHandler struct {
	d *Device
}

func (h *deviceHandler) HandleResponse(ev core.ResponseEvent, msg *uci.Message) {
	d := h.d
	d.lock.Lock()
	if w := d.wait; w != nil && !w.closed && (w.hdr.MT == uci.MTCommand || ev == core.ResponseTimeout) && w.hdr.Matches(msg.Header) {
		if ev == core.ResponseTimeout {
			w.finish(ErrTimeout)
		} else {
			w.rsp, w.rspDone = msg.Clone(), true
			if w.initSession && msg.Status() == uci.StatusOK {
				_, handle, _ := uci.ParseSessionInitResponse(msg.Payload, w.handle)
				d.sessions[handle] = &Session{
					Handle: handle,
					ID:     w.handle,
					Type:   w.sessionType,
					State:  uci.SessionStateInit,
				}
				w.handle = handle
			}
			w.check()
		}
	}
	app := d.app
	d.lock.Unlock()
	if app != nil {
		app.HandleResponse(ev, msg)
	}
}

func (h *deviceHandler) HandleNotification(msg *uci.Message) {
	d := h.d
	var activity *bool
	d.lock.Lock()
	w := d.wait
	if w != nil && w.closed {
		w = nil
	}
	switch {
	case msg.GID == uci.GIDCore && msg.OID == uci.OIDCoreDeviceStatus:
		if state, err := uci.ParseDeviceStatus(msg.Payload); err == nil {
			d.devState = state
			if w != nil && w.kind == WaitDeviceStatus {
				w.deviceState, w.ntfDone = state, true
				w.check()
			}
		}
	case msg.GID == uci.GIDSessionConfig && msg.OID == uci.OIDSessionStatus:
		ss, err := uci.ParseSessionStatus(msg.Payload)
		if err != nil {
			glog.Errorf("malformed session status: %v", err)
			break
		}
		if w != nil && w.kind == WaitSessionStatus {
			if ss.Handle != w.handle {
				glog.Warningf("unexpected status %s of session %08x while waiting for %08x", ss.State, ss.Handle, w.handle)
				break
			}
			w.sessionState, w.reason, w.ntfDone = ss.State, ss.Reason, true
			w.check()
		}
		active := d.applySessionStatus(ss)
		activity = &active
	case msg.GID == uci.GIDSessionControl && msg.OID == uci.OIDDataTransferStatus:
		ts, err := uci.ParseDataTransferStatus(msg.Payload)
		if err != nil {
			glog.Errorf("malformed data transfer status: %v", err)
			break
		}
		if w != nil && w.kind == WaitDataTransfer && ts.Handle == w.handle {
			w.xferStatus, w.ntfDone = ts.Status, true
			w.check()
		}
	}
	app := d.app
	d.lock.Unlock()

	if activity != nil {
		d.updateActivity(*activity)
	}
	if app != nil {
		app.HandleNotification(msg)
	}
}

func (h *deviceHandler) HandleData(msg *uci.Message) {
	h.d.lock.Lock()
	app := h.d.app
	h.d.lock.Unlock()
	if app != nil {
		app.HandleData(msg)
	}
}

func (h *deviceHandler) HandleRecovery() {
	d := h.d
	d.lock.Lock()
	if w := d.wait; w != nil {
		w.finish(ErrRecovered)
	}
	app := d.app
	d.lock.Unlock()
	if rh, ok := app.(core.RecoveryHandler); ok {
		rh.HandleRecovery()
	}
}

// applySessionStatus updates the session table and reports whether any
// session is active. The caller holds lock.
func (d *Device) applySessionStatus(ss *uci.SessionStatus) bool {
	if s, ok := d.sessions[ss.Handle]; ok {
		s.State, s.Reason = ss.State, ss.Reason
		if ss.State == uci.SessionStateDeinit {
			delete(d.sessions, ss.Handle)
		}
	} else if ss.State != uci.SessionStateDeinit {
		glog.V(1).Infof("status %s of unknown session %08x", ss.State, ss.Handle)
	}
	for _, s := range d.sessions {
		if s.State == uci.SessionStateActive {
			return true
		}
	}
	return false
}

func (d *Device) updateActivity(active bool) {
	switch {
	case active && d.State() == StateIdle:
		d.event(evActivate)
	case !active && d.State() == StateActive:
		d.event(evDeactivate)
	}
}

// EventHandler decodes messages into typed callbacks. Nil callbacks are
// skipped, and it implements core.Handler.
type EventHandler struct {
	OnResponse      func(ev core.ResponseEvent, msg *uci.Message)
	OnDeviceStatus  func(state uci.DeviceState)
	OnSessionStatus func(status *uci.SessionStatus)
	OnRangeData     func(data *uci.RangeData)
	OnGenericError  func(status uci.Status)
	OnDataReceived  func(data *uci.DataMessage)
	OnNotification  func(msg *uci.Message)
	OnRecovery      func()
}

// HandleResponse implements core.Handler.
func (h *EventHandler) HandleResponse(ev core.ResponseEvent, msg *uci.Message) {
	if h.OnResponse != nil {
		h.OnResponse(ev, msg)
	}
}

// HandleNotification implements core.Handler.
func (h *EventHandler) HandleNotification(msg *uci.Message) {
	var err error
	switch {
	case msg.GID == uci.GIDCore && msg.OID == uci.OIDCoreDeviceStatus && h.OnDeviceStatus != nil:
		var state uci.DeviceState
		if state, err = uci.ParseDeviceStatus(msg.Payload); err == nil {
			h.OnDeviceStatus(state)
		}
	case msg.GID == uci.GIDCore && msg.OID == uci.OIDCoreGenericError && h.OnGenericError != nil:
		var st uci.Status
		if st, err = uci.ParseGenericError(msg.Payload); err == nil {
			h.OnGenericError(st)
		}
	case msg.GID == uci.GIDSessionConfig && msg.OID == uci.OIDSessionStatus && h.OnSessionStatus != nil:
		var ss *uci.SessionStatus
		if ss, err = uci.ParseSessionStatus(msg.Payload); err == nil {
			h.OnSessionStatus(ss)
		}
	case msg.GID == uci.GIDSessionControl && msg.OID == uci.OIDRangeData && h.OnRangeData != nil:
		var rd *uci.RangeData
		if rd, err = uci.ParseRangeData(msg.Payload); err == nil {
			h.OnRangeData(rd)
		}
	default:
		if h.OnNotification != nil {
			h.OnNotification(msg)
		}
	}
	if err != nil {
		glog.Errorf("malformed %s: %v", msg.Header, err)
	}
}

// HandleData implements core.Handler.
func (h *EventHandler) HandleData(msg *uci.Message) {
	if h.OnDataReceived == nil {
		return
	}
	dm, err := uci.ParseDataMessage(msg.Payload)
	if err != nil {
		glog.Errorf("malformed data %s: %v", msg.Header, err)
		return
	}
	h.OnDataReceived(dm)
}

// HandleRecovery implements core.RecoveryHandler.
func (h *EventHandler) HandleRecovery() {
	if h.OnRecovery != nil {
		h.OnRecovery()
	}
}
