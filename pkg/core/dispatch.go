package core

import (
	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/uci"
)

func (e *Engine) onPacket(pkt []byte) {
	hdr, err := uci.ParseHeader(pkt)
	if err != nil {
		glog.Errorf("RX dropped: %v", err)
		e.stats.Dropped++
		return
	}
	if glog.V(2) {
		glog.Infof("RX %s % x", hdr, pkt)
	}
	e.stats.Received++
	asm := e.ctrlAsm
	if hdr.MT == uci.MTData {
		asm = e.dataAsm
	}
	msg, err := asm.Feed(pkt, hdr.MT == uci.MTResponse && e.rawCb != nil)
	if err != nil {
		glog.Errorf("RX %s: %v", hdr, err)
		e.stats.Dropped++
	}
	if msg != nil {
		e.dispatch(msg)
	}
}

func (e *Engine) dispatch(msg *uci.Message) {
	switch msg.MT {
	case uci.MTData:
		e.handler.HandleData(msg)
	case uci.MTResponse:
		e.onResponse(msg)
	case uci.MTNotification:
		e.onNotification(msg)
	default:
		glog.Errorf("unexpected message %s dropped", msg.Header)
		e.stats.Dropped++
	}
}

func (e *Engine) onResponse(msg *uci.Message) {
	if cb := e.rawCb; cb != nil {
		if e.pending == nil || !e.pending.hdr.Matches(msg.Header) {
			glog.Warningf("raw command response %s doesn't match the command", msg.Header)
		}
		e.rawCb = nil
		cb(msg, nil)
		e.commandDone(true)
		return
	}
	if e.pending == nil || e.pending.hdr.MT != uci.MTCommand {
		glog.Errorf("unexpected response %s dropped, no command pending", msg.Header)
		e.stats.Dropped++
		return
	}
	if !e.pending.hdr.Matches(msg.Header) {
		glog.Errorf("response %s doesn't match command %s, dropped", msg.Header, e.pending.hdr)
		e.stats.Dropped++
		return
	}
	e.handler.HandleResponse(ResponseReceived, msg)
	e.commandDone(true)
}

func (e *Engine) onNotification(msg *uci.Message) {
	switch {
	case uci.IsProprietary(msg.GID):
		e.onProprietary(msg)
		return
	case msg.GID == uci.GIDCore && msg.OID == uci.OIDCoreDeviceStatus:
		state, err := uci.ParseDeviceStatus(msg.Payload)
		if err != nil {
			glog.Errorf("malformed %s: %v", msg.Header, err)
			break
		}
		if state.NeedsRecovery() {
			glog.Warningf("device status %s", state)
			e.recover()
		}
	case msg.GID == uci.GIDSessionControl && msg.OID == uci.OIDDataCredit:
		e.onDataCredit(msg)
	}
	e.handler.HandleNotification(msg)
}

// onDataCredit applies controller backpressure. No credit parks the
// command window without returning the slot, a later credit returns it.
func (e *Engine) onDataCredit(msg *uci.Message) {
	credit, err := uci.ParseDataCredit(msg.Payload)
	if err != nil {
		glog.Errorf("malformed %s: %v", msg.Header, err)
		return
	}
	if !credit.Available {
		glog.V(1).Infof("session %08x: no data credit", credit.Handle)
		e.timer.Stop()
		e.pending, e.retries = nil, 0
		return
	}
	if e.pending == nil || e.pending.hdr.MT == uci.MTData {
		e.commandDone(true)
	}
}

func (e *Engine) onProprietary(msg *uci.Message) {
	if msg.OID == uci.OIDSECommError && len(msg.Payload) > 0 && msg.Payload[0] == uci.SECommErrorReset {
		glog.Warning("SE communication error, resetting SE")
		if err := e.transport.Ioctl(hal.IoctlResetSE, nil); err != nil {
			glog.Errorf("reset SE failed: %v", err)
		}
		e.recover()
	}
	if e.extHandler != nil {
		e.extHandler(msg)
		return
	}
	e.handler.HandleNotification(msg)
}
