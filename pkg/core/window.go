package core

import (
	"context"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/uci"
)

// Slot is the right to send one command. Only MaxWindow slots exist,
// and a slot returns to the engine when the command it carried is
// resolved by a response, a data credit, timeout exhaustion or recovery.
type Slot struct {
	e    *Engine
	used atomic.Bool
}

// Acquire waits for the command slot.
func (e *Engine) Acquire(ctx context.Context) (*Slot, error) {
	select {
	case <-e.stopped:
		return nil, ErrClosed
	default:
	}
	select {
	case <-e.slot:
		return &Slot{e: e}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-e.stopped:
		return nil, ErrClosed
	}
}

// TryAcquire takes the command slot if it is free, or fails with ErrBusy.
func (e *Engine) TryAcquire() (*Slot, error) {
	select {
	case <-e.stopped:
		return nil, ErrClosed
	case <-e.slot:
		return &Slot{e: e}, nil
	default:
		return nil, ErrBusy
	}
}

// Release returns the slot without sending anything.
func (s *Slot) Release() {
	if s.used.CompareAndSwap(false, true) {
		s.e.releaseSlot()
	}
}

// Send transmits a single packet. When raw is not nil the next response
// is delivered to raw regardless of its group and opcode. A packet with
// PBF set is acknowledged implicitly and the slot returns immediately.
// Send returns once the packet is handed to the transport.
func (s *Slot) Send(pkt []byte, raw RawCallback) error {
	return s.SendSegments([][]byte{pkt}, raw)
}

// SendSegments transmits chained packets of one logical command. The
// leading fragments are acknowledged implicitly, the last one waits for
// the response.
func (s *Slot) SendSegments(pkts [][]byte, raw RawCallback) error {
	if !s.used.CompareAndSwap(false, true) {
		return ErrSlotUsed
	}
	if len(pkts) == 0 {
		s.e.releaseSlot()
		return ErrNoPacket
	}
	copies := make([][]byte, len(pkts))
	for n, pkt := range pkts {
		if _, err := uci.ParsePacket(pkt); err != nil {
			s.e.releaseSlot()
			return err
		}
		copies[n] = append([]byte(nil), pkt...)
	}
	result := make(chan error, 1)
	if err := s.e.post(func(e *Engine) { result <- e.transmit(copies, raw) }); err != nil {
		return err
	}
	select {
	case err := <-result:
		return err
	case <-s.e.stopped:
		return ErrClosed
	}
}

func (e *Engine) releaseSlot() {
	select {
	case e.slot <- struct{}{}:
	default:
		glog.Error("command slot released twice")
	}
}

func (e *Engine) transmit(pkts [][]byte, raw RawCallback) error {
	for n, pkt := range pkts {
		last := n == len(pkts)-1
		if e.window <= 0 {
			glog.Errorf("command window exhausted, %d packets not sent", len(pkts)-n)
			return ErrBusy
		}
		hdr, _ := uci.ParseHeader(pkt)
		e.window--
		e.pending = &pendingCommand{hdr: hdr, pkt: pkt}
		e.retries = 0
		if last {
			e.rawCb = raw
		}
		if glog.V(2) {
			glog.Infof("TX %s % x", hdr, pkt)
		}
		if err := e.transport.Write(pkt); err != nil {
			glog.Errorf("write %s failed: %v", hdr, err)
			e.rawCb = nil
			e.commandDone(true)
			return err
		}
		e.stats.Sent++
		if hdr.PBF {
			// more fragments follow, the controller only responds to the last
			e.commandDone(last)
			continue
		}
		e.timer.Replace(e.cfg.CommandTimeout)
	}
	return nil
}

// commandDone clears the pending command and restores the window. The
// slot is returned to callers only if release is set.
func (e *Engine) commandDone(release bool) {
	e.timer.Stop()
	e.pending, e.retries = nil, 0
	if e.window < MaxWindow {
		e.window++
		if release {
			e.releaseSlot()
		}
	}
}

func (e *Engine) onTimeout(gen uint64) {
	if !e.timer.expired(gen) || e.pending == nil {
		return
	}
	hdr := e.pending.hdr
	if e.retries < e.cfg.MaxRetry {
		e.retries++
		e.stats.Retransmits++
		glog.Warningf("%s timeout, retry %d/%d", hdr, e.retries, e.cfg.MaxRetry)
		if err := e.transport.Write(e.pending.pkt); err != nil {
			glog.Errorf("retransmit %s failed: %v", hdr, err)
		}
		e.timer.Replace(e.cfg.RetryTimeout)
		return
	}

	glog.Warningf("%s timeout after %d retries", hdr, e.retries)
	e.stats.Timeouts++
	msg := &uci.Message{Header: uci.Header{MT: hdr.MT, GID: hdr.GID, OID: hdr.OID}}
	if cb := e.rawCb; cb != nil {
		e.rawCb = nil
		cb(msg, ErrTimeout)
	} else {
		e.handler.HandleResponse(ResponseTimeout, msg)
	}
	e.recover()
}
