package uwb

import (
	"context"
	"errors"

	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// WaitEvent tells what completes a blocking command.
type WaitEvent int

const (
	// WaitResponse completes on the response.
	WaitResponse WaitEvent = iota
	// WaitDeviceStatus completes on the response and a device status
	// notification.
	WaitDeviceStatus
	// WaitSessionStatus completes on the response and a session status
	// notification of the addressed session.
	WaitSessionStatus
	// WaitDataTransfer completes on the data transfer status of the
	// addressed session. Data packets have no response.
	WaitDataTransfer
)

// String implements fmt.Stringer.
func (w WaitEvent) String() string {
	switch w {
	case WaitResponse:
		return "RESPONSE"
	case WaitDeviceStatus:
		return "DEVICE_STATUS"
	case WaitSessionStatus:
		return "SESSION_STATUS"
	case WaitDataTransfer:
		return "DATA_TRANSFER"
	default:
		return "UNKNOWN"
	}
}

// waitToken is the single in-flight wait of a blocking call. It is
// guarded by Device.lock.
type waitToken struct {
	kind   WaitEvent
	hdr    uci.Header
	handle uint32

	// set for SESSION_INIT, the response may assign a different handle
	initSession bool
	sessionType uci.SessionType

	rspDone bool
	ntfDone bool
	closed  bool
	done    chan struct{}
	err     error

	rsp          *uci.Message
	deviceState  uci.DeviceState
	sessionState uci.SessionState
	reason       byte
	xferStatus   byte
}

func newWaitToken(kind WaitEvent, pkt []byte) *waitToken {
	msg, _ := uci.ParsePacket(pkt)
	w := &waitToken{kind: kind, hdr: msg.Header, done: make(chan struct{})}
	w.hdr.PBF, w.hdr.Length = false, 0
	if h, err := uci.ParseHandle(msg.Payload); err == nil {
		w.handle = h
	}
	if msg.MT == uci.MTData {
		w.rspDone = true
	}
	if msg.MT == uci.MTCommand && msg.GID == uci.GIDSessionConfig && msg.OID == uci.OIDSessionInit && len(msg.Payload) > 4 {
		w.initSession, w.sessionType = true, uci.SessionType(msg.Payload[4])
	}
	return w
}

func (w *waitToken) needNotification() bool {
	return w.kind != WaitResponse
}

func (w *waitToken) finish(err error) {
	if w.closed {
		return
	}
	w.closed, w.err = true, err
	close(w.done)
}

func (w *waitToken) check() {
	if !w.rspDone {
		return
	}
	if w.rsp != nil && w.rsp.Status() != uci.StatusOK {
		w.finish(nil)
		return
	}
	if w.ntfDone || !w.needNotification() {
		w.finish(nil)
	}
}

// status returns the response status as an error.
func (w *waitToken) status() error {
	if w.rsp == nil {
		return nil
	}
	return w.rsp.Status().Err()
}

func (d *Device) activeEngine() (*core.Engine, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.engine == nil {
		return nil, ErrNotEnabled
	}
	return d.engine, nil
}

// execute sends pkt, segmented when its payload exceeds MaxFragment, and
// waits for the token to complete. The caller holds cmdLock.
func (d *Device) execute(ctx context.Context, kind WaitEvent, pkt []byte) (*waitToken, error) {
	msg, err := uci.ParsePacket(pkt)
	if err != nil {
		return nil, ErrInvalidParam
	}
	engine, err := d.activeEngine()
	if err != nil {
		return nil, err
	}
	pkts := [][]byte{pkt}
	if len(msg.Payload) > d.cfg.MaxFragment {
		if pkts, err = uci.Segment(msg.MT, msg.GID, msg.OID, msg.Payload, d.cfg.MaxFragment); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.SyncTimeout)
	defer cancel()
	slot, err := engine.Acquire(ctx)
	if err != nil {
		return nil, waitError(err)
	}
	w := newWaitToken(kind, pkt)
	d.lock.Lock()
	d.wait = w
	d.lock.Unlock()
	defer func() {
		d.lock.Lock()
		if d.wait == w {
			d.wait = nil
		}
		d.lock.Unlock()
	}()

	if err := slot.SendSegments(pkts, nil); err != nil {
		return nil, err
	}
	select {
	case <-w.done:
	case <-ctx.Done():
		return nil, waitError(ctx.Err())
	case <-engine.Done():
		return nil, core.ErrClosed
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	if w.err != nil {
		return w, w.err
	}
	return w, w.status()
}

func waitError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
