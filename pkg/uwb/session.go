package uwb

import (
	"context"
	"fmt"

	"github.com/robotalks/uwb.go/pkg/uci"
)

// Session mirrors the state of a FiRa session as notified by the
// controller.
type Session struct {
	Handle uint32
	ID     uint32
	Type   uci.SessionType
	State  uci.SessionState
	Reason byte
}

func (d *Device) command(gid, oid byte, payload []byte) ([]byte, error) {
	pkt, err := uci.EncodePacket(uci.MTCommand, gid, oid, false, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	return pkt, nil
}

// checkSession validates the session exists and is in one of states.
func (d *Device) checkSession(handle uint32, states ...uci.SessionState) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.engine == nil {
		return ErrNotEnabled
	}
	s, ok := d.sessions[handle]
	if !ok {
		return ErrSessionNotExist
	}
	if len(states) == 0 {
		return nil
	}
	for _, state := range states {
		if s.State == state {
			return nil
		}
	}
	return fmt.Errorf("%w: session %08x is %s", ErrInvalidState, handle, s.State)
}

// expectState checks the state notified while waiting.
func expectState(w *waitToken, state uci.SessionState) error {
	if w.sessionState != state {
		return fmt.Errorf("%w: session %08x is %s, reason 0x%02x", ErrInvalidState, w.handle, w.sessionState, w.reason)
	}
	return nil
}

// SessionInit creates a session and waits until the controller reports
// it initialized. It returns the session handle.
func (d *Device) SessionInit(ctx context.Context, id uint32, typ uci.SessionType) (uint32, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionInit, uci.SessionInitPayload(id, typ))
	if err != nil {
		return 0, err
	}
	w, err := d.execute(ctx, WaitSessionStatus, pkt)
	if err != nil {
		return 0, err
	}
	return w.handle, expectState(w, uci.SessionStateInit)
}

// SessionDeinit destroys a session.
func (d *Device) SessionDeinit(ctx context.Context, handle uint32) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()
	return d.sessionDeinit(ctx, handle)
}

func (d *Device) sessionDeinit(ctx context.Context, handle uint32) error {
	if err := d.checkSession(handle); err != nil {
		return err
	}
	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionDeinit, uci.HandlePayload(handle))
	if err != nil {
		return err
	}
	w, err := d.execute(ctx, WaitSessionStatus, pkt)
	if err != nil {
		return err
	}
	return expectState(w, uci.SessionStateDeinit)
}

// SetAppConfig sets session parameters. A session in INIT state is
// expected to become IDLE.
func (d *Device) SetAppConfig(ctx context.Context, handle uint32, tlvs []uci.TLV) ([]uci.ParamStatus, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if len(tlvs) == 0 {
		return nil, ErrInvalidParam
	}
	if err := d.checkSession(handle, uci.SessionStateInit, uci.SessionStateIdle); err != nil {
		return nil, err
	}
	payload, err := uci.SetAppConfigPayload(handle, tlvs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionSetAppConfig, payload)
	if err != nil {
		return nil, err
	}
	kind := WaitResponse
	if s, _ := d.Session(handle); s.State == uci.SessionStateInit {
		kind = WaitSessionStatus
	}
	w, err := d.execute(ctx, kind, pkt)
	if w == nil || w.rsp == nil {
		return nil, err
	}
	_, params, perr := uci.ParseSetConfigResponse(w.rsp.Payload)
	if err == nil && perr != nil {
		err = perr
	}
	if err == nil && kind == WaitSessionStatus {
		err = expectState(w, uci.SessionStateIdle)
	}
	return params, err
}

// GetAppConfig reads session parameters. Empty ids read all.
func (d *Device) GetAppConfig(ctx context.Context, handle uint32, ids []byte) ([]uci.TLV, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if err := d.checkSession(handle); err != nil {
		return nil, err
	}
	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionGetAppConfig, uci.GetAppConfigPayload(handle, ids))
	if err != nil {
		return nil, err
	}
	w, err := d.execute(ctx, WaitResponse, pkt)
	if err != nil {
		return nil, err
	}
	_, tlvs, err := uci.ParseConfigResponse(w.rsp.Payload)
	return tlvs, err
}

// GetSessionCount queries the number of sessions on the controller.
func (d *Device) GetSessionCount(ctx context.Context) (int, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionGetCount, nil)
	if err != nil {
		return 0, err
	}
	w, err := d.execute(ctx, WaitResponse, pkt)
	if err != nil {
		return 0, err
	}
	if len(w.rsp.Payload) < 2 {
		return 0, uci.ErrMalformedPayload
	}
	return int(w.rsp.Payload[1]), nil
}

// GetSessionState queries the state of a session on the controller.
func (d *Device) GetSessionState(ctx context.Context, handle uint32) (uci.SessionState, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if err := d.checkSession(handle); err != nil {
		return 0, err
	}
	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionGetState, uci.HandlePayload(handle))
	if err != nil {
		return 0, err
	}
	w, err := d.execute(ctx, WaitResponse, pkt)
	if err != nil {
		return 0, err
	}
	if len(w.rsp.Payload) < 2 {
		return 0, uci.ErrMalformedPayload
	}
	return uci.SessionState(w.rsp.Payload[1]), nil
}

// UpdateMulticastList adds or removes controlees of a session.
func (d *Device) UpdateMulticastList(ctx context.Context, handle uint32, action byte, controlees []uci.Controlee) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if len(controlees) == 0 || (action != uci.MulticastAdd && action != uci.MulticastDelete) {
		return ErrInvalidParam
	}
	if err := d.checkSession(handle); err != nil {
		return err
	}
	payload, err := uci.MulticastListPayload(handle, action, controlees)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	pkt, err := d.command(uci.GIDSessionConfig, uci.OIDSessionUpdateMulticastList, payload)
	if err != nil {
		return err
	}
	_, err = d.execute(ctx, WaitResponse, pkt)
	return err
}

// StartRanging starts an IDLE session and waits until it is ACTIVE.
func (d *Device) StartRanging(ctx context.Context, handle uint32) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if err := d.checkSession(handle, uci.SessionStateIdle); err != nil {
		return err
	}
	pkt, err := d.command(uci.GIDSessionControl, uci.OIDRangeStart, uci.HandlePayload(handle))
	if err != nil {
		return err
	}
	w, err := d.execute(ctx, WaitSessionStatus, pkt)
	if err != nil {
		return err
	}
	return expectState(w, uci.SessionStateActive)
}

// StopRanging stops an ACTIVE session and waits until it is IDLE.
func (d *Device) StopRanging(ctx context.Context, handle uint32) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()
	return d.stopRanging(ctx, handle)
}

func (d *Device) stopRanging(ctx context.Context, handle uint32) error {
	if err := d.checkSession(handle, uci.SessionStateActive); err != nil {
		return err
	}
	pkt, err := d.command(uci.GIDSessionControl, uci.OIDRangeStop, uci.HandlePayload(handle))
	if err != nil {
		return err
	}
	w, err := d.execute(ctx, WaitSessionStatus, pkt)
	if err != nil {
		return err
	}
	return expectState(w, uci.SessionStateIdle)
}

// GetRangingCount queries the number of ranging rounds of a session.
func (d *Device) GetRangingCount(ctx context.Context, handle uint32) (uint32, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if err := d.checkSession(handle); err != nil {
		return 0, err
	}
	pkt, err := d.command(uci.GIDSessionControl, uci.OIDRangeGetCount, uci.HandlePayload(handle))
	if err != nil {
		return 0, err
	}
	w, err := d.execute(ctx, WaitResponse, pkt)
	if err != nil {
		return 0, err
	}
	return uci.ParseHandle(w.rsp.Payload[1:])
}

// SendData sends data to a peer of an ACTIVE session and waits for its
// transfer status.
func (d *Device) SendData(ctx context.Context, handle uint32, address uint64, data []byte) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if len(data) == 0 {
		return ErrInvalidParam
	}
	if err := d.checkSession(handle, uci.SessionStateActive); err != nil {
		return err
	}
	d.lock.Lock()
	d.dataSeq++
	seq := d.dataSeq
	d.lock.Unlock()

	msg := &uci.DataMessage{Handle: handle, Address: address, Seq: seq, Data: data}
	pkt, err := uci.EncodePacket(uci.MTData, uci.DPFDataSend, 0, false, msg.AppendTo(nil))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	w, err := d.execute(ctx, WaitDataTransfer, pkt)
	if err != nil {
		return err
	}
	if w.xferStatus != uci.DataTransferOK {
		return fmt.Errorf("%w: session %08x seq %d", uci.StatusDataTransferError, handle, seq)
	}
	return nil
}
