package uwb

import (
	"context"
	"fmt"

	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// SendUciCommand sends a complete UCI packet and waits for ev. With pbf
// set the packet is sent as a leading fragment, which the controller
// doesn't respond to, and the call returns once it is written. The
// response is returned also when it carries a failure status.
func (d *Device) SendUciCommand(ctx context.Context, ev WaitEvent, pkt []byte, pbf bool) (*uci.Message, error) {
	msg, err := uci.ParsePacket(pkt)
	if err != nil || (msg.MT != uci.MTCommand && msg.MT != uci.MTData) {
		return nil, ErrInvalidParam
	}
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if pbf {
		engine, err := d.activeEngine()
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(ctx, d.cfg.SyncTimeout)
		defer cancel()
		slot, err := engine.Acquire(ctx)
		if err != nil {
			return nil, waitError(err)
		}
		frag := append([]byte(nil), pkt...)
		frag[0] |= 0x10
		return nil, slot.Send(frag, nil)
	}
	w, err := d.execute(ctx, ev, pkt)
	if w != nil {
		return w.rsp, err
	}
	return nil, err
}

// SendRawCommand sends a packet and delivers the next response to cb,
// whatever group and opcode it carries. It returns once the packet is
// written, cb runs on the engine goroutine.
func (d *Device) SendRawCommand(ctx context.Context, pkt []byte, cb core.RawCallback) error {
	if cb == nil {
		return ErrInvalidParam
	}
	if _, err := uci.ParsePacket(pkt); err != nil {
		return ErrInvalidParam
	}
	engine, err := d.activeEngine()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SyncTimeout)
	defer cancel()
	slot, err := engine.Acquire(ctx)
	if err != nil {
		return waitError(err)
	}
	return slot.Send(pkt, cb)
}

// Init resets the controller, waits for it to become ready and reads
// the device information.
func (d *Device) Init(ctx context.Context) (*uci.DeviceInfo, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	pkt, err := d.command(uci.GIDCore, uci.OIDCoreDeviceReset, []byte{0x00})
	if err != nil {
		return nil, err
	}
	w, err := d.execute(ctx, WaitDeviceStatus, pkt)
	if err != nil {
		return nil, err
	}
	if w.deviceState != uci.DeviceStateReady {
		return nil, fmt.Errorf("%w: device %s after reset", uci.StatusFailed, w.deviceState)
	}
	d.lock.Lock()
	d.sessions = make(map[uint32]*Session)
	d.lock.Unlock()
	return d.getDeviceInfo(ctx)
}

// GetDeviceInfo reads versions and vendor information.
func (d *Device) GetDeviceInfo(ctx context.Context) (*uci.DeviceInfo, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()
	return d.getDeviceInfo(ctx)
}

func (d *Device) getDeviceInfo(ctx context.Context) (*uci.DeviceInfo, error) {
	pkt, err := d.command(uci.GIDCore, uci.OIDCoreGetDeviceInfo, nil)
	if err != nil {
		return nil, err
	}
	w, err := d.execute(ctx, WaitResponse, pkt)
	if err != nil {
		return nil, err
	}
	return uci.ParseDeviceInfo(w.rsp.Payload)
}

// GetCapsInfo reads the capability parameters.
func (d *Device) GetCapsInfo(ctx context.Context) ([]uci.TLV, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	pkt, err := d.command(uci.GIDCore, uci.OIDCoreGetCapsInfo, nil)
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

// SetCoreConfig sets device parameters.
func (d *Device) SetCoreConfig(ctx context.Context, tlvs []uci.TLV) ([]uci.ParamStatus, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if len(tlvs) == 0 {
		return nil, ErrInvalidParam
	}
	payload, err := uci.EncodeTLVs(tlvs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	pkt, err := d.command(uci.GIDCore, uci.OIDCoreSetConfig, payload)
	if err != nil {
		return nil, err
	}
	w, err := d.execute(ctx, WaitResponse, pkt)
	if w == nil || w.rsp == nil {
		return nil, err
	}
	_, params, perr := uci.ParseSetConfigResponse(w.rsp.Payload)
	if err == nil {
		err = perr
	}
	return params, err
}

// GetCoreConfig reads device parameters. Empty ids read all.
func (d *Device) GetCoreConfig(ctx context.Context, ids []byte) ([]uci.TLV, error) {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	pkt, err := d.command(uci.GIDCore, uci.OIDCoreGetConfig, uci.GetConfigPayload(ids))
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
