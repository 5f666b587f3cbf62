package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/uci"
)

type host struct {
	t      *testing.T
	c      *Controller
	events chan hal.Event
	msgs   chan *uci.Message
	asm    *uci.Reassembler
}

func openHost(t *testing.T, c *Controller) *host {
	h := &host{
		t:      t,
		c:      c,
		events: make(chan hal.Event, 4),
		msgs:   make(chan *uci.Message, 64),
		asm:    uci.NewReassembler(uci.DefaultControlCapacity),
	}
	require.NoError(t, c.Open(func(ev hal.Event, err error) {
		h.events <- ev
	}, h.receive))
	require.Equal(t, hal.EventOpenComplete, <-h.events)
	msg := h.next()
	require.Equal(t, uci.MTNotification, msg.MT)
	require.Equal(t, uci.OIDCoreDeviceStatus, msg.OID)
	return h
}

func (h *host) receive(pkt []byte) {
	msg, err := h.asm.Feed(pkt, false)
	require.NoError(h.t, err)
	if msg != nil {
		h.msgs <- &uci.Message{Header: msg.Header, Payload: append([]byte(nil), msg.Payload...)}
	}
}

func (h *host) next() *uci.Message {
	select {
	case msg := <-h.msgs:
		return msg
	case <-time.After(time.Second):
		h.t.Fatal("no message")
		return nil
	}
}

func (h *host) command(gid, oid byte, payload []byte) *uci.Message {
	pkts, err := uci.Segment(uci.MTCommand, gid, oid, payload, uci.DefaultMaxFragment)
	require.NoError(h.t, err)
	for _, pkt := range pkts {
		require.NoError(h.t, h.c.Write(pkt))
	}
	rsp := h.next()
	for rsp.MT == uci.MTNotification && rsp.GID == uci.GIDSessionControl {
		rsp = h.next()
	}
	require.Equal(h.t, uci.MTResponse, rsp.MT)
	require.Equal(h.t, gid, rsp.GID)
	require.Equal(h.t, oid, rsp.OID)
	return rsp
}

func (h *host) sessionStatus() *uci.SessionStatus {
	msg := h.next()
	require.Equal(h.t, uci.MTNotification, msg.MT)
	require.Equal(h.t, uci.OIDSessionStatus, msg.OID)
	ss, err := uci.ParseSessionStatus(msg.Payload)
	require.NoError(h.t, err)
	return ss
}

func (h *host) initSession(id uint32) uint32 {
	rsp := h.command(uci.GIDSessionConfig, uci.OIDSessionInit, uci.SessionInitPayload(id, uci.SessionTypeRanging))
	st, handle, err := uci.ParseSessionInitResponse(rsp.Payload, id)
	require.NoError(h.t, err)
	require.Equal(h.t, uci.StatusOK, st)
	ss := h.sessionStatus()
	require.Equal(h.t, handle, ss.Handle)
	require.Equal(h.t, uci.SessionStateInit, ss.State)
	return handle
}

func TestControllerOpenClose(t *testing.T) {
	c := New()
	h := openHost(t, c)
	require.Equal(t, hal.ErrAlreadyOpen, c.Open(nil, nil))
	require.NoError(t, c.Close())
	require.Equal(t, hal.EventCloseComplete, <-h.events)
	require.Equal(t, hal.ErrNotOpen, c.Write([]byte{0x20, 0, 0, 0}))
	require.Equal(t, hal.ErrNotOpen, c.Close())
}

func TestControllerFailOpen(t *testing.T) {
	c := New()
	c.FailOpen(ErrInjectedFailure)
	events := make(chan hal.Event, 1)
	require.NoError(t, c.Open(func(ev hal.Event, err error) {
		require.Equal(t, ErrInjectedFailure, err)
		events <- ev
	}, func([]byte) {}))
	require.Equal(t, hal.EventError, <-events)
}

func TestControllerCore(t *testing.T) {
	c := New()
	h := openHost(t, c)

	rsp := h.command(uci.GIDCore, uci.OIDCoreDeviceReset, []byte{0})
	require.Equal(t, []byte{byte(uci.StatusOK)}, rsp.Payload)
	ntf := h.next()
	require.Equal(t, uci.OIDCoreDeviceStatus, ntf.OID)
	state, err := uci.ParseDeviceStatus(ntf.Payload)
	require.NoError(t, err)
	require.Equal(t, uci.DeviceStateReady, state)

	rsp = h.command(uci.GIDCore, uci.OIDCoreGetDeviceInfo, nil)
	info, err := uci.ParseDeviceInfo(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, c.Info.UCIVersion, info.UCIVersion)
	require.Equal(t, c.Info.VendorInfo, info.VendorInfo)

	rsp = h.command(uci.GIDCore, uci.OIDCoreGetCapsInfo, nil)
	st, caps, err := uci.ParseConfigResponse(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, uci.StatusOK, st)
	require.Equal(t, c.Caps, caps)

	cfg, err := uci.EncodeTLVs([]uci.TLV{{Type: 0x01, Value: []byte{0x02}}})
	require.NoError(t, err)
	rsp = h.command(uci.GIDCore, uci.OIDCoreSetConfig, cfg)
	st, _, err = uci.ParseSetConfigResponse(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, uci.StatusOK, st)

	rsp = h.command(uci.GIDCore, uci.OIDCoreGetConfig, uci.GetConfigPayload([]byte{0x01}))
	st, tlvs, err := uci.ParseConfigResponse(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, uci.StatusOK, st)
	require.Equal(t, []uci.TLV{{Type: 0x01, Value: []byte{0x02}}}, tlvs)

	rsp = h.command(uci.GIDCore, uci.OIDCoreGetConfig, uci.GetConfigPayload([]byte{0x01, 0x07}))
	st, tlvs, err = uci.ParseConfigResponse(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, uci.StatusInvalidParam, st)
	require.Len(t, tlvs, 1)
}

func TestControllerUnknown(t *testing.T) {
	h := openHost(t, New())
	rsp := h.command(uci.GIDTest, 0x01, nil)
	require.Equal(t, []byte{byte(uci.StatusUnknownGID)}, rsp.Payload)
	rsp = h.command(uci.GIDCore, 0x3f, nil)
	require.Equal(t, []byte{byte(uci.StatusUnknownOID)}, rsp.Payload)
	rsp = h.command(uci.GIDVendor, 0x02, []byte{0xaa, 0xbb})
	require.Equal(t, []byte{byte(uci.StatusOK), 0xaa, 0xbb}, rsp.Payload)
}

func TestControllerSessionLifecycle(t *testing.T) {
	c := New()
	c.RangingInterval = 10 * time.Millisecond
	h := openHost(t, c)

	handle := h.initSession(42)
	rsp := h.command(uci.GIDSessionConfig, uci.OIDSessionInit, uci.SessionInitPayload(42, uci.SessionTypeRanging))
	require.Equal(t, []byte{byte(uci.StatusSessionDuplicate)}, rsp.Payload)

	rsp = h.command(uci.GIDSessionControl, uci.OIDRangeStart, uci.HandlePayload(handle))
	require.Equal(t, []byte{byte(uci.StatusRejected)}, rsp.Payload)

	payload, err := uci.SetAppConfigPayload(handle, []uci.TLV{{Type: 0x00, Value: []byte{0x01}}})
	require.NoError(t, err)
	rsp = h.command(uci.GIDSessionConfig, uci.OIDSessionSetAppConfig, payload)
	st, _, err := uci.ParseSetConfigResponse(rsp.Payload)
	require.NoError(t, err)
	require.Equal(t, uci.StatusOK, st)
	require.Equal(t, uci.SessionStateIdle, h.sessionStatus().State)

	rsp = h.command(uci.GIDSessionConfig, uci.OIDSessionGetState, uci.HandlePayload(handle))
	require.Equal(t, []byte{byte(uci.StatusOK), byte(uci.SessionStateIdle)}, rsp.Payload)

	rsp = h.command(uci.GIDSessionControl, uci.OIDRangeStart, uci.HandlePayload(handle))
	require.Equal(t, []byte{byte(uci.StatusOK)}, rsp.Payload)
	require.Equal(t, uci.SessionStateActive, h.sessionStatus().State)

	ntf := h.next()
	require.Equal(t, uci.GIDSessionControl, ntf.GID)
	require.Equal(t, uci.OIDRangeData, ntf.OID)
	rd, err := uci.ParseRangeData(ntf.Payload)
	require.NoError(t, err)
	require.Equal(t, handle, rd.Handle)
	require.Len(t, rd.Measurements, 1)
	require.Equal(t, uint64(1), rd.Measurements[0].Address)
	require.InDelta(t, 158, int(rd.Measurements[0].Distance), 1)

	rsp = h.command(uci.GIDSessionControl, uci.OIDRangeStop, uci.HandlePayload(handle))
	require.Equal(t, []byte{byte(uci.StatusOK)}, rsp.Payload)
	// drain range data raced with the stop
	for {
		msg := h.next()
		if msg.OID == uci.OIDSessionStatus && msg.GID == uci.GIDSessionConfig {
			ss, err := uci.ParseSessionStatus(msg.Payload)
			require.NoError(t, err)
			require.Equal(t, uci.SessionStateIdle, ss.State)
			break
		}
	}

	rsp = h.command(uci.GIDSessionControl, uci.OIDRangeGetCount, uci.HandlePayload(handle))
	require.Equal(t, uci.StatusOK, uci.Status(rsp.Payload[0]))
	count, err := uci.ParseHandle(rsp.Payload[1:])
	require.NoError(t, err)
	require.NotZero(t, count)

	rsp = h.command(uci.GIDSessionConfig, uci.OIDSessionDeinit, uci.HandlePayload(handle))
	require.Equal(t, []byte{byte(uci.StatusOK)}, rsp.Payload)
	require.Equal(t, uci.SessionStateDeinit, h.sessionStatus().State)

	rsp = h.command(uci.GIDSessionConfig, uci.OIDSessionDeinit, uci.HandlePayload(handle))
	require.Equal(t, []byte{byte(uci.StatusSessionNotExist)}, rsp.Payload)
}

func TestControllerMaxSessions(t *testing.T) {
	h := openHost(t, New())
	for i := 0; i < MaxSessions; i++ {
		h.initSession(uint32(i + 1))
	}
	rsp := h.command(uci.GIDSessionConfig, uci.OIDSessionInit, uci.SessionInitPayload(100, uci.SessionTypeRanging))
	require.Equal(t, []byte{byte(uci.StatusMaxSessionsExceeded)}, rsp.Payload)
	rsp = h.command(uci.GIDSessionConfig, uci.OIDSessionGetCount, nil)
	require.Equal(t, []byte{byte(uci.StatusOK), MaxSessions}, rsp.Payload)
}

func TestControllerLegacyHandles(t *testing.T) {
	c := New()
	c.LegacyHandles = true
	h := openHost(t, c)
	rsp := h.command(uci.GIDSessionConfig, uci.OIDSessionInit, uci.SessionInitPayload(7, uci.SessionTypeRanging))
	require.Equal(t, []byte{byte(uci.StatusOK)}, rsp.Payload)
	require.Equal(t, uint32(7), h.sessionStatus().Handle)
}

func TestControllerMulticast(t *testing.T) {
	h := openHost(t, New())
	handle := h.initSession(1)
	ctls := []uci.Controlee{{ShortAddress: 2, SubSessionID: 3}, {ShortAddress: 4}}
	payload, err := uci.MulticastListPayload(handle, uci.MulticastAdd, ctls)
	require.NoError(t, err)
	rsp := h.command(uci.GIDSessionConfig, uci.OIDSessionUpdateMulticastList, payload)
	require.Equal(t, []byte{byte(uci.StatusOK)}, rsp.Payload)
	payload, err = uci.MulticastListPayload(handle, uci.MulticastDelete, ctls[:1])
	require.NoError(t, err)
	h.command(uci.GIDSessionConfig, uci.OIDSessionUpdateMulticastList, payload)

	h.c.lock.Lock()
	defer h.c.lock.Unlock()
	require.Equal(t, ctls[1:], h.c.sessions[handle].controlees)
}

func TestControllerChainedResponse(t *testing.T) {
	c := New()
	c.MaxFragment = 8
	c.Info.VendorInfo = make([]byte, 40)
	h := openHost(t, c)
	pkts := len(c.Written())
	rsp := h.command(uci.GIDCore, uci.OIDCoreGetDeviceInfo, nil)
	info, err := uci.ParseDeviceInfo(rsp.Payload)
	require.NoError(t, err)
	require.Len(t, info.VendorInfo, 40)
	require.Len(t, c.Written(), pkts+1)
}

func TestControllerData(t *testing.T) {
	c := New()
	c.Loopback = true
	h := openHost(t, c)
	handle := h.initSession(1)
	payload, err := uci.SetAppConfigPayload(handle, nil)
	require.NoError(t, err)
	h.command(uci.GIDSessionConfig, uci.OIDSessionSetAppConfig, payload)
	h.sessionStatus()
	h.command(uci.GIDSessionControl, uci.OIDRangeStart, uci.HandlePayload(handle))
	h.sessionStatus()
	c.Mute(true)

	dm := &uci.DataMessage{Handle: handle, Address: 2, Seq: 5, Data: []byte("hi")}
	pkts, err := uci.Segment(uci.MTData, uci.DPFDataSend, 0, dm.AppendTo(nil), uci.DefaultMaxFragment)
	require.NoError(t, err)
	require.NoError(t, c.Write(pkts[0]))

	var credit *uci.DataCredit
	var status *uci.DataTransferStatus
	var echo *uci.DataMessage
	for echo == nil {
		msg := h.next()
		switch {
		case msg.MT == uci.MTData:
			echo, err = uci.ParseDataMessage(msg.Payload)
			require.NoError(t, err)
		case msg.OID == uci.OIDDataCredit:
			credit, err = uci.ParseDataCredit(msg.Payload)
			require.NoError(t, err)
		case msg.OID == uci.OIDDataTransferStatus:
			status, err = uci.ParseDataTransferStatus(msg.Payload)
			require.NoError(t, err)
		}
	}
	require.True(t, credit.Available)
	require.Equal(t, uci.DataTransferOK, status.Status)
	require.Equal(t, uint16(5), status.Seq)
	require.Equal(t, dm, echo)
}

func TestControllerWithholdCredit(t *testing.T) {
	c := New()
	h := openHost(t, c)
	c.WithholdCredit(10 * time.Millisecond)
	dm := &uci.DataMessage{Handle: 0x999, Data: []byte{1}}
	pkt, err := uci.EncodePacket(uci.MTData, uci.DPFDataSend, 0, false, dm.AppendTo(nil))
	require.NoError(t, err)
	require.NoError(t, c.Write(pkt))
	status, err := uci.ParseDataTransferStatus(h.next().Payload)
	require.NoError(t, err)
	require.Equal(t, uci.DataTransferFailed, status.Status)
}

func TestControllerFaults(t *testing.T) {
	c := New()
	h := openHost(t, c)
	c.DropResponses(1)
	pkt, err := uci.EncodePacket(uci.MTCommand, uci.GIDCore, uci.OIDCoreGetDeviceInfo, false, nil)
	require.NoError(t, err)
	require.NoError(t, c.Write(pkt))
	select {
	case msg := <-h.msgs:
		t.Fatalf("unexpected %s", msg.Header)
	case <-time.After(20 * time.Millisecond):
	}
	h.command(uci.GIDCore, uci.OIDCoreGetDeviceInfo, nil)

	require.NoError(t, c.Ioctl(hal.IoctlResetSE, nil))
	require.Equal(t, hal.ErrUnsupportedIoctl, c.Ioctl(hal.IoctlOp(99), nil))
	require.Equal(t, []hal.IoctlOp{hal.IoctlResetSE, hal.IoctlOp(99)}, c.Ioctls())
}

func TestControllerInject(t *testing.T) {
	c := New()
	c.MaxFragment = 4
	h := openHost(t, c)
	c.InjectNotification(uci.GIDVendor, 0x05, []byte{1, 2, 3, 4, 5, 6})
	msg := h.next()
	require.Equal(t, uci.GIDVendor, msg.GID)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, msg.Payload)
}
