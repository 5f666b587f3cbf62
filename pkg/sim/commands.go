package sim

import (
	"encoding/binary"
	"sort"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/uci"
)

func (c *Controller) handleLocked(msg *uci.Message) [][]byte {
	switch msg.MT {
	case uci.MTCommand:
	case uci.MTData:
		return c.handleDataLocked(msg)
	default:
		glog.Warningf("sim: unexpected %s", msg.Header)
		return nil
	}
	switch {
	case msg.GID == uci.GIDCore:
		return c.handleCoreLocked(msg)
	case msg.GID == uci.GIDSessionConfig:
		return c.handleSessionConfigLocked(msg)
	case msg.GID == uci.GIDSessionControl:
		return c.handleSessionControlLocked(msg)
	case uci.IsProprietary(msg.GID):
		// vendor commands echo their payload after the status
		return c.response(msg.GID, msg.OID, append([]byte{byte(uci.StatusOK)}, msg.Payload...))
	}
	return c.status(msg.GID, msg.OID, uci.StatusUnknownGID)
}

func (c *Controller) handleCoreLocked(msg *uci.Message) [][]byte {
	gid, oid := msg.GID, msg.OID
	switch oid {
	case uci.OIDCoreDeviceReset:
		c.resetLocked()
		return append(c.status(gid, oid, uci.StatusOK),
			c.notification(gid, uci.OIDCoreDeviceStatus, []byte{byte(uci.DeviceStateReady)})...)
	case uci.OIDCoreGetDeviceInfo:
		return c.response(gid, oid, c.Info.AppendTo(nil))
	case uci.OIDCoreGetCapsInfo:
		payload, _ := uci.AppendTLVs([]byte{byte(uci.StatusOK)}, c.Caps)
		return c.response(gid, oid, payload)
	case uci.OIDCoreSetConfig:
		tlvs, err := uci.DecodeTLVs(msg.Payload)
		if err != nil {
			return c.status(gid, oid, uci.StatusSyntaxError)
		}
		for _, tlv := range tlvs {
			c.coreConfig[tlv.Type] = tlv.Value
		}
		return c.response(gid, oid, uci.AppendSetConfigResponse(nil, uci.StatusOK, nil))
	case uci.OIDCoreGetConfig:
		return c.response(gid, oid, getConfig(c.coreConfig, msg.Payload))
	}
	return c.status(gid, oid, uci.StatusUnknownOID)
}

func getConfig(config map[byte][]byte, req []byte) []byte {
	if len(req) < 1 || len(req) < 1+int(req[0]) {
		return []byte{byte(uci.StatusSyntaxError)}
	}
	ids := req[1 : 1+int(req[0])]
	if len(ids) == 0 {
		for id := range config {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	st := uci.StatusOK
	tlvs := make([]uci.TLV, 0, len(ids))
	for _, id := range ids {
		val, ok := config[id]
		if !ok {
			st = uci.StatusInvalidParam
			continue
		}
		tlvs = append(tlvs, uci.TLV{Type: id, Value: val})
	}
	payload, _ := uci.AppendTLVs([]byte{byte(st)}, tlvs)
	return payload
}

func (c *Controller) sessionOf(payload []byte) (*session, uci.Status) {
	handle, err := uci.ParseHandle(payload)
	if err != nil {
		return nil, uci.StatusSyntaxError
	}
	s, ok := c.sessions[handle]
	if !ok {
		return nil, uci.StatusSessionNotExist
	}
	return s, uci.StatusOK
}

func (c *Controller) sessionStatus(s *session, state uci.SessionState, reason byte) [][]byte {
	s.state = state
	ss := &uci.SessionStatus{Handle: s.handle, State: state, Reason: reason}
	return c.notification(uci.GIDSessionConfig, uci.OIDSessionStatus, ss.AppendTo(nil))
}

func (c *Controller) handleSessionConfigLocked(msg *uci.Message) [][]byte {
	gid, oid := msg.GID, msg.OID
	switch oid {
	case uci.OIDSessionInit:
		if len(msg.Payload) < 5 {
			return c.status(gid, oid, uci.StatusSyntaxError)
		}
		id := binary.LittleEndian.Uint32(msg.Payload)
		for _, s := range c.sessions {
			if s.id == id {
				return c.status(gid, oid, uci.StatusSessionDuplicate)
			}
		}
		if len(c.sessions) >= MaxSessions {
			return c.status(gid, oid, uci.StatusMaxSessionsExceeded)
		}
		s := &session{id: id, typ: uci.SessionType(msg.Payload[4]), config: make(map[byte][]byte)}
		rsp := []byte{byte(uci.StatusOK)}
		if c.LegacyHandles {
			s.handle = id
		} else {
			c.nextHandle++
			s.handle = c.nextHandle
			rsp = binary.LittleEndian.AppendUint32(rsp, s.handle)
		}
		c.sessions[s.handle] = s
		return append(c.response(gid, oid, rsp), c.sessionStatus(s, uci.SessionStateInit, 0)...)
	case uci.OIDSessionGetCount:
		return c.response(gid, oid, []byte{byte(uci.StatusOK), byte(len(c.sessions))})
	}

	s, st := c.sessionOf(msg.Payload)
	if st != uci.StatusOK {
		return c.status(gid, oid, st)
	}
	switch oid {
	case uci.OIDSessionDeinit:
		s.stopRanging()
		delete(c.sessions, s.handle)
		return append(c.status(gid, oid, uci.StatusOK), c.sessionStatus(s, uci.SessionStateDeinit, 0)...)
	case uci.OIDSessionSetAppConfig:
		if s.state == uci.SessionStateActive {
			return c.status(gid, oid, uci.StatusSessionActive)
		}
		tlvs, err := uci.DecodeTLVs(msg.Payload[4:])
		if err != nil {
			return c.status(gid, oid, uci.StatusSyntaxError)
		}
		for _, tlv := range tlvs {
			s.config[tlv.Type] = tlv.Value
		}
		out := c.response(gid, oid, uci.AppendSetConfigResponse(nil, uci.StatusOK, nil))
		if s.state == uci.SessionStateInit {
			out = append(out, c.sessionStatus(s, uci.SessionStateIdle, 0)...)
		}
		return out
	case uci.OIDSessionGetAppConfig:
		return c.response(gid, oid, getConfig(s.config, msg.Payload[4:]))
	case uci.OIDSessionGetState:
		return c.response(gid, oid, []byte{byte(uci.StatusOK), byte(s.state)})
	case uci.OIDSessionUpdateMulticastList:
		p := msg.Payload[4:]
		if len(p) < 2 || len(p) < 2+int(p[1])*6 {
			return c.status(gid, oid, uci.StatusSyntaxError)
		}
		for i := 0; i < int(p[1]); i++ {
			e := p[2+i*6:]
			ctl := uci.Controlee{
				ShortAddress: binary.LittleEndian.Uint16(e),
				SubSessionID: binary.LittleEndian.Uint32(e[2:]),
			}
			s.updateControlee(p[0], ctl)
		}
		return c.status(gid, oid, uci.StatusOK)
	}
	return c.status(gid, oid, uci.StatusUnknownOID)
}

func (s *session) updateControlee(action byte, ctl uci.Controlee) {
	for n, existing := range s.controlees {
		if existing.ShortAddress == ctl.ShortAddress {
			if action == uci.MulticastDelete {
				s.controlees = append(s.controlees[:n], s.controlees[n+1:]...)
			}
			return
		}
	}
	if action == uci.MulticastAdd {
		s.controlees = append(s.controlees, ctl)
	}
}

func (c *Controller) handleSessionControlLocked(msg *uci.Message) [][]byte {
	gid, oid := msg.GID, msg.OID
	s, st := c.sessionOf(msg.Payload)
	if st != uci.StatusOK {
		return c.status(gid, oid, st)
	}
	switch oid {
	case uci.OIDRangeStart:
		if s.state != uci.SessionStateIdle {
			return c.status(gid, oid, uci.StatusRejected)
		}
		out := append(c.status(gid, oid, uci.StatusOK), c.sessionStatus(s, uci.SessionStateActive, 0)...)
		s.stopCh = make(chan struct{})
		go c.rangingLoop(s, s.stopCh)
		return out
	case uci.OIDRangeStop:
		if s.state != uci.SessionStateActive {
			return c.status(gid, oid, uci.StatusRejected)
		}
		s.stopRanging()
		return append(c.status(gid, oid, uci.StatusOK), c.sessionStatus(s, uci.SessionStateIdle, 0)...)
	case uci.OIDRangeGetCount:
		return c.response(gid, oid, binary.LittleEndian.AppendUint32([]byte{byte(uci.StatusOK)}, s.count))
	}
	return c.status(gid, oid, uci.StatusUnknownOID)
}

func (s *session) stopRanging() {
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}

func (c *Controller) rangingLoop(s *session, stopCh <-chan struct{}) {
	interval := c.RangingInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
		c.lock.Lock()
		select {
		case <-stopCh:
			c.lock.Unlock()
			return
		default:
		}
		rd := c.measureLocked(s, interval)
		pkts := c.notification(uci.GIDSessionControl, uci.OIDRangeData, rd.AppendTo(nil))
		c.lock.Unlock()
		c.send(pkts...)
	}
}

// measureLocked advances the peers by one round and measures them.
func (c *Controller) measureLocked(s *session, interval time.Duration) *uci.RangeData {
	s.seq++
	s.count++
	rd := &uci.RangeData{
		Seq:             s.seq,
		Handle:          s.handle,
		IntervalMs:      uint32(interval / time.Millisecond),
		MeasurementType: 0x01,
		AddressMode:     uci.MACAddressShort,
	}
	for n := range c.Peers {
		p := &c.Peers[n]
		p.Pos.OffsetBy(p.Velocity.Scale(interval.Seconds()))
		dist, az, el := c.Pose.Observe(p.Pos)
		rd.Measurements = append(rd.Measurements, uci.Measurement{
			Address:      uint64(p.Address),
			Status:       uci.StatusOK,
			Distance:     uint16(dist * 100),
			AoAAzimuth:   az.Q97(),
			AoAElevation: el.Q97(),
			SlotIndex:    byte(n),
		})
	}
	return rd
}

func (c *Controller) handleDataLocked(msg *uci.Message) [][]byte {
	dm, err := uci.ParseDataMessage(msg.Payload)
	if err != nil {
		glog.Errorf("sim: malformed data: %v", err)
		return nil
	}
	s, ok := c.sessions[dm.Handle]
	if !ok || s.state != uci.SessionStateActive {
		ts := &uci.DataTransferStatus{Handle: dm.Handle, Seq: dm.Seq, Status: uci.DataTransferFailed}
		return c.notification(uci.GIDSessionControl, uci.OIDDataTransferStatus, ts.AppendTo(nil))
	}
	var out [][]byte
	credit := &uci.DataCredit{Handle: dm.Handle, Available: true}
	if d := c.faults.noCredit; d > 0 {
		credit.Available = false
		out = c.notification(uci.GIDSessionControl, uci.OIDDataCredit, credit.AppendTo(nil))
		delayed := &uci.DataCredit{Handle: dm.Handle, Available: true}
		ts := &uci.DataTransferStatus{Handle: dm.Handle, Seq: dm.Seq, Status: uci.DataTransferOK}
		pkts := append(c.notification(uci.GIDSessionControl, uci.OIDDataCredit, delayed.AppendTo(nil)),
			c.notification(uci.GIDSessionControl, uci.OIDDataTransferStatus, ts.AppendTo(nil))...)
		time.AfterFunc(d, func() { c.send(pkts...) })
		return out
	}
	out = c.notification(uci.GIDSessionControl, uci.OIDDataCredit, credit.AppendTo(nil))
	ts := &uci.DataTransferStatus{Handle: dm.Handle, Seq: dm.Seq, Status: uci.DataTransferOK}
	out = append(out, c.notification(uci.GIDSessionControl, uci.OIDDataTransferStatus, ts.AppendTo(nil))...)
	if c.Loopback {
		out = append(out, c.segment(uci.MTData, uci.DPFDataReceive, 0, dm.AppendTo(nil))...)
	}
	return out
}
