// Package sim implements an in-memory UWB controller speaking UCI. It is
// a hal.HAL, so a Device can drive it like real hardware.
package sim

import (
	"errors"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// MaxSessions is the number of sessions the controller accepts.
const MaxSessions = 5

// Peer is a simulated ranging peer.
type Peer struct {
	Address uint16
	Pos     Pos
	// Velocity in meters per second, applied every ranging round.
	Velocity Pos
}

// Controller is a simulated UWB controller.
type Controller struct {
	// Info is reported by CORE_GET_DEVICE_INFO.
	Info uci.DeviceInfo
	// Caps is reported by CORE_GET_CAPS_INFO.
	Caps []uci.TLV
	// MaxFragment limits the payload of packets sent to the host.
	MaxFragment int
	// RangingInterval is the period of range data notifications.
	RangingInterval time.Duration
	// Pose is the placement of the controller antenna.
	Pose Pose
	// Peers are measured in every ranging round.
	Peers []Peer
	// LegacyHandles makes SESSION_INIT respond without a handle.
	LegacyHandles bool
	// Loopback echoes sent data back as received data.
	Loopback bool

	lock       sync.Mutex
	open       bool
	eventCb    hal.EventCallback
	dataCb     hal.DataCallback
	asm        *uci.Reassembler
	sessions   map[uint32]*session
	coreConfig map[byte][]byte
	nextHandle uint32
	written    [][]byte
	ioctls     []hal.IoctlOp
	faults     faults
}

type session struct {
	handle     uint32
	id         uint32
	typ        uci.SessionType
	state      uci.SessionState
	config     map[byte][]byte
	controlees []uci.Controlee
	seq        uint32
	count      uint32
	stopCh     chan struct{}
}

type faults struct {
	dropResponses int
	mute          bool
	noCredit      time.Duration
	failOpen      error
}

// ErrInjectedFailure is reported when a failure is injected.
var ErrInjectedFailure = errors.New("sim: injected failure")

// New creates a Controller with default information.
func New() *Controller {
	return &Controller{
		Info: uci.DeviceInfo{
			UCIVersion:     0x1002,
			MACVersion:     0x3001,
			PHYVersion:     0x3001,
			UCITestVersion: 0x1001,
			VendorInfo:     []byte("uwb.go sim"),
		},
		Caps: []uci.TLV{
			{Type: 0xa0, Value: []byte{0x05}},
			{Type: 0xa1, Value: []byte{0x01, 0x02, 0x03}},
		},
		MaxFragment:     uci.DefaultMaxFragment,
		RangingInterval: 100 * time.Millisecond,
		Peers:           []Peer{{Address: 0x0001, Pos: Pos{X: 1.5, Y: 0.5}}},
	}
}

// Open implements hal.HAL.
func (c *Controller) Open(eventCb hal.EventCallback, dataCb hal.DataCallback) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.open {
		return hal.ErrAlreadyOpen
	}
	if err := c.faults.failOpen; err != nil {
		go eventCb(hal.EventError, err)
		return nil
	}
	c.open, c.eventCb, c.dataCb = true, eventCb, dataCb
	c.asm = uci.NewReassembler(uci.DefaultControlCapacity)
	c.resetLocked()
	go func() {
		eventCb(hal.EventOpenComplete, nil)
		c.send(c.notification(uci.GIDCore, uci.OIDCoreDeviceStatus, []byte{byte(uci.DeviceStateReady)})...)
	}()
	return nil
}

// Close implements hal.HAL.
func (c *Controller) Close() error {
	c.lock.Lock()
	if !c.open {
		c.lock.Unlock()
		return hal.ErrNotOpen
	}
	c.resetLocked()
	c.open = false
	eventCb := c.eventCb
	c.lock.Unlock()
	go eventCb(hal.EventCloseComplete, nil)
	return nil
}

// Write implements hal.HAL.
func (c *Controller) Write(pkt []byte) error {
	c.lock.Lock()
	if !c.open {
		c.lock.Unlock()
		return hal.ErrNotOpen
	}
	c.written = append(c.written, append([]byte(nil), pkt...))
	msg, err := c.asm.Feed(pkt, false)
	if err != nil || msg == nil {
		c.lock.Unlock()
		if err != nil {
			glog.Errorf("sim: %v", err)
		}
		return nil
	}
	out := c.handleLocked(msg)
	if msg.MT == uci.MTCommand && len(out) > 0 {
		switch {
		case c.faults.mute:
			out = nil
		case c.faults.dropResponses > 0:
			c.faults.dropResponses--
			out = nil
		}
	}
	c.lock.Unlock()
	c.send(out...)
	return nil
}

// Ioctl implements hal.HAL.
func (c *Controller) Ioctl(op hal.IoctlOp, data []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.open {
		return hal.ErrNotOpen
	}
	c.ioctls = append(c.ioctls, op)
	switch op {
	case hal.IoctlResetSE:
		return nil
	case hal.IoctlHardReset:
		c.resetLocked()
		return nil
	}
	return hal.ErrUnsupportedIoctl
}

// Written returns all packets written by the host.
func (c *Controller) Written() [][]byte {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([][]byte(nil), c.written...)
}

// Ioctls returns all ioctl operations requested by the host.
func (c *Controller) Ioctls() []hal.IoctlOp {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]hal.IoctlOp(nil), c.ioctls...)
}

// DropResponses drops the responses of the next n command packets.
func (c *Controller) DropResponses(n int) {
	c.lock.Lock()
	c.faults.dropResponses = n
	c.lock.Unlock()
}

// Mute drops all responses while set.
func (c *Controller) Mute(mute bool) {
	c.lock.Lock()
	c.faults.mute = mute
	c.lock.Unlock()
}

// WithholdCredit reports no data credit after each data packet, and
// restores it after d.
func (c *Controller) WithholdCredit(d time.Duration) {
	c.lock.Lock()
	c.faults.noCredit = d
	c.lock.Unlock()
}

// FailOpen makes Open report err.
func (c *Controller) FailOpen(err error) {
	c.lock.Lock()
	c.faults.failOpen = err
	c.lock.Unlock()
}

// Fail reports a transport failure to the host.
func (c *Controller) Fail(err error) {
	c.lock.Lock()
	eventCb, open := c.eventCb, c.open
	c.lock.Unlock()
	if open {
		eventCb(hal.EventError, err)
	}
}

// Inject delivers packets to the host as is.
func (c *Controller) Inject(pkts ...[]byte) {
	c.send(pkts...)
}

// InjectNotification delivers a notification, chained by MaxFragment.
func (c *Controller) InjectNotification(gid, oid byte, payload []byte) {
	c.lock.Lock()
	pkts := c.notification(gid, oid, payload)
	c.lock.Unlock()
	c.send(pkts...)
}

func (c *Controller) send(pkts ...[]byte) {
	c.lock.Lock()
	dataCb, open := c.dataCb, c.open
	c.lock.Unlock()
	if !open {
		return
	}
	for _, pkt := range pkts {
		dataCb(pkt)
	}
}

func (c *Controller) segment(mt uci.MessageType, gid, oid byte, payload []byte) [][]byte {
	pkts, err := uci.Segment(mt, gid, oid, payload, c.MaxFragment)
	if err != nil {
		glog.Errorf("sim: %v", err)
		return nil
	}
	return pkts
}

func (c *Controller) response(gid, oid byte, payload []byte) [][]byte {
	return c.segment(uci.MTResponse, gid, oid, payload)
}

func (c *Controller) status(gid, oid byte, st uci.Status) [][]byte {
	return c.response(gid, oid, []byte{byte(st)})
}

func (c *Controller) notification(gid, oid byte, payload []byte) [][]byte {
	return c.segment(uci.MTNotification, gid, oid, payload)
}

func (c *Controller) resetLocked() {
	for _, s := range c.sessions {
		s.stopRanging()
	}
	c.sessions = make(map[uint32]*session)
	c.coreConfig = make(map[byte][]byte)
	c.nextHandle = 0x100
}
