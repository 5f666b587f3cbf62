// Package uwb implements the UWB device and FiRa session layer on top of
// the UCI engine. Blocking calls are serialized, each one registers the
// event it waits for before its command is sent.
package uwb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/looplab/fsm"

	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// State is the device lifecycle state.
type State string

// Device states.
const (
	StateNone         State = "NONE"
	StateWaitHALOpen  State = "WAIT_HAL_OPEN"
	StateIdle         State = "IDLE"
	StateActive       State = "ACTIVE"
	StateClosing      State = "CLOSING"
	StateWaitHALClose State = "WAIT_HAL_CLOSE"
)

const (
	evEnable     = "enable"
	evOpenDone   = "open_done"
	evOpenFailed = "open_failed"
	evActivate   = "activate"
	evDeactivate = "deactivate"
	evDisable    = "disable"
	evClose      = "close"
	evCloseDone  = "close_done"
	evHALError   = "hal_error"
)

// Config configures a Device.
type Config struct {
	Engine core.Config
	// SyncTimeout bounds every blocking call independently of the
	// engine retries.
	SyncTimeout time.Duration
	// MaxFragment is the largest command payload sent in one packet.
	MaxFragment int
}

// DefaultConfig returns the default device configuration.
func DefaultConfig() Config {
	return Config{
		Engine:      core.DefaultConfig(),
		SyncTimeout: 2 * time.Second,
		MaxFragment: uci.DefaultMaxFragment,
	}
}

// ExtCallback receives proprietary notifications.
type ExtCallback func(msg *uci.Message)

// Device drives a UWB controller through a HAL.
type Device struct {
	cfg   Config
	hal   hal.HAL
	state *fsm.FSM

	cmdLock sync.Mutex

	lock       sync.Mutex
	engine     *core.Engine
	cancel     context.CancelFunc
	engineDone chan struct{}
	closeCh    chan struct{}
	app        core.Handler
	extCb      ExtCallback
	wait       *waitToken
	sessions   map[uint32]*Session
	devState   uci.DeviceState
	dataSeq    uint16
}

// New creates a Device.
func New(cfg Config, h hal.HAL) *Device {
	def := DefaultConfig()
	if cfg.SyncTimeout <= 0 {
		cfg.SyncTimeout = def.SyncTimeout
	}
	if cfg.MaxFragment <= 0 || cfg.MaxFragment > uci.MaxPayload {
		cfg.MaxFragment = def.MaxFragment
	}
	d := &Device{cfg: cfg, hal: h, sessions: make(map[uint32]*Session)}
	d.state = fsm.NewFSM(string(StateNone), fsm.Events{
		{Name: evEnable, Src: []string{string(StateNone)}, Dst: string(StateWaitHALOpen)},
		{Name: evOpenDone, Src: []string{string(StateWaitHALOpen)}, Dst: string(StateIdle)},
		{Name: evOpenFailed, Src: []string{string(StateWaitHALOpen)}, Dst: string(StateNone)},
		{Name: evActivate, Src: []string{string(StateIdle)}, Dst: string(StateActive)},
		{Name: evDeactivate, Src: []string{string(StateActive)}, Dst: string(StateIdle)},
		{Name: evDisable, Src: []string{string(StateIdle), string(StateActive)}, Dst: string(StateClosing)},
		{Name: evClose, Src: []string{string(StateClosing)}, Dst: string(StateWaitHALClose)},
		{Name: evCloseDone, Src: []string{string(StateWaitHALClose)}, Dst: string(StateNone)},
		{Name: evHALError, Src: []string{
			string(StateWaitHALOpen), string(StateIdle), string(StateActive),
			string(StateClosing), string(StateWaitHALClose),
		}, Dst: string(StateNone)},
	}, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			glog.Infof("device %s: %s -> %s", e.Event, e.Src, e.Dst)
		},
	})
	return d
}

// State returns the current lifecycle state.
func (d *Device) State() State {
	return State(d.state.Current())
}

// DeviceState returns the last state reported by the controller.
func (d *Device) DeviceState() uci.DeviceState {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.devState
}

// Engine returns the running engine, or nil when not enabled.
func (d *Device) Engine() *core.Engine {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.engine
}

func (d *Device) event(name string) error {
	from := d.State()
	if err := d.state.Event(context.Background(), name); err != nil {
		return &TransitionError{Event: name, State: from, Err: err}
	}
	return nil
}

// Enable opens the transport and starts the engine. h receives all
// responses, notifications and data, it may be nil.
func (d *Device) Enable(ctx context.Context, h core.Handler) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if err := d.event(evEnable); err != nil {
		return err
	}
	engine := core.NewEngine(d.cfg.Engine, d.hal, &deviceHandler{d})
	runCtx, cancel := context.WithCancel(context.Background())
	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		engine.Run(runCtx)
	}()

	d.lock.Lock()
	d.engine, d.cancel, d.engineDone = engine, cancel, engineDone
	d.closeCh = make(chan struct{}, 1)
	d.app, d.wait, d.devState = h, nil, 0
	d.sessions = make(map[uint32]*Session)
	extCb := d.extCb
	d.lock.Unlock()
	if extCb != nil {
		engine.SetExtHandler(core.ExtHandler(extCb))
	}

	openCh := make(chan error, 1)
	err := d.hal.Open(func(ev hal.Event, err error) {
		d.onHALEvent(ev, err, openCh)
	}, engine.Receive)
	if err == nil {
		ctx, cancel := context.WithTimeout(ctx, d.cfg.SyncTimeout)
		select {
		case err = <-openCh:
		case <-ctx.Done():
			err = ctx.Err()
			d.hal.Close()
		}
		cancel()
	}
	if err != nil {
		d.stopEngine()
		d.event(evOpenFailed)
		glog.Errorf("enable failed: %v", err)
		return fmt.Errorf("%w: %v", ErrEnableFailed, err)
	}
	return d.event(evOpenDone)
}

func (d *Device) onHALEvent(ev hal.Event, err error, openCh chan<- error) {
	switch ev {
	case hal.EventOpenComplete:
		select {
		case openCh <- nil:
		default:
		}
	case hal.EventCloseComplete:
		d.lock.Lock()
		ch := d.closeCh
		d.lock.Unlock()
		if ch != nil {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	case hal.EventError:
		switch d.State() {
		case StateWaitHALOpen:
			select {
			case openCh <- err:
			default:
			}
		case StateIdle, StateActive:
			go d.onTransportError(err)
		default:
			glog.Warningf("transport error in state %s: %v", d.State(), err)
		}
	}
}

func (d *Device) onTransportError(err error) {
	glog.Errorf("transport error: %v", err)
	d.stopEngine()
	d.lock.Lock()
	if w := d.wait; w != nil {
		w.finish(err)
	}
	d.sessions = make(map[uint32]*Session)
	d.lock.Unlock()
	if err := d.event(evHALError); err != nil {
		glog.Warning(err)
		return
	}
	d.hal.Close()
}

func (d *Device) stopEngine() {
	d.lock.Lock()
	cancel, done := d.cancel, d.engineDone
	d.engine, d.cancel, d.engineDone = nil, nil, nil
	d.lock.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

// Disable shuts the device down. When graceful is set, active sessions
// are stopped and all sessions deinitialized first, failures of which
// are logged only.
func (d *Device) Disable(ctx context.Context, graceful bool) error {
	d.cmdLock.Lock()
	defer d.cmdLock.Unlock()

	if d.State() == StateNone {
		return ErrNotEnabled
	}
	if err := d.event(evDisable); err != nil {
		return err
	}
	if graceful {
		for _, s := range d.Sessions() {
			if s.State == uci.SessionStateActive {
				if err := d.stopRanging(ctx, s.Handle); err != nil {
					glog.Warningf("session %08x: stop failed: %v", s.Handle, err)
				}
			}
			if err := d.sessionDeinit(ctx, s.Handle); err != nil {
				glog.Warningf("session %08x: deinit failed: %v", s.Handle, err)
			}
		}
	}
	if err := d.event(evClose); err != nil {
		return err
	}
	d.stopEngine()

	d.lock.Lock()
	closeCh := d.closeCh
	d.sessions = make(map[uint32]*Session)
	d.lock.Unlock()

	err := d.hal.Close()
	if err == nil {
		ctx, cancel := context.WithTimeout(ctx, d.cfg.SyncTimeout)
		select {
		case <-closeCh:
		case <-ctx.Done():
			err = ctx.Err()
		}
		cancel()
	}
	if err != nil {
		glog.Warningf("close transport: %v", err)
	}
	if e := d.event(evCloseDone); e != nil {
		return e
	}
	return err
}

// RegisterExtCallback sets the receiver of proprietary notifications.
// It applies to the running engine and to later enables.
func (d *Device) RegisterExtCallback(cb ExtCallback) error {
	d.lock.Lock()
	d.extCb = cb
	engine := d.engine
	d.lock.Unlock()
	if engine == nil {
		return nil
	}
	return engine.SetExtHandler(core.ExtHandler(cb))
}

// Recover resets the engine bookkeeping.
func (d *Device) Recover(ctx context.Context) error {
	engine := d.Engine()
	if engine == nil {
		return ErrNotEnabled
	}
	return engine.Recover(ctx)
}

// Session returns a snapshot of a session.
func (d *Device) Session(handle uint32) (Session, bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if s, ok := d.sessions[handle]; ok {
		return *s, true
	}
	return Session{}, false
}

// Sessions returns snapshots of all sessions ordered by handle.
func (d *Device) Sessions() []Session {
	d.lock.Lock()
	sessions := make([]Session, 0, len(d.sessions))
	for _, s := range d.sessions {
		sessions = append(sessions, *s)
	}
	d.lock.Unlock()
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Handle < sessions[j].Handle })
	return sessions
}
