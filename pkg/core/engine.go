// Package core implements the UCI command engine: a single worker owns
// the command window, the retry timer, packet reassembly, dispatching
// and recovery. Everything else talks to it through its mailbox.
package core

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/uci"
)

// MaxWindow is the number of commands the controller accepts without a
// response.
const MaxWindow = 1

// Config tunes the engine.
type Config struct {
	// CommandTimeout is the time waiting for the response of a command.
	CommandTimeout time.Duration
	// RetryTimeout is the time waiting for the response of a retransmission.
	RetryTimeout time.Duration
	// MaxRetry is the number of retransmissions before giving up.
	MaxRetry int
	// ControlCapacity is the reassembly capacity of control messages.
	ControlCapacity int
	// DataCapacity is the reassembly capacity of data messages.
	DataCapacity int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		CommandTimeout:  500 * time.Millisecond,
		RetryTimeout:    200 * time.Millisecond,
		MaxRetry:        2,
		ControlCapacity: uci.DefaultControlCapacity,
		DataCapacity:    uci.DefaultDataCapacity,
	}
}

// Stats is a snapshot of the engine state.
type Stats struct {
	Window          int
	Pending         bool
	PendingHeader   uci.Header
	Retries         int
	RawPending      bool
	ChainInProgress bool
	Sent            int
	Received        int
	Dropped         int
	Retransmits     int
	Timeouts        int
	Recoveries      int
}

type pendingCommand struct {
	hdr uci.Header
	pkt []byte
}

// Engine is the UCI command engine. All protocol state is owned by the
// goroutine executing Run.
type Engine struct {
	cfg       Config
	transport Transport
	handler   Handler

	slot     chan struct{}
	wakeUpCh chan struct{}
	stopped  chan struct{}

	lock    sync.Mutex
	events  eventList
	running bool
	closed  bool

	// owned by the engine goroutine
	window     int
	pending    *pendingCommand
	retries    int
	rawCb      RawCallback
	recovering bool
	timer      timer
	ctrlAsm    *uci.Reassembler
	dataAsm    *uci.Reassembler
	extHandler ExtHandler
	stats      Stats
}

// NewEngine creates an Engine writing to transport and dispatching to
// handler.
func NewEngine(cfg Config, transport Transport, handler Handler) *Engine {
	def := DefaultConfig()
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = def.CommandTimeout
	}
	if cfg.RetryTimeout <= 0 {
		cfg.RetryTimeout = cfg.CommandTimeout
	}
	if cfg.MaxRetry < 0 {
		cfg.MaxRetry = 0
	}
	if cfg.ControlCapacity <= 0 {
		cfg.ControlCapacity = def.ControlCapacity
	}
	if cfg.DataCapacity <= 0 {
		cfg.DataCapacity = def.DataCapacity
	}
	if handler == nil {
		handler = &HandlerFuncs{}
	}
	e := &Engine{
		cfg:       cfg,
		transport: transport,
		handler:   handler,
		slot:      make(chan struct{}, MaxWindow),
		wakeUpCh:  make(chan struct{}, 1),
		stopped:   make(chan struct{}),
		window:    MaxWindow,
		ctrlAsm:   uci.NewReassembler(cfg.ControlCapacity),
		dataAsm:   uci.NewReassembler(cfg.DataCapacity),
	}
	e.timer.fire = func(gen uint64) {
		e.post(func(e *Engine) { e.onTimeout(gen) })
	}
	for i := 0; i < MaxWindow; i++ {
		e.slot <- struct{}{}
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run implements framework.Runnable. It processes the mailbox until ctx
// is done. An Engine can only run once.
func (e *Engine) Run(ctx context.Context) error {
	e.lock.Lock()
	if e.running || e.closed {
		e.lock.Unlock()
		return ErrAlreadyRunning
	}
	e.running = true
	e.lock.Unlock()

	defer e.shutdown()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.wakeUpCh:
			e.processEvents()
		}
	}
}

// Done is closed when the engine stops.
func (e *Engine) Done() <-chan struct{} {
	return e.stopped
}

func (e *Engine) shutdown() {
	e.lock.Lock()
	e.closed = true
	e.events = eventList{}
	e.lock.Unlock()
	close(e.stopped)

	e.timer.Stop()
	e.pending, e.retries = nil, 0
	if cb := e.rawCb; cb != nil {
		e.rawCb = nil
		cb(nil, ErrClosed)
	}
	glog.Info("UCI engine stopped")
}

// Receive feeds one packet received from the transport. The packet is
// copied, so the caller may reuse the buffer.
func (e *Engine) Receive(pkt []byte) {
	pkt = append([]byte(nil), pkt...)
	if err := e.post(func(e *Engine) { e.onPacket(pkt) }); err != nil {
		glog.V(2).Infof("packet dropped: %v", err)
	}
}

// SetExtHandler registers the handler of proprietary notifications.
func (e *Engine) SetExtHandler(h ExtHandler) error {
	return e.post(func(e *Engine) { e.extHandler = h })
}

// Recover resets the protocol bookkeeping and waits for completion. It
// must not be called from a Handler.
func (e *Engine) Recover(ctx context.Context) error {
	done := make(chan struct{})
	if err := e.post(func(e *Engine) {
		e.recover()
		close(done)
	}); err != nil {
		return err
	}
	return e.wait(ctx, done)
}

// Stats takes a snapshot of the engine state.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	ch := make(chan Stats, 1)
	if err := e.post(func(e *Engine) {
		st := e.stats
		st.Window = e.window
		st.Retries = e.retries
		st.RawPending = e.rawCb != nil
		st.ChainInProgress = e.ctrlAsm.InProgress() || e.dataAsm.InProgress()
		if e.pending != nil {
			st.Pending, st.PendingHeader = true, e.pending.hdr
		}
		ch <- st
	}); err != nil {
		return Stats{}, err
	}
	select {
	case st := <-ch:
		return st, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case <-e.stopped:
		return Stats{}, ErrClosed
	}
}

func (e *Engine) wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.stopped:
		return ErrClosed
	}
}
