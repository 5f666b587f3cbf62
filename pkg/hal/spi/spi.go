// Package spi provides a HAL for UWB controllers on a SPI bus. The
// controller asserts an active low interrupt line while it has a packet
// to deliver.
package spi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// Scheme is the URL scheme of SPI buses.
const Scheme = "spi"

// Defaults
const (
	DefaultSpeedHz    = 8000000
	DefaultIRQPin     = "GPIO25"
	DefaultResetPulse = 10 * time.Millisecond

	irqPollInterval = 100 * time.Millisecond
)

// ErrClosed is returned by reads after Close.
var ErrClosed = errors.New("spi: closed")

// Config configures the SPI bus and control lines.
type Config struct {
	Bus        string
	SpeedHz    int64
	IRQPin     string
	ResetPin   string
	ResetPulse time.Duration
}

// ParseURL parses spi:///dev/spidev0.0?speed=8000000&irq=GPIO25&reset=GPIO24.
func ParseURL(rawURL string) (Config, error) {
	cfg := Config{SpeedHz: DefaultSpeedHz, IRQPin: DefaultIRQPin, ResetPulse: DefaultResetPulse}
	u, err := url.Parse(rawURL)
	if err != nil {
		return cfg, err
	}
	if u.Scheme != Scheme {
		return cfg, fmt.Errorf("spi: unsupported scheme %q", u.Scheme)
	}
	if cfg.Bus = u.Host + u.Path; cfg.Bus == "" {
		return cfg, fmt.Errorf("spi: missing bus in %q", rawURL)
	}
	q := u.Query()
	if v := q.Get("speed"); v != "" {
		if cfg.SpeedHz, err = strconv.ParseInt(v, 10, 64); err != nil || cfg.SpeedHz <= 0 {
			return cfg, fmt.Errorf("spi: invalid speed %q", v)
		}
	}
	if v := q.Get("irq"); v != "" {
		cfg.IRQPin = v
	}
	cfg.ResetPin = q.Get("reset")
	return cfg, nil
}

// Bus is the part of spi.Conn used for transfers.
type Bus interface {
	Tx(w, r []byte) error
}

// IRQ is the part of gpio.PinIn used to wait for the controller.
type IRQ interface {
	WaitForEdge(timeout time.Duration) bool
	Read() gpio.Level
}

// Conn is a packet connection over a SPI bus.
type Conn struct {
	bus    Bus
	irq    IRQ
	closer func() error

	lock   sync.Mutex
	closed chan struct{}
	once   sync.Once
}

// NewConn creates a Conn. closer is called once on Close.
func NewConn(bus Bus, irq IRQ, closer func() error) *Conn {
	return &Conn{bus: bus, irq: irq, closer: closer, closed: make(chan struct{})}
}

// Read clocks len(p) bytes out of the controller.
func (c *Conn) Read(p []byte) (int, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if err := c.bus.Tx(make([]byte, len(p)), p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadPacket implements hal.PacketReader. It blocks until the interrupt
// line is asserted.
func (c *Conn) ReadPacket() ([]byte, error) {
	for c.irq.Read() != gpio.Low {
		select {
		case <-c.closed:
			return nil, ErrClosed
		default:
		}
		c.irq.WaitForEdge(irqPollInterval)
	}
	select {
	case <-c.closed:
		return nil, ErrClosed
	default:
	}
	return uci.ReadPacket(c)
}

// WritePacket implements hal.PacketWriter.
func (c *Conn) WritePacket(pkt []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.bus.Tx(pkt, nil)
}

// Close implements hal.PacketConn.
func (c *Conn) Close() (err error) {
	c.once.Do(func() {
		close(c.closed)
		if c.closer != nil {
			err = c.closer()
		}
	})
	return
}

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("spi: unknown pin %s", name)
	}
	return p, nil
}

// Open initializes the host drivers and opens the bus.
func Open(cfg Config) (hal.PacketConn, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("spi: host init: %w", err)
	}
	irq, err := pin(cfg.IRQPin)
	if err != nil {
		return nil, err
	}
	if err := irq.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("spi: irq %s: %w", cfg.IRQPin, err)
	}
	port, err := spireg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("spi: open %s: %w", cfg.Bus, err)
	}
	conn, err := port.Connect(physic.Frequency(cfg.SpeedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("spi: connect %s: %w", cfg.Bus, err)
	}
	return NewConn(conn, irq, port.Close), nil
}

// New creates a HAL on a SPI bus. IoctlHardReset pulses the reset pin
// when configured.
func New(cfg Config) *hal.Stream {
	s := hal.NewStream(cfg.Bus, func() (hal.PacketConn, error) {
		return Open(cfg)
	})
	s.OnIoctl = func(conn hal.PacketConn, op hal.IoctlOp, data []byte) error {
		if op != hal.IoctlHardReset || cfg.ResetPin == "" {
			return hal.ErrUnsupportedIoctl
		}
		reset, err := pin(cfg.ResetPin)
		if err != nil {
			return err
		}
		if err := reset.Out(gpio.Low); err != nil {
			return err
		}
		time.Sleep(cfg.ResetPulse)
		return reset.Out(gpio.High)
	}
	return s
}
