// Package serial provides a HAL for UWB controllers attached to a UART.
package serial

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.bug.st/serial"

	"github.com/robotalks/uwb.go/pkg/hal"
)

// Scheme is the URL scheme of serial ports.
const Scheme = "serial"

// Defaults
const (
	DefaultBaudRate   = 115200
	DefaultResetPulse = 10 * time.Millisecond
)

// Config configures a serial port.
type Config struct {
	Port       string
	BaudRate   int
	ResetPulse time.Duration
}

// ParseURL parses serial:///dev/ttyUSB0?baud=921600&reset=20ms.
func ParseURL(rawURL string) (Config, error) {
	cfg := Config{BaudRate: DefaultBaudRate, ResetPulse: DefaultResetPulse}
	u, err := url.Parse(rawURL)
	if err != nil {
		return cfg, err
	}
	if u.Scheme != Scheme {
		return cfg, fmt.Errorf("serial: unsupported scheme %q", u.Scheme)
	}
	cfg.Port = u.Host + u.Path
	if cfg.Port == "" {
		cfg.Port = u.Opaque
	}
	if cfg.Port == "" {
		return cfg, fmt.Errorf("serial: missing port in %q", rawURL)
	}
	q := u.Query()
	if v := q.Get("baud"); v != "" {
		if cfg.BaudRate, err = strconv.Atoi(v); err != nil || cfg.BaudRate <= 0 {
			return cfg, fmt.Errorf("serial: invalid baud %q", v)
		}
	}
	if v := q.Get("reset"); v != "" {
		if cfg.ResetPulse, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("serial: invalid reset %q", v)
		}
	}
	return cfg, nil
}

type portConn struct {
	*hal.StreamConn
	port serial.Port
}

// Open opens the port as a packet connection.
func Open(cfg Config) (hal.PacketConn, error) {
	port, err := serial.Open(cfg.Port, &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Port, err)
	}
	return &portConn{StreamConn: hal.NewStreamConn(port), port: port}, nil
}

// New creates a HAL on a serial port. IoctlHardReset pulses DTR, which
// is wired to the controller reset line on common adapters.
func New(cfg Config) *hal.Stream {
	s := hal.NewStream(cfg.Port, func() (hal.PacketConn, error) {
		return Open(cfg)
	})
	s.OnIoctl = func(conn hal.PacketConn, op hal.IoctlOp, data []byte) error {
		pc, ok := conn.(*portConn)
		if !ok || op != hal.IoctlHardReset {
			return hal.ErrUnsupportedIoctl
		}
		if err := pc.port.SetDTR(true); err != nil {
			return err
		}
		time.Sleep(cfg.ResetPulse)
		if err := pc.port.SetDTR(false); err != nil {
			return err
		}
		return pc.port.ResetInputBuffer()
	}
	return s
}

// Ports lists available serial ports.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}
