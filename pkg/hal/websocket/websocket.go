// Package websocket carries UCI packets in binary websocket frames, one
// packet per frame. The client side is a HAL, the server side exposes
// any HAL to remote hosts.
package websocket

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/uwb.go/pkg/hal"
)

const closeTimeout = 2 * time.Second

// Schemes of websocket URLs.
const (
	Scheme       = "ws"
	SchemeSecure = "wss"
)

// Conn implements hal.PacketConn.
type Conn websocket.Conn

// NewConn wraps websocket.Conn.
func NewConn(conn *websocket.Conn) *Conn {
	return (*Conn)(conn)
}

// ReadPacket implements hal.PacketReader.
func (c *Conn) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(c), &pkt)
	return
}

// WritePacket implements hal.PacketWriter.
func (c *Conn) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(c), pkt)
}

// Close implements hal.PacketConn.
func (c *Conn) Close() error {
	return (*websocket.Conn)(c).Close()
}

// Dial connects to a websocket endpoint.
func Dial(rawURL string) (*Conn, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	origin := "http://" + u.Host
	if u.Scheme == SchemeSecure {
		origin = "https://" + u.Host
	}
	conn, err := websocket.Dial(rawURL, "", origin)
	if err != nil {
		return nil, err
	}
	return NewConn(conn), nil
}

// New creates a HAL connecting to a websocket endpoint.
func New(rawURL string) (*hal.Stream, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != Scheme && u.Scheme != SchemeSecure {
		return nil, fmt.Errorf("websocket: unsupported scheme %q", u.Scheme)
	}
	return hal.NewStream(u.Host, func() (hal.PacketConn, error) {
		return Dial(rawURL)
	}), nil
}

// Handler serves a HAL to websocket clients. Only one client is served
// at a time, the HAL is opened when the client connects and closed
// when it leaves.
func Handler(h hal.HAL) http.Handler {
	sem := make(chan struct{}, 1)
	return websocket.Handler(func(ws *websocket.Conn) {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
		default:
			glog.Warningf("websocket: %s rejected, controller in use", ws.Request().RemoteAddr)
			return
		}
		serve(h, NewConn(ws))
	})
}

func serve(h hal.HAL, conn *Conn) {
	events := make(chan hal.Event, 4)
	err := h.Open(func(ev hal.Event, err error) {
		if ev == hal.EventError {
			glog.Errorf("websocket: controller: %v", err)
		}
		select {
		case events <- ev:
		default:
		}
	}, func(pkt []byte) {
		if err := conn.WritePacket(pkt); err != nil {
			glog.Warningf("websocket: send: %v", err)
		}
	})
	if err != nil {
		glog.Errorf("websocket: open controller: %v", err)
		return
	}
	if ev := <-events; ev != hal.EventOpenComplete {
		return
	}
	defer func() {
		if err := h.Close(); err != nil {
			return
		}
		timeout := time.After(closeTimeout)
		for {
			select {
			case ev := <-events:
				if ev == hal.EventCloseComplete {
					return
				}
			case <-timeout:
				glog.Warning("websocket: controller close timeout")
				return
			}
		}
	}()
	for {
		pkt, err := conn.ReadPacket()
		if err != nil {
			glog.V(1).Infof("websocket: client left: %v", err)
			return
		}
		if err := h.Write(pkt); err != nil {
			glog.Errorf("websocket: write controller: %v", err)
			return
		}
	}
}
