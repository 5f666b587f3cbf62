package hal

import (
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/uci"
)

// StreamConn frames UCI packets over a byte stream using the header
// length.
type StreamConn struct {
	io.ReadWriteCloser
}

// NewStreamConn wraps a byte stream.
func NewStreamConn(s io.ReadWriteCloser) *StreamConn {
	return &StreamConn{s}
}

// ReadPacket implements PacketReader.
func (c *StreamConn) ReadPacket() ([]byte, error) {
	return uci.ReadPacket(c.ReadWriteCloser)
}

// WritePacket implements PacketWriter.
func (c *StreamConn) WritePacket(pkt []byte) error {
	_, err := c.Write(pkt)
	return err
}

// Dialer opens a PacketConn.
type Dialer func() (PacketConn, error)

// IoctlFunc handles ioctl on an open connection.
type IoctlFunc func(conn PacketConn, op IoctlOp, data []byte) error

// Stream is a HAL over a PacketConn. Open dials in the background and
// starts a reader delivering packets to the DataCallback.
type Stream struct {
	Name    string
	Dial    Dialer
	OnIoctl IoctlFunc

	lock    sync.Mutex
	conn    PacketConn
	open    bool
	eventCb EventCallback
	done    chan struct{}
}

// NewStream creates a Stream HAL.
func NewStream(name string, dial Dialer) *Stream {
	return &Stream{Name: name, Dial: dial}
}

// Open implements HAL.
func (s *Stream) Open(eventCb EventCallback, dataCb DataCallback) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.open {
		return ErrAlreadyOpen
	}
	s.open, s.eventCb = true, eventCb
	s.done = make(chan struct{})
	go s.run(eventCb, dataCb, s.done)
	return nil
}

func (s *Stream) isOpen() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.open
}

func (s *Stream) run(eventCb EventCallback, dataCb DataCallback, done chan struct{}) {
	defer close(done)
	conn, err := s.Dial()
	if err != nil {
		glog.Errorf("%s: open failed: %v", s.Name, err)
		s.lock.Lock()
		wasOpen := s.open
		s.open = false
		s.lock.Unlock()
		if wasOpen {
			eventCb(EventError, err)
		}
		return
	}
	s.lock.Lock()
	if !s.open {
		s.lock.Unlock()
		conn.Close()
		return
	}
	s.conn = conn
	s.lock.Unlock()

	glog.Infof("%s: opened", s.Name)
	eventCb(EventOpenComplete, nil)
	for {
		pkt, err := conn.ReadPacket()
		if err != nil {
			if s.isOpen() {
				glog.Errorf("%s: read error: %v", s.Name, err)
				eventCb(EventError, err)
			}
			return
		}
		if glog.V(2) {
			glog.Infof("%s RX % x", s.Name, pkt)
		}
		dataCb(pkt)
	}
}

// Close implements HAL.
func (s *Stream) Close() error {
	s.lock.Lock()
	if !s.open {
		s.lock.Unlock()
		return ErrNotOpen
	}
	conn, done, eventCb := s.conn, s.done, s.eventCb
	s.open, s.conn = false, nil
	s.lock.Unlock()

	var err error
	if conn != nil {
		err = conn.Close()
	}
	go func() {
		<-done
		glog.Infof("%s: closed", s.Name)
		eventCb(EventCloseComplete, nil)
	}()
	return err
}

// Write implements HAL.
func (s *Stream) Write(pkt []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.conn == nil {
		return ErrNotOpen
	}
	if glog.V(2) {
		glog.Infof("%s TX % x", s.Name, pkt)
	}
	return s.conn.WritePacket(pkt)
}

// Ioctl implements HAL.
func (s *Stream) Ioctl(op IoctlOp, data []byte) error {
	if s.OnIoctl == nil {
		return ErrUnsupportedIoctl
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.conn == nil {
		return ErrNotOpen
	}
	return s.OnIoctl(s.conn, op, data)
}
