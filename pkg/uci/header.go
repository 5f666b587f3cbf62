package uci

import "fmt"

// MessageType is the 3-bit MT field of a UCI header.
type MessageType byte

// Message types.
const (
	MTData         MessageType = 0
	MTCommand      MessageType = 1
	MTResponse     MessageType = 2
	MTNotification MessageType = 3
)

// String implements fmt.Stringer.
func (t MessageType) String() string {
	switch t {
	case MTData:
		return "DATA"
	case MTCommand:
		return "CMD"
	case MTResponse:
		return "RSP"
	case MTNotification:
		return "NTF"
	default:
		return fmt.Sprintf("MT(%d)", byte(t))
	}
}

const (
	// HeaderSize is the size of UCI packet header.
	HeaderSize = 4
	// MaxShortPayload is the largest payload expressible without the
	// extended length flag.
	MaxShortPayload = 0xff
	// MaxPayload is the largest payload length the header can carry.
	MaxPayload = 0x7fff

	mtShift     = 5
	pbfBit      = 0x10
	gidMask     = 0x0f
	oidMask     = 0x3f
	extLenBit   = 0x80
	extLenMask  = 0x7f
	mtFieldMask = 0x07
)

// Header is the decoded UCI packet header.
type Header struct {
	MT     MessageType
	PBF    bool
	GID    byte
	OID    byte
	Length int
}

// HeaderError reports a header that can't be decoded or encoded.
type HeaderError struct {
	Reason string
	Bytes  []byte
}

// Error implements error.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid UCI header % x: %s", e.Bytes, e.Reason)
}

// Matches reports whether two headers address the same group and opcode.
func (h Header) Matches(o Header) bool {
	return h.GID == o.GID && h.OID == o.OID
}

// String implements fmt.Stringer.
func (h Header) String() string {
	pbf := ""
	if h.PBF {
		pbf = "+"
	}
	return fmt.Sprintf("%s%s[%x:%02x] len=%d", h.MT, pbf, h.GID, h.OID, h.Length)
}

// AppendTo encodes the header and appends it to b.
func (h Header) AppendTo(b []byte) []byte {
	b0 := byte(h.MT&mtFieldMask)<<mtShift | h.GID&gidMask
	if h.PBF {
		b0 |= pbfBit
	}
	var b2, b3 byte
	if h.Length > MaxShortPayload {
		b2 = extLenBit | byte(h.Length>>8)&extLenMask
	}
	b3 = byte(h.Length)
	return append(b, b0, h.OID&oidMask, b2, b3)
}

// Bytes returns the encoded header.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ParseHeader decodes the first HeaderSize bytes of b.
func ParseHeader(b []byte) (h Header, err error) {
	if len(b) < HeaderSize {
		return h, &HeaderError{Reason: "short header", Bytes: b}
	}
	h.MT = MessageType(b[0]>>mtShift) & mtFieldMask
	h.PBF = b[0]&pbfBit != 0
	h.GID = b[0] & gidMask
	h.OID = b[1] & oidMask
	h.Length = int(b[3])
	if b[2]&extLenBit != 0 {
		h.Length |= int(b[2]&extLenMask) << 8
	}
	return h, nil
}

// Message is a complete (possibly reassembled) UCI message.
type Message struct {
	Header
	Payload []byte

	raw []byte
}

// NewMessage creates a Message with header fields derived from payload.
func NewMessage(mt MessageType, gid, oid byte, payload []byte) *Message {
	return &Message{
		Header:  Header{MT: mt, GID: gid, OID: oid, Length: len(payload)},
		Payload: payload,
	}
}

// Raw returns header and payload as received. For reassembled messages
// the header carries the patched total length.
func (m *Message) Raw() []byte {
	if m.raw == nil {
		m.raw = m.Bytes()
	}
	return m.raw
}

// Bytes encodes the message as a single packet.
func (m *Message) Bytes() []byte {
	h := m.Header
	h.Length, h.PBF = len(m.Payload), false
	return append(h.AppendTo(make([]byte, 0, HeaderSize+len(m.Payload))), m.Payload...)
}

// Clone returns a deep copy which stays valid after the receiving
// buffer is reused.
func (m *Message) Clone() *Message {
	c := &Message{Header: m.Header}
	if m.Payload != nil {
		c.Payload = append([]byte(nil), m.Payload...)
	}
	if m.raw != nil {
		c.raw = append([]byte(nil), m.raw...)
	}
	return c
}

// Status returns the status octet leading a response payload.
func (m *Message) Status() Status {
	if len(m.Payload) == 0 {
		return StatusSyntaxError
	}
	return Status(m.Payload[0])
}

// ParsePacket decodes a single packet. The packet must carry exactly the
// payload announced by its header.
func ParsePacket(b []byte) (*Message, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return nil, err
	}
	if len(b)-HeaderSize != h.Length {
		return nil, &HeaderError{
			Reason: fmt.Sprintf("length %d, got %d bytes", h.Length, len(b)-HeaderSize),
			Bytes:  b[:HeaderSize],
		}
	}
	return &Message{Header: h, Payload: b[HeaderSize:], raw: b}, nil
}

// EncodePacket builds a single packet.
func EncodePacket(mt MessageType, gid, oid byte, pbf bool, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, ErrPayloadTooLarge
	}
	h := Header{MT: mt, PBF: pbf, GID: gid, OID: oid, Length: len(payload)}
	return append(h.AppendTo(make([]byte, 0, HeaderSize+len(payload))), payload...), nil
}
