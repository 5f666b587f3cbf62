package uci

const (
	// DefaultControlCapacity is the reassembly capacity for
	// command/response/notification traffic, header included.
	DefaultControlCapacity = HeaderSize + 2048
	// DefaultDataCapacity is the reassembly capacity for DATA traffic,
	// header included.
	DefaultDataCapacity = HeaderSize + 4096
)

// Reassembler joins chained packets (PBF set) into complete messages.
// The first fragment is kept with its header, following fragments only
// contribute payload. A Reassembler is not safe for concurrent use.
type Reassembler struct {
	buf     []byte
	n       int
	hdr     Header
	started bool
}

// NewReassembler creates a Reassembler able to hold a message of
// capacity bytes, header included.
func NewReassembler(capacity int) *Reassembler {
	if capacity < HeaderSize {
		capacity = HeaderSize
	}
	return &Reassembler{buf: make([]byte, capacity)}
}

// InProgress reports whether a chain is partially assembled.
func (r *Reassembler) InProgress() bool {
	return r.started
}

// Pending returns the header of the chain in progress.
func (r *Reassembler) Pending() (Header, bool) {
	return r.hdr, r.started
}

// Reset drops any partially assembled chain.
func (r *Reassembler) Reset() {
	r.n, r.started = 0, false
	r.hdr = Header{}
}

// Feed consumes one packet. It returns a complete message when pkt is
// unchained or terminates a chain, and nil while more fragments are
// expected. raw indicates the response belongs to a raw command: its
// fragments are joined whatever group/opcode they carry, and when the
// joined payload exceeds 255 bytes the header length is left as received
// by the first fragment.
//
// The returned message may reference pkt or the internal buffer, and is
// only valid until the next call to Feed.
//
// A packet addressing a different group/opcode than the chain in
// progress drops that chain with ErrChainMismatch and is then processed
// on its own: returned when unchained, or starting a new chain. A chain
// exceeding the capacity is dropped entirely with ErrChainOverflow.
func (r *Reassembler) Feed(pkt []byte, raw bool) (*Message, error) {
	msg, err := ParsePacket(pkt)
	if err != nil {
		return nil, err
	}
	if r.started && !r.continues(msg.Header, raw) {
		r.Reset()
		err = ErrChainMismatch
	}
	if !r.started {
		if !msg.PBF {
			return msg, err
		}
		if len(pkt) > len(r.buf) {
			return nil, ErrChainOverflow
		}
		r.n = copy(r.buf, pkt)
		r.hdr, r.started = msg.Header, true
		return nil, err
	}
	if r.n+len(msg.Payload) > len(r.buf) {
		r.Reset()
		return nil, ErrChainOverflow
	}
	r.n += copy(r.buf[r.n:], msg.Payload)
	if msg.PBF {
		return nil, nil
	}

	b := r.buf[:r.n]
	hdr := r.hdr
	hdr.PBF, hdr.Length = false, r.n-HeaderSize
	r.Reset()

	b[0] &^= pbfBit
	switch {
	case hdr.Length <= MaxShortPayload:
		b[2], b[3] = 0, byte(hdr.Length)
	case !raw || hdr.MT != MTResponse:
		hdr.AppendTo(b[:0])
	}
	return &Message{Header: hdr, Payload: b[HeaderSize:], raw: b}, nil
}

func (r *Reassembler) continues(h Header, raw bool) bool {
	if r.hdr.MT != h.MT {
		return false
	}
	return r.hdr.Matches(h) || (raw && h.MT == MTResponse)
}
