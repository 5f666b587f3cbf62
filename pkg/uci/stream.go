package uci

import "io"

// ReadPacket reads exactly one packet from a byte stream, using the
// header length to find the packet boundary.
func ReadPacket(r io.Reader) ([]byte, error) {
	var head [HeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	h, err := ParseHeader(head[:])
	if err != nil {
		return nil, err
	}
	pkt := make([]byte, HeaderSize+h.Length)
	copy(pkt, head[:])
	if _, err := io.ReadFull(r, pkt[HeaderSize:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return pkt, nil
}
