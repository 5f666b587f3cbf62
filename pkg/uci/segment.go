package uci

// DefaultMaxFragment is the largest payload placed in a single packet
// when segmenting outbound messages.
const DefaultMaxFragment = MaxShortPayload

// Segment splits payload into chained packets of at most maxFragment
// payload bytes each. All packets but the last have PBF set. An empty
// payload yields a single packet.
func Segment(mt MessageType, gid, oid byte, payload []byte, maxFragment int) ([][]byte, error) {
	if maxFragment <= 0 || maxFragment > MaxPayload {
		maxFragment = DefaultMaxFragment
	}
	count := (len(payload) + maxFragment - 1) / maxFragment
	if count == 0 {
		count = 1
	}
	pkts := make([][]byte, 0, count)
	for {
		n := len(payload)
		if n > maxFragment {
			n = maxFragment
		}
		pkt, err := EncodePacket(mt, gid, oid, n < len(payload), payload[:n])
		if err != nil {
			return nil, err
		}
		pkts = append(pkts, pkt)
		payload = payload[n:]
		if len(payload) == 0 {
			return pkts, nil
		}
	}
}
