package uci

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func TestReassemblerUnchained(t *testing.T) {
	r := NewReassembler(DefaultControlCapacity)
	msg, err := r.Feed([]byte{0x61, 0x01, 0x00, 0x01, 0x01}, false)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, []byte{0x01}, msg.Payload)
	require.False(t, r.InProgress())
}

func TestReassemblerChained600(t *testing.T) {
	payload := testPayload(600)
	first, err := EncodePacket(MTNotification, GIDSessionControl, OIDRangeData, true, payload[:255])
	require.NoError(t, err)
	last, err := EncodePacket(MTNotification, GIDSessionControl, OIDRangeData, false, payload[255:])
	require.NoError(t, err)

	r := NewReassembler(DefaultControlCapacity)
	msg, err := r.Feed(first, false)
	require.NoError(t, err)
	require.Nil(t, msg)
	require.True(t, r.InProgress())

	msg, err = r.Feed(last, false)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Equal(t, payload, msg.Payload)
	require.Equal(t, 600, msg.Length)
	require.False(t, msg.PBF)
	require.Equal(t, []byte{0x62, 0x00, 0x82, 0x58}, msg.Raw()[:HeaderSize])
	h, err := ParseHeader(msg.Raw())
	require.NoError(t, err)
	require.Equal(t, 600, h.Length)
	require.False(t, r.InProgress())
}

func TestReassemblerRawResponseKeepsHeader(t *testing.T) {
	payload := testPayload(300)
	pkts, err := Segment(MTResponse, GIDVendor, 0x01, payload, 200)
	require.NoError(t, err)
	require.Len(t, pkts, 2)

	r := NewReassembler(DefaultControlCapacity)
	_, err = r.Feed(pkts[0], true)
	require.NoError(t, err)
	msg, err := r.Feed(pkts[1], true)
	require.NoError(t, err)
	require.Equal(t, payload, msg.Payload)
	require.Equal(t, 300, msg.Length)
	require.Equal(t, []byte{0x4e, 0x01, 0x00, 200}, msg.Raw()[:HeaderSize])
}

func TestReassemblerShortChainPatched(t *testing.T) {
	pkts, err := Segment(MTNotification, GIDCore, OIDCoreGenericError, testPayload(30), 10)
	require.NoError(t, err)
	require.Len(t, pkts, 3)
	r := NewReassembler(DefaultControlCapacity)
	var msg *Message
	for _, pkt := range pkts {
		msg, err = r.Feed(pkt, false)
		require.NoError(t, err)
	}
	require.Equal(t, []byte{0x60, 0x07, 0x00, 30}, msg.Raw()[:HeaderSize])
}

func TestReassemblerMismatchUnchained(t *testing.T) {
	payload := testPayload(20)
	pkts, err := Segment(MTNotification, GIDSessionConfig, OIDSessionStatus, payload, 8)
	require.NoError(t, err)
	require.Len(t, pkts, 3)
	intruder, err := EncodePacket(MTResponse, GIDCore, OIDCoreGetDeviceInfo, false, []byte{0})
	require.NoError(t, err)

	r := NewReassembler(DefaultControlCapacity)
	_, err = r.Feed(pkts[0], false)
	require.NoError(t, err)
	require.True(t, r.InProgress())

	// the stale chain is dropped, the unchained packet still delivered
	msg, err := r.Feed(intruder, false)
	require.Equal(t, ErrChainMismatch, err)
	require.NotNil(t, msg)
	require.Equal(t, OIDCoreGetDeviceInfo, msg.OID)
	require.Equal(t, []byte{0}, msg.Payload)
	require.False(t, r.InProgress())

	for n, pkt := range pkts {
		msg, err = r.Feed(pkt, false)
		require.NoError(t, err)
		if n < len(pkts)-1 {
			require.Nil(t, msg)
		}
	}
	require.NotNil(t, msg)
	require.Equal(t, payload, msg.Payload)
}

func TestReassemblerMismatchNewChain(t *testing.T) {
	stale, err := EncodePacket(MTNotification, GIDSessionControl, OIDRangeData, true, testPayload(8))
	require.NoError(t, err)
	payload := testPayload(12)
	pkts, err := Segment(MTNotification, GIDCore, OIDCoreGenericError, payload, 8)
	require.NoError(t, err)
	require.Len(t, pkts, 2)

	r := NewReassembler(DefaultControlCapacity)
	_, err = r.Feed(stale, false)
	require.NoError(t, err)

	msg, err := r.Feed(pkts[0], false)
	require.Equal(t, ErrChainMismatch, err)
	require.Nil(t, msg)
	h, ok := r.Pending()
	require.True(t, ok)
	require.Equal(t, OIDCoreGenericError, h.OID)

	msg, err = r.Feed(pkts[1], false)
	require.NoError(t, err)
	require.Equal(t, payload, msg.Payload)
	require.Equal(t, []byte{0x60, 0x07, 0x00, 12}, msg.Raw()[:HeaderSize])
}

func TestReassemblerRawIgnoresOpcode(t *testing.T) {
	first, err := EncodePacket(MTResponse, GIDVendor, 0x01, true, []byte{1, 2})
	require.NoError(t, err)
	last, err := EncodePacket(MTResponse, GIDVendor, 0x02, false, []byte{3})
	require.NoError(t, err)

	r := NewReassembler(DefaultControlCapacity)
	_, err = r.Feed(first, true)
	require.NoError(t, err)
	msg, err := r.Feed(last, true)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), msg.OID)
	require.Equal(t, []byte{1, 2, 3}, msg.Payload)
	require.Equal(t, []byte{0x4e, 0x01, 0x00, 3}, msg.Raw()[:HeaderSize])
}

func TestReassemblerOverflow(t *testing.T) {
	pkts, err := Segment(MTNotification, GIDCore, OIDCoreGenericError, testPayload(40), 16)
	require.NoError(t, err)
	r := NewReassembler(HeaderSize + 24)
	_, err = r.Feed(pkts[0], false)
	require.NoError(t, err)
	_, err = r.Feed(pkts[1], false)
	require.Equal(t, ErrChainOverflow, err)
	require.False(t, r.InProgress())

	// the tail is now a standalone packet
	msg, err := r.Feed(pkts[2], false)
	require.NoError(t, err)
	require.Len(t, msg.Payload, 8)
}

func TestReassemblerRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 255, 256, 600, 1024} {
		for _, frag := range []int{16, 100, 255} {
			payload := testPayload(size)
			pkts, err := Segment(MTNotification, GIDSessionControl, OIDRangeData, payload, frag)
			require.NoError(t, err)
			r := NewReassembler(DefaultControlCapacity)
			var got *Message
			for n, pkt := range pkts {
				require.LessOrEqual(t, len(pkt)-HeaderSize, frag)
				msg, err := r.Feed(pkt, false)
				require.NoError(t, err)
				if n < len(pkts)-1 {
					require.Nil(t, msg)
				} else {
					got = msg
				}
			}
			require.NotNil(t, got)
			require.Equal(t, size, len(got.Payload))
			if size > 0 {
				require.Equal(t, payload, got.Payload)
			}
			h, err := ParseHeader(got.Raw())
			require.NoError(t, err)
			require.Equal(t, size, h.Length)
		}
	}
}
