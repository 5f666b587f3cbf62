package uci

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header Header
		expect []byte
	}{
		{"command", Header{MT: MTCommand, GID: 1, OID: 2, Length: 1}, []byte{0x21, 0x02, 0x00, 0x01}},
		{"response", Header{MT: MTResponse, GID: 0, OID: 2, Length: 0}, []byte{0x40, 0x02, 0x00, 0x00}},
		{"chained ntf", Header{MT: MTNotification, PBF: true, GID: 2, OID: 0, Length: 255}, []byte{0x72, 0x00, 0x00, 0xff}},
		{"extended", Header{MT: MTNotification, GID: 2, OID: 0, Length: 600}, []byte{0x62, 0x00, 0x82, 0x58}},
		{"data", Header{MT: MTData, GID: DPFDataSend, Length: 16}, []byte{0x01, 0x00, 0x00, 0x10}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.header.Bytes())
			h, err := ParseHeader(tc.expect)
			require.NoError(t, err)
			require.Equal(t, tc.header, h)
		})
	}
}

func TestParseHeaderShort(t *testing.T) {
	_, err := ParseHeader([]byte{0x21, 0x02})
	require.Error(t, err)
	require.IsType(t, &HeaderError{}, err)
}

func TestParsePacket(t *testing.T) {
	msg, err := ParsePacket([]byte{0x41, 0x02, 0x00, 0x01, 0xaa})
	require.NoError(t, err)
	require.Equal(t, MTResponse, msg.MT)
	require.Equal(t, byte(1), msg.GID)
	require.Equal(t, byte(2), msg.OID)
	require.Equal(t, []byte{0xaa}, msg.Payload)
	require.Equal(t, Status(0xaa), msg.Status())

	_, err = ParsePacket([]byte{0x41, 0x02, 0x00, 0x02, 0xaa})
	require.Error(t, err)
	_, err = ParsePacket([]byte{0x41, 0x02, 0x00, 0x00, 0xaa})
	require.Error(t, err)
}

func TestEncodePacket(t *testing.T) {
	pkt, err := EncodePacket(MTCommand, GIDSessionConfig, OIDSessionInit, false, []byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, []byte{0x21, 0x00, 0x00, 0x02, 1, 2}, pkt)

	_, err = EncodePacket(MTCommand, 1, 1, false, make([]byte, MaxPayload+1))
	require.Equal(t, ErrPayloadTooLarge, err)
}

func TestMessageClone(t *testing.T) {
	raw := []byte{0x61, 0x02, 0x00, 0x02, 1, 2}
	msg, err := ParsePacket(raw)
	require.NoError(t, err)
	c := msg.Clone()
	raw[4] = 9
	require.Equal(t, []byte{1, 2}, c.Payload)
	require.Equal(t, []byte{0x61, 0x02, 0x00, 0x02, 1, 2}, c.Raw())
	require.Equal(t, byte(9), msg.Payload[0])
}

func TestMessageStatusEmpty(t *testing.T) {
	require.Equal(t, StatusSyntaxError, NewMessage(MTResponse, 0, 0, nil).Status())
}

func TestReadPacket(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x61, 0x01, 0x00, 0x01, 0x01})
	buf.Write([]byte{0x40, 0x00, 0x00, 0x01, 0x00})
	buf.Write([]byte{0x62, 0x00, 0x00, 0x03, 0x01})

	pkt, err := ReadPacket(&buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x61, 0x01, 0x00, 0x01, 0x01}, pkt)
	pkt, err = ReadPacket(&buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x40, 0x00, 0x00, 0x01, 0x00}, pkt)
	_, err = ReadPacket(&buf)
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	require.NoError(t, StatusOK.Err())
	require.Equal(t, StatusSessionNotExist, StatusSessionNotExist.Err())
	require.Equal(t, "SESSION_NOT_EXIST", StatusSessionNotExist.String())
	require.Equal(t, "STATUS(0x7f)", Status(0x7f).String())
	require.Equal(t, "uci: FAILED", StatusFailed.Error())
}
