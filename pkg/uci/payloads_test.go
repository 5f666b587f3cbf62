package uci

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	pkts, err := Segment(MTCommand, GIDVendor, 0x02, testPayload(10), 4)
	require.NoError(t, err)
	require.Len(t, pkts, 3)
	for n, pkt := range pkts {
		h, err := ParseHeader(pkt)
		require.NoError(t, err)
		require.Equal(t, n < 2, h.PBF)
		require.Equal(t, MTCommand, h.MT)
		require.Equal(t, GIDVendor, h.GID)
	}
	require.Len(t, pkts[2], HeaderSize+2)

	pkts, err = Segment(MTCommand, GIDCore, OIDCoreDeviceReset, nil, 0)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0x20, 0x00, 0x00, 0x00}}, pkts)
}

func TestTLVs(t *testing.T) {
	tlvs := []TLV{{Type: 0x01, Value: []byte{0x01}}, {Type: 0x27, Value: []byte{0x10, 0x20}}}
	b, err := EncodeTLVs(tlvs)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 0x01, 1, 0x01, 0x27, 2, 0x10, 0x20}, b)
	decoded, err := DecodeTLVs(b)
	require.NoError(t, err)
	require.Equal(t, tlvs, decoded)

	_, err = DecodeTLVs([]byte{2, 0x01, 1, 0x01, 0x27, 5, 0x10})
	require.Equal(t, ErrMalformedPayload, err)
	_, err = EncodeTLVs([]TLV{{Type: 1, Value: make([]byte, 256)}})
	require.Equal(t, ErrPayloadTooLarge, err)
}

func TestConfigResponses(t *testing.T) {
	st, params, err := ParseSetConfigResponse([]byte{0x04, 1, 0x27, 0x04})
	require.NoError(t, err)
	require.Equal(t, StatusInvalidParam, st)
	require.Equal(t, []ParamStatus{{Type: 0x27, Status: StatusInvalidParam}}, params)

	b := AppendSetConfigResponse(nil, StatusOK, nil)
	require.Equal(t, []byte{0, 0}, b)

	st, tlvs, err := ParseConfigResponse([]byte{0, 1, 0xa0, 1, 0x05})
	require.NoError(t, err)
	require.Equal(t, StatusOK, st)
	require.Equal(t, []TLV{{Type: 0xa0, Value: []byte{5}}}, tlvs)
}

func TestDeviceInfo(t *testing.T) {
	info := &DeviceInfo{
		UCIVersion:     0x1001,
		MACVersion:     0x3001,
		PHYVersion:     0x3001,
		UCITestVersion: 0x1001,
		VendorInfo:     []byte{0xca, 0xfe},
	}
	parsed, err := ParseDeviceInfo(info.AppendTo(nil))
	require.NoError(t, err)
	require.Equal(t, info, parsed)
	require.Equal(t, "1.1.0", VersionString(info.UCIVersion))

	parsed, err = ParseDeviceInfo([]byte{byte(StatusFailed)})
	require.NoError(t, err)
	require.Equal(t, StatusFailed, parsed.Status)

	_, err = ParseDeviceInfo([]byte{0, 1, 2})
	require.Equal(t, ErrMalformedPayload, err)
}

func TestSessionPayloads(t *testing.T) {
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12, 0x00}, SessionInitPayload(0x12345678, SessionTypeRanging))

	st, handle, err := ParseSessionInitResponse([]byte{0x00}, 42)
	require.NoError(t, err)
	require.Equal(t, StatusOK, st)
	require.Equal(t, uint32(42), handle)
	_, handle, err = ParseSessionInitResponse([]byte{0x00, 0x01, 0x02, 0x00, 0x00}, 42)
	require.NoError(t, err)
	require.Equal(t, uint32(0x0201), handle)

	ss := &SessionStatus{Handle: 7, State: SessionStateIdle, Reason: 1}
	parsed, err := ParseSessionStatus(ss.AppendTo(nil))
	require.NoError(t, err)
	require.Equal(t, ss, parsed)
	_, err = ParseSessionStatus([]byte{1, 2})
	require.Equal(t, ErrMalformedPayload, err)

	b, err := SetAppConfigPayload(7, []TLV{{Type: 0x01, Value: []byte{1}}})
	require.NoError(t, err)
	require.Equal(t, []byte{7, 0, 0, 0, 1, 0x01, 1, 1}, b)
	require.Equal(t, []byte{7, 0, 0, 0, 2, 0x01, 0x02}, GetAppConfigPayload(7, []byte{1, 2}))

	b, err = MulticastListPayload(7, MulticastAdd, []Controlee{{ShortAddress: 0x0102, SubSessionID: 3}})
	require.NoError(t, err)
	require.Equal(t, []byte{7, 0, 0, 0, 0, 1, 0x02, 0x01, 3, 0, 0, 0}, b)
}

func TestDataPayloads(t *testing.T) {
	credit := &DataCredit{Handle: 9, Available: true}
	parsed, err := ParseDataCredit(credit.AppendTo(nil))
	require.NoError(t, err)
	require.Equal(t, credit, parsed)

	ts := &DataTransferStatus{Handle: 9, Seq: 3, Status: DataTransferOK}
	parsedTS, err := ParseDataTransferStatus(ts.AppendTo(nil))
	require.NoError(t, err)
	require.Equal(t, ts, parsedTS)

	dm := &DataMessage{Handle: 9, Address: 0x1122, Seq: 4, Data: []byte("hello")}
	b := dm.AppendTo(nil)
	require.Len(t, b, 16+5)
	parsedDM, err := ParseDataMessage(b)
	require.NoError(t, err)
	require.Equal(t, dm, parsedDM)
	_, err = ParseDataMessage(b[:18])
	require.Equal(t, ErrMalformedPayload, err)
}

func TestRangeData(t *testing.T) {
	testCases := []struct {
		name string
		mode byte
		size int
	}{
		{"short", MACAddressShort, shortMeasurementLen},
		{"extended", MACAddressExtended, extMeasurementLen},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rd := &RangeData{
				Seq:             5,
				Handle:          7,
				IntervalMs:      200,
				MeasurementType: 1,
				AddressMode:     tc.mode,
				Measurements: []Measurement{
					{Address: 0x0102, Distance: 150, AoAAzimuth: -300, SlotIndex: 2, RSSI: 0x50},
					{Address: 0x0304, Status: StatusRangingRxTimeout, NLoS: 1, DestElevation: 12},
				},
			}
			b := rd.AppendTo(nil)
			require.Len(t, b, rangeDataHeaderSize+2*tc.size)
			parsed, err := ParseRangeData(b)
			require.NoError(t, err)
			require.Equal(t, rd, parsed)

			_, err = ParseRangeData(b[:len(b)-1])
			require.Equal(t, ErrMalformedPayload, err)
		})
	}
}
