package uci

import (
	"encoding/binary"
	"fmt"
)

var le = binary.LittleEndian

// DeviceInfo is the payload of CORE_GET_DEVICE_INFO_RSP.
type DeviceInfo struct {
	Status         Status
	UCIVersion     uint16
	MACVersion     uint16
	PHYVersion     uint16
	UCITestVersion uint16
	VendorInfo     []byte
}

// ParseDeviceInfo decodes CORE_GET_DEVICE_INFO_RSP.
func ParseDeviceInfo(b []byte) (*DeviceInfo, error) {
	if len(b) < 1 {
		return nil, ErrMalformedPayload
	}
	info := &DeviceInfo{Status: Status(b[0])}
	if info.Status != StatusOK {
		return info, nil
	}
	if len(b) < 10 || len(b) < 10+int(b[9]) {
		return nil, ErrMalformedPayload
	}
	info.UCIVersion = le.Uint16(b[1:])
	info.MACVersion = le.Uint16(b[3:])
	info.PHYVersion = le.Uint16(b[5:])
	info.UCITestVersion = le.Uint16(b[7:])
	info.VendorInfo = append([]byte{}, b[10:10+int(b[9])]...)
	return info, nil
}

// AppendTo encodes the response payload.
func (i *DeviceInfo) AppendTo(b []byte) []byte {
	b = append(b, byte(i.Status))
	b = le.AppendUint16(b, i.UCIVersion)
	b = le.AppendUint16(b, i.MACVersion)
	b = le.AppendUint16(b, i.PHYVersion)
	b = le.AppendUint16(b, i.UCITestVersion)
	b = append(b, byte(len(i.VendorInfo)))
	return append(b, i.VendorInfo...)
}

// VersionString formats a version as major.minor.maintenance.
func VersionString(v uint16) string {
	return fmt.Sprintf("%d.%d.%d", v&0xff, v>>12, (v>>8)&0x0f)
}

// ParseDeviceStatus decodes CORE_DEVICE_STATUS_NTF.
func ParseDeviceStatus(b []byte) (DeviceState, error) {
	if len(b) < 1 {
		return 0, ErrMalformedPayload
	}
	return DeviceState(b[0]), nil
}

// ParseGenericError decodes CORE_GENERIC_ERROR_NTF.
func ParseGenericError(b []byte) (Status, error) {
	if len(b) < 1 {
		return 0, ErrMalformedPayload
	}
	return Status(b[0]), nil
}

// SessionStatus is the payload of SESSION_STATUS_NTF.
type SessionStatus struct {
	Handle uint32
	State  SessionState
	Reason byte
}

// ParseSessionStatus decodes SESSION_STATUS_NTF.
func ParseSessionStatus(b []byte) (*SessionStatus, error) {
	if len(b) < 6 {
		return nil, ErrMalformedPayload
	}
	return &SessionStatus{Handle: le.Uint32(b), State: SessionState(b[4]), Reason: b[5]}, nil
}

// AppendTo encodes the notification payload.
func (s *SessionStatus) AppendTo(b []byte) []byte {
	b = le.AppendUint32(b, s.Handle)
	return append(b, byte(s.State), s.Reason)
}

// DataCredit is the payload of DATA_CREDIT_NTF.
type DataCredit struct {
	Handle    uint32
	Available bool
}

// ParseDataCredit decodes DATA_CREDIT_NTF.
func ParseDataCredit(b []byte) (*DataCredit, error) {
	if len(b) < 5 {
		return nil, ErrMalformedPayload
	}
	return &DataCredit{Handle: le.Uint32(b), Available: b[4] == CreditAvailable}, nil
}

// AppendTo encodes the notification payload.
func (c *DataCredit) AppendTo(b []byte) []byte {
	b = le.AppendUint32(b, c.Handle)
	if c.Available {
		return append(b, CreditAvailable)
	}
	return append(b, CreditNotAvailable)
}

// DataTransferStatus is the payload of DATA_TRANSFER_STATUS_NTF.
type DataTransferStatus struct {
	Handle uint32
	Seq    uint16
	Status byte
}

// ParseDataTransferStatus decodes DATA_TRANSFER_STATUS_NTF.
func ParseDataTransferStatus(b []byte) (*DataTransferStatus, error) {
	if len(b) < 7 {
		return nil, ErrMalformedPayload
	}
	return &DataTransferStatus{Handle: le.Uint32(b), Seq: le.Uint16(b[4:]), Status: b[6]}, nil
}

// AppendTo encodes the notification payload.
func (s *DataTransferStatus) AppendTo(b []byte) []byte {
	b = le.AppendUint32(b, s.Handle)
	b = le.AppendUint16(b, s.Seq)
	return append(b, s.Status)
}

// Data transfer status codes.
const (
	DataTransferOK         byte = 0x00
	DataTransferRepetition byte = 0x01
	DataTransferFailed     byte = 0x02
)

// ParseSessionInitResponse decodes SESSION_INIT_RSP. Controllers which
// don't report a handle use the session id as handle.
func ParseSessionInitResponse(b []byte, id uint32) (Status, uint32, error) {
	if len(b) < 1 {
		return StatusSyntaxError, 0, ErrMalformedPayload
	}
	if len(b) < 5 {
		return Status(b[0]), id, nil
	}
	return Status(b[0]), le.Uint32(b[1:]), nil
}

// SessionInitPayload encodes SESSION_INIT_CMD.
func SessionInitPayload(id uint32, typ SessionType) []byte {
	return append(le.AppendUint32(make([]byte, 0, 5), id), byte(typ))
}

// HandlePayload encodes commands carrying only a session handle.
func HandlePayload(handle uint32) []byte {
	return le.AppendUint32(make([]byte, 0, 4), handle)
}

// ParseHandle decodes the session handle leading a payload.
func ParseHandle(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, ErrMalformedPayload
	}
	return le.Uint32(b), nil
}

// SetAppConfigPayload encodes SESSION_SET_APP_CONFIG_CMD.
func SetAppConfigPayload(handle uint32, tlvs []TLV) ([]byte, error) {
	return AppendTLVs(HandlePayload(handle), tlvs)
}

// GetConfigPayload encodes CORE_GET_CONFIG_CMD.
func GetConfigPayload(ids []byte) []byte {
	return append([]byte{byte(len(ids))}, ids...)
}

// GetAppConfigPayload encodes SESSION_GET_APP_CONFIG_CMD.
func GetAppConfigPayload(handle uint32, ids []byte) []byte {
	return append(append(HandlePayload(handle), byte(len(ids))), ids...)
}

// Multicast list actions.
const (
	MulticastAdd    byte = 0x00
	MulticastDelete byte = 0x01
)

// Controlee is an entry of SESSION_UPDATE_CONTROLLER_MULTICAST_LIST_CMD.
type Controlee struct {
	ShortAddress uint16
	SubSessionID uint32
}

// MulticastListPayload encodes SESSION_UPDATE_CONTROLLER_MULTICAST_LIST_CMD.
func MulticastListPayload(handle uint32, action byte, controlees []Controlee) ([]byte, error) {
	if len(controlees) > 0xff {
		return nil, ErrPayloadTooLarge
	}
	b := append(HandlePayload(handle), action, byte(len(controlees)))
	for _, c := range controlees {
		b = le.AppendUint16(b, c.ShortAddress)
		b = le.AppendUint32(b, c.SubSessionID)
	}
	return b, nil
}

// DataMessage is the payload of a DATA_MESSAGE_SND packet.
type DataMessage struct {
	Handle  uint32
	Address uint64
	Seq     uint16
	Data    []byte
}

// AppendTo encodes the outbound data payload.
func (m *DataMessage) AppendTo(b []byte) []byte {
	b = le.AppendUint32(b, m.Handle)
	b = le.AppendUint64(b, m.Address)
	b = le.AppendUint16(b, m.Seq)
	b = le.AppendUint16(b, uint16(len(m.Data)))
	return append(b, m.Data...)
}

// ParseDataMessage decodes a data payload of the same layout. Data is
// copied.
func ParseDataMessage(b []byte) (*DataMessage, error) {
	if len(b) < 16 || len(b) < 16+int(le.Uint16(b[14:])) {
		return nil, ErrMalformedPayload
	}
	return &DataMessage{
		Handle:  le.Uint32(b),
		Address: le.Uint64(b[4:]),
		Seq:     le.Uint16(b[12:]),
		Data:    append([]byte{}, b[16:16+int(le.Uint16(b[14:]))]...),
	}, nil
}

// MAC addressing modes of range data.
const (
	MACAddressShort    byte = 0x00
	MACAddressExtended byte = 0x01
)

const (
	rangeDataHeaderSize = 25
	shortMeasurementLen = 31
	extMeasurementLen   = 37
)

// Measurement is a single two-way ranging result.
type Measurement struct {
	Address          uint64
	Status           Status
	NLoS             byte
	Distance         uint16
	AoAAzimuth       int16
	AoAAzimuthFOM    byte
	AoAElevation     int16
	AoAElevationFOM  byte
	DestAzimuth      int16
	DestAzimuthFOM   byte
	DestElevation    int16
	DestElevationFOM byte
	SlotIndex        byte
	RSSI             byte
}

// RangeData is the payload of SESSION_INFO_NTF.
type RangeData struct {
	Seq             uint32
	Handle          uint32
	RCRIndicator    byte
	IntervalMs      uint32
	MeasurementType byte
	AddressMode     byte
	Measurements    []Measurement
}

// ParseRangeData decodes SESSION_INFO_NTF carrying two-way measurements.
func ParseRangeData(b []byte) (*RangeData, error) {
	if len(b) < rangeDataHeaderSize {
		return nil, ErrMalformedPayload
	}
	rd := &RangeData{
		Seq:             le.Uint32(b),
		Handle:          le.Uint32(b[4:]),
		RCRIndicator:    b[8],
		IntervalMs:      le.Uint32(b[9:]),
		MeasurementType: b[13],
		AddressMode:     b[15],
	}
	count := int(b[24])
	b = b[rangeDataHeaderSize:]
	size, addrLen := shortMeasurementLen, 2
	if rd.AddressMode == MACAddressExtended {
		size, addrLen = extMeasurementLen, 8
	}
	if len(b) < count*size {
		return nil, ErrMalformedPayload
	}
	rd.Measurements = make([]Measurement, count)
	for i := range rd.Measurements {
		m, p := &rd.Measurements[i], b[i*size:]
		if addrLen == 2 {
			m.Address = uint64(le.Uint16(p))
		} else {
			m.Address = le.Uint64(p)
		}
		p = p[addrLen:]
		m.Status = Status(p[0])
		m.NLoS = p[1]
		m.Distance = le.Uint16(p[2:])
		m.AoAAzimuth = int16(le.Uint16(p[4:]))
		m.AoAAzimuthFOM = p[6]
		m.AoAElevation = int16(le.Uint16(p[7:]))
		m.AoAElevationFOM = p[9]
		m.DestAzimuth = int16(le.Uint16(p[10:]))
		m.DestAzimuthFOM = p[12]
		m.DestElevation = int16(le.Uint16(p[13:]))
		m.DestElevationFOM = p[15]
		m.SlotIndex = p[16]
		m.RSSI = p[17]
	}
	return rd, nil
}

// AppendTo encodes the notification payload.
func (rd *RangeData) AppendTo(b []byte) []byte {
	b = le.AppendUint32(b, rd.Seq)
	b = le.AppendUint32(b, rd.Handle)
	b = append(b, rd.RCRIndicator)
	b = le.AppendUint32(b, rd.IntervalMs)
	b = append(b, rd.MeasurementType, 0, rd.AddressMode)
	b = append(b, make([]byte, 8)...)
	b = append(b, byte(len(rd.Measurements)))
	for _, m := range rd.Measurements {
		if rd.AddressMode == MACAddressExtended {
			b = le.AppendUint64(b, m.Address)
		} else {
			b = le.AppendUint16(b, uint16(m.Address))
		}
		b = append(b, byte(m.Status), m.NLoS)
		b = le.AppendUint16(b, m.Distance)
		b = le.AppendUint16(b, uint16(m.AoAAzimuth))
		b = append(b, m.AoAAzimuthFOM)
		b = le.AppendUint16(b, uint16(m.AoAElevation))
		b = append(b, m.AoAElevationFOM)
		b = le.AppendUint16(b, uint16(m.DestAzimuth))
		b = append(b, m.DestAzimuthFOM)
		b = le.AppendUint16(b, uint16(m.DestElevation))
		b = append(b, m.DestElevationFOM, m.SlotIndex, m.RSSI)
		b = append(b, make([]byte, 11)...)
	}
	return b
}
