package msgs

import (
	"github.com/golang/protobuf/proto"

	pb "github.com/robotalks/uwb.go/pkg/proto/uwb/v1"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// DeviceStatus event.
type DeviceStatus struct {
	pb.DeviceStatus
}

// NewMessage implements Message.
func (m *DeviceStatus) NewMessage() Message { return &DeviceStatus{} }

// TypeID implements Message.
func (m *DeviceStatus) TypeID() uint32 { return DeviceStatusTypeID }

// Serializable implements Message.
func (m *DeviceStatus) Serializable() proto.Message { return &m.DeviceStatus }

// GenericError event.
type GenericError struct {
	pb.GenericError
}

// NewMessage implements Message.
func (m *GenericError) NewMessage() Message { return &GenericError{} }

// TypeID implements Message.
func (m *GenericError) TypeID() uint32 { return GenericErrorTypeID }

// Serializable implements Message.
func (m *GenericError) Serializable() proto.Message { return &m.GenericError }

// Recovered event.
type Recovered struct {
	pb.Recovered
}

// NewMessage implements Message.
func (m *Recovered) NewMessage() Message { return &Recovered{} }

// TypeID implements Message.
func (m *Recovered) TypeID() uint32 { return RecoveredTypeID }

// Serializable implements Message.
func (m *Recovered) Serializable() proto.Message { return &m.Recovered }

// SessionStatus event.
type SessionStatus struct {
	pb.SessionStatus
}

// NewMessage implements Message.
func (m *SessionStatus) NewMessage() Message { return &SessionStatus{} }

// TypeID implements Message.
func (m *SessionStatus) TypeID() uint32 { return SessionStatusTypeID }

// Serializable implements Message.
func (m *SessionStatus) Serializable() proto.Message { return &m.SessionStatus }

// RangeData event.
type RangeData struct {
	pb.RangeData
}

// NewMessage implements Message.
func (m *RangeData) NewMessage() Message { return &RangeData{} }

// TypeID implements Message.
func (m *RangeData) TypeID() uint32 { return RangeDataTypeID }

// Serializable implements Message.
func (m *RangeData) Serializable() proto.Message { return &m.RangeData }

// DataReceived event.
type DataReceived struct {
	pb.DataReceived
}

// NewMessage implements Message.
func (m *DataReceived) NewMessage() Message { return &DataReceived{} }

// TypeID implements Message.
func (m *DataReceived) TypeID() uint32 { return DataReceivedTypeID }

// Serializable implements Message.
func (m *DataReceived) Serializable() proto.Message { return &m.DataReceived }

// Notification event carries a notification packet with no typed form.
type Notification struct {
	pb.Notification
}

// NewMessage implements Message.
func (m *Notification) NewMessage() Message { return &Notification{} }

// TypeID implements Message.
func (m *Notification) TypeID() uint32 { return NotificationTypeID }

// Serializable implements Message.
func (m *Notification) Serializable() proto.Message { return &m.Notification }

// RawCommand command.
type RawCommand struct {
	pb.RawCommand
}

// NewMessage implements Message.
func (m *RawCommand) NewMessage() Message { return &RawCommand{} }

// TypeID implements Message.
func (m *RawCommand) TypeID() uint32 { return RawCommandTypeID }

// Serializable implements Message.
func (m *RawCommand) Serializable() proto.Message { return &m.RawCommand }

// RawResult is the reply of RawCommand.
type RawResult struct {
	pb.RawResult
}

// NewMessage implements Message.
func (m *RawResult) NewMessage() Message { return &RawResult{} }

// TypeID implements Message.
func (m *RawResult) TypeID() uint32 { return RawResultTypeID }

// Serializable implements Message.
func (m *RawResult) Serializable() proto.Message { return &m.RawResult }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupDevice  uint32 = 0x00010000
	GroupSession uint32 = 0x00020000
	GroupData    uint32 = 0x00030000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	RawCommandTypeID    uint32 = GroupCommand | 0x0001
	RawResultTypeID     uint32 = RawCommandTypeID | TypeIDMaskReply
	DeviceStatusTypeID  uint32 = TypeIDKindEvent | GroupDevice | 0x0001
	GenericErrorTypeID  uint32 = TypeIDKindEvent | GroupDevice | 0x0002
	NotificationTypeID  uint32 = TypeIDKindEvent | GroupDevice | 0x0003
	RecoveredTypeID     uint32 = TypeIDKindEvent | GroupDevice | 0x0004
	SessionStatusTypeID uint32 = TypeIDKindEvent | GroupSession | 0x0001
	RangeDataTypeID     uint32 = TypeIDKindEvent | GroupSession | 0x0002
	DataReceivedTypeID  uint32 = TypeIDKindEvent | GroupData | 0x0001
)

// MessageTypes are predefined mapping of type ID to messages.
var MessageTypes = map[uint32]Message{
	RawCommandTypeID:    (*RawCommand)(nil),
	RawResultTypeID:     (*RawResult)(nil),
	DeviceStatusTypeID:  (*DeviceStatus)(nil),
	GenericErrorTypeID:  (*GenericError)(nil),
	NotificationTypeID:  (*Notification)(nil),
	RecoveredTypeID:     (*Recovered)(nil),
	SessionStatusTypeID: (*SessionStatus)(nil),
	RangeDataTypeID:     (*RangeData)(nil),
	DataReceivedTypeID:  (*DataReceived)(nil),
}

// NewSessionStatus converts a session status notification.
func NewSessionStatus(ss *uci.SessionStatus) *SessionStatus {
	return &SessionStatus{SessionStatus: pb.SessionStatus{
		Handle: ss.Handle,
		State:  uint32(ss.State),
		Reason: uint32(ss.Reason),
	}}
}

// NewRangeData converts range data.
func NewRangeData(rd *uci.RangeData) *RangeData {
	m := &RangeData{RangeData: pb.RangeData{
		Seq:        rd.Seq,
		Handle:     rd.Handle,
		IntervalMs: rd.IntervalMs,
	}}
	for _, r := range rd.Measurements {
		m.Measurements = append(m.Measurements, &pb.Measurement{
			Address:        r.Address,
			Status:         uint32(r.Status),
			DistanceCm:     uint32(r.Distance),
			Nlos:           uint32(r.NLoS),
			AoaAzimuthQ7:   int32(r.AoAAzimuth),
			AoaElevationQ7: int32(r.AoAElevation),
			Rssi:           uint32(r.RSSI),
		})
	}
	return m
}

// NewDataReceived converts received application data.
func NewDataReceived(dm *uci.DataMessage) *DataReceived {
	return &DataReceived{DataReceived: pb.DataReceived{
		Handle:  dm.Handle,
		Address: dm.Address,
		Seq:     uint32(dm.Seq),
		Data:    dm.Data,
	}}
}

// FromNotification converts a UCI notification into its typed event, or
// a Notification carrying the packet when it has no typed form.
func FromNotification(msg *uci.Message) Message {
	switch {
	case msg.GID == uci.GIDCore && msg.OID == uci.OIDCoreDeviceStatus:
		if state, err := uci.ParseDeviceStatus(msg.Payload); err == nil {
			return &DeviceStatus{DeviceStatus: pb.DeviceStatus{State: uint32(state)}}
		}
	case msg.GID == uci.GIDCore && msg.OID == uci.OIDCoreGenericError:
		if st, err := uci.ParseGenericError(msg.Payload); err == nil {
			return &GenericError{GenericError: pb.GenericError{Status: uint32(st)}}
		}
	case msg.GID == uci.GIDSessionConfig && msg.OID == uci.OIDSessionStatus:
		if ss, err := uci.ParseSessionStatus(msg.Payload); err == nil {
			return NewSessionStatus(ss)
		}
	case msg.GID == uci.GIDSessionControl && msg.OID == uci.OIDRangeData:
		if rd, err := uci.ParseRangeData(msg.Payload); err == nil {
			return NewRangeData(rd)
		}
	}
	return &Notification{Notification: pb.Notification{Packet: msg.Bytes()}}
}
