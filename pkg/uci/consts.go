package uci

// Group IDs
const (
	GIDCore           byte = 0x00
	GIDSessionConfig  byte = 0x01
	GIDSessionControl byte = 0x02
	GIDDataControl    byte = 0x03
	GIDProprietary    byte = 0x09
	GIDTest           byte = 0x0d
	GIDVendor         byte = 0x0e
	GIDInternal       byte = 0x0f
)

// Core group opcodes
const (
	OIDCoreDeviceReset   byte = 0x00
	OIDCoreDeviceStatus  byte = 0x01 // NTF
	OIDCoreGetDeviceInfo byte = 0x02
	OIDCoreGetCapsInfo   byte = 0x03
	OIDCoreSetConfig     byte = 0x04
	OIDCoreGetConfig     byte = 0x05
	OIDCoreGenericError  byte = 0x07 // NTF
)

// Session config group opcodes
const (
	OIDSessionInit                byte = 0x00
	OIDSessionDeinit              byte = 0x01
	OIDSessionStatus              byte = 0x02 // NTF
	OIDSessionSetAppConfig        byte = 0x03
	OIDSessionGetAppConfig        byte = 0x04
	OIDSessionGetCount            byte = 0x05
	OIDSessionGetState            byte = 0x06
	OIDSessionUpdateMulticastList byte = 0x07
)

// Session control group opcodes
const (
	OIDRangeStart         byte = 0x00
	OIDRangeData          byte = 0x00 // NTF, shares the opcode with START
	OIDRangeStop          byte = 0x01
	OIDRangeGetCount      byte = 0x03
	OIDDataCredit         byte = 0x04 // NTF
	OIDDataTransferStatus byte = 0x05 // NTF
)

// Proprietary group opcodes
const (
	OIDSECommError byte = 0x30 // NTF
)

// Data packet format carried in the GID field of DATA packets.
const (
	DPFDataSend    byte = 0x01
	DPFDataReceive byte = 0x02
)

// IsProprietary reports whether gid belongs to the vendor specific range.
func IsProprietary(gid byte) bool {
	switch gid {
	case GIDProprietary, GIDVendor, GIDInternal:
		return true
	}
	return false
}

// DeviceState is reported by CORE_DEVICE_STATUS_NTF.
type DeviceState byte

// Device states
const (
	DeviceStateReady     DeviceState = 0x01
	DeviceStateActive    DeviceState = 0x02
	DeviceStateHDPWakeup DeviceState = 0xfc
	DeviceStateError     DeviceState = 0xff
)

// String implements fmt.Stringer.
func (s DeviceState) String() string {
	switch s {
	case DeviceStateReady:
		return "READY"
	case DeviceStateActive:
		return "ACTIVE"
	case DeviceStateHDPWakeup:
		return "HDP_WAKEUP"
	case DeviceStateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// NeedsRecovery reports whether the host must reset its protocol state.
func (s DeviceState) NeedsRecovery() bool {
	return s == DeviceStateError || s == DeviceStateHDPWakeup
}

// SessionState is reported by SESSION_STATUS_NTF.
type SessionState byte

// Session states on the wire
const (
	SessionStateInit   SessionState = 0x00
	SessionStateDeinit SessionState = 0x01
	SessionStateActive SessionState = 0x02
	SessionStateIdle   SessionState = 0x03
	SessionStateError  SessionState = 0xff
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case SessionStateInit:
		return "INIT"
	case SessionStateDeinit:
		return "DEINIT"
	case SessionStateActive:
		return "ACTIVE"
	case SessionStateIdle:
		return "IDLE"
	case SessionStateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SessionType is the type octet of SESSION_INIT.
type SessionType byte

// Session types
const (
	SessionTypeRanging     SessionType = 0x00
	SessionTypeRangingData SessionType = 0x01
	SessionTypeData        SessionType = 0x02
	SessionTypeTest        SessionType = 0xd0
)

// Credit availability in DATA_CREDIT_NTF.
const (
	CreditNotAvailable byte = 0x00
	CreditAvailable    byte = 0x01
)

// SE communication error status in SE_COMM_ERROR_NTF which requires
// an SE reset.
const SECommErrorReset byte = 0x01
