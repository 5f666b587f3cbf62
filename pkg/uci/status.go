package uci

import "fmt"

// Status is the status octet carried by responses and some notifications.
type Status byte

// Generic status codes
const (
	StatusOK                    Status = 0x00
	StatusRejected              Status = 0x01
	StatusFailed                Status = 0x02
	StatusSyntaxError           Status = 0x03
	StatusInvalidParam          Status = 0x04
	StatusInvalidRange          Status = 0x05
	StatusInvalidMessageSize    Status = 0x06
	StatusUnknownGID            Status = 0x07
	StatusUnknownOID            Status = 0x08
	StatusReadOnly              Status = 0x09
	StatusCommandRetry          Status = 0x0a
	StatusSessionNotExist       Status = 0x11
	StatusSessionDuplicate      Status = 0x12
	StatusSessionActive         Status = 0x13
	StatusMaxSessionsExceeded   Status = 0x14
	StatusSessionNotConfigured  Status = 0x15
	StatusActiveSessionsOngoing Status = 0x16
	StatusMulticastListFull     Status = 0x17
	StatusRangingTxFailed       Status = 0x20
	StatusRangingRxTimeout      Status = 0x21
	StatusDataNoCredit          Status = 0x52
	StatusDataTransferError     Status = 0x53
)

var statusNames = map[Status]string{
	StatusOK:                    "OK",
	StatusRejected:              "REJECTED",
	StatusFailed:                "FAILED",
	StatusSyntaxError:           "SYNTAX_ERROR",
	StatusInvalidParam:          "INVALID_PARAM",
	StatusInvalidRange:          "INVALID_RANGE",
	StatusInvalidMessageSize:    "INVALID_MESSAGE_SIZE",
	StatusUnknownGID:            "UNKNOWN_GID",
	StatusUnknownOID:            "UNKNOWN_OID",
	StatusReadOnly:              "READ_ONLY",
	StatusCommandRetry:          "COMMAND_RETRY",
	StatusSessionNotExist:       "SESSION_NOT_EXIST",
	StatusSessionDuplicate:      "SESSION_DUPLICATE",
	StatusSessionActive:         "SESSION_ACTIVE",
	StatusMaxSessionsExceeded:   "MAX_SESSIONS_EXCEEDED",
	StatusSessionNotConfigured:  "SESSION_NOT_CONFIGURED",
	StatusActiveSessionsOngoing: "ACTIVE_SESSIONS_ONGOING",
	StatusMulticastListFull:     "MULTICAST_LIST_FULL",
	StatusRangingTxFailed:       "RANGING_TX_FAILED",
	StatusRangingRxTimeout:      "RANGING_RX_TIMEOUT",
	StatusDataNoCredit:          "DATA_NO_CREDIT",
	StatusDataTransferError:     "DATA_TRANSFER_ERROR",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATUS(0x%02x)", byte(s))
}

// Error implements error.
func (s Status) Error() string {
	return "uci: " + s.String()
}

// Err returns nil for StatusOK and the status itself otherwise.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	return s
}
