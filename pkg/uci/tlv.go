package uci

// TLV is a single configuration parameter.
type TLV struct {
	Type  byte
	Value []byte
}

// AppendTLVs appends the count octet followed by the parameters.
func AppendTLVs(b []byte, tlvs []TLV) ([]byte, error) {
	if len(tlvs) > 0xff {
		return nil, ErrPayloadTooLarge
	}
	b = append(b, byte(len(tlvs)))
	for _, tlv := range tlvs {
		if len(tlv.Value) > 0xff {
			return nil, ErrPayloadTooLarge
		}
		b = append(b, tlv.Type, byte(len(tlv.Value)))
		b = append(b, tlv.Value...)
	}
	return b, nil
}

// EncodeTLVs encodes a counted parameter list.
func EncodeTLVs(tlvs []TLV) ([]byte, error) {
	return AppendTLVs(nil, tlvs)
}

// DecodeTLVs decodes a counted parameter list. Values are copied.
func DecodeTLVs(b []byte) ([]TLV, error) {
	if len(b) < 1 {
		return nil, ErrMalformedPayload
	}
	count := int(b[0])
	b = b[1:]
	tlvs := make([]TLV, 0, count)
	for i := 0; i < count; i++ {
		if len(b) < 2 || len(b) < 2+int(b[1]) {
			return nil, ErrMalformedPayload
		}
		l := int(b[1])
		tlvs = append(tlvs, TLV{Type: b[0], Value: append([]byte{}, b[2:2+l]...)})
		b = b[2+l:]
	}
	return tlvs, nil
}

// ParamStatus is the per parameter result of a SET_CONFIG command.
type ParamStatus struct {
	Type   byte
	Status Status
}

// ParseSetConfigResponse decodes the payload of CORE_SET_CONFIG_RSP or
// SESSION_SET_APP_CONFIG_RSP.
func ParseSetConfigResponse(b []byte) (Status, []ParamStatus, error) {
	if len(b) < 1 {
		return StatusSyntaxError, nil, ErrMalformedPayload
	}
	st := Status(b[0])
	if len(b) < 2 {
		return st, nil, nil
	}
	count := int(b[1])
	b = b[2:]
	if len(b) < count*2 {
		return st, nil, ErrMalformedPayload
	}
	params := make([]ParamStatus, count)
	for i := range params {
		params[i] = ParamStatus{Type: b[i*2], Status: Status(b[i*2+1])}
	}
	return st, params, nil
}

// AppendSetConfigResponse encodes the payload of a SET_CONFIG response.
func AppendSetConfigResponse(b []byte, st Status, params []ParamStatus) []byte {
	b = append(b, byte(st), byte(len(params)))
	for _, p := range params {
		b = append(b, p.Type, byte(p.Status))
	}
	return b
}

// ParseConfigResponse decodes status and parameters of a GET_CONFIG or
// GET_CAPS_INFO response.
func ParseConfigResponse(b []byte) (Status, []TLV, error) {
	if len(b) < 1 {
		return StatusSyntaxError, nil, ErrMalformedPayload
	}
	st := Status(b[0])
	if len(b) == 1 {
		return st, nil, nil
	}
	tlvs, err := DecodeTLVs(b[1:])
	return st, tlvs, err
}
