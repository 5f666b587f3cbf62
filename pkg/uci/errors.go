package uci

import "errors"

var (
	// ErrShortPacket indicates the packet is shorter than its header claims.
	ErrShortPacket = errors.New("uci: short packet")
	// ErrChainMismatch indicates a continuation fragment addressing a
	// different group/opcode than the chain in progress.
	ErrChainMismatch = errors.New("uci: chained fragment mismatch")
	// ErrChainOverflow indicates the reassembled message exceeds the
	// reassembly buffer.
	ErrChainOverflow = errors.New("uci: chained message overflow")
	// ErrPayloadTooLarge indicates a payload which can't be encoded.
	ErrPayloadTooLarge = errors.New("uci: payload too large")
	// ErrMalformedPayload indicates a payload which can't be decoded.
	ErrMalformedPayload = errors.New("uci: malformed payload")
)
