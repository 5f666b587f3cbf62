// Package uci provides the UWB Controller Interface wire format.
package uci

// UCI is a host/controller protocol carried over SPI, I2C or UART.
// Every packet starts with a 4-byte header:
//
//	byte 0: MT(3) | PBF(1) | GID(4)
//	byte 1: RFU(2) | OID(6)
//	byte 2: EXT(1) | length high bits(7), only meaningful when EXT is set
//	byte 3: length low byte
//
// A logical message whose payload does not fit into one packet is split
// into fragments, all but the last carrying PBF. Reassembler puts them
// back together on the receiving side and Segment splits them on the
// sending side.
//
// Producer: host stack and UWB controller
// Consumer: host stack and UWB controller
