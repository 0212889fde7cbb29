package midi

// U7 holds a 7-bit value. The storage is wider than the value so callers can
// pass anything; Mask7 reduces it when it goes on the wire.
type U7 = uint8

// U14 holds a 14-bit value, reduced by Mask14 or split by U14ToMSBLSB.
type U14 = uint16

// Mask7 keeps the low 7 bits. Values above 127 wrap (128 -> 0, 200 -> 72).
func Mask7(v uint8) U7 {
	return v & 0x7F
}

// Mask14 keeps the low 14 bits.
func Mask14(v uint16) U14 {
	return v & 0x3FFF
}

// U14ToMSBLSB splits a 14-bit value into its high and low 7-bit halves.
// Bits above 14 are dropped by the masking of each half.
func U14ToMSBLSB(v U14) (msb, lsb U7) {
	msb = Mask7(uint8(v >> 7))
	lsb = Mask7(uint8(v))
	return msb, lsb
}

// MSBLSBToU14 joins two 7-bit halves, masking each first.
func MSBLSBToU14(msb, lsb U7) U14 {
	return U14(Mask7(msb))<<7 | U14(Mask7(lsb))
}

// StatusByte builds a channel message status byte from a status nibble
// (StatusNoteOn, StatusControlChange, ...) and a channel.
func StatusByte(status uint8, ch Channel) uint8 {
	return (status&0x0F)<<4 | uint8(ch)&0x0F
}

// FromStatusByte splits a status byte into its status nibble and channel.
// Every low nibble names a channel, so there is no failure case.
func FromStatusByte(sb uint8) (status uint8, ch Channel) {
	return sb >> 4, Channel(sb & 0x0F)
}
