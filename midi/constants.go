package midi

// Channel voice status nibbles (high nibble of the status byte)
const (
	StatusNoteOff            uint8 = 0x8
	StatusNoteOn             uint8 = 0x9
	StatusPolyphonicPressure uint8 = 0xA
	StatusControlChange      uint8 = 0xB
	StatusProgramChange      uint8 = 0xC
	StatusChannelPressure    uint8 = 0xD
	StatusPitchBend          uint8 = 0xE
)

// System exclusive framing
const (
	SysExStart uint8 = 0xF0
	SysExEnd   uint8 = 0xF7 // EOX
)

// System realtime status bytes
const (
	StatusTimingClock   uint8 = 0xF8
	StatusStart         uint8 = 0xFA
	StatusContinue      uint8 = 0xFB
	StatusStop          uint8 = 0xFC
	StatusActiveSensing uint8 = 0xFE
	StatusSystemReset   uint8 = 0xFF
)

// Controller numbers used by the composite messages
const (
	CCDataEntryMSB        U7 = 6
	CCDataEntryLSB        U7 = 38
	CCNRPNLSB             U7 = 98
	CCNRPNMSB             U7 = 99
	CCRPNLSB              U7 = 100
	CCRPNMSB              U7 = 101
	CCAllSoundOff         U7 = 120
	CCResetAllControllers U7 = 121
	CCLocalControl        U7 = 122
	CCAllNotesOff         U7 = 123
)
