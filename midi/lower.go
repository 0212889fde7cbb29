// Package midi models MIDI 1.0 messages and lowers them to the bytes sent on
// the wire.
package midi

// Encoder is anything that lowers to wire messages. Message and RawMessage
// both implement it.
//
// The returned slice is one block: a transport must send it contiguously,
// with nothing else in between. The MIDI specification lets timing clocks
// interrupt a SysEx block; nothing else may.
type Encoder interface {
	ToRawMessages() []RawMessage
}

// ToRawMessages lowers e. It is a convenience for callers holding an Encoder.
func ToRawMessages(e Encoder) []RawMessage {
	return e.ToRawMessages()
}

// Lower lowers each encoder in turn and returns the blocks in input order.
func Lower(es ...Encoder) [][]RawMessage {
	blocks := make([][]RawMessage, len(es))
	for i, e := range es {
		blocks[i] = e.ToRawMessages()
	}
	return blocks
}

// Raw messages lower to themselves.

func (m Status) ToRawMessages() []RawMessage         { return []RawMessage{m} }
func (m StatusData) ToRawMessages() []RawMessage     { return []RawMessage{m} }
func (m StatusDataData) ToRawMessages() []RawMessage { return []RawMessage{m} }
func (m Raw) ToRawMessages() []RawMessage            { return []RawMessage{m} }

// System realtime

func (Start) ToRawMessages() []RawMessage         { return realtime(StatusStart) }
func (TimingClock) ToRawMessages() []RawMessage   { return realtime(StatusTimingClock) }
func (Continue) ToRawMessages() []RawMessage      { return realtime(StatusContinue) }
func (Stop) ToRawMessages() []RawMessage          { return realtime(StatusStop) }
func (ActiveSensing) ToRawMessages() []RawMessage { return realtime(StatusActiveSensing) }
func (SystemReset) ToRawMessages() []RawMessage   { return realtime(StatusSystemReset) }

func realtime(status uint8) []RawMessage {
	return []RawMessage{Status{status}}
}

// Channel mode messages are control changes on the reserved controllers.

func (m AllSoundOff) ToRawMessages() []RawMessage {
	return ControlChange{m.Channel, CCAllSoundOff, 0}.ToRawMessages()
}

func (m ResetAllControllers) ToRawMessages() []RawMessage {
	return ControlChange{m.Channel, CCResetAllControllers, 0}.ToRawMessages()
}

func (m LocalControlOff) ToRawMessages() []RawMessage {
	return ControlChange{m.Channel, CCLocalControl, 0}.ToRawMessages()
}

func (m LocalControlOn) ToRawMessages() []RawMessage {
	return ControlChange{m.Channel, CCLocalControl, 127}.ToRawMessages()
}

func (m AllNotesOff) ToRawMessages() []RawMessage {
	return ControlChange{m.Channel, CCAllNotesOff, 0}.ToRawMessages()
}

// Channel voice

func (m NoteOff) ToRawMessages() []RawMessage {
	sb := StatusByte(StatusNoteOff, m.Channel)
	return []RawMessage{StatusDataData{sb, Mask7(m.Key), Mask7(m.Velocity)}}
}

func (m ProgramChange) ToRawMessages() []RawMessage {
	sb := StatusByte(StatusProgramChange, m.Channel)
	return []RawMessage{StatusData{sb, Mask7(m.Program)}}
}

func (m ControlChange) ToRawMessages() []RawMessage {
	return []RawMessage{cc(m.Channel, Mask7(m.Controller), Mask7(m.Value))}
}

func (m RPN7) ToRawMessages() []RawMessage {
	return parameter7(m.Channel, CCRPNMSB, CCRPNLSB, m.Parameter, m.Value)
}

func (m RPN14) ToRawMessages() []RawMessage {
	return parameter14(m.Channel, CCRPNMSB, CCRPNLSB, m.Parameter, m.Value)
}

func (m NRPN7) ToRawMessages() []RawMessage {
	return parameter7(m.Channel, CCNRPNMSB, CCNRPNLSB, m.Parameter, m.Value)
}

func (m NRPN14) ToRawMessages() []RawMessage {
	return parameter14(m.Channel, CCNRPNMSB, CCNRPNLSB, m.Parameter, m.Value)
}

func (m SysEx) ToRawMessages() []RawMessage {
	var id []U7
	if m.Manufacturer != nil {
		id = m.Manufacturer.ToU7s()
	}
	out := make([]RawMessage, 0, len(id)+len(m.Data)+2)
	out = append(out, Raw{SysExStart})
	for _, b := range id {
		out = append(out, Raw{b})
	}
	for _, b := range m.Data {
		out = append(out, Raw{Mask7(b)})
	}
	return append(out, Raw{SysExEnd})
}

func (m NoteOn) ToRawMessages() []RawMessage {
	sb := StatusByte(StatusNoteOn, m.Channel)
	return []RawMessage{StatusDataData{sb, Mask7(m.Key), Mask7(m.Velocity)}}
}

// Pitch bend puts the LSB first on the wire, unlike the parameter messages.
func (m PitchBend) ToRawMessages() []RawMessage {
	sb := StatusByte(StatusPitchBend, m.Channel)
	msb, lsb := U14ToMSBLSB(m.Bend)
	return []RawMessage{StatusDataData{sb, lsb, msb}}
}

func (m PolyphonicPressure) ToRawMessages() []RawMessage {
	sb := StatusByte(StatusPolyphonicPressure, m.Channel)
	return []RawMessage{StatusDataData{sb, Mask7(m.Key), Mask7(m.Pressure)}}
}

func (m ChannelPressure) ToRawMessages() []RawMessage {
	sb := StatusByte(StatusChannelPressure, m.Channel)
	return []RawMessage{StatusData{sb, Mask7(m.Pressure)}}
}

// cc builds a control change. Callers mask.
func cc(ch Channel, controller, value U7) RawMessage {
	return StatusDataData{StatusByte(StatusControlChange, ch), controller, value}
}

// parameter7 selects a parameter with the given MSB/LSB controllers, then
// sets it with data entry MSB.
func parameter7(ch Channel, ccMSB, ccLSB U7, param U14, value U7) []RawMessage {
	pMSB, pLSB := U14ToMSBLSB(param)
	return []RawMessage{
		cc(ch, ccMSB, pMSB),
		cc(ch, ccLSB, pLSB),
		cc(ch, CCDataEntryMSB, Mask7(value)),
	}
}

// parameter14 is parameter7 followed by data entry LSB.
func parameter14(ch Channel, ccMSB, ccLSB U7, param, value U14) []RawMessage {
	pMSB, pLSB := U14ToMSBLSB(param)
	vMSB, vLSB := U14ToMSBLSB(value)
	return []RawMessage{
		cc(ch, ccMSB, pMSB),
		cc(ch, ccLSB, pLSB),
		cc(ch, CCDataEntryMSB, vMSB),
		cc(ch, CCDataEntryLSB, vLSB),
	}
}
