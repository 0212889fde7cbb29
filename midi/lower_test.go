package midi_test

import (
	"testing"

	. "go-midiwire/midi"

	"github.com/stretchr/testify/assert"
)

// Expected bytes follow the MIDI 1.0 message tables.
func TestLowerRealtime(t *testing.T) {
	assert.Equal(t, []RawMessage{Status{0b11111010}}, Start{}.ToRawMessages())
	assert.Equal(t, []RawMessage{Status{0b11111000}}, TimingClock{}.ToRawMessages())
	assert.Equal(t, []RawMessage{Status{0b11111011}}, Continue{}.ToRawMessages())
	assert.Equal(t, []RawMessage{Status{0b11111100}}, Stop{}.ToRawMessages())
	assert.Equal(t, []RawMessage{Status{0b11111110}}, ActiveSensing{}.ToRawMessages())
	assert.Equal(t, []RawMessage{Status{0b11111111}}, SystemReset{}.ToRawMessages())
}

func TestLowerChannelMode(t *testing.T) {
	assert.Equal(t, []RawMessage{StatusDataData{176, 120, 0}}, AllSoundOff{Ch1}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 121, 0}}, ResetAllControllers{Ch1}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 122, 0}}, LocalControlOff{Ch1}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 122, 127}}, LocalControlOn{Ch1}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 123, 0}}, AllNotesOff{Ch1}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{0xB5, 123, 0}}, AllNotesOff{Ch6}.ToRawMessages())
}

func TestLowerProgramChange(t *testing.T) {
	assert.Equal(t, []RawMessage{StatusData{192, 0}}, ProgramChange{Ch1, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusData{192, 127}}, ProgramChange{Ch1, 127}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusData{192, 0}}, ProgramChange{Ch1, 128}.ToRawMessages())
}

func TestLowerControlChange(t *testing.T) {
	assert.Equal(t, []RawMessage{StatusDataData{176, 0, 0}}, ControlChange{Ch1, 0, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 0, 127}}, ControlChange{Ch1, 0, 127}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 0, 0}}, ControlChange{Ch1, 0, 128}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 127, 0}}, ControlChange{Ch1, 127, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{176, 0, 0}}, ControlChange{Ch1, 128, 0}.ToRawMessages())
}

func TestLowerParameters(t *testing.T) {
	assert.Equal(t, []RawMessage{
		StatusDataData{176, 101, 7},
		StatusDataData{176, 100, 104},
		StatusDataData{176, 6, 0},
	}, RPN7{Ch1, 1000, 0}.ToRawMessages())

	assert.Equal(t, []RawMessage{
		StatusDataData{176, 101, 7},
		StatusDataData{176, 100, 104},
		StatusDataData{176, 6, 7},
		StatusDataData{176, 38, 105},
	}, RPN14{Ch1, 1000, 1001}.ToRawMessages())

	assert.Equal(t, []RawMessage{
		StatusDataData{176, 99, 7},
		StatusDataData{176, 98, 104},
		StatusDataData{176, 6, 0},
	}, NRPN7{Ch1, 1000, 0}.ToRawMessages())

	assert.Equal(t, []RawMessage{
		StatusDataData{176, 99, 7},
		StatusDataData{176, 98, 104},
		StatusDataData{176, 6, 7},
		StatusDataData{176, 38, 105},
	}, NRPN14{Ch1, 1000, 1001}.ToRawMessages())
}

func TestLowerParameterMasking(t *testing.T) {
	// 7-bit value wraps, parameter loses the bits above 14
	assert.Equal(t, []RawMessage{
		StatusDataData{0xB2, 101, 0},
		StatusDataData{0xB2, 100, 0},
		StatusDataData{0xB2, 6, 72},
	}, RPN7{Ch3, 0x4000, 200}.ToRawMessages())
}

func TestLowerSysEx(t *testing.T) {
	assert.Equal(t, []RawMessage{
		Raw{0b11110000},
		Raw{100},
		Raw{1}, Raw{2}, Raw{3}, Raw{4},
		Raw{0b11110111},
	}, SysEx{OneByte{100}, []U7{1, 2, 3, 4}}.ToRawMessages())

	assert.Equal(t, []RawMessage{
		Raw{0b11110000},
		Raw{0},
		Raw{1}, Raw{2}, Raw{3}, Raw{4}, Raw{0},
		Raw{0b11110111},
	}, SysEx{OneByte{128}, []U7{1, 2, 3, 4, 128}}.ToRawMessages())

	assert.Equal(t, []RawMessage{
		Raw{0b11110000},
		Raw{100}, Raw{101}, Raw{0},
		Raw{1}, Raw{2}, Raw{3}, Raw{4},
		Raw{0b11110111},
	}, SysEx{ThreeByte{100, 101, 128}, []U7{1, 2, 3, 4}}.ToRawMessages())
}

func TestLowerSysExEmptyData(t *testing.T) {
	assert.Equal(t, []RawMessage{Raw{0xF0}, Raw{0x41}, Raw{0xF7}},
		SysEx{Roland, nil}.ToRawMessages())
}

func TestLowerSysExLeavesDataAlone(t *testing.T) {
	data := []U7{0x80, 0xFF}
	SysEx{Yamaha, data}.ToRawMessages()
	assert.Equal(t, []U7{0x80, 0xFF}, data)
}

func TestLowerNotes(t *testing.T) {
	assert.Equal(t, []RawMessage{StatusDataData{128, 0, 0}}, NoteOff{Ch1, 0, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{129, 127, 127}}, NoteOff{Ch2, 127, 127}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{130, 0, 0}}, NoteOff{Ch3, 128, 128}.ToRawMessages())

	assert.Equal(t, []RawMessage{StatusDataData{0x90, 60, 100}}, NoteOn{Ch1, 60, 100}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{147, 0, 0}}, NoteOn{Ch4, 0, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{148, 127, 127}}, NoteOn{Ch5, 127, 127}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{149, 0, 0}}, NoteOn{Ch6, 128, 128}.ToRawMessages())
}

// Pitch bend sends LSB then MSB. This is the wire order of the pitch bend
// message and is the reverse of the parameter messages; keep it.
func TestLowerPitchBend(t *testing.T) {
	assert.Equal(t, []RawMessage{StatusDataData{0xE0, 104, 7}}, PitchBend{Ch1, 1000}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{230, 0, 0}}, PitchBend{Ch7, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{231, 104, 7}}, PitchBend{Ch8, 1000}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{232, 72, 95}}, PitchBend{Ch9, 45000}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{233, 72, 95}}, PitchBend{Ch10, 12232}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{0xE0, 0x00, 0x40}}, PitchBend{Ch1, 0x2000}.ToRawMessages())
}

func TestLowerPressure(t *testing.T) {
	assert.Equal(t, []RawMessage{StatusDataData{170, 0, 0}}, PolyphonicPressure{Ch11, 0, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{171, 127, 127}}, PolyphonicPressure{Ch12, 127, 127}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusDataData{172, 0, 0}}, PolyphonicPressure{Ch13, 128, 128}.ToRawMessages())

	assert.Equal(t, []RawMessage{StatusData{221, 0}}, ChannelPressure{Ch14, 0}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusData{222, 127}}, ChannelPressure{Ch15, 127}.ToRawMessages())
	assert.Equal(t, []RawMessage{StatusData{223, 0}}, ChannelPressure{Ch16, 128}.ToRawMessages())
}

func TestLowerRawIsIdentity(t *testing.T) {
	raws := []RawMessage{
		Status{0xF8},
		StatusData{0xC3, 9},
		StatusDataData{0x92, 60, 1},
		Raw{0xF0},
		StatusData{0xC0, 0xFF}, // not masked: raw messages are taken as given
	}
	for _, r := range raws {
		assert.Equal(t, []RawMessage{r}, ToRawMessages(r))
	}
}

func TestLowerNeverEmpty(t *testing.T) {
	for _, m := range allCases() {
		assert.NotEmpty(t, m.ToRawMessages(), m.String())
	}
}

func TestLowerAndEncode(t *testing.T) {
	blocks := Lower(Start{}, NoteOn{Ch2, 60, 100}, SysEx{OneByte{0x7D}, []U7{1}})
	assert.Len(t, blocks, 3)
	assert.Equal(t, []byte{0xFA}, Encode(blocks[0]))
	assert.Equal(t, []byte{0x91, 60, 100}, Encode(blocks[1]))
	assert.Equal(t, []byte{0xF0, 0x7D, 0x01, 0xF7}, Encode(blocks[2]))
}

// allCases returns one message of each case in declared order.
func allCases() []Message {
	return []Message{
		Start{},
		TimingClock{},
		Continue{},
		Stop{},
		ActiveSensing{},
		SystemReset{},
		AllSoundOff{Ch1},
		ResetAllControllers{Ch1},
		LocalControlOff{Ch1},
		LocalControlOn{Ch1},
		AllNotesOff{Ch1},
		NoteOff{Ch1, 60, 0},
		ProgramChange{Ch1, 1},
		ControlChange{Ch1, 7, 100},
		RPN7{Ch1, 0, 2},
		RPN14{Ch1, 0, 2},
		NRPN7{Ch1, 0, 2},
		NRPN14{Ch1, 0, 2},
		SysEx{OneByte{0x7D}, []U7{1}},
		NoteOn{Ch1, 60, 100},
		PitchBend{Ch1, 0x2000},
		PolyphonicPressure{Ch1, 60, 10},
		ChannelPressure{Ch1, 10},
	}
}
