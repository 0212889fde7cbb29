package midi

import (
	"fmt"
	"strings"
)

// Message is a MIDI event with protocol meaning. The set of cases is closed:
// only the types in this file implement it.
//
// The cases are ranked in the order they are declared below. Sorting a batch
// of simultaneous messages by that rank (see Compare) gives a sensible send
// order: realtime first, then channel mode, then voice messages, with NoteOff
// ahead of NoteOn and program and controller changes ahead of NoteOn.
type Message interface {
	Encoder
	String() string

	rank() rank
}

type rank int

const (
	rankStart rank = iota
	rankTimingClock
	rankContinue
	rankStop
	rankActiveSensing
	rankSystemReset

	rankAllSoundOff
	rankResetAllControllers
	rankLocalControlOff
	rankLocalControlOn
	rankAllNotesOff

	rankNoteOff
	rankProgramChange
	rankControlChange
	rankRPN7
	rankRPN14
	rankNRPN7
	rankNRPN14
	rankSysEx
	rankNoteOn
	rankPitchBend
	rankPolyphonicPressure
	rankChannelPressure
)

// System realtime

// Start starts the current sequence. Timing clocks follow.
type Start struct{}

// TimingClock is sent 24 times per quarter note while synchronized.
type TimingClock struct{}

// Continue resumes the sequence where it was stopped.
type Continue struct{}

// Stop stops the current sequence.
type Stop struct{}

// ActiveSensing keeps a connection alive. Once a receiver has seen one it
// expects another within 300ms.
type ActiveSensing struct{}

// SystemReset returns every receiver to its power-up state.
type SystemReset struct{}

// Channel mode

// AllSoundOff silences all voices on a channel immediately.
type AllSoundOff struct {
	Channel Channel
}

// ResetAllControllers returns every controller on a channel to its default.
type ResetAllControllers struct {
	Channel Channel
}

// LocalControlOff makes a device respond only to MIDI on the channel.
type LocalControlOff struct {
	Channel Channel
}

// LocalControlOn restores the device's own controls.
type LocalControlOn struct {
	Channel Channel
}

// AllNotesOff releases every note on a channel. The omni and poly mode
// variants can be sent as a plain ControlChange.
type AllNotesOff struct {
	Channel Channel
}

// Channel voice

// NoteOff releases a key.
type NoteOff struct {
	Channel  Channel
	Key      U7
	Velocity U7
}

// ProgramChange selects a patch.
type ProgramChange struct {
	Channel Channel
	Program U7
}

// ControlChange sets a controller (0-119 by convention, any 7-bit number
// accepted) to a value.
type ControlChange struct {
	Channel    Channel
	Controller U7
	Value      U7
}

// RPN7 sets a registered parameter to a 7-bit value.
type RPN7 struct {
	Channel   Channel
	Parameter U14
	Value     U7
}

// RPN14 sets a registered parameter to a 14-bit value.
type RPN14 struct {
	Channel   Channel
	Parameter U14
	Value     U14
}

// NRPN7 sets a non-registered parameter to a 7-bit value.
type NRPN7 struct {
	Channel   Channel
	Parameter U14
	Value     U7
}

// NRPN14 sets a non-registered parameter to a 14-bit value.
type NRPN14 struct {
	Channel   Channel
	Parameter U14
	Value     U14
}

// SysEx carries manufacturer specific data. Data excludes the F0 header and
// the F7 terminator, both of which lowering adds. Data must not be modified
// after the message is built.
type SysEx struct {
	Manufacturer Manufacturer
	Data         []U7
}

// NoteOn starts a key.
type NoteOn struct {
	Channel  Channel
	Key      U7
	Velocity U7
}

// PitchBend moves the pitch wheel. Centre is 0x2000.
type PitchBend struct {
	Channel Channel
	Bend    U14
}

// PolyphonicPressure is per-key aftertouch.
type PolyphonicPressure struct {
	Channel  Channel
	Key      U7
	Pressure U7
}

// ChannelPressure is aftertouch for the whole channel, usually the greatest
// pressure among the held keys.
type ChannelPressure struct {
	Channel  Channel
	Pressure U7
}

func (Start) rank() rank               { return rankStart }
func (TimingClock) rank() rank         { return rankTimingClock }
func (Continue) rank() rank            { return rankContinue }
func (Stop) rank() rank                { return rankStop }
func (ActiveSensing) rank() rank       { return rankActiveSensing }
func (SystemReset) rank() rank         { return rankSystemReset }
func (AllSoundOff) rank() rank         { return rankAllSoundOff }
func (ResetAllControllers) rank() rank { return rankResetAllControllers }
func (LocalControlOff) rank() rank     { return rankLocalControlOff }
func (LocalControlOn) rank() rank      { return rankLocalControlOn }
func (AllNotesOff) rank() rank         { return rankAllNotesOff }
func (NoteOff) rank() rank             { return rankNoteOff }
func (ProgramChange) rank() rank       { return rankProgramChange }
func (ControlChange) rank() rank       { return rankControlChange }
func (RPN7) rank() rank                { return rankRPN7 }
func (RPN14) rank() rank               { return rankRPN14 }
func (NRPN7) rank() rank               { return rankNRPN7 }
func (NRPN14) rank() rank              { return rankNRPN14 }
func (SysEx) rank() rank               { return rankSysEx }
func (NoteOn) rank() rank              { return rankNoteOn }
func (PitchBend) rank() rank           { return rankPitchBend }
func (PolyphonicPressure) rank() rank  { return rankPolyphonicPressure }
func (ChannelPressure) rank() rank     { return rankChannelPressure }

func (Start) String() string         { return "Start" }
func (TimingClock) String() string   { return "TimingClock" }
func (Continue) String() string      { return "Continue" }
func (Stop) String() string          { return "Stop" }
func (ActiveSensing) String() string { return "ActiveSensing" }
func (SystemReset) String() string   { return "SystemReset" }

func (m AllSoundOff) String() string         { return fmt.Sprintf("AllSoundOff(%v)", m.Channel) }
func (m ResetAllControllers) String() string { return fmt.Sprintf("ResetAllControllers(%v)", m.Channel) }
func (m LocalControlOff) String() string     { return fmt.Sprintf("LocalControlOff(%v)", m.Channel) }
func (m LocalControlOn) String() string      { return fmt.Sprintf("LocalControlOn(%v)", m.Channel) }
func (m AllNotesOff) String() string         { return fmt.Sprintf("AllNotesOff(%v)", m.Channel) }

func (m NoteOff) String() string {
	return fmt.Sprintf("NoteOff(%v, %d, %d)", m.Channel, m.Key, m.Velocity)
}

func (m ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange(%v, %d)", m.Channel, m.Program)
}

func (m ControlChange) String() string {
	return fmt.Sprintf("ControlChange(%v, %d, %d)", m.Channel, m.Controller, m.Value)
}

func (m RPN7) String() string {
	return fmt.Sprintf("RPN7(%v, %d, %d)", m.Channel, m.Parameter, m.Value)
}

func (m RPN14) String() string {
	return fmt.Sprintf("RPN14(%v, %d, %d)", m.Channel, m.Parameter, m.Value)
}

func (m NRPN7) String() string {
	return fmt.Sprintf("NRPN7(%v, %d, %d)", m.Channel, m.Parameter, m.Value)
}

func (m NRPN14) String() string {
	return fmt.Sprintf("NRPN14(%v, %d, %d)", m.Channel, m.Parameter, m.Value)
}

func (m SysEx) String() string {
	parts := make([]string, len(m.Data))
	for i, b := range m.Data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("SysEx(%v, [%s])", m.Manufacturer, strings.Join(parts, " "))
}

func (m NoteOn) String() string {
	return fmt.Sprintf("NoteOn(%v, %d, %d)", m.Channel, m.Key, m.Velocity)
}

func (m PitchBend) String() string {
	return fmt.Sprintf("PitchBend(%v, %d)", m.Channel, m.Bend)
}

func (m PolyphonicPressure) String() string {
	return fmt.Sprintf("PolyphonicPressure(%v, %d, %d)", m.Channel, m.Key, m.Pressure)
}

func (m ChannelPressure) String() string {
	return fmt.Sprintf("ChannelPressure(%v, %d)", m.Channel, m.Pressure)
}
