package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
)

// ToGomidi groups a block into gomidi messages, ready for a gomidi sender.
// Each status shaped message becomes one gomidi message. Each run of Raw
// bytes becomes one gomidi message, which for a lowered SysEx is the whole
// F0 ... F7 frame.
func ToGomidi(block []RawMessage) []gomidi.Message {
	var out []gomidi.Message
	var run []byte
	flush := func() {
		if len(run) > 0 {
			out = append(out, gomidi.Message(run))
			run = nil
		}
	}
	for _, m := range block {
		if r, ok := m.(Raw); ok {
			run = append(run, r.Byte)
			continue
		}
		flush()
		out = append(out, gomidi.Message(m.Bytes()))
	}
	flush()
	return out
}

// Gomidi lowers e and converts the block with ToGomidi.
func Gomidi(e Encoder) []gomidi.Message {
	return ToGomidi(e.ToRawMessages())
}
