package midi

import (
	"cmp"
	"fmt"
)

// RawMessage is a message as it goes on the wire. It is one of Status,
// StatusData, StatusDataData or Raw. Data fields are not checked against the
// 7-bit bound; the code that builds them masks.
type RawMessage interface {
	Encoder

	// Bytes returns the wire bytes, 1 to 3 of them.
	Bytes() []byte
	String() string

	rawTag() int
}

// Status is a bare status byte (system realtime).
type Status struct {
	Status uint8
}

// StatusData is a status byte followed by one data byte.
type StatusData struct {
	Status uint8
	Data   U7
}

// StatusDataData is a status byte followed by two data bytes.
type StatusDataData struct {
	Status       uint8
	Data1, Data2 U7
}

// Raw is a single unclassified byte. SysEx frames are made of these.
type Raw struct {
	Byte uint8
}

func (m Status) Bytes() []byte         { return []byte{m.Status} }
func (m StatusData) Bytes() []byte     { return []byte{m.Status, m.Data} }
func (m StatusDataData) Bytes() []byte { return []byte{m.Status, m.Data1, m.Data2} }
func (m Raw) Bytes() []byte            { return []byte{m.Byte} }

func (m Status) String() string     { return fmt.Sprintf("Status(%02X)", m.Status) }
func (m StatusData) String() string { return fmt.Sprintf("StatusData(%02X %02X)", m.Status, m.Data) }
func (m StatusDataData) String() string {
	return fmt.Sprintf("StatusDataData(%02X %02X %02X)", m.Status, m.Data1, m.Data2)
}
func (m Raw) String() string { return fmt.Sprintf("Raw(%02X)", m.Byte) }

func (Status) rawTag() int         { return 0 }
func (StatusData) rawTag() int     { return 1 }
func (StatusDataData) rawTag() int { return 2 }
func (Raw) rawTag() int            { return 3 }

// Encode concatenates the wire bytes of a block.
func Encode(block []RawMessage) []byte {
	out := make([]byte, 0, len(block)*3)
	for _, m := range block {
		out = append(out, m.Bytes()...)
	}
	return out
}

// CompareRaw orders raw messages by shape (Status, StatusData,
// StatusDataData, Raw) and then field by field. It has no protocol meaning;
// it exists so blocks can be sorted in tests and tools.
func CompareRaw(a, b RawMessage) int {
	if c := cmp.Compare(a.rawTag(), b.rawTag()); c != 0 {
		return c
	}
	ab, bb := a.Bytes(), b.Bytes()
	for i := range ab {
		if c := cmp.Compare(ab[i], bb[i]); c != 0 {
			return c
		}
	}
	return 0
}
