package midi

import (
	"cmp"
	"fmt"
)

// Manufacturer identifies the sender of a SysEx message. It is either a
// OneByte or a ThreeByte ID. Bytes are masked when the message is lowered,
// not when the ID is built.
type Manufacturer interface {
	// ToU7s returns the ID bytes as they appear after the SysEx start byte.
	ToU7s() []U7
	String() string

	manufacturer()
}

// OneByte is a single byte manufacturer ID.
type OneByte struct {
	ID U7
}

// ThreeByte is an extended manufacturer ID. The first byte is 0x00 for IDs
// assigned by the MMA.
type ThreeByte struct {
	ID1, ID2, ID3 U7
}

// Well known manufacturer IDs
var (
	Roland               Manufacturer = OneByte{0x41}
	Yamaha               Manufacturer = OneByte{0x43}
	NonCommercial        Manufacturer = OneByte{0x7D}
	UniversalNonRealtime Manufacturer = OneByte{0x7E}
	UniversalRealtime    Manufacturer = OneByte{0x7F}
	Novation             Manufacturer = ThreeByte{0x00, 0x20, 0x29}
	Behringer            Manufacturer = ThreeByte{0x00, 0x20, 0x32}
)

func (m OneByte) ToU7s() []U7 {
	return []U7{Mask7(m.ID)}
}

func (m OneByte) String() string {
	return fmt.Sprintf("%02X", m.ID)
}

func (OneByte) manufacturer() {}

func (m ThreeByte) ToU7s() []U7 {
	return []U7{Mask7(m.ID1), Mask7(m.ID2), Mask7(m.ID3)}
}

func (m ThreeByte) String() string {
	return fmt.Sprintf("%02X:%02X:%02X", m.ID1, m.ID2, m.ID3)
}

func (ThreeByte) manufacturer() {}

// CompareManufacturer orders OneByte IDs before ThreeByte IDs, then by the
// stored bytes. A nil Manufacturer sorts first.
func CompareManufacturer(a, b Manufacturer) int {
	ka, kb := manufacturerKey(a), manufacturerKey(b)
	for i := range ka {
		if c := cmp.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func manufacturerKey(m Manufacturer) [4]int {
	switch m := m.(type) {
	case OneByte:
		return [4]int{1, int(m.ID), 0, 0}
	case ThreeByte:
		return [4]int{2, int(m.ID1), int(m.ID2), int(m.ID3)}
	}
	return [4]int{}
}
