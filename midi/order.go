package midi

import (
	"cmp"
	"slices"
)

// Rank returns the position of m's case in the declared case order.
func Rank(m Message) int {
	return int(m.rank())
}

// Compare orders messages for sending at the same instant. Messages of
// different cases compare by rank; messages of the same case compare field
// by field: channel, then the first argument, then the second. SysEx compares
// its manufacturer and then its data.
func Compare(a, b Message) int {
	if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
		return c
	}
	if sa, ok := a.(SysEx); ok {
		sb := b.(SysEx)
		if c := CompareManufacturer(sa.Manufacturer, sb.Manufacturer); c != 0 {
			return c
		}
		return slices.Compare(sa.Data, sb.Data)
	}
	return slices.Compare(fields(a), fields(b))
}

// Less reports whether a sorts before b.
func Less(a, b Message) bool {
	return Compare(a, b) < 0
}

// Sort puts msgs into send order. Equal messages keep their relative order.
func Sort(msgs []Message) {
	slices.SortStableFunc(msgs, Compare)
}

// fields returns the payload of m as comparable integers.
func fields(m Message) []int {
	switch m := m.(type) {
	case AllSoundOff:
		return []int{int(m.Channel)}
	case ResetAllControllers:
		return []int{int(m.Channel)}
	case LocalControlOff:
		return []int{int(m.Channel)}
	case LocalControlOn:
		return []int{int(m.Channel)}
	case AllNotesOff:
		return []int{int(m.Channel)}
	case NoteOff:
		return []int{int(m.Channel), int(m.Key), int(m.Velocity)}
	case ProgramChange:
		return []int{int(m.Channel), int(m.Program)}
	case ControlChange:
		return []int{int(m.Channel), int(m.Controller), int(m.Value)}
	case RPN7:
		return []int{int(m.Channel), int(m.Parameter), int(m.Value)}
	case RPN14:
		return []int{int(m.Channel), int(m.Parameter), int(m.Value)}
	case NRPN7:
		return []int{int(m.Channel), int(m.Parameter), int(m.Value)}
	case NRPN14:
		return []int{int(m.Channel), int(m.Parameter), int(m.Value)}
	case NoteOn:
		return []int{int(m.Channel), int(m.Key), int(m.Velocity)}
	case PitchBend:
		return []int{int(m.Channel), int(m.Bend)}
	case PolyphonicPressure:
		return []int{int(m.Channel), int(m.Key), int(m.Pressure)}
	case ChannelPressure:
		return []int{int(m.Channel), int(m.Pressure)}
	}
	// realtime messages carry nothing
	return nil
}
