// Package notation reads and writes messages as short text lines, e.g.
//
//	noteon 1 60 100
//	rpn14 1 0 0x100
//	sysex 00:20:29 02 0c 00 7f
//
// Channels are 1-16. Numbers are decimal or 0x-prefixed hex, except SysEx
// manufacturer and data bytes, which are always hex.
package notation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go-midiwire/midi"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrEmpty          = errors.New("empty line")
)

type command struct {
	args  int // -1: variable
	parse func(args []string) (midi.Message, error)
}

var commands = map[string]command{
	"start":    {0, func([]string) (midi.Message, error) { return midi.Start{}, nil }},
	"clock":    {0, func([]string) (midi.Message, error) { return midi.TimingClock{}, nil }},
	"continue": {0, func([]string) (midi.Message, error) { return midi.Continue{}, nil }},
	"stop":     {0, func([]string) (midi.Message, error) { return midi.Stop{}, nil }},
	"sensing":  {0, func([]string) (midi.Message, error) { return midi.ActiveSensing{}, nil }},
	"reset":    {0, func([]string) (midi.Message, error) { return midi.SystemReset{}, nil }},

	"soundoff": {1, channelOnly(func(ch midi.Channel) midi.Message { return midi.AllSoundOff{Channel: ch} })},
	"resetcc":  {1, channelOnly(func(ch midi.Channel) midi.Message { return midi.ResetAllControllers{Channel: ch} })},
	"localoff": {1, channelOnly(func(ch midi.Channel) midi.Message { return midi.LocalControlOff{Channel: ch} })},
	"localon":  {1, channelOnly(func(ch midi.Channel) midi.Message { return midi.LocalControlOn{Channel: ch} })},
	"notesoff": {1, channelOnly(func(ch midi.Channel) midi.Message { return midi.AllNotesOff{Channel: ch} })},

	"noteoff": {3, channel77(func(ch midi.Channel, a, b midi.U7) midi.Message { return midi.NoteOff{Channel: ch, Key: a, Velocity: b} })},
	"noteon":  {3, channel77(func(ch midi.Channel, a, b midi.U7) midi.Message { return midi.NoteOn{Channel: ch, Key: a, Velocity: b} })},
	"cc":      {3, channel77(func(ch midi.Channel, a, b midi.U7) midi.Message { return midi.ControlChange{Channel: ch, Controller: a, Value: b} })},
	"polypressure": {3, channel77(func(ch midi.Channel, a, b midi.U7) midi.Message {
		return midi.PolyphonicPressure{Channel: ch, Key: a, Pressure: b}
	})},

	"program":  {2, channel7(func(ch midi.Channel, v midi.U7) midi.Message { return midi.ProgramChange{Channel: ch, Program: v} })},
	"pressure": {2, channel7(func(ch midi.Channel, v midi.U7) midi.Message { return midi.ChannelPressure{Channel: ch, Pressure: v} })},
	"bend":     {2, parseBend},

	"rpn7":   {3, channel147(func(ch midi.Channel, p midi.U14, v midi.U7) midi.Message { return midi.RPN7{Channel: ch, Parameter: p, Value: v} })},
	"nrpn7":  {3, channel147(func(ch midi.Channel, p midi.U14, v midi.U7) midi.Message { return midi.NRPN7{Channel: ch, Parameter: p, Value: v} })},
	"rpn14":  {3, channel1414(func(ch midi.Channel, p, v midi.U14) midi.Message { return midi.RPN14{Channel: ch, Parameter: p, Value: v} })},
	"nrpn14": {3, channel1414(func(ch midi.Channel, p, v midi.U14) midi.Message { return midi.NRPN14{Channel: ch, Parameter: p, Value: v} })},

	"sysex": {-1, parseSysEx},
}

// Commands returns the known command words.
func Commands() []string {
	out := make([]string, 0, len(commands))
	for k := range commands {
		out = append(out, k)
	}
	return out
}

// Parse reads one line. Leading and trailing space and a trailing # comment
// are ignored.
func Parse(line string) (midi.Message, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	cmd, ok := commands[fields[0]]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
	}
	args := fields[1:]
	if cmd.args >= 0 && len(args) != cmd.args {
		return nil, errors.Wrapf(ErrArgCount, "%s takes %d, got %d", fields[0], cmd.args, len(args))
	}
	m, err := cmd.parse(args)
	if err != nil {
		return nil, errors.Wrap(err, fields[0])
	}
	return m, nil
}

// ParseLines reads a script of lines, skipping blank lines and comments.
func ParseLines(r io.Reader) ([]midi.Message, error) {
	var msgs []midi.Message
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		m, err := Parse(scanner.Text())
		if errors.Cause(err) == ErrEmpty {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		msgs = append(msgs, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return msgs, nil
}

// Format writes m as a line that Parse reads back to an equal message.
func Format(m midi.Message) string {
	switch m := m.(type) {
	case midi.Start:
		return "start"
	case midi.TimingClock:
		return "clock"
	case midi.Continue:
		return "continue"
	case midi.Stop:
		return "stop"
	case midi.ActiveSensing:
		return "sensing"
	case midi.SystemReset:
		return "reset"
	case midi.AllSoundOff:
		return fmt.Sprintf("soundoff %d", m.Channel.Number())
	case midi.ResetAllControllers:
		return fmt.Sprintf("resetcc %d", m.Channel.Number())
	case midi.LocalControlOff:
		return fmt.Sprintf("localoff %d", m.Channel.Number())
	case midi.LocalControlOn:
		return fmt.Sprintf("localon %d", m.Channel.Number())
	case midi.AllNotesOff:
		return fmt.Sprintf("notesoff %d", m.Channel.Number())
	case midi.NoteOff:
		return fmt.Sprintf("noteoff %d %d %d", m.Channel.Number(), m.Key, m.Velocity)
	case midi.ProgramChange:
		return fmt.Sprintf("program %d %d", m.Channel.Number(), m.Program)
	case midi.ControlChange:
		return fmt.Sprintf("cc %d %d %d", m.Channel.Number(), m.Controller, m.Value)
	case midi.RPN7:
		return fmt.Sprintf("rpn7 %d %d %d", m.Channel.Number(), m.Parameter, m.Value)
	case midi.RPN14:
		return fmt.Sprintf("rpn14 %d %d %d", m.Channel.Number(), m.Parameter, m.Value)
	case midi.NRPN7:
		return fmt.Sprintf("nrpn7 %d %d %d", m.Channel.Number(), m.Parameter, m.Value)
	case midi.NRPN14:
		return fmt.Sprintf("nrpn14 %d %d %d", m.Channel.Number(), m.Parameter, m.Value)
	case midi.SysEx:
		var b strings.Builder
		b.WriteString("sysex ")
		if m.Manufacturer == nil {
			b.WriteString("-")
		} else {
			b.WriteString(strings.ToLower(m.Manufacturer.String()))
		}
		for _, d := range m.Data {
			fmt.Fprintf(&b, " %02x", d)
		}
		return b.String()
	case midi.NoteOn:
		return fmt.Sprintf("noteon %d %d %d", m.Channel.Number(), m.Key, m.Velocity)
	case midi.PitchBend:
		return fmt.Sprintf("bend %d %d", m.Channel.Number(), m.Bend)
	case midi.PolyphonicPressure:
		return fmt.Sprintf("polypressure %d %d %d", m.Channel.Number(), m.Key, m.Pressure)
	case midi.ChannelPressure:
		return fmt.Sprintf("pressure %d %d", m.Channel.Number(), m.Pressure)
	}
	return m.String()
}

func channelOnly(build func(midi.Channel) midi.Message) func([]string) (midi.Message, error) {
	return func(args []string) (midi.Message, error) {
		ch, err := parseChannel(args[0])
		if err != nil {
			return nil, err
		}
		return build(ch), nil
	}
}

func channel7(build func(midi.Channel, midi.U7) midi.Message) func([]string) (midi.Message, error) {
	return func(args []string) (midi.Message, error) {
		ch, err := parseChannel(args[0])
		if err != nil {
			return nil, err
		}
		v, err := parseNumber(args[1], 8)
		if err != nil {
			return nil, err
		}
		return build(ch, midi.U7(v)), nil
	}
}

func channel77(build func(midi.Channel, midi.U7, midi.U7) midi.Message) func([]string) (midi.Message, error) {
	return func(args []string) (midi.Message, error) {
		ch, err := parseChannel(args[0])
		if err != nil {
			return nil, err
		}
		a, err := parseNumber(args[1], 8)
		if err != nil {
			return nil, err
		}
		b, err := parseNumber(args[2], 8)
		if err != nil {
			return nil, err
		}
		return build(ch, midi.U7(a), midi.U7(b)), nil
	}
}

func channel147(build func(midi.Channel, midi.U14, midi.U7) midi.Message) func([]string) (midi.Message, error) {
	return func(args []string) (midi.Message, error) {
		ch, err := parseChannel(args[0])
		if err != nil {
			return nil, err
		}
		p, err := parseNumber(args[1], 16)
		if err != nil {
			return nil, err
		}
		v, err := parseNumber(args[2], 8)
		if err != nil {
			return nil, err
		}
		return build(ch, midi.U14(p), midi.U7(v)), nil
	}
}

func channel1414(build func(midi.Channel, midi.U14, midi.U14) midi.Message) func([]string) (midi.Message, error) {
	return func(args []string) (midi.Message, error) {
		ch, err := parseChannel(args[0])
		if err != nil {
			return nil, err
		}
		p, err := parseNumber(args[1], 16)
		if err != nil {
			return nil, err
		}
		v, err := parseNumber(args[2], 16)
		if err != nil {
			return nil, err
		}
		return build(ch, midi.U14(p), midi.U14(v)), nil
	}
}

func parseBend(args []string) (midi.Message, error) {
	ch, err := parseChannel(args[0])
	if err != nil {
		return nil, err
	}
	v, err := parseNumber(args[1], 16)
	if err != nil {
		return nil, err
	}
	return midi.PitchBend{Channel: ch, Bend: midi.U14(v)}, nil
}

func parseSysEx(args []string) (midi.Message, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(ErrArgCount, "sysex needs a manufacturer")
	}
	man, err := parseManufacturer(args[0])
	if err != nil {
		return nil, err
	}
	data := make([]midi.U7, 0, len(args)-1)
	for _, a := range args[1:] {
		b, err := parseHexByte(a)
		if err != nil {
			return nil, err
		}
		data = append(data, b)
	}
	return midi.SysEx{Manufacturer: man, Data: data}, nil
}

func parseManufacturer(s string) (midi.Manufacturer, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		b, err := parseHexByte(parts[0])
		if err != nil {
			return nil, errors.Wrap(err, "manufacturer")
		}
		return midi.OneByte{ID: b}, nil
	case 3:
		var id [3]midi.U7
		for i, p := range parts {
			b, err := parseHexByte(p)
			if err != nil {
				return nil, errors.Wrap(err, "manufacturer")
			}
			id[i] = b
		}
		return midi.ThreeByte{ID1: id[0], ID2: id[1], ID3: id[2]}, nil
	}
	return nil, errors.Errorf("manufacturer %q: want XX or XX:XX:XX", s)
}

func parseChannel(s string) (midi.Channel, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "channel %q", s)
	}
	return midi.ChannelFromNumber(n)
}

// parseNumber reads a decimal or 0x hex number that fits in bits. Values past
// the 7 or 14 bit range but inside the storage width are kept; lowering masks
// them.
func parseNumber(s string, bits int) (uint64, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, errors.Wrapf(err, "number %q", s)
	}
	return v, nil
}

func parseHexByte(s string) (midi.U7, error) {
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "byte %q", s)
	}
	return midi.U7(v), nil
}
