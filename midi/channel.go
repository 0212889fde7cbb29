package midi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidChannel is the cause of every failed channel conversion.
var ErrInvalidChannel = errors.New("invalid midi channel")

// Channel is one of the 16 MIDI channels. The value is the 0-indexed wire
// nibble, so Ch1 is 0 and Ch16 is 15.
type Channel uint8

const (
	Ch1 Channel = iota
	Ch2
	Ch3
	Ch4
	Ch5
	Ch6
	Ch7
	Ch8
	Ch9
	Ch10
	Ch11
	Ch12
	Ch13
	Ch14
	Ch15
	Ch16
)

// NumChannels is the number of distinct channels.
const NumChannels = 16

// ChannelFrom converts a 0-indexed wire value. Anything outside [0,15] fails;
// channels are never wrapped.
func ChannelFrom(index int) (Channel, error) {
	if index < 0 || index >= NumChannels {
		return 0, errors.Wrapf(ErrInvalidChannel, "index %d out of range 0-15", index)
	}
	return Channel(index), nil
}

// ChannelFromNumber converts a 1-indexed channel number (1-16).
func ChannelFromNumber(number int) (Channel, error) {
	if number < 1 || number > NumChannels {
		return 0, errors.Wrapf(ErrInvalidChannel, "number %d out of range 1-16", number)
	}
	return Channel(number - 1), nil
}

// Index returns the 0-indexed wire value.
func (c Channel) Index() int {
	return int(c)
}

// Number returns the 1-indexed channel number.
func (c Channel) Number() int {
	return int(c) + 1
}

// Valid reports whether c is one of the 16 channels. Only a Channel built by
// conversion from an unchecked integer can be invalid.
func (c Channel) Valid() bool {
	return c < NumChannels
}

func (c Channel) String() string {
	return fmt.Sprintf("Ch%d", c.Number())
}
