package midi_test

import (
	"testing"

	. "go-midiwire/midi"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelFrom(t *testing.T) {
	for i := 0; i < NumChannels; i++ {
		ch, err := ChannelFrom(i)
		require.NoError(t, err)
		assert.Equal(t, i, ch.Index())
		assert.Equal(t, i+1, ch.Number())
	}
	ch, err := ChannelFrom(15)
	require.NoError(t, err)
	assert.Equal(t, Ch16, ch)
}

func TestChannelFromOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 16, 17, 255, 1 << 20} {
		_, err := ChannelFrom(i)
		require.Error(t, err, "index %d", i)
		assert.Equal(t, ErrInvalidChannel, errors.Cause(err))
	}
}

func TestChannelFromNumber(t *testing.T) {
	ch, err := ChannelFromNumber(1)
	require.NoError(t, err)
	assert.Equal(t, Ch1, ch)

	ch, err = ChannelFromNumber(16)
	require.NoError(t, err)
	assert.Equal(t, Ch16, ch)

	_, err = ChannelFromNumber(0)
	assert.Equal(t, ErrInvalidChannel, errors.Cause(err))
	_, err = ChannelFromNumber(17)
	assert.Equal(t, ErrInvalidChannel, errors.Cause(err))
	assert.Contains(t, err.Error(), "17")
}

func TestChannelString(t *testing.T) {
	assert.Equal(t, "Ch1", Ch1.String())
	assert.Equal(t, "Ch10", Ch10.String())
	assert.True(t, Ch16.Valid())
	assert.False(t, Channel(16).Valid())
}
