package midi_test

import (
	"math/rand"
	"testing"

	. "go-midiwire/midi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFollowsDeclaredOrder(t *testing.T) {
	cases := allCases()
	for i, m := range cases {
		assert.Equal(t, i, Rank(m), m.String())
	}
}

func TestSortSwapsAdjacentCases(t *testing.T) {
	cases := allCases()
	for i := 0; i+1 < len(cases); i++ {
		a, b := cases[i], cases[i+1]
		msgs := []Message{b, a}
		Sort(msgs)
		require.Equal(t, []Message{a, b}, msgs, "%v before %v", a, b)
	}
}

func TestSortRestoresDeclaredOrder(t *testing.T) {
	want := allCases()
	got := append([]Message(nil), want...)
	r := rand.New(rand.NewSource(7))
	r.Shuffle(len(got), func(i, j int) { got[i], got[j] = got[j], got[i] })
	Sort(got)
	assert.Equal(t, want, got)
}

func TestSortSimultaneousEvents(t *testing.T) {
	msgs := []Message{
		NoteOn{Ch1, 64, 90},
		ControlChange{Ch1, 64, 127},
		NoteOff{Ch1, 60, 0},
		ProgramChange{Ch1, 5},
		TimingClock{},
		Start{},
	}
	Sort(msgs)
	assert.Equal(t, []Message{
		Start{},
		TimingClock{},
		NoteOff{Ch1, 60, 0},
		ProgramChange{Ch1, 5},
		ControlChange{Ch1, 64, 127},
		NoteOn{Ch1, 64, 90},
	}, msgs)
}

func TestCompareTieBreak(t *testing.T) {
	assert.Negative(t, Compare(NoteOn{Ch1, 60, 100}, NoteOn{Ch2, 0, 0}))
	assert.Negative(t, Compare(NoteOn{Ch1, 60, 100}, NoteOn{Ch1, 61, 0}))
	assert.Negative(t, Compare(NoteOn{Ch1, 60, 99}, NoteOn{Ch1, 60, 100}))
	assert.Zero(t, Compare(NoteOn{Ch1, 60, 100}, NoteOn{Ch1, 60, 100}))
	assert.Positive(t, Compare(PitchBend{Ch1, 2}, PitchBend{Ch1, 1}))
	assert.Zero(t, Compare(Stop{}, Stop{}))
	assert.True(t, Less(AllSoundOff{Ch1}, AllSoundOff{Ch2}))
}

func TestCompareSysEx(t *testing.T) {
	one := SysEx{OneByte{0x7F}, []U7{9}}
	three := SysEx{ThreeByte{0, 0, 0}, []U7{0}}
	assert.Negative(t, Compare(one, three))

	short := SysEx{Roland, []U7{1, 2}}
	long := SysEx{Roland, []U7{1, 2, 0}}
	assert.Negative(t, Compare(short, long))
	assert.Positive(t, Compare(SysEx{Roland, []U7{3}}, long))
	assert.Zero(t, Compare(SysEx{Roland, []U7{3}}, SysEx{Roland, []U7{3}}))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	cases := append(allCases(), NoteOn{Ch3, 1, 1}, SysEx{Novation, nil}, RPN14{Ch1, 5, 5})
	for _, a := range cases {
		for _, b := range cases {
			require.Equal(t, Compare(a, b), -Compare(b, a), "%v vs %v", a, b)
		}
	}
}

func TestSortIsStable(t *testing.T) {
	// equal by Compare, distinguishable by identity of the slice
	a := SysEx{Roland, []U7{1}}
	b := SysEx{Roland, []U7{1}}
	msgs := []Message{NoteOn{Ch1, 1, 1}, a, b}
	Sort(msgs)
	assert.Same(t, &a.Data[0], &msgs[0].(SysEx).Data[0])
	assert.Same(t, &b.Data[0], &msgs[1].(SysEx).Data[0])
}
