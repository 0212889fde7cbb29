package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-midiwire/midi"
)

const gpl = `GIMP Palette
Name: two
Columns: 2
# comment
  0   0   0	black
255 255 255	white
300 0 0	out of range
`

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.gpl")
	require.NoError(t, os.WriteFile(path, []byte(gpl), 0644))

	p, err := LoadGPL(path)
	require.NoError(t, err)
	assert.Equal(t, "two", p.Name)
	assert.Equal(t, []RGB{{0, 0, 0}, {255, 255, 255}}, p.Colors)
	assert.Equal(t, RGB{127, 127, 127}, p.Lookup(0.5))
	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, RGB{255, 255, 255}, p.Lookup(2))
}

func TestLoadGPLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpl")
	require.NoError(t, os.WriteFile(path, []byte("GIMP Palette\n"), 0644))

	_, err := LoadGPL(path)
	assert.Equal(t, ErrEmptyPalette, errors.Cause(err))
}

func TestLoadOrDefault(t *testing.T) {
	p, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.gpl"))
	assert.Error(t, err)
}

func TestShapeColors(t *testing.T) {
	th := New(nil)
	assert.Equal(t, "midiwire", th.Palette.Name)

	s, d := th.ShapeColors(midi.StatusDataData{Status: 0x90, Data1: 60, Data2: 100})
	assert.Equal(t, th.Color(RoleStatus), s)
	assert.Equal(t, th.Color(RoleData), d)

	s, d = th.ShapeColors(midi.Raw{Byte: 0xF0})
	assert.Equal(t, th.Color(RoleRaw), s)
	assert.Equal(t, s, d)
	assert.Equal(t, lipgloss.Color("#101424"), th.BG())
}
