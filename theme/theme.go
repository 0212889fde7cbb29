package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-midiwire/midi"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Cursor    rune // ▶ selected message
	Bullet    rune // · other messages
	Arrow     rune // → lowers to
	Separator rune // │ between blocks
}

func New(palette *Palette) *Theme {
	if palette == nil || len(palette.Colors) == 0 {
		palette = Default()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Cursor:    '▶',
			Bullet:    '·',
			Arrow:     '→',
			Separator: '│',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0
	RoleSurface = 0.1
	RoleMuted   = 0.3
	RoleFG      = 0.45
	RoleAccent  = 0.55
	RoleCursor  = 0.65
	RoleWarning = 0.85
	RoleError   = 1.0
)

// Roles for the four raw message shapes
const (
	RoleStatus = 0.75 // status byte of any shape
	RoleData   = 0.4  // data bytes after a status
	RoleRaw    = 0.6  // sysex framing and payload
)

func (t *Theme) BG() lipgloss.Color      { return t.Color(RoleBG) }
func (t *Theme) Surface() lipgloss.Color { return t.Color(RoleSurface) }
func (t *Theme) FG() lipgloss.Color      { return t.Color(RoleFG) }
func (t *Theme) Accent() lipgloss.Color  { return t.Color(RoleAccent) }
func (t *Theme) Muted() lipgloss.Color   { return t.Color(RoleMuted) }
func (t *Theme) Cursor() lipgloss.Color  { return t.Color(RoleCursor) }
func (t *Theme) Warning() lipgloss.Color { return t.Color(RoleWarning) }
func (t *Theme) Error() lipgloss.Color   { return t.Color(RoleError) }

// ShapeColors returns the status and data colors for a raw message
func (t *Theme) ShapeColors(m midi.RawMessage) (status, data lipgloss.Color) {
	switch m.(type) {
	case midi.Raw:
		return t.Color(RoleRaw), t.Color(RoleRaw)
	default:
		return t.Color(RoleStatus), t.Color(RoleData)
	}
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
