package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-midiwire/midi"
	"go-midiwire/theme"
)

// RenderBlock renders a lowered block as hex bytes, one group per raw
// message, coloring status and data bytes by shape
func RenderBlock(th *theme.Theme, block []midi.RawMessage) string {
	sep := lipgloss.NewStyle().Foreground(th.Muted()).Render(" " + string(th.Symbols.Separator) + " ")

	groups := make([]string, 0, len(block))
	for _, m := range block {
		statusColor, dataColor := th.ShapeColors(m)
		status := lipgloss.NewStyle().Foreground(statusColor)
		data := lipgloss.NewStyle().Foreground(dataColor)

		b := m.Bytes()
		parts := make([]string, len(b))
		for i, v := range b {
			style := data
			if i == 0 {
				style = status
			}
			parts[i] = style.Render(fmt.Sprintf("%02X", v))
		}
		groups = append(groups, strings.Join(parts, " "))
	}
	return strings.Join(groups, sep)
}

// RenderShapes lists each raw message of a block by its shape, one per line
func RenderShapes(th *theme.Theme, block []midi.RawMessage) string {
	dim := lipgloss.NewStyle().Foreground(th.Muted())
	lines := make([]string, len(block))
	for i, m := range block {
		lines[i] = fmt.Sprintf("%s %v", dim.Render(fmt.Sprintf("%2d", i)), m)
	}
	return strings.Join(lines, "\n")
}
