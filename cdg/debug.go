package cdg

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	debugLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))
	debugValue = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7))
)

// String renders a one-line summary of decoder state, styled the same
// way the original project's debugger renders register dumps.
func (d *Decoder) String() string {
	var s strings.Builder
	s.WriteString(debugLabel.Render("cdg"))
	s.WriteString(" ")
	s.WriteString(debugValue.Render(fmt.Sprintf(
		"open=%v frames=%d tempo=%d%% hOffset=%d vOffset=%d lastUpdate=%dms",
		d.isOpen, len(d.sampler.frames), d.tempo, d.vp.hOffset, d.vp.vOffset, d.lastUpdateMs,
	)))
	return s.String()
}

// String renders the palette as 16 swatches, each labelled with its
// index and hex color, for use in a terminal debug dump.
func (p *palette) String() string {
	var s strings.Builder
	for i, c := range p.entries {
		if i > 0 {
			s.WriteString(" ")
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		s.WriteString(debugLabel.Render(fmt.Sprintf("%02d:", i)))
		s.WriteString(swatch.Render(c.Hex()))
	}
	return s.String()
}
