package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and frame border.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Dragged, Drop              lipgloss.Style

	Border lipgloss.Border
	Frame  lipgloss.Color

	Grip, Cursor, Check, Cross string
}

// ThemeNames lists the themes [NewTheme] knows.
var ThemeNames = []string{"classic", "neon", "mono"}

// NewTheme returns the named theme. Unknown names yield classic.
func NewTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Dragged:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("13")),
			Drop:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Border:   lipgloss.RoundedBorder(),
			Frame:    lipgloss.Color("13"),
			Grip:     "⣿", Cursor: "▶", Check: "✔", Cross: "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain,
			Selected: plain.Bold(true),
			Dragged:  plain.Reverse(true),
			Drop:     plain.Underline(true),
			Border:   lipgloss.ASCIIBorder(),
			Grip:     "=", Cursor: ">", Check: "ok", Cross: "x",
		}
	default:
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true),
			Dragged:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Drop:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Border:   lipgloss.RoundedBorder(),
			Frame:    lipgloss.Color("8"),
			Grip:     "≡", Cursor: ">", Check: "✔", Cross: "✖",
		}
	}
}

// FrameStyle is the bordered box both hosts draw around their content.
func (t Theme) FrameStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Border(t.Border).Padding(0, 1)
	if t.Frame != "" {
		s = s.BorderForeground(t.Frame)
	}
	return s
}
