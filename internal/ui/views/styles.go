package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the field. Presentation
// is configured entirely here; the core packages never see a style.
type Styles struct {
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Match       lipgloss.Style
	Cursor      lipgloss.Style
	Highlight   lipgloss.Style
	Icon        lipgloss.Style
	Chip        lipgloss.Style
	ChipActive  lipgloss.Style
	GridCell    lipgloss.Style
	Recent      lipgloss.Style
	Loading     lipgloss.Style
	Panel       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Chip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		ChipActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("220")).
			Foreground(lipgloss.Color("220")),
		GridCell: lipgloss.NewStyle().PaddingRight(2),
		Recent:   lipgloss.NewStyle().Faint(true).Italic(true),
		Loading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Panel:    lipgloss.NewStyle().MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
	}
}

// IconGlyph returns the glyph shown for an icon tag. Tags are opaque to
// the core; only the renderer gives them a shape.
func IconGlyph(tag string) string {
	if tag == "" {
		return ""
	}
	return "◆"
}
