package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpPagerMsg contains the result of a help pager command
type HelpPagerMsg struct {
	Err error
}

// RenderHelpContent generates the help text shown in the pager
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Suggest Field Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Typing"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("any text"), descStyle.Render("Filter suggestions (debounced)")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("enter"), descStyle.Render("Pick highlighted suggestion, or submit raw text")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("esc"), descStyle.Render("Close the panel, then blur the field")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Panel"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, ctrl+p/n"), descStyle.Render("Move the highlight")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("(empty)"), descStyle.Render("Shows recent selections while the field is focused")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("f1"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s    %s", keyStyle.Render("ctrl+c"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps shows help content through the ov pager
type HelpOps struct {
	program *tea.Program // reference for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// SetProgram sets the program reference after construction
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using the ov pager. The Bubble Tea
// program releases the terminal for the pager's lifetime.
func (h *HelpOps) ShowHelpInPager(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov a moment to fully exit before restoring the terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// ShowHelp returns a command that runs the pager, pausing rendering
// around it
func (h *HelpOps) ShowHelp(content string) tea.Cmd {
	return func() tea.Msg {
		return HelpPagerMsg{Err: h.ShowHelpInPager(content)}
	}
}
