package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/config"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/eventbus"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/logger"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/ui"
)

// appEventMsg wraps a bus event for the UI
type appEventMsg struct {
	event eventbus.DomainEvent
}

// clearStatusMsg clears the transient status line
type clearStatusMsg struct{}

// app is the demo embedding application around a single Field
type app struct {
	field   *ui.Field
	helpOps *ui.HelpOps
	status  string
	width   int
}

func newApp(field *ui.Field) *app {
	return &app{
		field:   field,
		helpOps: ui.NewHelpOps(nil),
	}
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(a.field.Init(), a.field.Focus())
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		var cmd tea.Cmd
		a.field, cmd = a.field.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "f1":
			return a, a.helpOps.ShowHelp(ui.RenderHelpContent())
		}
		var cmds []tea.Cmd
		if !a.field.Focused() && msg.String() != "esc" {
			// Typing after a blur re-focuses the field
			cmds = append(cmds, a.field.Focus())
		}
		var cmd tea.Cmd
		a.field, cmd = a.field.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case ui.HelpPagerMsg:
		if msg.Err != nil {
			log.Error("help pager failed", "err", msg.Err)
			a.status = fmt.Sprintf("Help unavailable: %v", msg.Err)
			return a, clearStatusAfter(3 * time.Second)
		}
		return a, nil

	case appEventMsg:
		switch e := msg.event.(type) {
		case eventbus.SuggestionSelectedEvent:
			a.status = fmt.Sprintf("Selected %q", e.Suggestion.Name)
		case eventbus.QuerySubmittedEvent:
			a.status = fmt.Sprintf("Submitted %q", e.Text)
		case eventbus.HistoryChangedEvent:
			a.status = fmt.Sprintf("Recent searches: %d", len(e.Recent))
		}
		return a, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		a.status = ""
		return a, nil

	default:
		var cmd tea.Cmd
		a.field, cmd = a.field.Update(msg)
		return a, cmd
	}
}

func (a *app) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1).
		Render("Suggest Field")

	view := title + "\n" + a.field.View()
	if a.status != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).Render(a.status)
	}
	view += "\n" + lipgloss.NewStyle().Faint(true).MarginTop(1).Render("enter pick/submit · ↑/↓ move · esc close · f1 help · ctrl+c quit")
	return view
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func main() {
	var (
		configPath = flag.String("c", "", "path to config file")
		styleFlag  = flag.String("style", "", "display style: list, grid or chips")
		maxFlag    = flag.Int("max", 0, "maximum suggestions shown")
		debugFlag  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logFile, err := logger.Setup("suggestfield.log", *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if *configPath != "" {
		cfg, err = configSvc.LoadFromPath(*configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Warn("error loading config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	// Flags override the config
	if *styleFlag != "" {
		cfg.DisplayStyle = *styleFlag
	}
	if *maxFlag > 0 {
		cfg.MaxSuggestions = *maxFlag
	}

	style, err := domain.ParseDisplayStyle(cfg.DisplayStyle)
	if err != nil {
		log.Warn("falling back to list style", "err", err)
	}

	opts := ui.DefaultOptions()
	opts.Suggestions = countrySuggestions()
	opts.MaxSuggestions = cfg.MaxSuggestions
	opts.EnableHistory = cfg.EnableHistory
	opts.DisplayStyle = style
	opts.DebounceTime = time.Duration(cfg.DebounceMs) * time.Millisecond
	opts.CaseSensitive = cfg.CaseSensitive
	opts.RecentSearches = cfg.RecentSearches
	opts.Placeholder = "Type a country name…"
	opts.ShowIcons = cfg.UISettings.ShowIcons
	opts.Bus = bus
	opts.OnSelected = func(s domain.Suggestion) {
		log.Info("suggestion selected", "name", s.Name, "tag", s.Tag)
	}
	opts.OnSubmitted = func(text string) {
		log.Info("query submitted", "text", text)
	}

	m := newApp(ui.New(opts))
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.helpOps.SetProgram(p)

	// Forward bus events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	bus.Subscribe(eventbus.EventSuggestionSelected, forward)
	bus.Subscribe(eventbus.EventQuerySubmitted, forward)
	bus.Subscribe(eventbus.EventHistoryChanged, forward)

	go func() {
		for event := range eventChan {
			p.Send(appEventMsg{event: event})
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Stop the bus first so the dispatcher cannot still be forwarding
	// into the channel when it is closed.
	bus.Close()
	close(eventChan)

	// The embedding application owns history durability: write the
	// final recent searches back to the config on exit.
	if cfg.UISettings.AutosaveOnExit && cfg.EnableHistory {
		if finalApp, ok := finalModel.(*app); ok {
			cfg.RecentSearches = finalApp.field.Recent()
		}
		if *configPath != "" {
			err = configSvc.SaveToPath(cfg, *configPath)
		} else {
			err = configSvc.Save(cfg)
		}
		if err != nil {
			log.Error("failed to save config", "err", err)
		}
	}
}

// countrySuggestions is the demo dataset. Tags name flag icons the
// renderer shows as glyphs.
func countrySuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{Name: "Australia", Tag: "flag-au"},
		{Name: "Austria", Tag: "flag-at"},
		{Name: "Belgium", Tag: "flag-be"},
		{Name: "Brazil", Tag: "flag-br"},
		{Name: "Canada", Tag: "flag-ca"},
		{Name: "Denmark", Tag: "flag-dk"},
		{Name: "Finland", Tag: "flag-fi"},
		{Name: "France", Tag: "flag-fr"},
		{Name: "Germany", Tag: "flag-de"},
		{Name: "India", Tag: "flag-in"},
		{Name: "Indonesia", Tag: "flag-id"},
		{Name: "Ireland", Tag: "flag-ie"},
		{Name: "Italy", Tag: "flag-it"},
		{Name: "Japan", Tag: "flag-jp"},
		{Name: "Mexico", Tag: "flag-mx"},
		{Name: "Netherlands", Tag: "flag-nl"},
		{Name: "New Zealand", Tag: "flag-nz"},
		{Name: "Norway", Tag: "flag-no"},
		{Name: "Poland", Tag: "flag-pl"},
		{Name: "Portugal", Tag: "flag-pt"},
		{Name: "Spain", Tag: "flag-es"},
		{Name: "Sweden", Tag: "flag-se"},
		{Name: "Switzerland", Tag: "flag-ch"},
		{Name: "United Kingdom", Tag: "flag-gb"},
		{Name: "United States", Tag: "flag-us"},
	}
}
