package views

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
)

// Renderer turns a FilterState into one of the three panel layouts. It
// is a pure function of the state passed in; all mutable UI state lives
// in the Field model.
type Renderer struct {
	styles        *Styles
	style         domain.DisplayStyle
	showIcons     bool
	caseSensitive bool
	gridColumns   int
}

// NewRenderer creates a renderer for the given layout
func NewRenderer(styles *Styles, style domain.DisplayStyle, showIcons, caseSensitive bool) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:        styles,
		style:         style,
		showIcons:     showIcons,
		caseSensitive: caseSensitive,
		gridColumns:   3,
	}
}

// Render renders the suggestion panel. cursor is the highlighted match
// index (-1 for none), width the available terminal width.
func (r *Renderer) Render(state domain.FilterState, cursor, width int) string {
	if !state.Visible {
		return ""
	}
	if state.Loading {
		return r.styles.Panel.Render(r.styles.Loading.Render("filtering…"))
	}
	if len(state.Matches) == 0 {
		if state.Query == "" {
			return ""
		}
		return r.styles.Panel.Render(r.styles.Loading.Render("no matches"))
	}

	var body string
	switch r.style {
	case domain.StyleGrid:
		body = r.renderGrid(state, cursor)
	case domain.StyleChips:
		body = r.renderChips(state, cursor, width)
	default:
		body = r.renderList(state, cursor)
	}
	return r.styles.Panel.Render(body)
}

func (r *Renderer) renderList(state domain.FilterState, cursor int) string {
	lines := make([]string, 0, len(state.Matches))
	for i, m := range state.Matches {
		marker := "  "
		if i == cursor {
			marker = r.styles.Cursor.Render("> ")
		}
		lines = append(lines, marker+r.label(m, state.Query))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderGrid(state domain.FilterState, cursor int) string {
	cols := r.gridColumns
	if cols < 1 {
		cols = 1
	}

	// Equal-width cells so the columns line up
	cellWidth := 0
	labels := make([]string, len(state.Matches))
	for i, m := range state.Matches {
		labels[i] = r.label(m, state.Query)
		if w := lipgloss.Width(labels[i]); w > cellWidth {
			cellWidth = w
		}
	}
	cell := r.styles.GridCell.Width(cellWidth + 2)

	var rows []string
	for start := 0; start < len(labels); start += cols {
		end := start + cols
		if end > len(labels) {
			end = len(labels)
		}
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			marker := "  "
			if i == cursor {
				marker = r.styles.Cursor.Render("> ")
			}
			cells = append(cells, cell.Render(marker+labels[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderChips(state domain.FilterState, cursor, width int) string {
	if width <= 0 {
		width = 80
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, m := range state.Matches {
		style := r.styles.Chip
		if i == cursor {
			style = r.styles.ChipActive
		}
		chip := style.Render(r.label(m, state.Query))
		w := lipgloss.Width(chip)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// label renders one suggestion: optional icon glyph plus the name with
// the matched substring highlighted.
func (r *Renderer) label(m domain.Suggestion, query string) string {
	name := r.highlight(m.Name, query)
	if r.showIcons && m.Tag != "" {
		return r.styles.Icon.Render(IconGlyph(m.Tag)) + " " + name
	}
	return name
}

// highlight styles the first occurrence of query inside name under the
// configured case policy. History entries shown for an empty query pass
// through unstyled.
func (r *Renderer) highlight(name, query string) string {
	if query == "" {
		return r.styles.Recent.Render(name)
	}

	start, end := r.matchBounds(name, query)
	if start < 0 {
		return r.styles.Match.Render(name)
	}
	return r.styles.Match.Render(name[:start]) +
		r.styles.Highlight.Render(name[start:end]) +
		r.styles.Match.Render(name[end:])
}

// matchBounds finds the first occurrence of query in name under the
// configured case policy and returns its byte offsets into name, or
// (-1, -1). Folding is done rune by rune so the offsets stay valid even
// when lower-casing changes a rune's UTF-8 length (e.g. "Ⱥ" → "ⱥ").
func (r *Renderer) matchBounds(name, query string) (int, int) {
	if r.caseSensitive {
		idx := strings.Index(name, query)
		if idx < 0 {
			return -1, -1
		}
		return idx, idx + len(query)
	}

	needle := strings.ToLower(query)
	folded := make([]byte, 0, len(name))
	offsets := make([]int, 0, len(name)+1) // folded byte -> name byte
	for i, ch := range name {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], unicode.ToLower(ch))
		for j := 0; j < n; j++ {
			folded = append(folded, buf[j])
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(name))

	idx := strings.Index(string(folded), needle)
	if idx < 0 {
		return -1, -1
	}
	return offsets[idx], offsets[idx+len(needle)]
}
