package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/naghz/naghz/internal/answer"
	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/ui/theme"
)

// OptionGrid renders a test page's options in the page's grid layout
// and decorates each option with the selection state of the page's test
// type: a radio dot for single choice, checkboxes for multi-select,
// click ordinals for ordering, and pair letters for matching.
type OptionGrid struct {
	Options []content.Option
	Grid    content.GridLayout
	Cursor  int

	// Selection and Dangling mirror the page runtime each render.
	Selection answer.Selection
	Dangling  int

	// Reveal highlights the options named by Answer after an incorrect
	// verdict.
	Reveal bool
	Answer content.CorrectAnswer
}

// NewOptionGrid creates an option grid for the given options and layout.
func NewOptionGrid(opts []content.Option, grid content.GridLayout) OptionGrid {
	return OptionGrid{Options: opts, Grid: grid}
}

// columns returns how many options sit on one visual row.
func (g OptionGrid) columns() int {
	switch g.Grid {
	case content.GridTwoColumn:
		return 2
	case content.GridRow:
		if len(g.Options) > 0 {
			return len(g.Options)
		}
		return 1
	default:
		return 1
	}
}

// Update handles cursor movement. Left/right step within a row, up/down
// step between rows.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Options) == 0 {
		return g, nil
	}

	cols := g.columns()
	switch kmsg.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < len(g.Options)-1 {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-cols >= 0 {
			g.Cursor -= cols
		}
	case "down", "j":
		if g.Cursor+cols < len(g.Options) {
			g.Cursor += cols
		}
	}
	return g, nil
}

// CursorOption returns the option under the cursor.
func (g OptionGrid) CursorOption() (content.Option, bool) {
	if g.Cursor < 0 || g.Cursor >= len(g.Options) {
		return content.Option{}, false
	}
	return g.Options[g.Cursor], true
}

// Select moves the cursor directly to the i-th option (number keys).
func (g *OptionGrid) Select(i int) bool {
	if i < 0 || i >= len(g.Options) {
		return false
	}
	g.Cursor = i
	return true
}

// View renders the grid.
func (g OptionGrid) View() string {
	if len(g.Options) == 0 {
		return ""
	}

	lines := make([]string, len(g.Options))
	for i, opt := range g.Options {
		lines[i] = g.renderOption(i, opt)
	}

	cols := g.columns()
	if cols <= 1 {
		return strings.Join(lines, "\n")
	}

	// Pad cells so grid columns line up.
	cellWidth := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > cellWidth {
			cellWidth = w
		}
	}
	cell := lipgloss.NewStyle().Width(cellWidth + 2)

	var rows []string
	for i := 0; i < len(lines); i += cols {
		end := i + cols
		if end > len(lines) {
			end = len(lines)
		}
		padded := make([]string, 0, cols)
		for _, l := range lines[i:end] {
			padded = append(padded, cell.Render(l))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, padded...))
	}
	return strings.Join(rows, "\n")
}

func (g OptionGrid) renderOption(i int, opt content.Option) string {
	prefix := "  "
	if i == g.Cursor {
		prefix = "▸ "
	}

	marker := g.marker(opt)
	text := opt.Text
	if opt.Icon != "" {
		text = opt.Icon + " " + text
	}
	line := fmt.Sprintf("%s%s %s", prefix, marker, text)

	switch {
	case g.Reveal && g.isCorrectOption(opt.ID):
		return theme.Correct.Render(line)
	case g.isMarked(opt.ID):
		return theme.Selected.Render(line)
	case i == g.Cursor:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}

// marker renders the per-type selection badge.
func (g OptionGrid) marker(opt content.Option) string {
	switch g.Selection.Type {
	case content.TestDefault:
		if g.Selection.Single == opt.ID {
			return "(●)"
		}
		return "( )"

	case content.TestMultiple:
		for _, id := range g.Selection.Set {
			if id == opt.ID {
				return "[x]"
			}
		}
		return "[ ]"

	case content.TestSequential:
		for i, id := range g.Selection.Ordered {
			if id == opt.ID {
				return fmt.Sprintf("[%d]", i+1)
			}
		}
		return "[ ]"

	case content.TestPluggable:
		if g.Dangling == opt.ID {
			return "[…]"
		}
		if label, ok := g.pairLabel(opt.ID); ok {
			return "[" + label + "]"
		}
		return "[ ]"
	}
	return "   "
}

// pairLabel assigns the same letter to both halves of a completed pair,
// in the order pairs canonically sort.
func (g OptionGrid) pairLabel(id int) (string, bool) {
	if _, ok := g.Selection.Pairs[id]; !ok {
		return "", false
	}
	for i, p := range g.Selection.CompletedPairs() {
		if p[0] == id || p[1] == id {
			return string(rune('A' + i)), true
		}
	}
	return "", false
}

// isMarked reports whether the option participates in the selection.
func (g OptionGrid) isMarked(id int) bool {
	switch g.Selection.Type {
	case content.TestDefault:
		return g.Selection.Single == id
	case content.TestMultiple:
		for _, v := range g.Selection.Set {
			if v == id {
				return true
			}
		}
	case content.TestSequential:
		for _, v := range g.Selection.Ordered {
			if v == id {
				return true
			}
		}
	case content.TestPluggable:
		if g.Dangling == id {
			return true
		}
		_, ok := g.Selection.Pairs[id]
		return ok
	}
	return false
}

// isCorrectOption reports whether the answer key references the option.
func (g OptionGrid) isCorrectOption(id int) bool {
	switch g.Answer.Type {
	case content.TestDefault:
		return g.Answer.Single == id
	case content.TestMultiple, content.TestSequential:
		for _, v := range g.Answer.IDs {
			if v == id {
				return true
			}
		}
	case content.TestPluggable:
		for _, p := range g.Answer.Pairs {
			if p[0] == id || p[1] == id {
				return true
			}
		}
	}
	return false
}
