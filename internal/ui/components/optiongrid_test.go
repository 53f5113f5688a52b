package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/naghz/naghz/internal/answer"
	"github.com/naghz/naghz/internal/content"
)

func fourOptions() []content.Option {
	return []content.Option{
		{ID: 1, Text: "Alpha", Order: 1},
		{ID: 2, Text: "Beta", Order: 2},
		{ID: 3, Text: "Gamma", Order: 3},
		{ID: 4, Text: "Delta", Order: 4},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestOptionGrid_CursorMovement_Column(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)

	g, _ = g.Update(keyPress('j'))
	if g.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", g.Cursor)
	}
	g, _ = g.Update(keyPress('k'))
	if g.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.Cursor)
	}
	// Up at the top row is a no-op.
	g, _ = g.Update(keyPress('k'))
	if g.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 after up at top", g.Cursor)
	}
}

func TestOptionGrid_CursorMovement_TwoColumn(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridTwoColumn)

	// Down steps a full row in a two-column grid.
	g, _ = g.Update(keyPress('j'))
	if g.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", g.Cursor)
	}
	g, _ = g.Update(keyPress('l'))
	if g.Cursor != 3 {
		t.Errorf("cursor = %d, want 3", g.Cursor)
	}
	g, _ = g.Update(keyPress('h'))
	if g.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", g.Cursor)
	}
}

func TestOptionGrid_Select(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)

	if !g.Select(2) {
		t.Error("expected Select(2) to succeed")
	}
	if g.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", g.Cursor)
	}
	if g.Select(7) {
		t.Error("expected Select(7) to fail out of range")
	}

	opt, ok := g.CursorOption()
	if !ok || opt.ID != 3 {
		t.Errorf("CursorOption = %+v, want option id 3", opt)
	}
}

func TestOptionGrid_Marker_Default(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)
	g.Selection = answer.Selection{Type: content.TestDefault, Single: 2}

	if m := g.marker(g.Options[1]); m != "(●)" {
		t.Errorf("marker for chosen option = %q, want (●)", m)
	}
	if m := g.marker(g.Options[0]); m != "( )" {
		t.Errorf("marker for other option = %q, want ( )", m)
	}
}

func TestOptionGrid_Marker_Multiple(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)
	g.Selection = answer.Selection{Type: content.TestMultiple, Set: []int{1, 3}}

	if m := g.marker(g.Options[0]); m != "[x]" {
		t.Errorf("marker = %q, want [x]", m)
	}
	if m := g.marker(g.Options[1]); m != "[ ]" {
		t.Errorf("marker = %q, want [ ]", m)
	}
}

func TestOptionGrid_Marker_Sequential(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)
	g.Selection = answer.Selection{Type: content.TestSequential, Ordered: []int{3, 1}}

	if m := g.marker(g.Options[2]); m != "[1]" {
		t.Errorf("marker for first click = %q, want [1]", m)
	}
	if m := g.marker(g.Options[0]); m != "[2]" {
		t.Errorf("marker for second click = %q, want [2]", m)
	}
	if m := g.marker(g.Options[3]); m != "[ ]" {
		t.Errorf("marker for unclicked = %q, want [ ]", m)
	}
}

func TestOptionGrid_Marker_Pluggable(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)
	sel := answer.NewSelection(content.TestPluggable)
	sel.Pairs[1] = 4
	sel.Pairs[4] = 1
	g.Selection = sel
	g.Dangling = 2

	// Both halves of a completed pair share a letter.
	if m := g.marker(g.Options[0]); m != "[A]" {
		t.Errorf("marker = %q, want [A]", m)
	}
	if m := g.marker(g.Options[3]); m != "[A]" {
		t.Errorf("marker = %q, want [A]", m)
	}
	// The half-open click shows as pending.
	if m := g.marker(g.Options[1]); m != "[…]" {
		t.Errorf("marker = %q, want […]", m)
	}
	if m := g.marker(g.Options[2]); m != "[ ]" {
		t.Errorf("marker = %q, want [ ]", m)
	}
}

func TestOptionGrid_View_RowsPerLayout(t *testing.T) {
	opts := fourOptions()

	column := NewOptionGrid(opts, content.GridColumn)
	column.Selection = answer.NewSelection(content.TestDefault)
	if got := len(strings.Split(column.View(), "\n")); got != 4 {
		t.Errorf("column layout rows = %d, want 4", got)
	}

	twoCol := NewOptionGrid(opts, content.GridTwoColumn)
	twoCol.Selection = answer.NewSelection(content.TestDefault)
	if got := len(strings.Split(twoCol.View(), "\n")); got != 2 {
		t.Errorf("two-column layout rows = %d, want 2", got)
	}

	row := NewOptionGrid(opts, content.GridRow)
	row.Selection = answer.NewSelection(content.TestDefault)
	if got := len(strings.Split(row.View(), "\n")); got != 1 {
		t.Errorf("row layout rows = %d, want 1", got)
	}
}

func TestOptionGrid_RevealMarksCorrectOptions(t *testing.T) {
	g := NewOptionGrid(fourOptions(), content.GridColumn)
	g.Selection = answer.NewSelection(content.TestMultiple)
	g.Reveal = true
	g.Answer = content.MultipleAnswer(2, 4)

	if !g.isCorrectOption(2) || !g.isCorrectOption(4) {
		t.Error("expected answer options to be marked correct")
	}
	if g.isCorrectOption(1) || g.isCorrectOption(3) {
		t.Error("expected non-answer options to stay unmarked")
	}
}
