package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testStats() Stats {
	return Stats{
		Title:    "Intro to Fractions",
		Pages:    7,
		Answered: 5,
		Correct:  4,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testStats())
	if s.Title() != "Lesson Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson Complete")
	}
}

func TestSummaryScreen_Title_Challenge(t *testing.T) {
	stats := testStats()
	stats.Challenge = true
	s := New(stats)
	if s.Title() != "Challenge Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Challenge Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testStats())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Intro to Fractions") {
		t.Error("expected view to contain the lesson title")
	}
	if !strings.Contains(view, "80%") {
		t.Error("expected view to contain the accuracy percentage")
	}
}

func TestSummaryScreen_Display_NoAnswers(t *testing.T) {
	s := New(Stats{Title: "Reading Only", Pages: 3})
	view := s.View(80, 24)
	if strings.Contains(view, "Accuracy") {
		t.Error("expected no accuracy line when nothing was answered")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testStats())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testStats())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testStats())
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
