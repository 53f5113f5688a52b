package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/runtime"
	"github.com/naghz/naghz/internal/ui/components"
	"github.com/naghz/naghz/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.loadErr != "" {
		return renderError(width, s.loadErr)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.rt == nil {
		return renderLoading(width)
	}

	page := s.rt.Page()
	if page.Type == content.PageText {
		return s.renderTextPage(width)
	}
	return s.renderTestPage(width)
}

// renderProgressLine draws the page progress bar and position counter.
func (s *LessonScreen) renderProgressLine(width int) string {
	page := s.rt.Page()
	bar := components.NewProgressBar("", s.seq.Progress(), false, width-18).View()
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d / %d", page.Number, s.seq.Len()))
	return "  " + bar + counter + "\n\n"
}

// renderTextPage renders a content-only page.
func (s *LessonScreen) renderTextPage(width int) string {
	page := s.rt.Page()

	var b strings.Builder
	b.WriteString(s.renderProgressLine(width))

	if page.Header != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(page.Header))
		b.WriteString("\n\n")
	}

	if page.Body != "" {
		body := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(page.Body)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to continue"))

	return b.String()
}

// renderTestPage renders a quiz page: question, answer area, and any
// open feedback panels.
func (s *LessonScreen) renderTestPage(width int) string {
	page := s.rt.Page()

	var b strings.Builder
	b.WriteString(s.renderProgressLine(width))

	if page.Question != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(page.Question))
		b.WriteString("\n\n")
	}

	if s.rt.Phase() == runtime.PhaseEvaluating {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Scoring your answer..."))
		return b.String()
	}

	// Answer area.
	if page.Test == content.TestInput {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.grid.View()))
	}
	b.WriteString("\n")

	if s.noHearts {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Heart).
			Bold(true).
			Render("Out of hearts!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Wait for a heart to regenerate, or review earlier pages."))
	}

	if msg := s.rt.Err(); msg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(msg))
	}

	if s.rt.FeedbackOpen() || s.rt.Verdict() != runtime.VerdictNone {
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

// renderFeedback renders the verdict panel with its optional rationale,
// AI feedback, tip, and reveal sections.
func (s *LessonScreen) renderFeedback(width int) string {
	page := s.rt.Page()

	var b strings.Builder
	b.WriteString("\n\n")

	if s.rt.Verdict() == runtime.VerdictCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n")

	if sc, ok := s.rt.AIScore(); ok {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Score: %d / 100", sc)))
		b.WriteString("\n")
	}

	if fb := s.rt.AIFeedback(); fb != "" {
		b.WriteString("\n")
		block := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(fb)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	if s.rt.WhyOpen() && page.Why != "" {
		b.WriteString("\n")
		block := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Secondary).
			Render("Why: " + page.Why)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	if s.rt.TipOpen() && page.AI != nil && page.AI.Tip != "" {
		b.WriteString("\n")
		block := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Accent).
			Render("Tip: " + page.AI.Tip)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	if s.rt.RevealOpen() {
		b.WriteString("\n")
		block := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render("Correct answer: " + s.rt.RevealText())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	prompt := "Press Enter to continue"
	if s.rt.Verdict() == runtime.VerdictIncorrect {
		prompt = "Press Enter to try again"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(prompt))

	return b.String()
}

// renderQuitConfirm renders the leave-lesson confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this lesson?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your place is saved; you can pick up where you left off."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading...")
}

// renderError renders a load failure.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
