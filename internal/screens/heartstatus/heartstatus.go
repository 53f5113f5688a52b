// Package heartstatus shows the learner's heart balance and the
// regeneration countdown.
package heartstatus

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/naghz/naghz/internal/hearts"
	"github.com/naghz/naghz/internal/router"
	"github.com/naghz/naghz/internal/screen"
	"github.com/naghz/naghz/internal/ui/layout"
	"github.com/naghz/naghz/internal/ui/theme"
)

// ledgerMsg carries a fresh authoritative ledger read.
type ledgerMsg struct {
	Ledger hearts.Ledger
}

// tickMsg drives the displayed countdown.
type tickMsg time.Time

// HeartStatusScreen implements screen.Screen.
type HeartStatusScreen struct {
	svc    *hearts.Service
	userID string

	ledger hearts.Ledger
	loaded bool
}

var _ screen.Screen = (*HeartStatusScreen)(nil)
var _ screen.KeyHintProvider = (*HeartStatusScreen)(nil)

// New creates a heart status screen.
func New(svc *hearts.Service, userID string) *HeartStatusScreen {
	return &HeartStatusScreen{svc: svc, userID: userID}
}

func (h *HeartStatusScreen) Init() tea.Cmd {
	return tea.Batch(h.fetch(), tick())
}

func (h *HeartStatusScreen) Title() string {
	return "Hearts"
}

func (h *HeartStatusScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

// fetch reads the ledger with regeneration applied. Errors fall open to
// the default full set, same as everywhere else hearts are read.
func (h *HeartStatusScreen) fetch() tea.Cmd {
	svc, userID := h.svc, h.userID
	return func() tea.Msg {
		ledger, _ := svc.Refill(context.Background(), userID)
		return ledgerMsg{Ledger: ledger}
	}
}

func (h *HeartStatusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerMsg:
		h.ledger = msg.Ledger
		h.loaded = true
		return h, func() tea.Msg {
			return screen.HeartsChangedMsg{Hearts: msg.Ledger.Hearts}
		}

	case tickMsg:
		// When a full window has elapsed the store recompute regains the
		// heart; re-read instead of trusting local arithmetic.
		if h.loaded && h.ledger.Hearts < hearts.Max &&
			hearts.Remaining(h.ledger.UpdatedAt, time.Now()) == 0 {
			return h, tea.Batch(h.fetch(), tick())
		}
		return h, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HeartStatusScreen) View(width, height int) string {
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n\n")

	meter := make([]string, 0, hearts.Max)
	for i := 0; i < hearts.Max; i++ {
		if i < h.ledger.Hearts {
			meter = append(meter, "♥")
		} else {
			meter = append(meter, "♡")
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Heart).
		Bold(true).
		Render(strings.Join(meter, "  ")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d hearts", h.ledger.Hearts, hearts.Max)))
	b.WriteString("\n\n")

	if h.ledger.Hearts < hearts.Max {
		left := hearts.Remaining(h.ledger.UpdatedAt, time.Now())
		if left == 0 {
			left = hearts.RegenWindow
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Next heart in %s", FormatDuration(left))))
		b.WriteString("\n\n")
	}

	note := lipgloss.NewStyle().
		Width(min(width-8, 60)).
		Foreground(theme.TextDim).
		Render("A wrong answer on a quiz page costs one heart. " +
			"Spent hearts come back on their own, one every ten minutes.")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, note))

	return b.String()
}

// FormatDuration renders a countdown as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
