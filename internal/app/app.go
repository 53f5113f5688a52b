package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/naghz/naghz/internal/daily"
	"github.com/naghz/naghz/internal/grader"
	"github.com/naghz/naghz/internal/hearts"
	"github.com/naghz/naghz/internal/router"
	"github.com/naghz/naghz/internal/screen"
	"github.com/naghz/naghz/internal/screens/home"
	"github.com/naghz/naghz/internal/screens/lesson"
	"github.com/naghz/naghz/internal/store"
	"github.com/naghz/naghz/internal/ui/layout"
)

// Options carries the wired services the TUI runs on. Grader is nil
// when no LLM provider is configured.
type Options struct {
	Content  store.ContentRepo
	Events   store.EventRepo
	Progress store.ProgressRepo
	Hearts   *hearts.Service
	Grader   *grader.Service
	Daily    *daily.Service
	UserID   string

	// StartChallenge opens the daily challenge immediately on launch.
	StartChallenge bool
}

// deps converts the options into lesson dependencies.
func (o Options) deps() lesson.Deps {
	return lesson.Deps{
		Content:  o.Content,
		Events:   o.Events,
		Progress: o.Progress,
		Hearts:   o.Hearts,
		Grader:   o.Grader,
		Daily:    o.Daily,
		UserID:   o.UserID,
	}
}

// heartsFetchedMsg carries an authoritative ledger read for the header.
type heartsFetchedMsg struct {
	Ledger hearts.Ledger
}

// heartTickMsg advances the header regeneration countdown.
type heartTickMsg time.Time

// AppModel is the root Bubble Tea model. Besides routing, it owns the
// header heart display: it keeps the regeneration countdown running no
// matter which screen is active and issues the regain when it fires.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	heartCount int
	countdown  hearts.Countdown
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.deps())
	return AppModel{
		opts:       opts,
		router:     router.New(homeScreen),
		heartCount: hearts.Max,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchHearts(), heartTick()}
	if m.opts.StartChallenge {
		deps := m.opts.deps()
		cmds = append(cmds, func() tea.Msg {
			s, err := lesson.NewChallenge(deps)
			if err != nil {
				return nil
			}
			return router.PushScreenMsg{Screen: s}
		})
	}
	return tea.Batch(cmds...)
}

// fetchHearts reads the ledger with regeneration applied.
func (m AppModel) fetchHearts() tea.Cmd {
	svc, userID := m.opts.Hearts, m.opts.UserID
	return func() tea.Msg {
		ledger, _ := svc.Refill(context.Background(), userID)
		return heartsFetchedMsg{Ledger: ledger}
	}
}

// regainHeart restores one heart when the countdown fires.
func (m AppModel) regainHeart() tea.Cmd {
	svc, userID := m.opts.Hearts, m.opts.UserID
	return func() tea.Msg {
		ledger, _ := svc.Regain(context.Background(), userID)
		return heartsFetchedMsg{Ledger: ledger}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case heartsFetchedMsg:
		m.heartCount = msg.Ledger.Hearts
		m.countdown.Reconcile(msg.Ledger, time.Now())
		// Screens gating on hearts get the same read.
		cmd := m.router.Update(screen.HeartsChangedMsg{Hearts: msg.Ledger.Hearts})
		return m, cmd

	case heartTickMsg:
		if m.countdown.Tick() {
			return m, tea.Batch(m.regainHeart(), heartTick())
		}
		return m, heartTick()

	case screen.HeartsChangedMsg:
		// A screen mutated the ledger; refresh the countdown anchor.
		m.heartCount = msg.Hearts
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.fetchHearts())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	regenIn := ""
	if m.countdown.Active() {
		regenIn = formatCountdown(m.countdown.Remaining())
	}
	header := layout.RenderHeader(title, m.heartCount, hearts.Max, regenIn, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to stack
// defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// formatCountdown renders the header regen countdown as m:ss.
func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// heartTick schedules the next header countdown tick.
func heartTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return heartTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
