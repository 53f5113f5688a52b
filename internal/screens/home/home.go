// Package home is the landing screen: the course list, the daily
// challenge entry, and the heart status, plus the once-a-day challenge
// prompt overlay.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/naghz/naghz/internal/router"
	"github.com/naghz/naghz/internal/screen"
	"github.com/naghz/naghz/internal/screens/heartstatus"
	"github.com/naghz/naghz/internal/screens/lesson"
	"github.com/naghz/naghz/internal/screens/placeholder"
	"github.com/naghz/naghz/internal/store"
	"github.com/naghz/naghz/internal/ui/components"
	"github.com/naghz/naghz/internal/ui/layout"
	"github.com/naghz/naghz/internal/ui/theme"
)

// coursesLoadedMsg carries the stored course list.
type coursesLoadedMsg struct {
	Courses []store.Course
	Err     error
}

// dailyPromptMsg asks the home screen to raise the challenge prompt.
type dailyPromptMsg struct{}

// startLessonMsg opens a course at its resume point.
type startLessonMsg struct {
	CourseID    string
	StartNumber int
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps  lesson.Deps
	menu  components.Menu
	ready bool

	promptOpen bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps lesson.Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.loadCourses(), h.checkDailyPrompt())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.promptOpen {
		return []layout.KeyHint{
			{Key: "Y", Description: "Play now"},
			{Key: "N", Description: "Not today"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadCourses reads the stored course list.
func (h *HomeScreen) loadCourses() tea.Cmd {
	repo := h.deps.Content
	return func() tea.Msg {
		if repo == nil {
			return coursesLoadedMsg{}
		}
		courses, err := repo.ListCourses(context.Background())
		return coursesLoadedMsg{Courses: courses, Err: err}
	}
}

// checkDailyPrompt runs the once-a-day prompt decision.
func (h *HomeScreen) checkDailyPrompt() tea.Cmd {
	svc, userID := h.deps.Daily, h.deps.UserID
	return func() tea.Msg {
		if svc == nil || !svc.ShouldPrompt(context.Background(), userID) {
			return nil
		}
		_ = svc.MarkShown(context.Background(), userID)
		return dailyPromptMsg{}
	}
}

// buildMenu assembles the menu from the loaded courses.
func (h *HomeScreen) buildMenu(courses []store.Course) {
	var items []components.MenuItem

	if len(courses) == 0 {
		items = append(items, components.MenuItem{
			Label: "LEARN",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Learn",
						"No courses installed yet.\n\nRun `naghz seed` to load the demo course.")}
				}
			},
		})
	}
	for _, c := range courses {
		courseID := c.ID
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(c.Title),
			Action: func() tea.Cmd {
				return h.resumeCourse(courseID)
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "DAILY CHALLENGE", Action: func() tea.Cmd {
			return h.startChallenge()
		}},
		components.MenuItem{Label: "HEARTS", Action: func() tea.Cmd {
			svc, userID := h.deps.Hearts, h.deps.UserID
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: heartstatus.New(svc, userID)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	h.ready = true
}

// resumeCourse looks up the saved resume point and opens the lesson.
func (h *HomeScreen) resumeCourse(courseID string) tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		start := 1
		if deps.Progress != nil {
			if prog, err := deps.Progress.Get(context.Background(), deps.UserID, courseID); err == nil && prog != nil && prog.PageNumber > 0 {
				start = prog.PageNumber
			}
		}
		return startLessonMsg{CourseID: courseID, StartNumber: start}
	}
}

// startChallenge opens the preloaded daily challenge.
func (h *HomeScreen) startChallenge() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		s, err := lesson.NewChallenge(deps)
		if err != nil {
			return router.PushScreenMsg{Screen: placeholder.New("Daily Challenge",
				"The challenge could not be loaded:\n\n"+err.Error())}
		}
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		// A read failure still leaves the challenge and hearts entries
		// usable.
		h.buildMenu(msg.Courses)
		return h, nil

	case dailyPromptMsg:
		h.promptOpen = true
		return h, nil

	case startLessonMsg:
		return h, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: lesson.New(h.deps, msg.CourseID, msg.StartNumber),
			}
		}

	case tea.KeyMsg:
		if h.promptOpen {
			switch msg.String() {
			case "y", "Y", "enter":
				h.promptOpen = false
				return h, h.startChallenge()
			case "n", "N", "esc":
				h.promptOpen = false
				svc, userID := h.deps.Daily, h.deps.UserID
				return h, func() tea.Msg {
					_ = svc.Decline(context.Background(), userID)
					return nil
				}
			}
			return h, nil
		}
	}

	if !h.ready {
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.promptOpen {
		return renderDailyPrompt(width)
	}
	if !h.ready {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("N A G H Z"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Learn a little every day"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

// renderDailyPrompt renders the challenge prompt overlay.
func renderDailyPrompt(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Today's challenge is ready!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("A few quick questions to keep your streak going."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Play now"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Not today"))

	return b.String()
}
