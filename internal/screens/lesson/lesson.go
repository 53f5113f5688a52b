// Package lesson is the page-at-a-time lesson player. It wires the
// sequencer (which page), the page runtime (what the learner has
// selected and whether it is right), the heart ledger, and the async
// grader into one screen.
package lesson

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/naghz/naghz/internal/answer"
	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/daily"
	"github.com/naghz/naghz/internal/grader"
	"github.com/naghz/naghz/internal/hearts"
	"github.com/naghz/naghz/internal/router"
	"github.com/naghz/naghz/internal/runtime"
	"github.com/naghz/naghz/internal/screen"
	"github.com/naghz/naghz/internal/screens/summary"
	"github.com/naghz/naghz/internal/sequencer"
	"github.com/naghz/naghz/internal/store"
	"github.com/naghz/naghz/internal/ui/components"
	"github.com/naghz/naghz/internal/ui/layout"
)

// gradePollInterval is how often the pending AI grade is checked for.
const gradePollInterval = 200 * time.Millisecond

// Deps are the collaborators a lesson needs. Grader may be nil when no
// LLM provider is configured; AI-graded pages then fail soft with the
// standard grading error and stay resubmittable.
type Deps struct {
	Content  store.ContentRepo
	Events   store.EventRepo
	Progress store.ProgressRepo
	Hearts   *hearts.Service
	Grader   *grader.Service
	Daily    *daily.Service
	UserID   string
}

// LessonScreen implements screen.Screen for a running lesson or
// challenge.
type LessonScreen struct {
	deps Deps
	seq  *sequencer.Sequencer
	rt   *runtime.Runtime

	grid  components.OptionGrid
	input components.TextInput

	sessionID string
	title     string
	challenge bool

	heartCount  int
	heartsKnown bool

	pageShownAt time.Time
	answered    int
	correct     int

	quitConfirm bool
	noHearts    bool
	loadErr     string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen over a stored course, resuming at the
// given 1-based page number.
func New(deps Deps, courseID string, startNumber int) *LessonScreen {
	return &LessonScreen{
		deps:      deps,
		seq:       sequencer.NewLive(deps.Content, courseID, startNumber),
		sessionID: uuid.New().String(),
		title:     courseID,
	}
}

// NewChallenge creates a lesson screen over the built-in daily
// challenge. All content is preloaded; no store reads happen while
// paging.
func NewChallenge(deps Deps) (*LessonScreen, error) {
	pages, options := daily.Challenge()
	seq, err := sequencer.NewPreloaded(pages, options, 1)
	if err != nil {
		return nil, err
	}
	s := &LessonScreen{
		deps:      deps,
		seq:       seq,
		sessionID: uuid.New().String(),
		title:     "Daily Challenge",
		challenge: true,
	}
	s.startPage()
	return s, nil
}

func (s *LessonScreen) Init() tea.Cmd {
	if s.challenge {
		return s.fetchHearts()
	}
	return tea.Batch(s.loadPages(), s.fetchHearts())
}

func (s *LessonScreen) Title() string {
	return s.title
}

// loadPages fetches the course header and page list.
func (s *LessonScreen) loadPages() tea.Cmd {
	repo := s.deps.Content
	courseID := s.seq.CourseID()
	return func() tea.Msg {
		ctx := context.Background()
		title := courseID
		if c, err := repo.GetCourse(ctx, courseID); err == nil && c != nil {
			title = c.Title
		}
		pages, err := repo.ListPages(ctx, courseID)
		return pagesLoadedMsg{Title: title, Pages: pages, Err: err}
	}
}

// fetchHearts reads the ledger with regeneration applied and announces
// the result. Hearts fail open: a store error still reports the default
// full set.
func (s *LessonScreen) fetchHearts() tea.Cmd {
	svc, userID := s.deps.Hearts, s.deps.UserID
	return func() tea.Msg {
		ledger, err := svc.Refill(context.Background(), userID)
		return heartLedgerMsg{Ledger: ledger, Err: err}
	}
}

// maybeFetchOptions issues the sequencer's pending option fetch, if any.
func (s *LessonScreen) maybeFetchOptions() tea.Cmd {
	req, ok := s.seq.OptionsNeeded()
	if !ok {
		return nil
	}
	repo := s.deps.Content
	return func() tea.Msg {
		opts, err := repo.ListOptions(context.Background(), req.PageID)
		return optionsLoadedMsg{Token: req.Token, PageID: req.PageID, Opts: opts, Err: err}
	}
}

// startPage resets the per-page state for the sequencer's current page.
func (s *LessonScreen) startPage() {
	page, ok := s.seq.Current()
	if !ok {
		s.rt = nil
		return
	}
	s.rt = runtime.New(page)
	s.grid = components.NewOptionGrid(page.Options, page.Grid)
	s.input = components.NewTextInput("Type your answer...", 0)
	s.pageShownAt = time.Now()
	s.noHearts = false

	if !s.challenge && s.deps.Progress != nil {
		ctx := context.Background()
		_ = s.deps.Progress.MarkReached(ctx, s.deps.UserID, page.CourseID, page.Number)
	}
}

// enterPage lands on a new sequencer position: kick off any option
// fetch and reset the runtime when the page is already renderable.
func (s *LessonScreen) enterPage() tea.Cmd {
	cmd := s.maybeFetchOptions()
	if s.seq.Ready() {
		s.startPage()
	} else {
		s.rt = nil
	}
	return cmd
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pagesLoadedMsg:
		return s.handlePagesLoaded(msg)

	case optionsLoadedMsg:
		if !s.seq.Deliver(msg.Token, msg.PageID, msg.Opts, msg.Err) {
			return s, nil
		}
		if s.seq.Ready() && s.rt == nil {
			s.startPage()
		}
		return s, nil

	case heartLedgerMsg:
		// The ledger is authoritative even on error: hearts fail open.
		s.heartCount = msg.Ledger.Hearts
		s.heartsKnown = true
		if s.heartCount > 0 {
			s.noHearts = false
		}
		return s, func() tea.Msg {
			return screen.HeartsChangedMsg{Hearts: msg.Ledger.Hearts}
		}

	case screen.HeartsChangedMsg:
		s.heartCount = msg.Hearts
		s.heartsKnown = true
		if s.heartCount > 0 {
			s.noHearts = false
		}
		return s, nil

	case gradePollMsg:
		return s.handleGradePoll()

	case lessonEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the focused text input.
	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonScreen) handlePagesLoaded(msg pagesLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.loadErr = msg.Err.Error()
		return s, nil
	}
	s.title = msg.Title
	if err := s.seq.SetPages(msg.Pages); err != nil {
		s.loadErr = err.Error()
		return s, nil
	}
	return s, s.enterPage()
}

// handleGradePoll consumes a finished AI grade or keeps polling.
func (s *LessonScreen) handleGradePoll() (screen.Screen, tea.Cmd) {
	if s.rt == nil || s.rt.Phase() != runtime.PhaseEvaluating {
		return s, nil
	}
	if s.deps.Grader == nil {
		return s, nil
	}

	out, ok := s.deps.Grader.Consume()
	if !ok {
		return s, gradePollCmd()
	}

	ev := s.rt.ApplyGrade(out.Feedback, out.Score, out.Err)
	if out.Err != nil {
		// Left unsubmitted; the learner can edit and resubmit.
		return s, nil
	}

	sc := out.Score
	correct := s.rt.Verdict() == runtime.VerdictCorrect
	s.answered++
	if correct {
		s.correct++
	}
	s.recordAnswer(correct, &sc)

	var cmds []tea.Cmd
	if !correct {
		cmds = append(cmds, s.spendHeart())
	}
	if ev == runtime.EventAdvance {
		cmds = append(cmds, s.advance())
	}
	return s, tea.Batch(cmds...)
}

// handleEnd runs the course-complete flow and hands off to the summary.
func (s *LessonScreen) handleEnd() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	if s.challenge {
		if s.deps.Daily != nil {
			_ = s.deps.Daily.MarkCompleted(ctx, s.deps.UserID)
		}
	} else if s.deps.Progress != nil {
		page, ok := s.seq.Current()
		if ok {
			_ = s.deps.Progress.MarkCompleted(ctx, s.deps.UserID, page.CourseID)
		}
	}

	sum := summary.New(summary.Stats{
		Title:     s.title,
		Pages:     s.seq.Len(),
		Answered:  s.answered,
		Correct:   s.correct,
		Challenge: s.challenge,
	})
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.loadErr != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Quit confirmation dialog.
	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.rt == nil {
		return s, nil
	}
	page := s.rt.Page()

	// Content-only pages: plain paging.
	if page.Type == content.PageText {
		switch key {
		case "enter", "right", "l", "space", " ":
			return s, s.advance()
		case "left", "b":
			return s, s.goBack()
		}
		return s, nil
	}

	// Grading in flight: only the poll loop may change state.
	if s.rt.Phase() == runtime.PhaseEvaluating {
		return s, nil
	}

	// Feedback panel open.
	if s.rt.FeedbackOpen() {
		switch key {
		case "enter", "space", " ":
			if _, ok := s.rt.Continue(); ok {
				return s, s.advance()
			}
			s.rt.Retry()
			s.grid.Selection = s.rt.Selection()
			s.grid.Dangling = 0
			s.grid.Reveal = false
			s.input.Reset()
			return s, nil
		case "w":
			s.rt.ToggleWhy()
			return s, nil
		case "r":
			s.rt.Reveal()
			s.grid.Reveal = s.rt.RevealOpen()
			s.grid.Answer = page.Answer
			return s, nil
		}
		return s, nil
	}

	// Free-text pages route keys to the input, except submit.
	if s.inputActive() {
		if key == "enter" {
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.rt.SetText(s.input.Value())
		return s, cmd
	}

	// Option pages.
	switch key {
	case "enter":
		if page.Type == content.PageTestSkippable {
			return s, s.advance()
		}
		return s, s.submit()
	case "space", " ":
		return s, s.toggleCursor()
	case "b":
		return s, s.goBack()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if s.grid.Select(int(key[0]-'0') - 1) {
			return s, s.toggleCursor()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.grid, cmd = s.grid.Update(msg)
	return s, cmd
}

// toggleCursor registers a click on the option under the cursor.
func (s *LessonScreen) toggleCursor() tea.Cmd {
	opt, ok := s.grid.CursorOption()
	if !ok {
		return nil
	}
	ev := s.rt.Toggle(opt.ID)
	s.grid.Selection = s.rt.Selection()
	s.grid.Dangling = s.rt.Dangling()
	s.grid.Reveal = false
	if ev == runtime.EventAdvance {
		return s.advance()
	}
	return nil
}

// submit evaluates the current selection, spending a heart on a wrong
// local answer and dispatching the grader on AI pages. At zero hearts
// test pages cannot be attempted.
func (s *LessonScreen) submit() tea.Cmd {
	if s.heartsKnown && s.heartCount == 0 {
		s.noHearts = true
		return nil
	}

	switch s.rt.Submit() {
	case runtime.SubmitRejected:
		return nil

	case runtime.SubmitValidated:
		correct := s.rt.Verdict() == runtime.VerdictCorrect
		if correct {
			s.correct++
		}
		s.answered++
		s.recordAnswer(correct, nil)
		if !correct {
			return s.spendHeart()
		}
		return nil

	case runtime.SubmitAwaitGrade:
		page := s.rt.Page()
		if s.deps.Grader == nil {
			s.rt.ApplyGrade("", 0, errGraderUnavailable)
			return nil
		}
		in := grader.Input{
			Question: page.Question,
			Subject:  page.Subject,
			Answer:   s.rt.Selection().Text,
		}
		if page.AI != nil {
			in.SystemPrompt = page.AI.SystemPrompt
			in.WantFeedback = page.AI.GiveFeedback
		}
		s.deps.Grader.Request(context.Background(), in)
		return gradePollCmd()
	}
	return nil
}

// advance consumes the runtime's branch decision and moves on. Past the
// last page the lesson ends.
func (s *LessonScreen) advance() tea.Cmd {
	branch := ""
	if s.rt != nil {
		branch, _ = s.rt.Continue()
	}
	if branch != "" && s.seq.Jump(branch) {
		return s.enterPage()
	}
	if s.seq.AtEnd() {
		return func() tea.Msg { return lessonEndMsg{} }
	}
	s.seq.Next()
	return s.enterPage()
}

func (s *LessonScreen) goBack() tea.Cmd {
	if !s.seq.Previous() {
		return nil
	}
	return s.enterPage()
}

// spendHeart persists the heart cost of a wrong answer.
func (s *LessonScreen) spendHeart() tea.Cmd {
	svc, userID := s.deps.Hearts, s.deps.UserID
	return func() tea.Msg {
		ledger, err := svc.Spend(context.Background(), userID)
		return heartLedgerMsg{Ledger: ledger, Err: err}
	}
}

// recordAnswer appends the answer event. Persistence failures never
// interrupt the lesson.
func (s *LessonScreen) recordAnswer(correct bool, aiScore *int) {
	if s.deps.Events == nil || s.rt == nil {
		return
	}
	page := s.rt.Page()
	sel := s.rt.Selection()
	_ = s.deps.Events.AppendAnswer(context.Background(), store.AnswerEventData{
		SessionID:     s.sessionID,
		CourseID:      page.CourseID,
		PageID:        page.ID,
		TestType:      string(page.Test),
		SelectionFlat: selectionFlat(sel),
		SelectionText: sel.Text,
		Correct:       correct,
		AIScore:       aiScore,
		TimeMs:        int(time.Since(s.pageShownAt).Milliseconds()),
	})
}

// inputActive reports whether the free-text input owns the keyboard.
func (s *LessonScreen) inputActive() bool {
	return s.rt != nil &&
		s.rt.Page().Test == content.TestInput &&
		s.rt.Page().Type == content.PageTest &&
		s.rt.Phase() == runtime.PhaseUnanswered &&
		!s.quitConfirm
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.rt == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	page := s.rt.Page()
	if page.Type == content.PageText {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Back"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if s.rt.FeedbackOpen() {
		hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		if s.rt.Verdict() == runtime.VerdictCorrect && page.Why != "" {
			hints = append(hints, layout.KeyHint{Key: "W", Description: "Why"})
		}
		if s.rt.Verdict() == runtime.VerdictIncorrect {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Reveal answer"})
		}
		return hints
	}
	if page.Test == content.TestInput {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// errGraderUnavailable is surfaced through the runtime's standard
// grading-failure path when no LLM provider is configured.
var errGraderUnavailable = errors.New("no grading provider configured")

// selectionFlat encodes a selection as the flat option-id list stored
// on answer events, using the same shape as the page answer encoding:
// Default is the single id, Multiple and Sequential list the clicked
// ids, Pluggable interleaves its canonical pairs. Free text encodes to
// nothing.
func selectionFlat(sel answer.Selection) []int {
	switch sel.Type {
	case content.TestDefault:
		if sel.Single == 0 {
			return nil
		}
		return []int{sel.Single}
	case content.TestMultiple:
		return append([]int(nil), sel.Set...)
	case content.TestSequential:
		return append([]int(nil), sel.Ordered...)
	case content.TestPluggable:
		var out []int
		for _, p := range sel.CompletedPairs() {
			out = append(out, p[0], p[1])
		}
		return out
	}
	return nil
}

// gradePollCmd schedules the next grade poll.
func gradePollCmd() tea.Cmd {
	return tea.Tick(gradePollInterval, func(t time.Time) tea.Msg {
		return gradePollMsg(t)
	})
}
