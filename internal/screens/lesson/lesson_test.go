package lesson

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/daily"
	"github.com/naghz/naghz/internal/hearts"
	"github.com/naghz/naghz/internal/router"
	"github.com/naghz/naghz/internal/screen"
	"github.com/naghz/naghz/internal/store"
)

// mockContentRepo implements store.ContentRepo over in-memory maps.
type mockContentRepo struct {
	courses map[string]store.Course
	pages   map[string][]content.Page
	options map[string][]content.Option
}

func (m *mockContentRepo) ListCourses(context.Context) ([]store.Course, error) {
	var out []store.Course
	for _, c := range m.courses {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockContentRepo) GetCourse(_ context.Context, courseID string) (*store.Course, error) {
	if c, ok := m.courses[courseID]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *mockContentRepo) ListPages(_ context.Context, courseID string) ([]content.Page, error) {
	return m.pages[courseID], nil
}

func (m *mockContentRepo) ListOptions(_ context.Context, pageID string) ([]content.Option, error) {
	return m.options[pageID], nil
}

func (m *mockContentRepo) PutCourse(context.Context, store.Course) error        { return nil }
func (m *mockContentRepo) PutPage(context.Context, content.Page) error          { return nil }
func (m *mockContentRepo) PutOptions(context.Context, string, []content.Option) error {
	return nil
}

// mockEventRepo records appended answer events.
type mockEventRepo struct {
	answers []store.AnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func (m *mockEventRepo) QueryLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

// mockProgressRepo records progress marks.
type mockProgressRepo struct {
	reached   map[string]int
	completed map[string]bool
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{reached: map[string]int{}, completed: map[string]bool{}}
}

func (m *mockProgressRepo) Get(context.Context, string, string) (*store.Progress, error) {
	return nil, nil
}

func (m *mockProgressRepo) MarkReached(_ context.Context, _, courseID string, n int) error {
	if n > m.reached[courseID] {
		m.reached[courseID] = n
	}
	return nil
}

func (m *mockProgressRepo) MarkCompleted(_ context.Context, _, courseID string) error {
	m.completed[courseID] = true
	return nil
}

// mockHeartRepo implements hearts.Repo over a single in-memory row.
type mockHeartRepo struct {
	ledger *hearts.Ledger
}

func (m *mockHeartRepo) Get(context.Context, string) (*hearts.Ledger, error) {
	return m.ledger, nil
}

func (m *mockHeartRepo) Put(_ context.Context, userID string, heartsLeft int, updatedAt time.Time) error {
	m.ledger = &hearts.Ledger{UserID: userID, Hearts: heartsLeft, UpdatedAt: updatedAt}
	return nil
}

func (m *mockHeartRepo) Refill(_ context.Context, userID string) (*hearts.Ledger, error) {
	if m.ledger == nil {
		m.ledger = &hearts.Ledger{UserID: userID, Hearts: hearts.Max, UpdatedAt: time.Now()}
	}
	return m.ledger, nil
}

// mockDailyRepo implements store.DailyRepo.
type mockDailyRepo struct {
	flags store.DailyFlags
}

func (m *mockDailyRepo) Get(context.Context, string) (*store.DailyFlags, error) {
	return &m.flags, nil
}

func (m *mockDailyRepo) SetShown(_ context.Context, _, day string) error {
	m.flags.LastShown = day
	return nil
}

func (m *mockDailyRepo) SetDeclined(_ context.Context, _ string, until time.Time) error {
	m.flags.DeclinedUntil = until
	return nil
}

func (m *mockDailyRepo) SetCompleted(_ context.Context, _, day string) error {
	m.flags.CompletedDay = day
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type testEnv struct {
	events   *mockEventRepo
	progress *mockProgressRepo
	dailyRep *mockDailyRepo
	content  *mockContentRepo
}

func testDeps() (Deps, *testEnv) {
	env := &testEnv{
		events:   &mockEventRepo{},
		progress: newMockProgressRepo(),
		dailyRep: &mockDailyRepo{},
		content: &mockContentRepo{
			courses: map[string]store.Course{},
			pages:   map[string][]content.Page{},
			options: map[string][]content.Option{},
		},
	}
	deps := Deps{
		Content:  env.content,
		Events:   env.events,
		Progress: env.progress,
		Hearts:   hearts.NewService(&mockHeartRepo{}, nil),
		Daily:    daily.NewService(env.dailyRep, nil),
		UserID:   "test-user",
	}
	return deps, env
}

// press feeds one key and returns the resulting command.
func press(t *testing.T, s *LessonScreen, msg tea.KeyPressMsg) tea.Cmd {
	t.Helper()
	scr, cmd := s.Update(msg)
	if scr != screen.Screen(s) {
		t.Fatal("expected Update to return the same screen")
	}
	return cmd
}

func testChallenge(t *testing.T) (*LessonScreen, *testEnv) {
	t.Helper()
	deps, env := testDeps()
	s, err := NewChallenge(deps)
	if err != nil {
		t.Fatalf("NewChallenge: %v", err)
	}
	return s, env
}

func TestLessonScreen_Challenge_Title(t *testing.T) {
	s, _ := testChallenge(t)
	if s.Title() != "Daily Challenge" {
		t.Errorf("Title = %q, want %q", s.Title(), "Daily Challenge")
	}
	if s.rt == nil {
		t.Fatal("expected challenge pages to be renderable immediately")
	}
	if s.rt.Page().Type != content.PageText {
		t.Errorf("first page type = %q, want text", s.rt.Page().Type)
	}
}

func TestLessonScreen_TextPage_Advances(t *testing.T) {
	s, _ := testChallenge(t)

	press(t, s, specialKey(tea.KeyEnter))
	if s.rt == nil || s.rt.Page().ID != "dc-2" {
		t.Fatalf("expected dc-2 after Enter on text page")
	}

	// Back returns to the intro page.
	press(t, s, keyPress('b'))
	if s.rt.Page().ID != "dc-1" {
		t.Errorf("page = %q, want dc-1 after back", s.rt.Page().ID)
	}
}

func TestLessonScreen_CorrectAnswer(t *testing.T) {
	s, env := testChallenge(t)
	press(t, s, specialKey(tea.KeyEnter)) // to dc-2

	// Number key jumps to the option and toggles it.
	press(t, s, keyPress('2'))
	cmd := press(t, s, specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no heart spend on a correct answer")
	}

	if s.answered != 1 || s.correct != 1 {
		t.Errorf("tally = %d/%d, want 1/1", s.correct, s.answered)
	}
	if !s.rt.FeedbackOpen() {
		t.Error("expected feedback panel after submit")
	}
	if len(env.events.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(env.events.answers))
	}
	ev := env.events.answers[0]
	if !ev.Correct {
		t.Error("expected recorded answer to be correct")
	}
	if len(ev.SelectionFlat) != 1 || ev.SelectionFlat[0] != 2 {
		t.Errorf("SelectionFlat = %v, want [2]", ev.SelectionFlat)
	}

	// Continue moves to the next page.
	press(t, s, specialKey(tea.KeyEnter))
	if s.rt.Page().ID != "dc-3" {
		t.Errorf("page = %q, want dc-3 after continue", s.rt.Page().ID)
	}
}

func TestLessonScreen_WrongAnswer_SpendsHeart(t *testing.T) {
	s, env := testChallenge(t)
	press(t, s, specialKey(tea.KeyEnter)) // to dc-2

	press(t, s, keyPress('1')) // Venus, wrong
	cmd := press(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a heart spend command on a wrong answer")
	}

	msg := cmd()
	ledger, ok := msg.(heartLedgerMsg)
	if !ok {
		t.Fatalf("msg = %T, want heartLedgerMsg", msg)
	}
	if ledger.Ledger.Hearts != hearts.Max-1 {
		t.Errorf("hearts = %d, want %d", ledger.Ledger.Hearts, hearts.Max-1)
	}

	s.Update(msg)
	if s.heartCount != hearts.Max-1 {
		t.Errorf("heartCount = %d, want %d", s.heartCount, hearts.Max-1)
	}

	if len(env.events.answers) != 1 || env.events.answers[0].Correct {
		t.Error("expected one incorrect answer event")
	}
}

func TestLessonScreen_ZeroHearts_BlocksSubmit(t *testing.T) {
	s, env := testChallenge(t)
	press(t, s, specialKey(tea.KeyEnter)) // to dc-2

	s.Update(screen.HeartsChangedMsg{Hearts: 0})
	press(t, s, keyPress('2'))
	press(t, s, specialKey(tea.KeyEnter))

	if !s.noHearts {
		t.Error("expected the out-of-hearts notice")
	}
	if len(env.events.answers) != 0 {
		t.Error("expected no answer event while out of hearts")
	}

	// A regained heart lifts the gate.
	s.Update(screen.HeartsChangedMsg{Hearts: 1})
	if s.noHearts {
		t.Error("expected the notice to clear when hearts return")
	}
	press(t, s, specialKey(tea.KeyEnter))
	if len(env.events.answers) != 1 {
		t.Error("expected the submission to go through with a heart")
	}
}

func TestLessonScreen_QuitConfirm(t *testing.T) {
	s, _ := testChallenge(t)

	press(t, s, specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	press(t, s, keyPress('n'))
	if s.quitConfirm {
		t.Error("expected N to dismiss the confirmation")
	}

	press(t, s, specialKey(tea.KeyEscape))
	cmd := press(t, s, keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected quit confirmation to pop the screen")
	}
}

func TestLessonScreen_ChallengeComplete(t *testing.T) {
	s, env := testChallenge(t)

	// dc-1 text page.
	press(t, s, specialKey(tea.KeyEnter))
	// dc-2 single choice.
	press(t, s, keyPress('2'))
	press(t, s, specialKey(tea.KeyEnter))
	press(t, s, specialKey(tea.KeyEnter))
	// dc-3 ordering: smallest to largest is 3, 1, 4, 2.
	for _, k := range "3142" {
		press(t, s, keyPress(k))
	}
	press(t, s, specialKey(tea.KeyEnter))
	press(t, s, specialKey(tea.KeyEnter))
	// dc-4 is skippable; Enter ends the lesson.
	if s.rt == nil || s.rt.Page().ID != "dc-4" {
		t.Fatalf("expected dc-4, got %+v", s.rt)
	}
	cmd := press(t, s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected an end-of-lesson command")
	}
	if _, ok := cmd().(lessonEndMsg); !ok {
		t.Fatalf("expected lessonEndMsg, got %T", cmd())
	}

	_, endCmd := s.Update(lessonEndMsg{})
	if endCmd == nil {
		t.Fatal("expected a handoff command at lesson end")
	}
	rep, ok := endCmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", endCmd())
	}
	if rep.Screen.Title() != "Challenge Complete" {
		t.Errorf("summary title = %q, want Challenge Complete", rep.Screen.Title())
	}

	if env.dailyRep.flags.CompletedDay == "" {
		t.Error("expected the challenge completion day to be recorded")
	}
	if s.answered != 2 || s.correct != 2 {
		t.Errorf("tally = %d/%d, want 2/2", s.correct, s.answered)
	}
}

func TestLessonScreen_Live_LoadsPagesAndOptions(t *testing.T) {
	deps, env := testDeps()
	env.content.courses["c1"] = store.Course{ID: "c1", Title: "Course One"}
	env.content.pages["c1"] = []content.Page{
		{
			ID: "p1", CourseID: "c1", Number: 1, Length: 1,
			Type: content.PageTest, Test: content.TestDefault,
			Grid:     content.GridColumn,
			Question: "Pick one.",
			Answer:   content.SingleAnswer(1),
		},
	}
	env.content.options["p1"] = []content.Option{
		{ID: 1, Text: "Yes", Order: 1},
		{ID: 2, Text: "No", Order: 2},
	}

	s := New(deps, "c1", 1)

	msg := s.loadPages()()
	_, cmd := s.Update(msg)
	if s.title != "Course One" {
		t.Errorf("title = %q, want Course One", s.title)
	}
	if cmd == nil {
		t.Fatal("expected an option fetch for the first page")
	}

	s.Update(cmd())
	if s.rt == nil {
		t.Fatal("expected the page to become renderable after options arrive")
	}
	if got := len(s.rt.Page().Options); got != 2 {
		t.Errorf("options = %d, want 2", got)
	}
	if env.progress.reached["c1"] != 1 {
		t.Errorf("reached = %d, want 1", env.progress.reached["c1"])
	}
}

func TestLessonScreen_View_NonEmpty(t *testing.T) {
	s, _ := testChallenge(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
