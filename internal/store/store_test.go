package store

import (
	"context"
	"testing"
	"time"

	"github.com/naghz/naghz/internal/content"
	"github.com/naghz/naghz/internal/hearts"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestHeartRepoLazyRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.HeartRepo()
	ctx := context.Background()

	row, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil ledger for unknown user, got %+v", row)
	}

	now := time.Now().Truncate(time.Second)
	if err := repo.Put(ctx, "u1", 2, now); err != nil {
		t.Fatalf("put: %v", err)
	}

	row, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get after put: %v", err)
	}
	if row == nil || row.Hearts != 2 {
		t.Fatalf("expected 2 hearts, got %+v", row)
	}

	// Put is an upsert, not an append.
	if err := repo.Put(ctx, "u1", 1, now.Add(time.Minute)); err != nil {
		t.Fatalf("second put: %v", err)
	}
	row, _ = repo.Get(ctx, "u1")
	if row.Hearts != 1 {
		t.Fatalf("expected 1 heart after update, got %d", row.Hearts)
	}
}

func TestHeartRepoRefill(t *testing.T) {
	s := openTestStore(t)
	repo := s.HeartRepo()
	ctx := context.Background()

	// Two full windows have elapsed since the learner dropped to 0.
	stale := time.Now().Add(-2 * hearts.RegenWindow)
	if err := repo.Put(ctx, "u1", 0, stale); err != nil {
		t.Fatalf("put: %v", err)
	}

	row, err := repo.Refill(ctx, "u1")
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if row.Hearts != 2 {
		t.Fatalf("expected 2 regenerated hearts, got %d", row.Hearts)
	}

	// A second refill right away changes nothing.
	again, err := repo.Refill(ctx, "u1")
	if err != nil {
		t.Fatalf("second refill: %v", err)
	}
	if again.Hearts != 2 {
		t.Fatalf("expected refill to be idempotent, got %d", again.Hearts)
	}
}

func TestContentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	if err := repo.PutCourse(ctx, Course{ID: "c1", Title: "Fractions", Subject: "math"}); err != nil {
		t.Fatalf("put course: %v", err)
	}

	pages := []content.Page{
		{
			ID: "p1", CourseID: "c1", Number: 1, Length: 3,
			Type: content.PageText, Body: "welcome",
		},
		{
			ID: "p2", CourseID: "c1", Number: 2, Length: 3,
			Type: content.PageTest, Test: content.TestPluggable,
			Grid: content.GridTwoColumn, Question: "match them",
			Answer: content.PairAnswer([2]int{1, 3}, [2]int{2, 4}),
		},
		{
			ID: "p3", CourseID: "c1", Number: 3, Length: 3,
			Type: content.PageTest, Test: content.TestInput,
			Question: "explain in your own words",
			Answer:   content.TextAnswer(""),
			AI: &content.AIGrading{
				GiveFeedback:    true,
				ScoreThreshold:  60,
				LowScorePageID:  "p2",
				HighScorePageID: "",
				SystemPrompt:    "grade strictly",
				Tip:             "reread the intro",
			},
		},
	}
	for _, p := range pages {
		if err := repo.PutPage(ctx, p); err != nil {
			t.Fatalf("put page %s: %v", p.ID, err)
		}
	}
	opts := []content.Option{
		{ID: 1, Text: "1/2", Order: 1},
		{ID: 2, Text: "1/4", Order: 2},
		{ID: 3, Text: "0.5", Order: 3},
		{ID: 4, Text: "0.25", Order: 4},
	}
	if err := repo.PutOptions(ctx, "p2", opts); err != nil {
		t.Fatalf("put options: %v", err)
	}

	got, err := repo.ListPages(ctx, "c1")
	if err != nil {
		t.Fatalf("list pages: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(got))
	}
	if got[0].ID != "p1" || got[1].ID != "p2" || got[2].ID != "p3" {
		t.Fatalf("pages out of order: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}

	quiz := got[1]
	if quiz.Answer.Type != content.TestPluggable || len(quiz.Answer.Pairs) != 2 {
		t.Fatalf("pluggable answer did not round trip: %+v", quiz.Answer)
	}
	if quiz.Answer.Pairs[0] != [2]int{1, 3} {
		t.Fatalf("pair mismatch: %v", quiz.Answer.Pairs[0])
	}

	ai := got[2]
	if ai.AI == nil {
		t.Fatal("AI grading block was dropped")
	}
	if ai.AI.ScoreThreshold != 60 || ai.AI.LowScorePageID != "p2" || ai.AI.Tip != "reread the intro" {
		t.Fatalf("AI block did not round trip: %+v", ai.AI)
	}

	gotOpts, err := repo.ListOptions(ctx, "p2")
	if err != nil {
		t.Fatalf("list options: %v", err)
	}
	if len(gotOpts) != 4 || gotOpts[2].Text != "0.5" {
		t.Fatalf("options did not round trip: %+v", gotOpts)
	}
}

func TestPutPageIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	p := content.Page{
		ID: "p1", CourseID: "c1", Number: 1, Length: 1,
		Type: content.PageTest, Test: content.TestDefault,
		Answer: content.SingleAnswer(2),
	}
	if err := repo.PutPage(ctx, p); err != nil {
		t.Fatalf("put: %v", err)
	}

	p.Answer = content.SingleAnswer(3)
	if err := repo.PutPage(ctx, p); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	got, err := repo.ListPages(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Answer.Single != 3 {
		t.Fatalf("expected one page with updated answer, got %+v", got)
	}
}

func TestProgressMonotonic(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.MarkReached(ctx, "u1", "c1", 4); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// Paging back to page 2 must not regress the resume point.
	if err := repo.MarkReached(ctx, "u1", "c1", 2); err != nil {
		t.Fatalf("mark backwards: %v", err)
	}

	row, err := repo.Get(ctx, "u1", "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.PageNumber != 4 {
		t.Fatalf("expected resume point 4, got %d", row.PageNumber)
	}

	if err := repo.MarkCompleted(ctx, "u1", "c1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	row, _ = repo.Get(ctx, "u1", "c1")
	if !row.Completed {
		t.Fatal("expected completed flag")
	}
}

func TestDailyFlags(t *testing.T) {
	s := openTestStore(t)
	repo := s.DailyRepo()
	ctx := context.Background()

	row, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil flags for unknown user, got %+v", row)
	}

	if err := repo.SetShown(ctx, "u1", "2026-08-28"); err != nil {
		t.Fatalf("set shown: %v", err)
	}
	until := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	if err := repo.SetDeclined(ctx, "u1", until); err != nil {
		t.Fatalf("set declined: %v", err)
	}
	if err := repo.SetCompleted(ctx, "u1", "2026-08-28"); err != nil {
		t.Fatalf("set completed: %v", err)
	}

	row, err = repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get after set: %v", err)
	}
	if row.LastShown != "2026-08-28" || row.CompletedDay != "2026-08-28" {
		t.Fatalf("flags did not round trip: %+v", row)
	}
	if !row.DeclinedUntil.Equal(until) {
		t.Fatalf("declined until = %v, want %v", row.DeclinedUntil, until)
	}
}

func TestEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	score := 85
	events := []AnswerEventData{
		{SessionID: "s1", CourseID: "c1", PageID: "p2", TestType: "Default",
			SelectionFlat: []int{2}, Correct: true, TimeMs: 1200},
		{SessionID: "s1", CourseID: "c1", PageID: "p3", TestType: "Input",
			SelectionText: "my answer", Correct: true, AIScore: &score, TimeMs: 9000},
	}
	for _, e := range events {
		if err := repo.AppendAnswer(ctx, e); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-1", Purpose: "score",
		LatencyMs: 42, Success: true,
	}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	got, err := repo.QueryLLMRequests(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 LLM event, got %d", len(got))
	}
	// The LLM call landed after both answers in the shared sequence.
	if got[0].Sequence < 3 {
		t.Fatalf("expected cross-type sequence >= 3, got %d", got[0].Sequence)
	}
}
