package grader

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/naghz/naghz/internal/llm"
	"github.com/naghz/naghz/internal/score"
)

func gradeInput(wantFeedback bool) Input {
	return Input{
		Question:     "Explain why the sky is blue.",
		Subject:      "physics",
		Answer:       "Because blue light scatters more in the atmosphere.",
		WantFeedback: wantFeedback,
	}
}

// await polls Consume the way the lesson screen's tick loop does.
func await(t *testing.T, svc *Service) Outcome {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := svc.Consume(); ok {
			return out
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("grade never completed")
	return Outcome{}
}

func TestGradeWithFeedbackAndScore(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Good reasoning, but mention wavelength.`)},
		llm.MockResponse{Content: json.RawMessage(`{"score":85}`)},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), gradeInput(true))
	out := await(t, svc)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Feedback != "Good reasoning, but mention wavelength." {
		t.Errorf("feedback = %q", out.Feedback)
	}
	if out.Score != 85 {
		t.Errorf("score = %d, want 85", out.Score)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls, got %d", mock.CallCount())
	}
}

func TestGradeScoreOnly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":40.6}`)},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), gradeInput(false))
	out := await(t, svc)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Feedback != "" {
		t.Errorf("expected no feedback, got %q", out.Feedback)
	}
	if out.Score != 41 {
		t.Errorf("score = %d, want 41 (rounded)", out.Score)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGradeSalvagesFreeTextScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`I'd give this 72 out of 100.`, 72},
		{`result: 142/100`, 100},
		{`Score: -5`, 0},
	}

	for _, tt := range tests {
		mock := llm.NewMockProvider(
			llm.MockResponse{Content: json.RawMessage(tt.raw)},
		)
		svc := NewService(mock, DefaultConfig())

		svc.Request(t.Context(), gradeInput(false))
		out := await(t, svc)

		if out.Err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.raw, out.Err)
		}
		if out.Score != tt.want {
			t.Errorf("%q: score = %d, want %d", tt.raw, out.Score, tt.want)
		}
	}
}

func TestGradeSalvagesInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(`Score: 63`),
			Err:     errors.New("schema validation failed"),
		}},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), gradeInput(false))
	out := await(t, svc)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Score != 63 {
		t.Errorf("score = %d, want 63", out.Score)
	}
}

func TestGradeNoNumberIsHardFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`The answer shows good understanding.`)},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), gradeInput(false))
	out := await(t, svc)

	if out.Err == nil {
		t.Fatal("expected error for scoreless reply")
	}
	var noScore *score.NoScoreError
	if !errors.As(out.Err, &noScore) {
		t.Fatalf("expected NoScoreError, got %T: %v", out.Err, out.Err)
	}
}

func TestGradeFeedbackFailureShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), gradeInput(true))
	out := await(t, svc)

	if out.Err == nil {
		t.Fatal("expected error when feedback call fails")
	}
	if mock.CallCount() != 1 {
		t.Errorf("score call should not run after feedback failure, got %d calls", mock.CallCount())
	}
}

func TestConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":90}`)},
	)
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), gradeInput(false))
	await(t, svc)

	if _, ok := svc.Consume(); ok {
		t.Fatal("second consume should find nothing")
	}
}
