// Package grader scores free-response answers through the LLM layer.
// Grading runs asynchronously: the lesson screen calls Request on
// submit and polls Consume from its tick loop, mirroring how every
// other slow call in the app stays off the render path.
package grader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/naghz/naghz/internal/llm"
	"github.com/naghz/naghz/internal/score"
)

// Input carries everything the oracle needs to grade one answer.
type Input struct {
	// SystemPrompt is the page-authored grading persona. Empty falls
	// back to the built-in rubric.
	SystemPrompt string

	Question string
	Subject  string
	Answer   string

	// WantFeedback requests a qualitative feedback paragraph in
	// addition to the numeric score.
	WantFeedback bool
}

// Outcome is the result of one grading run. Err is set when either call
// failed terminally; Feedback may be empty when it was not requested.
type Outcome struct {
	Feedback string
	Score    int
	Err      error
}

// Service grades answers asynchronously. Only one grade is in-flight at
// a time; a new request replaces a pending unconsumed result.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending Outcome
	ready   bool
}

// NewService creates a grading service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async grading of the given answer.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		out := s.grade(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = out
		s.ready = true
	}()
}

// Consume returns the pending outcome if one is ready. After
// consumption the pending slot is cleared.
func (s *Service) Consume() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Outcome{}, false
	}
	out := s.pending
	s.pending = Outcome{}
	s.ready = false
	return out, true
}

func (s *Service) grade(ctx context.Context, input Input) Outcome {
	var out Outcome

	if input.WantFeedback {
		fb, err := s.feedback(ctx, input)
		if err != nil {
			out.Err = fmt.Errorf("feedback: %w", err)
			return out
		}
		out.Feedback = fb
	}

	sc, err := s.score(ctx, input)
	if err != nil {
		out.Err = fmt.Errorf("score: %w", err)
		return out
	}
	out.Score = sc
	return out
}

// feedback runs the qualitative call. The response is free text shown
// to the learner verbatim.
func (s *Service) feedback(ctx context.Context, input Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt(input),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   s.cfg.FeedbackMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return trimQuoted(string(resp.Content)), nil
}

// scoreOutput is the structured form the score call asks for.
type scoreOutput struct {
	Score *float64 `json:"score"`
}

// score runs the numeric call. The provider is asked for structured
// {"score": n} output; when the model ignores the schema the raw text
// is salvaged by scanning it for the first number. Only a reply with no
// number at all is a hard failure.
func (s *Service) score(ctx context.Context, input Input) (int, error) {
	ctx = llm.WithPurpose(ctx, "score")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: scoreSystemPrompt(input),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ScoreSchema,
		MaxTokens:   s.cfg.ScoreMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		if inv, ok := errInvalidContent(err); ok {
			return score.Parse(string(inv))
		}
		return 0, err
	}

	var out scoreOutput
	if jsonErr := json.Unmarshal(resp.Content, &out); jsonErr == nil && out.Score != nil {
		return score.Clamp(int(*out.Score + 0.5)), nil
	}
	return score.Parse(string(resp.Content))
}

// errInvalidContent extracts salvageable content from a schema
// validation failure.
func errInvalidContent(err error) (json.RawMessage, bool) {
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) && len(inv.Content) > 0 {
		return inv.Content, true
	}
	return nil, false
}

// trimQuoted strips a surrounding JSON string quote pair, which some
// providers add around plain-text responses.
func trimQuoted(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal([]byte(s), &unquoted); err == nil {
			return unquoted
		}
	}
	return s
}
