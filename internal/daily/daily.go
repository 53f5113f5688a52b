// Package daily decides when to offer the daily challenge and carries
// its preloaded content. The prompt decision is a pure function over
// calendar dates; persistence of the dates lives in the store's
// DailyFlag repo.
package daily

import (
	"context"
	"time"

	"github.com/naghz/naghz/internal/store"
)

// DayFormat renders a time as the calendar-day key flags are stored
// under. Days compare by string equality in the user's local zone.
const DayFormat = "2006-01-02"

// Day returns the calendar-day key for an instant.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ShouldPrompt reports whether the challenge prompt is due. It is shown
// at most once per calendar day, never again on a day the challenge was
// already completed, and not while a decline suppression is running.
func ShouldPrompt(today, lastShown, completedDay string, declinedUntil, now time.Time) bool {
	if lastShown == today || completedDay == today {
		return false
	}
	if !declinedUntil.IsZero() && now.Before(declinedUntil) {
		return false
	}
	return true
}

// Service applies the prompt policy on top of the flag repo.
type Service struct {
	repo store.DailyRepo
	now  func() time.Time
}

// NewService creates a daily service. A nil clock uses time.Now.
func NewService(repo store.DailyRepo, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, now: clock}
}

// ShouldPrompt reads the user's flags and runs the prompt decision.
// A store failure suppresses the prompt rather than surfacing an error;
// the challenge stays reachable from the menu either way.
func (s *Service) ShouldPrompt(ctx context.Context, userID string) bool {
	now := s.now()
	flags, err := s.repo.Get(ctx, userID)
	if err != nil {
		return false
	}
	if flags == nil {
		return true
	}
	return ShouldPrompt(Day(now), flags.LastShown, flags.CompletedDay, flags.DeclinedUntil, now)
}

// MarkShown records that the prompt was displayed today.
func (s *Service) MarkShown(ctx context.Context, userID string) error {
	return s.repo.SetShown(ctx, userID, Day(s.now()))
}

// Decline suppresses the prompt until the start of the next calendar day.
func (s *Service) Decline(ctx context.Context, userID string) error {
	now := s.now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return s.repo.SetDeclined(ctx, userID, tomorrow)
}

// MarkCompleted records that today's challenge was finished.
func (s *Service) MarkCompleted(ctx context.Context, userID string) error {
	return s.repo.SetCompleted(ctx, userID, Day(s.now()))
}
