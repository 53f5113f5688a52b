package daily

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naghz/naghz/internal/sequencer"
	"github.com/naghz/naghz/internal/store"
)

func TestShouldPrompt(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	today := Day(now)

	tests := []struct {
		name          string
		lastShown     string
		completedDay  string
		declinedUntil time.Time
		want          bool
	}{
		{"fresh user", "", "", time.Time{}, true},
		{"shown yesterday", "2026-08-27", "", time.Time{}, true},
		{"already shown today", today, "", time.Time{}, false},
		{"completed today", "", today, time.Time{}, false},
		{"declined until tomorrow", "", "", now.Add(12 * time.Hour), false},
		{"decline expired", "", "", now.Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldPrompt(today, tt.lastShown, tt.completedDay, tt.declinedUntil, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// flagRepo is an in-memory store.DailyRepo.
type flagRepo struct {
	flags map[string]*store.DailyFlags
	fail  bool
}

func newFlagRepo() *flagRepo {
	return &flagRepo{flags: make(map[string]*store.DailyFlags)}
}

func (r *flagRepo) Get(_ context.Context, userID string) (*store.DailyFlags, error) {
	if r.fail {
		return nil, errors.New("store unreachable")
	}
	return r.flags[userID], nil
}

func (r *flagRepo) row(userID string) *store.DailyFlags {
	if r.flags[userID] == nil {
		r.flags[userID] = &store.DailyFlags{UserID: userID}
	}
	return r.flags[userID]
}

func (r *flagRepo) SetShown(_ context.Context, userID, day string) error {
	r.row(userID).LastShown = day
	return nil
}

func (r *flagRepo) SetDeclined(_ context.Context, userID string, until time.Time) error {
	r.row(userID).DeclinedUntil = until
	return nil
}

func (r *flagRepo) SetCompleted(_ context.Context, userID, day string) error {
	r.row(userID).CompletedDay = day
	return nil
}

func TestServicePromptLifecycle(t *testing.T) {
	repo := newFlagRepo()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)
	svc := NewService(repo, func() time.Time { return now })
	ctx := context.Background()

	assert.True(t, svc.ShouldPrompt(ctx, "u1"))

	require.NoError(t, svc.MarkShown(ctx, "u1"))
	assert.False(t, svc.ShouldPrompt(ctx, "u1"))

	// Next morning the prompt is due again.
	now = now.AddDate(0, 0, 1)
	assert.True(t, svc.ShouldPrompt(ctx, "u1"))

	// Declining suppresses it for the rest of the day.
	require.NoError(t, svc.Decline(ctx, "u1"))
	assert.False(t, svc.ShouldPrompt(ctx, "u1"))
	now = now.AddDate(0, 0, 1)
	assert.True(t, svc.ShouldPrompt(ctx, "u1"))

	require.NoError(t, svc.MarkCompleted(ctx, "u1"))
	assert.False(t, svc.ShouldPrompt(ctx, "u1"))
}

func TestServiceStoreFailureSuppressesPrompt(t *testing.T) {
	repo := newFlagRepo()
	repo.fail = true
	svc := NewService(repo, nil)

	assert.False(t, svc.ShouldPrompt(context.Background(), "u1"))
}

func TestChallengeLoadsPreloaded(t *testing.T) {
	pages, options := Challenge()

	s, err := sequencer.NewPreloaded(pages, options, 1)
	require.NoError(t, err)
	assert.True(t, s.Ready())
	assert.Equal(t, len(pages), s.Len())

	// Every test page can resolve its answer against its own options.
	for _, p := range pages {
		if !p.IsTest() || p.Type != "test" {
			continue
		}
		opts := options[p.ID]
		for _, id := range append(p.Answer.IDs, p.Answer.Single) {
			if id == 0 {
				continue
			}
			found := false
			for _, o := range opts {
				if o.ID == id {
					found = true
				}
			}
			assert.True(t, found, "page %s references unknown option %d", p.ID, id)
		}
	}
}
