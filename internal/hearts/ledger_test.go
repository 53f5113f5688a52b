package hearts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepo implements Repo in memory.
type mockRepo struct {
	rows    map[string]*Ledger
	failGet bool
	failPut bool
	now     func() time.Time
}

func newMockRepo(now func() time.Time) *mockRepo {
	return &mockRepo{rows: make(map[string]*Ledger), now: now}
}

func (m *mockRepo) Get(_ context.Context, userID string) (*Ledger, error) {
	if m.failGet {
		return nil, errors.New("store unreachable")
	}
	row, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (m *mockRepo) Put(_ context.Context, userID string, hearts int, updatedAt time.Time) error {
	if m.failPut {
		return errors.New("store unreachable")
	}
	m.rows[userID] = &Ledger{UserID: userID, Hearts: hearts, UpdatedAt: updatedAt}
	return nil
}

func (m *mockRepo) Refill(_ context.Context, userID string) (*Ledger, error) {
	row, ok := m.rows[userID]
	if !ok {
		return &Ledger{UserID: userID, Hearts: Max}, nil
	}
	now := m.now()
	row.Hearts = RegenerateHearts(row.Hearts, row.UpdatedAt, now)
	row.UpdatedAt = now
	cp := *row
	return &cp, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFetchSynthesizesDefault(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMockRepo(fixedClock(now))
	svc := NewService(repo, fixedClock(now))

	l, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, Max, l.Hearts)
	assert.True(t, l.UpdatedAt.IsZero())
	// Fetch must not materialize the row.
	assert.Empty(t, repo.rows)
}

func TestFetchFailsOpen(t *testing.T) {
	repo := newMockRepo(time.Now)
	repo.failGet = true
	svc := NewService(repo, nil)

	l, err := svc.Fetch(context.Background(), "u1")
	require.Error(t, err)
	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, Max, l.Hearts, "hearts default to full on fetch failure")
}

func TestSpendFloorsAtZero(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMockRepo(fixedClock(now))
	svc := NewService(repo, fixedClock(now))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		l, err := svc.Spend(ctx, "u1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, l.Hearts, 0)
	}

	l, err := svc.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Hearts)
	assert.Equal(t, now, l.UpdatedAt)
}

func TestRegainCapsAtMax(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMockRepo(fixedClock(now))
	svc := NewService(repo, fixedClock(now))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		l, err := svc.Regain(ctx, "u1")
		require.NoError(t, err)
		assert.LessOrEqual(t, l.Hearts, Max)
	}

	l, err := svc.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, Max, l.Hearts)
}

func TestSpendCreatesRowLazily(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMockRepo(fixedClock(now))
	svc := NewService(repo, fixedClock(now))

	l, err := svc.Spend(context.Background(), "new-user")
	require.NoError(t, err)
	assert.Equal(t, Max-1, l.Hearts)
	require.Contains(t, repo.rows, "new-user")
}

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// 700s elapsed of a 600s window: nothing remains, never negative.
	assert.Equal(t, time.Duration(0), Remaining(now.Add(-700*time.Second), now))

	// 100s elapsed: 500s remain.
	assert.Equal(t, 500*time.Second, Remaining(now.Add(-100*time.Second), now))

	// Zero timestamp owes nothing.
	assert.Equal(t, time.Duration(0), Remaining(time.Time{}, now))
}

func TestRegenerateHearts(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// One full window regenerates one heart.
	assert.Equal(t, 2, RegenerateHearts(1, now.Add(-RegenWindow), now))

	// Three windows from zero refill completely, capped at Max.
	assert.Equal(t, Max, RegenerateHearts(0, now.Add(-4*RegenWindow), now))

	// Partial window regenerates nothing.
	assert.Equal(t, 1, RegenerateHearts(1, now.Add(-RegenWindow/2), now))

	// Full hearts stay put.
	assert.Equal(t, Max, RegenerateHearts(Max, now.Add(-10*RegenWindow), now))
}

func TestRefillReconciles(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMockRepo(fixedClock(now))
	repo.rows["u1"] = &Ledger{UserID: "u1", Hearts: 1, UpdatedAt: now.Add(-2 * RegenWindow)}
	svc := NewService(repo, fixedClock(now))

	l, err := svc.Refill(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Hearts)
	assert.Equal(t, now, l.UpdatedAt)
}

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var c Countdown
	// Full hearts: no countdown.
	c.Reconcile(Ledger{Hearts: Max, UpdatedAt: now}, now)
	assert.False(t, c.Active())
	assert.False(t, c.Tick())

	// Missing hearts: countdown mirrors server remaining time.
	c.Reconcile(Ledger{Hearts: 1, UpdatedAt: now.Add(-598 * time.Second)}, now)
	assert.True(t, c.Active())
	assert.Equal(t, 2*time.Second, c.Remaining())

	assert.False(t, c.Tick())
	assert.True(t, c.Tick(), "reaching zero signals a regain")
	assert.Equal(t, RegenWindow, c.Remaining(), "countdown restarts at the full window")
}
