// Package hearts tracks the bounded lives resource. A learner holds
// between 0 and 3 hearts; spent hearts regenerate one per fixed window.
// The store holds the authoritative ledger; the in-process countdown is
// an optimistic mirror for display only and is reconciled against the
// store on every fetch or refill.
package hearts

import (
	"context"
	"fmt"
	"time"
)

const (
	// Max is the heart ceiling. The ledger never exceeds it.
	Max = 3

	// RegenWindow is the time to regenerate one heart.
	RegenWindow = 600 * time.Second
)

// Ledger is one learner's heart row.
type Ledger struct {
	UserID    string
	Hearts    int
	UpdatedAt time.Time
}

// Repo is the persistence contract for heart ledgers.
type Repo interface {
	// Get returns the learner's ledger, or nil when no row exists yet.
	Get(ctx context.Context, userID string) (*Ledger, error)

	// Put upserts the ledger row.
	Put(ctx context.Context, userID string, hearts int, updatedAt time.Time) error

	// Refill recomputes hearts from elapsed time since the last update
	// in one authoritative step and returns the resulting row.
	Refill(ctx context.Context, userID string) (*Ledger, error)
}

// StoreError wraps persistence failures so callers can surface a
// message without crashing the session.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("heart ledger %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Service applies the heart economy rules on top of a Repo.
type Service struct {
	repo Repo
	now  func() time.Time
}

// NewService creates a heart service. A nil clock uses time.Now.
func NewService(repo Repo, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, now: clock}
}

// defaultLedger is the lazily-synthesized row for an unknown learner:
// a full set of hearts and no timestamp. The row is only materialized
// in the store by the first mutation, never by a fetch.
func defaultLedger(userID string) Ledger {
	return Ledger{UserID: userID, Hearts: Max}
}

// Fetch reads the learner's ledger. Absent rows synthesize the default
// without persisting it. On store failure the default is returned
// alongside the error: hearts fail open so a broken backend never
// blocks learning.
func (s *Service) Fetch(ctx context.Context, userID string) (Ledger, error) {
	row, err := s.repo.Get(ctx, userID)
	if err != nil {
		return defaultLedger(userID), &StoreError{Op: "fetch", Err: err}
	}
	if row == nil {
		return defaultLedger(userID), nil
	}
	return *row, nil
}

// Spend consumes one heart, flooring at zero.
func (s *Service) Spend(ctx context.Context, userID string) (Ledger, error) {
	return s.adjust(ctx, userID, -1, "spend")
}

// Regain restores one heart, capping at Max. Issued when a regeneration
// countdown reaches zero.
func (s *Service) Regain(ctx context.Context, userID string) (Ledger, error) {
	return s.adjust(ctx, userID, +1, "regain")
}

func (s *Service) adjust(ctx context.Context, userID string, delta int, op string) (Ledger, error) {
	row, err := s.repo.Get(ctx, userID)
	if err != nil {
		return defaultLedger(userID), &StoreError{Op: op, Err: err}
	}

	cur := defaultLedger(userID)
	if row != nil {
		cur = *row
	}

	cur.Hearts = clampHearts(cur.Hearts + delta)
	cur.UpdatedAt = s.now()

	if err := s.repo.Put(ctx, userID, cur.Hearts, cur.UpdatedAt); err != nil {
		return cur, &StoreError{Op: op, Err: err}
	}
	return cur, nil
}

// Refill delegates the authoritative regeneration recompute to the
// store and returns the fresh row. Callers must overwrite any local
// countdown with the result.
func (s *Service) Refill(ctx context.Context, userID string) (Ledger, error) {
	row, err := s.repo.Refill(ctx, userID)
	if err != nil {
		return defaultLedger(userID), &StoreError{Op: "refill", Err: err}
	}
	if row == nil {
		return defaultLedger(userID), nil
	}
	return *row, nil
}

func clampHearts(h int) int {
	if h < 0 {
		return 0
	}
	if h > Max {
		return Max
	}
	return h
}

// Remaining computes the time left until the next heart regenerates,
// never negative. A zero UpdatedAt (fresh default row) owes nothing.
func Remaining(updatedAt, now time.Time) time.Duration {
	if updatedAt.IsZero() {
		return 0
	}
	left := RegenWindow - now.Sub(updatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// RegenerateHearts computes how many hearts a row holds after elapsed
// regeneration, one heart per full window, capped at Max. This is the
// calculation Repo.Refill implementations apply server-side.
func RegenerateHearts(hearts int, updatedAt, now time.Time) int {
	if hearts >= Max || updatedAt.IsZero() {
		return clampHearts(hearts)
	}
	elapsed := now.Sub(updatedAt)
	if elapsed <= 0 {
		return clampHearts(hearts)
	}
	regained := int(elapsed / RegenWindow)
	return clampHearts(hearts + regained)
}
