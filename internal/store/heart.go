package store

import (
	"context"
	"fmt"
	"time"

	"github.com/naghz/naghz/ent"
	"github.com/naghz/naghz/ent/heartledger"
	"github.com/naghz/naghz/internal/hearts"
)

// HeartRepo implements hearts.Repo on the ent client. Rows are created
// lazily by the first Put; Get never materializes one.
type HeartRepo struct {
	client *ent.Client
}

func (r *HeartRepo) Get(ctx context.Context, userID string) (*hearts.Ledger, error) {
	row, err := r.client.HeartLedger.Query().
		Where(heartledger.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query heart ledger: %w", err)
	}
	return &hearts.Ledger{
		UserID:    row.UserID,
		Hearts:    row.Hearts,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *HeartRepo) Put(ctx context.Context, userID string, heartsLeft int, updatedAt time.Time) error {
	row, err := r.client.HeartLedger.Query().
		Where(heartledger.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query heart ledger: %w", err)
		}
		_, err = r.client.HeartLedger.Create().
			SetUserID(userID).
			SetHearts(heartsLeft).
			SetUpdatedAt(updatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create heart ledger: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetHearts(heartsLeft).
		SetUpdatedAt(updatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update heart ledger: %w", err)
	}
	return nil
}

// Refill applies elapsed regeneration to the stored row in one step.
// The anchor timestamp only moves when hearts actually change, so a
// partial window keeps counting down.
func (r *HeartRepo) Refill(ctx context.Context, userID string) (*hearts.Ledger, error) {
	row, err := r.Get(ctx, userID)
	if err != nil || row == nil {
		return row, err
	}

	now := time.Now()
	regenerated := hearts.RegenerateHearts(row.Hearts, row.UpdatedAt, now)
	if regenerated == row.Hearts {
		return row, nil
	}

	row.Hearts = regenerated
	row.UpdatedAt = now
	if err := r.Put(ctx, userID, row.Hearts, row.UpdatedAt); err != nil {
		return nil, err
	}
	return row, nil
}
