package store

import (
	"context"
	"fmt"
	"time"

	"github.com/naghz/naghz/ent"
	"github.com/naghz/naghz/ent/dailyflag"
)

// dailyRepo implements DailyRepo using the ent client.
type dailyRepo struct {
	client *ent.Client
}

func (r *dailyRepo) Get(ctx context.Context, userID string) (*DailyFlags, error) {
	row, err := r.client.DailyFlag.Query().
		Where(dailyflag.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query daily flags: %w", err)
	}
	return &DailyFlags{
		UserID:        row.UserID,
		LastShown:     row.LastShown,
		DeclinedUntil: row.DeclinedUntil,
		CompletedDay:  row.CompletedDay,
	}, nil
}

func (r *dailyRepo) SetShown(ctx context.Context, userID, day string) error {
	return r.mutate(ctx, userID, func(c *ent.DailyFlagCreate) {
		c.SetLastShown(day)
	}, func(u *ent.DailyFlagUpdateOne) {
		u.SetLastShown(day)
	})
}

func (r *dailyRepo) SetDeclined(ctx context.Context, userID string, until time.Time) error {
	return r.mutate(ctx, userID, func(c *ent.DailyFlagCreate) {
		c.SetDeclinedUntil(until)
	}, func(u *ent.DailyFlagUpdateOne) {
		u.SetDeclinedUntil(until)
	})
}

func (r *dailyRepo) SetCompleted(ctx context.Context, userID, day string) error {
	return r.mutate(ctx, userID, func(c *ent.DailyFlagCreate) {
		c.SetCompletedDay(day)
	}, func(u *ent.DailyFlagUpdateOne) {
		u.SetCompletedDay(day)
	})
}

// mutate upserts the user's flag row, applying the matching setter.
func (r *dailyRepo) mutate(ctx context.Context, userID string,
	onCreate func(*ent.DailyFlagCreate), onUpdate func(*ent.DailyFlagUpdateOne)) error {

	row, err := r.client.DailyFlag.Query().
		Where(dailyflag.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query daily flags: %w", err)
		}
		create := r.client.DailyFlag.Create().SetUserID(userID)
		onCreate(create)
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create daily flags: %w", err)
		}
		return nil
	}

	update := row.Update()
	onUpdate(update)
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update daily flags: %w", err)
	}
	return nil
}
