// Package quota tracks per-user daily usage of the AI meal-plan generator.
// Counters live in Redis with a 24 hour expiry and carry no durability
// guarantee: a counter-store outage reads as zero usage, availability is
// preferred over strict enforcement.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	FreeDailyLimit = 2
	ProDailyLimit  = 30

	counterTTL = 24 * time.Hour
)

// CounterStore is the expiring counter backend. Increment must be atomic.
type CounterStore interface {
	Get(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type Tracker struct {
	store CounterStore
}

func NewTracker(store CounterStore) *Tracker {
	return &Tracker{store: store}
}

func usageKey(userID uint, day time.Time) string {
	return fmt.Sprintf("ai:daily:%d:%s", userID, day.Format("2006-01-02"))
}

// CanGenerate reports whether the user is under their daily ceiling. A store
// read failure counts as zero usage rather than blocking generation.
func (t *Tracker) CanGenerate(ctx context.Context, userID uint, pro bool) bool {
	used, err := t.store.Get(ctx, usageKey(userID, time.Now()))
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).
			Warn("quota store unavailable, failing open with zero usage")
		used = 0
	}
	limit := int64(FreeDailyLimit)
	if pro {
		limit = ProDailyLimit
	}
	return used < limit
}

// Increment counts one successful generation. The check-then-increment window
// between CanGenerate and Increment is accepted; the increment itself is
// atomic so concurrent calls never lose counts.
func (t *Tracker) Increment(ctx context.Context, userID uint) {
	if _, err := t.store.Increment(ctx, usageKey(userID, time.Now()), counterTTL); err != nil {
		logrus.WithError(err).WithField("user_id", userID).
			Warn("failed to increment quota counter")
	}
}
