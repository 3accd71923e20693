package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeCounterStore struct {
	counts map[string]int64
	getErr error
	incErr error
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[string]int64)}
}

func (f *fakeCounterStore) Get(ctx context.Context, key string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return f.counts[key], nil
}

func (f *fakeCounterStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}
	f.counts[key]++
	return f.counts[key], nil
}

func TestCanGenerateFreeLimit(t *testing.T) {
	store := newFakeCounterStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	for i := 0; i < FreeDailyLimit; i++ {
		assert.True(t, tracker.CanGenerate(ctx, 1, false))
		tracker.Increment(ctx, 1)
	}
	assert.False(t, tracker.CanGenerate(ctx, 1, false))
}

func TestCanGenerateProLimit(t *testing.T) {
	store := newFakeCounterStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	for i := 0; i < ProDailyLimit; i++ {
		assert.True(t, tracker.CanGenerate(ctx, 1, true))
		tracker.Increment(ctx, 1)
	}
	assert.False(t, tracker.CanGenerate(ctx, 1, true))
}

// A free user over the free ceiling is still under the pro ceiling; the limit
// is resolved per call so an upgrade takes effect immediately.
func TestCanGenerateLimitFollowsTier(t *testing.T) {
	store := newFakeCounterStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	for i := 0; i < FreeDailyLimit; i++ {
		tracker.Increment(ctx, 1)
	}

	assert.False(t, tracker.CanGenerate(ctx, 1, false))
	assert.True(t, tracker.CanGenerate(ctx, 1, true))
}

func TestCanGenerateFailsOpenOnStoreError(t *testing.T) {
	store := newFakeCounterStore()
	store.getErr = errors.New("connection refused")
	tracker := NewTracker(store)

	assert.True(t, tracker.CanGenerate(context.Background(), 1, false))
}

func TestIncrementSwallowsStoreError(t *testing.T) {
	store := newFakeCounterStore()
	store.incErr = errors.New("connection refused")
	tracker := NewTracker(store)

	assert.NotPanics(t, func() {
		tracker.Increment(context.Background(), 1)
	})
}

func TestUsageKeyIsPerUserPerDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "ai:daily:7:2024-03-15", usageKey(7, day))
	assert.NotEqual(t, usageKey(7, day), usageKey(8, day))
	assert.NotEqual(t, usageKey(7, day), usageKey(7, day.AddDate(0, 0, 1)))
}

func TestCountersAreIsolatedPerUser(t *testing.T) {
	store := newFakeCounterStore()
	tracker := NewTracker(store)
	ctx := context.Background()

	for i := 0; i < FreeDailyLimit; i++ {
		tracker.Increment(ctx, 1)
	}

	assert.False(t, tracker.CanGenerate(ctx, 1, false))
	assert.True(t, tracker.CanGenerate(ctx, 2, false))
}
