package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veracomply/sdk/evidence"
)

func sampleResult(tier evidence.Tier) evidence.Result {
	return evidence.Result{
		Tier:         tier,
		Confidence:   0.7,
		Reason:       "test result",
		ClassifiedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierPolicy)))

	got, err := m.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, evidence.TierPolicy, got.Tier)
	assert.Equal(t, 0.7, got.Confidence)
}

func TestMemory_MissReturnsNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_EmptyKeyRejected(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, m.Set(ctx, "", sampleResult(evidence.TierPolicy)), ErrInvalidKey)
	assert.ErrorIs(t, m.Invalidate(ctx, ""), ErrInvalidKey)
}

// TestMemory_TTLExpiry verifies lazy expiry: an entry older than the TTL is
// a miss and is removed on lookup.
func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	m := NewMemory(WithTTL(time.Hour), WithClock(clock.Now))

	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierSystemGenerated)))

	clock.Advance(59 * time.Minute)
	_, err := m.Get(ctx, "doc-1")
	assert.NoError(t, err, "entry inside the TTL window must hit")

	clock.Advance(2 * time.Minute)
	_, err = m.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Len(), "expired entry should be removed on lookup")
}

func TestMemory_SetRestartsTTL(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	m := NewMemory(WithTTL(time.Hour), WithClock(clock.Now))

	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierPolicy)))
	clock.Advance(50 * time.Minute)
	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierSystemGenerated)))
	clock.Advance(50 * time.Minute)

	got, err := m.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, evidence.TierSystemGenerated, got.Tier)
}

func TestMemory_Invalidate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierPolicy)))
	require.NoError(t, m.Invalidate(ctx, "doc-1"))

	_, err := m.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Invalidating a missing entry is not an error.
	assert.NoError(t, m.Invalidate(ctx, "doc-1"))
}

func TestMemory_BoundEvictsOldest(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	m := NewMemory(WithMaxEntries(2), WithClock(clock.Now))

	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierPolicy)))
	clock.Advance(time.Minute)
	require.NoError(t, m.Set(ctx, "doc-2", sampleResult(evidence.TierPolicy)))
	clock.Advance(time.Minute)
	require.NoError(t, m.Set(ctx, "doc-3", sampleResult(evidence.TierPolicy)))

	assert.Equal(t, 2, m.Len())
	_, err := m.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, ErrNotFound, "oldest entry should have been evicted")
	_, err = m.Get(ctx, "doc-3")
	assert.NoError(t, err)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "doc-1", sampleResult(evidence.TierPolicy)))

	first, err := m.Get(ctx, "doc-1")
	require.NoError(t, err)
	first.Tier = evidence.TierSelfDeclared

	second, err := m.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, evidence.TierPolicy, second.Tier, "mutating a returned result must not affect the cache")
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := "doc-shared"
			for j := 0; j < 50; j++ {
				_ = m.Set(ctx, id, sampleResult(evidence.TierPolicy))
				_, _ = m.Get(ctx, id)
				_ = m.Invalidate(ctx, id)
			}
		}(i)
	}
	wg.Wait()
}
