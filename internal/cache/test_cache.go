package cache

import (
	"sync"
	"time"
)

var _ Cache = (*TestCache)(nil)

type testEntry struct {
	value     []byte
	expiresAt time.Time
}

// TestCache is a map backed Cache meant for tests. It counts gets and hits.
type TestCache struct {
	mutex   sync.Mutex
	clock   Clock
	entries map[string]testEntry

	Gets int
	Hits int
}

func NewTestCache(clock Clock) *TestCache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TestCache{
		clock:   clock,
		entries: make(map[string]testEntry),
	}
}

func (tc *TestCache) Get(key string) ([]byte, bool) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	tc.Gets++
	entry, ok := tc.entries[key]
	if !ok {
		return nil, false
	}
	if !tc.clock.Now().Before(entry.expiresAt) {
		delete(tc.entries, key)
		return nil, false
	}
	tc.Hits++
	return entry.value, true
}

func (tc *TestCache) Set(key string, value []byte, ttl time.Duration) bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	tc.entries[key] = testEntry{
		value:     stored,
		expiresAt: tc.clock.Now().Add(ttl),
	}
	return true
}

func (tc *TestCache) Remove(key string) bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	_, ok := tc.entries[key]
	delete(tc.entries, key)
	return ok
}

func (tc *TestCache) Has(key string) bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	_, ok := tc.entries[key]
	return ok
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mutex sync.Mutex
	now   time.Time
}

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(d)
}
