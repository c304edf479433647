package cache

import (
	"errors"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Cache = (*FreeCache)(nil)

const DefaultFreeCacheSize = 64 * 1024 * 1024

// FreeCache is a Cache backed by freecache. Expiry is driven by the given clock,
// with second granularity.
type FreeCache struct {
	cache *freecache.Cache
}

type clockTimer struct {
	clock Clock
}

func (t clockTimer) Now() uint32 {
	return uint32(t.clock.Now().Unix())
}

func NewFreeCache(sizeBytes int, clock Clock) *FreeCache {
	if sizeBytes <= 0 {
		sizeBytes = DefaultFreeCacheSize
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &FreeCache{
		cache: freecache.NewCacheCustomTimer(sizeBytes, clockTimer{clock: clock}),
	}
}

func (fc *FreeCache) Get(key string) ([]byte, bool) {
	value, err := fc.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("free cache: get %s: %s", key, err)
		}
		return nil, false
	}
	return value, true
}

// Set stores the value. A ttl under one second is rounded up, since freecache
// treats a zero expiry as "never expires".
func (fc *FreeCache) Set(key string, value []byte, ttl time.Duration) bool {
	expireSeconds := int(ttl / time.Second)
	if expireSeconds < 1 {
		expireSeconds = 1
	}
	if err := fc.cache.Set([]byte(key), value, expireSeconds); err != nil {
		log.Warnf("free cache: set %s (%d bytes): %s", key, len(value), err)
		return false
	}
	return true
}

func (fc *FreeCache) Remove(key string) bool {
	return fc.cache.Del([]byte(key))
}

func (fc *FreeCache) EntryCount() int64 {
	return fc.cache.EntryCount()
}
