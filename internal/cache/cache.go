package cache

import (
	"sync"
	"time"

	"github.com/courtcms/courtcms/internal/query"
	"github.com/patrickmn/go-cache"
)

// JudgeCache holds the active-judge lookup projection between requests. The
// judge list changes rarely but is requested by every case form, so it is
// the one read path worth caching. Judge mutations invalidate it.
type JudgeCache interface {
	Get() ([]query.JudgeOption, bool)
	Set(options []query.JudgeOption)
	Invalidate()
	Stats() Stats
}

type Stats struct {
	Hits       int64     `json:"hits"`
	Misses     int64     `json:"misses"`
	Size       int       `json:"size"`
	LastAccess time.Time `json:"last_access"`
}

const judgesKey = "judges:active"

type judgeCache struct {
	cache *cache.Cache
	mu    sync.Mutex
	stats Stats
}

func NewJudgeCache(ttl time.Duration) JudgeCache {
	return &judgeCache{
		cache: cache.New(ttl, ttl*2),
	}
}

func (c *judgeCache) Get() ([]query.JudgeOption, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()

	if data, found := c.cache.Get(judgesKey); found {
		if options, ok := data.([]query.JudgeOption); ok {
			c.stats.Hits++
			return options, true
		}
	}

	c.stats.Misses++
	return nil, false
}

func (c *judgeCache) Set(options []query.JudgeOption) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Set(judgesKey, options, cache.DefaultExpiration)
}

func (c *judgeCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(judgesKey)
}

func (c *judgeCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Size = c.cache.ItemCount()
	return c.stats
}
