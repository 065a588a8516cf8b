package cache

import (
	"sync"
	"time"
)

type cachedRate struct {
	rate      float64
	timestamp time.Time
}

var (
	cachedRates   = make(map[string]cachedRate)
	cacheDuration = 10 * time.Minute
	mu            sync.Mutex
)

// GetCachedRate returns the cached rate for key, or false when the entry is
// missing or older than the cache duration.
func GetCachedRate(key string) (float64, bool) {
	mu.Lock()
	defer mu.Unlock()

	entry, ok := cachedRates[key]
	if !ok {
		return 0, false
	}

	if time.Since(entry.timestamp) > cacheDuration {
		return 0, false
	}

	return entry.rate, true
}

func SetCachedRate(key string, rate float64) {
	mu.Lock()
	defer mu.Unlock()

	cachedRates[key] = cachedRate{
		rate:      rate,
		timestamp: time.Now(),
	}
}
