package core

import (
	"sync"

	"golang.org/x/time/rate"
)

type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterStore() *limiterStore {
	return &limiterStore{
		limiters: make(map[string]*rate.Limiter),
	}
}

// UseLimiter returns the rate limiter for one (operation, key) pair, creating
// it on first use with the given per-second rate.
func (s *Core) UseLimiter(key, operation string, defaultRate int) *rate.Limiter {
	s.limiters.mu.Lock()
	defer s.limiters.mu.Unlock()

	k := operation + ":" + key
	lim, ok := s.limiters.limiters[k]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(defaultRate), defaultRate*2)
		s.limiters.limiters[k] = lim
	}
	return lim
}
