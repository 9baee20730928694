package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Rule       string
	Limit      int // 0 when unmetered
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type entry struct {
	b    *bucket
	seen time.Time
}

// Limiter keeps one bucket per client and rule.
type Limiter struct {
	cfg *Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*entry

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter. A nil config means DefaultConfig.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.sweepLoop(cfg.CleanupInterval)
	}
	return l
}

// Allow decides whether client may make a method request to path.
func (l *Limiter) Allow(client, method, path string) Decision {
	if !l.cfg.Enabled || l.cfg.Allowlist[client] {
		return Decision{Allowed: true}
	}
	if l.cfg.Blocklist[client] {
		return Decision{Allowed: false, Rule: "blocklist"}
	}

	rule := Match(method, path, l.cfg.Rules)
	if rule == nil {
		rule = &Rule{Name: "default", Limit: l.cfg.DefaultLimit, Window: l.cfg.DefaultWindow}
	}
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Decision{Allowed: true, Rule: rule.Name}
	}

	now := l.now()
	b := l.bucketFor(client+"|"+rule.Name, rule, now)
	ok, remaining, full := b.take(now)

	d := Decision{
		Allowed:   ok,
		Rule:      rule.Name,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: full,
	}
	if !ok {
		d.RetryAfter = b.nextToken()
	}
	return d
}

func (l *Limiter) bucketFor(key string, rule *Rule, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.buckets[key]; ok {
		e.seen = now
		return e.b
	}
	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds(), now)
	l.buckets[key] = &entry{b: b, seen: now}
	return b
}

func (l *Limiter) sweepLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			l.sweep()
		case <-l.stop:
			return
		}
	}
}

// sweep drops buckets idle for longer than IdleTTL.
func (l *Limiter) sweep() int {
	ttl := l.cfg.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, e := range l.buckets {
		if e.seen.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Len is the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop ends the background sweep. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
