package config

import "time"

// RateLimitConfig tunes the token-bucket limiter protecting the /v1
// endpoints.  A snapshot fans out into many store reads, so the limiter
// keeps one misbehaving dashboard from hammering the document store.
type RateLimitConfig struct {
	Enabled        bool          // disable entirely with RATE_LIMIT_ENABLED=false
	Capacity       int           // bucket size: burst allowance per client
	RefillTokens   int           // tokens added per refill interval
	RefillInterval time.Duration // how often the bucket refills
	TTL            time.Duration // how long idle buckets survive in redis
	Prefix         string        // redis key namespace
}

// LoadRateLimitConfig reads the limiter settings from the environment,
// sanitizing values so a misconfigured deployment degrades to a working
// limiter instead of one that blocks everything.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}
