// Package observability holds Prometheus domain metrics and OpenTelemetry
// tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupsTotal counts successful account registrations.
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_signups_total",
		Help: "Total number of successful user registrations",
	})

	// LoginAttempts counts login attempts by outcome ("success" or "failure").
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// SessionsResolved counts session cookie resolutions by outcome
	// ("valid", "invalid", "absent").
	SessionsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_sessions_resolved_total",
		Help: "Total number of session token resolutions by outcome",
	}, []string{"outcome"})

	// PostsCreated counts published posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_posts_created_total",
		Help: "Total number of posts created",
	})

	// LikesApplied counts like operations that actually inserted a ledger row.
	LikesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_likes_applied_total",
		Help: "Total number of likes recorded in the ledger",
	})

	// LikesRemoved counts unlike operations that actually removed a ledger row.
	LikesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_likes_removed_total",
		Help: "Total number of likes removed from the ledger",
	})

	// CacheHits counts cache-aside hits by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_cache_hits_total",
		Help: "Total number of cache hits by key prefix",
	}, []string{"prefix"})

	// CacheMisses counts cache-aside misses by key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_cache_misses_total",
		Help: "Total number of cache misses by key prefix",
	}, []string{"prefix"})

	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})
)
