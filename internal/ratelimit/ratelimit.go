package ratelimit

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/issuetracker/server/internal/errors"
	"codeberg.org/issuetracker/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	// key prefix for limiter counters
	storePrefix = "issuetracker:ratelimit"

	// how long to wait for redis on startup
	connectTimeout = 5 * time.Second
)

// Limiter wraps a ulule limiter and the redis client backing it, if any.
type Limiter struct {
	limiter *limiter.Limiter
	client  *redis.Client
}

// creates an in-memory limiter for the formatted rate (e.g. "120-M").
// the store's cleanup goroutine stops once the limiter is garbage collected.
func NewMemory(formatted string) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          storePrefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})

	return &Limiter{limiter: limiter.New(store, rate)}, nil
}

// creates a limiter whose counters live in redis so replicas share them
func NewRedis(ctx context.Context, formatted, redisURL string) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   storePrefix,
		MaxRetry: 3,
	})
	if err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	logger.Info("rate limiter using redis store", "addr", opts.Addr)

	return &Limiter{limiter: limiter.New(store, rate), client: client}, nil
}

// picks the redis store when redisURL is set, memory otherwise
func New(ctx context.Context, formatted, redisURL string) (*Limiter, error) {
	if redisURL == "" {
		return NewMemory(formatted)
	}

	return NewRedis(ctx, formatted, redisURL)
}

// returns a gin middleware keyed by client IP.
// over-limit requests get 429, store failures 503.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(l.limiter,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "rate limit exceeded, retry later")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.ServiceUnavailable(c, "rate limiter unavailable", err)
		}),
	)
}

// the configured rate
func (l *Limiter) Rate() limiter.Rate {
	return l.limiter.Rate
}

// releases the redis client if one was opened
func (l *Limiter) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}
