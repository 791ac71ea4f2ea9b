package middleware

import (
	"fmt"
	apperrors "hotelbooking/pkg/errors"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

const rateLimitPrefix = "hotel_api_rate_limit"

// NewRateLimiter builds a per-client-IP limiter for rate, formatted like
// "100-M". Counters live in Redis when client is set so every instance
// shares them, otherwise in process memory.
func NewRateLimiter(rate string, client *redis.Client) (*limiter.Limiter, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	var store limiter.Store
	if client != nil {
		store, err = redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   rateLimitPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	return limiter.New(store, parsed, limiter.WithTrustForwardHeader(true)), nil
}

func RateLimit(lmt *limiter.Limiter, log *logger.Logger) func(http.Handler) http.Handler {
	mw := stdlib.NewMiddleware(lmt,
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			log.Warn("Rate limit exceeded",
				"request_id", RequestID(r.Context()),
				"client", lmt.GetIPKey(r),
				"path", r.URL.Path,
			)
			httputil.WriteError(w, apperrors.TooManyRequests("Rate limit exceeded"))
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error("Rate limiter failed", "request_id", RequestID(r.Context()), "error", err)
			httputil.WriteError(w, apperrors.Internal("Rate limiter unavailable", err))
		}),
	)

	return func(next http.Handler) http.Handler {
		return mw.Handler(next)
	}
}
