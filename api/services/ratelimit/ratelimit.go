package ratelimitservice

import (
	"context"
	"draftroom/pkg/logger"
	"draftroom/pkg/metrics"
	"strconv"
	"time"
)

// Maximum time spent on the counter store before failing open.
const storeTimeout = 200 * time.Millisecond

// Policy is the limit applied to one action.
type Policy struct {
	Action string
	Limit  int
	Window time.Duration
}

var (
	ReportPolicy     = Policy{Action: "report", Limit: 3, Window: time.Hour}
	ReportVotePolicy = Policy{Action: "vote", Limit: 20, Window: time.Minute}
	PlayerVotePolicy = Policy{Action: "player-vote", Limit: 50, Window: time.Hour}
)

// CounterStore is the expiring key-value store holding the counters.
// A missing key is returned as an empty string.
type CounterStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RateLimitService counts actions per identity in fixed windows.
type RateLimitService struct {
	store   CounterStore
	logger  logger.Logger
	metrics *metrics.Metrics
}

// RateLimitServiceDeps is the dependency list for the rate limit service.
type RateLimitServiceDeps struct {
	Store   CounterStore
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// NewRateLimitService creates the service. A nil store allows every action.
func NewRateLimitService(deps *RateLimitServiceDeps) *RateLimitService {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &RateLimitService{
		store:   deps.Store,
		logger:  log,
		metrics: deps.Metrics,
	}
}

// Key of the counter for an action and identity token.
func Key(action, identity string) string {
	return "ratelimit:" + action + ":" + identity
}

// Allow consumes one unit of the policy for the identity.
// A denied call does not change the counter. Each accepted call resets the window,
// and any store failure lets the action through.
func (rs *RateLimitService) Allow(ctx context.Context, policy Policy, identity string) bool {
	if rs.store == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	key := Key(policy.Action, identity)

	current, err := rs.store.Get(ctx, key)
	if err != nil {
		rs.storeFailed(ctx, policy, err)
		return true
	}

	count := 0
	if current != "" {
		count, err = strconv.Atoi(current)
		if err != nil {
			rs.logger.Warn(ctx, "invalid rate limit counter, resetting",
				logger.String("key", key), logger.String("value", current))
			count = 0
		}
	}

	if count >= policy.Limit {
		rs.metrics.RateLimitDenied(policy.Action)
		rs.logger.Debug(ctx, "rate limit exceeded",
			logger.String("action", policy.Action), logger.Int("count", count))
		return false
	}

	if err := rs.store.Set(ctx, key, strconv.Itoa(count+1), policy.Window); err != nil {
		rs.storeFailed(ctx, policy, err)
	}

	return true
}

func (rs *RateLimitService) storeFailed(ctx context.Context, policy Policy, err error) {
	rs.metrics.RateLimitStoreError()
	rs.logger.Warn(ctx, "rate limit store unavailable, allowing request",
		logger.String("action", policy.Action), logger.Err(err))
}
