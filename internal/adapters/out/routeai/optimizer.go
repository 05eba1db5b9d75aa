// Package routeai adapts the external AI route optimization service to the
// RouteOptimizer port. The remote call runs behind a circuit breaker with a
// hard deadline; when it fails, times out, or returns an unusable sequence,
// the deterministic fallback planner produces the route instead, so callers
// always receive a complete result.
package routeai

import (
	"context"
	"log/slog"
	"time"

	"logix/internal/core/domain/model/route"
	"logix/internal/core/domain/services"

	"github.com/sony/gobreaker"
)

// DefaultTimeout caps a single remote optimization call. The orchestrator
// runs inside a database transaction, so the remote path must stay short.
const DefaultTimeout = 3 * time.Second

// Optimizer implements the RouteOptimizer port. Both client and cache are
// optional: without a client every request is planned by the fallback,
// without a cache every request goes to the remote service.
type Optimizer struct {
	client   *Client
	cache    ResultCache
	breaker  *gobreaker.CircuitBreaker
	fallback services.FallbackRoutePlanner
	timeout  time.Duration
	logger   *slog.Logger
}

// NewOptimizer creates a new Optimizer instance.
func NewOptimizer(client *Client, cache ResultCache, timeout time.Duration, logger *slog.Logger) *Optimizer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "routeai")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "route-ai",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Optimizer{
		client:   client,
		cache:    cache,
		breaker:  breaker,
		fallback: services.NewFallbackRoutePlanner(),
		timeout:  timeout,
		logger:   logger,
	}
}

// Optimize sequences the request's stops. Remote failures are absorbed: the
// only errors returned are an invalid request or an already-expired context.
func (o *Optimizer) Optimize(ctx context.Context, req route.Request) (route.Result, error) {
	if err := req.Validate(); err != nil {
		return route.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return route.Result{}, err
	}

	if len(req.Stops) == 0 || o.client == nil {
		return o.fallback.Plan(req), nil
	}

	if o.cache != nil {
		res, ok, err := o.cache.Get(ctx, req)
		if err != nil {
			o.logger.Warn("route cache read failed", "error", err)
		} else if ok {
			return res, nil
		}
	}

	res, err := o.callRemote(ctx, req)
	if err != nil {
		o.logger.Warn("route optimization unavailable, planning with fallback",
			"stops", len(req.Stops), "error", err)
		return o.fallback.Plan(req), nil
	}

	if o.cache != nil {
		if err := o.cache.Set(ctx, req, res); err != nil {
			o.logger.Warn("route cache write failed", "error", err)
		}
	}

	return res, nil
}

func (o *Optimizer) callRemote(ctx context.Context, req route.Request) (route.Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	res, err := o.breaker.Execute(func() (interface{}, error) {
		return o.client.Optimize(callCtx, req)
	})
	if err != nil {
		return route.Result{}, err
	}

	return res.(route.Result), nil
}
