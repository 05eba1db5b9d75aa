package routeai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logix/internal/core/domain/model/route"
	"logix/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL bounds how long an optimized sequence stays valid. Traffic
// and driver availability drift, so cached routes expire quickly.
const DefaultCacheTTL = 15 * time.Minute

// ResultCache stores optimized route results keyed by request fingerprint.
// A miss is not an error: Get reports it through the bool.
type ResultCache interface {
	Get(ctx context.Context, req route.Request) (route.Result, bool, error)
	Set(ctx context.Context, req route.Request, res route.Result) error
}

// RedisResultCache is a Redis-backed ResultCache. Only the sequence and the
// totals are stored; the stops themselves are rehydrated from the request on
// read, which keeps the cached value small and guarantees a hit can never
// resurrect stale stop data.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache creates a new RedisResultCache instance.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) (*RedisResultCache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &RedisResultCache{client: client, ttl: ttl}, nil
}

// Get returns the cached result for the request, if any.
func (c *RedisResultCache) Get(ctx context.Context, req route.Request) (route.Result, bool, error) {
	key, err := fingerprint(req)
	if err != nil {
		return route.Result{}, false, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return route.Result{}, false, nil
	}
	if err != nil {
		return route.Result{}, false, fmt.Errorf("read route cache: %w", err)
	}

	var dto optimizeResponseDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return route.Result{}, false, fmt.Errorf("decode cached route: %w", err)
	}

	res, err := toResult(req, dto)
	if err != nil {
		// A fingerprint collision or a format change; treat as a miss.
		return route.Result{}, false, nil
	}

	return res, true, nil
}

// Set stores the result under the request's fingerprint.
func (c *RedisResultCache) Set(ctx context.Context, req route.Request, res route.Result) error {
	key, err := fingerprint(req)
	if err != nil {
		return err
	}

	dto := optimizeResponseDTO{
		Sequence:             make([]string, 0, len(res.Stops)),
		TotalDistanceKm:      res.TotalDistanceKm,
		TotalDurationSeconds: int64(res.TotalDuration / time.Second),
	}
	for _, s := range res.Stops {
		dto.Sequence = append(dto.Sequence, s.OrderID.String())
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode cached route: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write route cache: %w", err)
	}
	return nil
}

// fingerprint derives a stable cache key from the request's wire form.
func fingerprint(req route.Request) (string, error) {
	body, err := json.Marshal(toRequestDTO(req))
	if err != nil {
		return "", fmt.Errorf("fingerprint route request: %w", err)
	}

	sum := sha256.Sum256(body)
	return "routeai:result:" + hex.EncodeToString(sum[:]), nil
}
