package ports

import (
	"context"

	"logix/internal/core/domain/model/route"
)

// RouteOptimizer sequences delivery stops. Implementations must respect the
// caller's context deadline and always return a complete result: every stop
// of the request appears exactly once in the output, even when the primary
// optimization path is unavailable and a fallback heuristic runs instead.
type RouteOptimizer interface {
	Optimize(ctx context.Context, req route.Request) (route.Result, error)
}
