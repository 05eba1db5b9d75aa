// Package errs provides typed, composable errors for domain validation and
// object lookup failures.
//
// Each error type wraps a package sentinel (ErrObjectNotFound,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired) so callers can
// classify failures with errors.Is without depending on the concrete type:
//
//	order, err := repo.Get(ctx, id)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // treat as "not found", regardless of which repository produced it
//	}
//
// Error messages are flattened to a single line so they stay readable in
// structured logs.
package errs
