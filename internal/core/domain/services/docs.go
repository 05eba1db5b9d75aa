// Package services contains stateless domain services for the fulfillment
// automation engine: industry validation, fulfillment time estimation,
// warehouse routing, driver assignment, and the deterministic route fallback.
package services
