// Package order contains the Order aggregate and the industry-aware order
// taxonomy: industry categories, order types, sources, statuses, priorities,
// the per-order-type workflow table, and the sealed industry payload variants.
package order
