// Package warehouse contains the Warehouse aggregate: fulfillment facilities
// with capability sets, daily operating hours, and capacity counters.
package warehouse
