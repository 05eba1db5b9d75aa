// Package driver contains the Driver aggregate: delivery drivers with
// certifications, vehicle classes, load counters, and performance ratings.
package driver
