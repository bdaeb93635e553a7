// Package metrics exposes Prometheus metrics for the live-update hub:
// active subscriber count, broadcast totals, and dropped deliveries.
package metrics
