// Package pebblestore provides a thin wrapper around Pebble with an fsync
// policy and the point-get/set/delete/prefix-scan surface used by the
// pebble-backed order store.
package pebblestore
