// Package order defines the order record, its validation rules, and the
// Store contract shared by the memory, pebble, and postgres backends.
package order
