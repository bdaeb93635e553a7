// Package runtime assembles the process-wide state of a KebabManager
// instance: configuration, the configured order store backend, the event
// hub, and metrics. Request handlers receive the Runtime by reference;
// its lifecycle is open-at-start, close-at-shutdown.
package runtime
