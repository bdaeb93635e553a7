// Package log provides the structured logging system used across
// KebabManager components.
//
// Loggers are constructed explicitly and passed by dependency injection;
// there is no package-level default logger. A typical setup:
//
//	logger := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	)
//	logger.Info("server starting", log.Str("http", addr))
//
// Components tag their output with log.Component so a single process log
// can be filtered per subsystem:
//
//	hubLogger := logger.With(log.Component("events"))
//
// Stdlib log output (used by Pebble) can be rerouted through a Logger
// with RedirectStdLog.
package log
