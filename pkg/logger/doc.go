// Package logger is a small factory around log/slog used across the
// pipeline for structured warnings and diagnostics.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "embedding-pipeline")),
//	)
//
// Defaults are production-safe: JSON output at INFO level on stdout.
// Attribute helpers (Error, Errors, Group) keep call sites terse.
package logger
