// Package logger provides a configurable slog-based logging factory with
// context attribute injection and domain-specific attribute helpers.
//
// The factory produces production-safe JSON loggers by default and supports
// development text output, static attributes, and context extractors that
// inject request-scoped values at log time:
//
//	log := logger.New(
//		logger.WithProduction("authflow"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.Info("signed in", logger.UserID(uid), logger.Provider("google.com"))
package logger
