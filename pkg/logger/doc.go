// Package logger builds configured log/slog loggers for use with the
// Pearl client.
//
// The client itself is silent by default; pass a logger built here via
// pearl.WithLogger to see request and retry diagnostics:
//
//	log := logger.New(
//		logger.WithDebug(),
//		logger.WithAttr(slog.String("service", "support-bot")),
//	)
//	client, err := pearl.New(cfg, pearl.WithLogger(log))
//
// Defaults are production-safe: JSON output at INFO level on stdout.
package logger
