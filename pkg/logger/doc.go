// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "naijafake"),
//		logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//		logger.WithContextExtractors(logger.DatasetExtractor),
//	)
//
//	ctx = logger.WithDataset(ctx, "states")
//	log.DebugContext(ctx, "dataset loaded", logger.Count(37))
//
// Output goes to stderr by default. Helpers such as Error return an empty
// attribute for nil input, so they can be passed unconditionally.
package logger
