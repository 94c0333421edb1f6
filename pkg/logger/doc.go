// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record so request-scoped values such as request IDs are
// logged without threading them through every call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "dtmatch"),
//	    logger.WithContextExtractors(api.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "value rejected",
//	    logger.Pattern(format),
//	    logger.Token(mm.Token),
//	    logger.Remaining(mm.Remaining),
//	)
//
// ParseLevel and ParseFormat convert configuration strings; WithFormat panics
// on unknown formats and is meant for values fixed in code.
//
// Helpers such as Error and RequestID return an empty slog.Attr for zero
// input, which slog drops, so callers need no nil checks.
package logger
