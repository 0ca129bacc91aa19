// Package logging defines the structured-logging interface shared by the
// admin client and the development backend, with a slog-backed
// implementation. A request ID put into the context with WithRequestID is
// added to every record logged with that context, so the HTTP client, the
// failover layer and the fallback stores can be correlated per call.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "fallback engaged", "resource", "categories", "op", "list")
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is used for fallbacks and mirror failures: the call still succeeds.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
