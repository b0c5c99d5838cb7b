// Package logger provides slog helpers shared across the module: a small
// factory for building configured loggers and typed attribute constructors
// so field names stay consistent ("user_id", "session_id", "component")
// wherever authentication events are logged.
//
// Attribute helpers return an empty Attr for absent values, which slog
// silently drops, so call sites never need nil checks:
//
//	log.InfoContext(ctx, "session established",
//		logger.UserID(uid),
//		logger.SessionID(rec.ID),
//	)
package logger
