// internal/audit/logger.go

// Package audit records route guard decisions for operational review. The
// approval trail itself lives in the approval_history table; this logger
// covers the request-side decisions that never reach the store.
package audit

import (
	"context"
	"log/slog"

	"github.com/listingdesk/listingdesk/internal/auth"
	"github.com/listingdesk/listingdesk/internal/guard"
)

// Logger defines the interface for auditing guard decisions
type Logger interface {
	// LogGuardDecision logs one route guard evaluation
	LogGuardDecision(ctx context.Context, sess *auth.Session, route guard.Route, decision guard.Decision)
}

// SlogLogger writes decisions to the process logger.
type SlogLogger struct{}

// LogGuardDecision implements Logger.LogGuardDecision
func (l *SlogLogger) LogGuardDecision(ctx context.Context, sess *auth.Session, route guard.Route, decision guard.Decision) {
	attrs := []any{
		"path", route.Path,
		"outcome", decision.Outcome,
	}
	if decision.Redirect != guard.RedirectNone {
		attrs = append(attrs, "redirect", decision.Redirect)
	}
	if sess != nil {
		attrs = append(attrs, "user_id", sess.UserID, "role", sess.Role)
	}

	if decision.Authorized() {
		slog.DebugContext(ctx, "Route access granted", attrs...)
		return
	}
	slog.InfoContext(ctx, "Route access denied", attrs...)
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogGuardDecision implements Logger.LogGuardDecision
func (l *NoOpLogger) LogGuardDecision(ctx context.Context, sess *auth.Session, route guard.Route, decision guard.Decision) {
}
