// internal/auth/session.go
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/model"
)

// Session is the identity of the current caller as supplied by the token
// layer. The core never authenticates credentials beyond token validation.
type Session struct {
	UserID         uuid.UUID
	Email          string
	Role           authz.Role
	Status         model.UserStatus
	OrganizationID *uuid.UUID
	IsOrgAdmin     bool
}

type contextKey string

const sessionKey = contextKey("listingdesk_session")

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom extracts the session from the context, nil when absent.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey).(*Session)
	return s
}
