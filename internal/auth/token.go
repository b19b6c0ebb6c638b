// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/listingdesk/listingdesk/internal/authz"
	"github.com/listingdesk/listingdesk/internal/model"
)

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
	}
}

type Claims struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	OrganizationID string `json:"organization_id,omitempty"`
	IsOrgAdmin     bool   `json:"is_org_admin"`
	jwt.RegisteredClaims
}

// Generate issues a signed token carrying the user's identity snapshot.
// Role and status are baked into the token; a status change only takes
// effect at the next issuance, which is why protected reads re-resolve the
// user where freshness matters.
func (tm *TokenManager) Generate(user *model.User) (string, error) {
	claims := Claims{
		UserID:     user.ID.String(),
		Email:      user.Email,
		Role:       string(user.Role),
		Status:     string(user.Status),
		IsOrgAdmin: user.IsOrgAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if user.OrganizationID != nil {
		claims.OrganizationID = user.OrganizationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Session converts validated claims into a Session. Unknown roles are kept
// as-is; the permission evaluator fails closed on them.
func (c *Claims) Session() (*Session, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in claims: %w", err)
	}

	s := &Session{
		UserID:     userID,
		Email:      c.Email,
		Role:       authz.Role(c.Role),
		Status:     model.UserStatus(c.Status),
		IsOrgAdmin: c.IsOrgAdmin,
	}

	if c.OrganizationID != "" {
		orgID, err := uuid.Parse(c.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("invalid organization id in claims: %w", err)
		}
		s.OrganizationID = &orgID
	}

	return s, nil
}
