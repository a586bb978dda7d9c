package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating identity tokens.
// Tokens are stateless: revalidation is reissuance, not a server-side lookup.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given user.
	// Role may be empty, in which case no role claim is embedded.
	Issue(userID uuid.UUID, role string) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims.
	Validate(tokenString string) (*Claims, error)
}
