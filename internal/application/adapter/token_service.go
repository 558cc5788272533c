package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// TokenVerifier validates bearer tokens issued by the external identity provider.
type TokenVerifier interface {
	// VerifyAccessToken validates token and returns its claims.
	VerifyAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
