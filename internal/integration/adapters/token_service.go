// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// CustomClaims represents the claims accepted on bearer tokens. The user is
// taken from the subject, falling back to the legacy user_id claim.
type CustomClaims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier implements the adapter.TokenVerifier interface for HS256 tokens.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a token verifier for tokens signed with secret.
// When issuer is not empty the iss claim must match it.
func NewJWTVerifier(secret, issuer string) adapter.TokenVerifier {
	return &jwtVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// VerifyAccessToken validates token and returns its claims.
func (v *jwtVerifier) VerifyAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := v.parseJWT(token)
	if err != nil {
		return nil, err
	}

	userID := claims.Subject
	if userID == "" {
		userID = claims.UserID
	}
	if userID == "" {
		return nil, domainerror.ErrMissingSubject
	}

	out := &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// parseJWT parses and validates a JWT token.
func (v *jwtVerifier) parseJWT(tokenString string) (*CustomClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	return claims, nil
}
