package middleware

import (
	"fmt"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a bearer token that AuthMiddleware accepts.
// Production tokens come from the identity provider; this serves local setups and tests.
func IssueToken(userID string, role domain.UserRole, secret string, ttl time.Duration, issuer string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
