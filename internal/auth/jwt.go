package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// JWTManager handles access token generation and validation. Tokens carry the
// caller identity as subject and an optional scope claim.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the token scope.
type accessClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the identity as subject.
func (m *JWTManager) GenerateAccessToken(id domain.Identity, scope string) (string, error) {
	if err := id.Validate("subject"); err != nil {
		return "", err
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scope: scope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the identity and scope if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Identity, string, error) {
	if tokenString == "" {
		return "", "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return "", "", fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	id := domain.Identity(claims.Subject)
	if err := id.Validate("subject"); err != nil {
		return "", "", fmt.Errorf("invalid subject: %w", err)
	}

	return id, claims.Scope, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware. Any
// failure is reported as domain.ErrUnauthorized.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (domain.Identity, string, error) {
	id, scope, err := m.ValidateAccessToken(token)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return id, scope, nil
}
