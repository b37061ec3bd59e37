// Package guesttoken mints the signed credential a guest uses to read the
// order they placed without an account.
package guesttoken

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
)

const (
	DefaultTTL = 30 * time.Minute

	audience = "bookstore:guest-order"
)

var (
	ErrSecretRequired = errors.New("guest token secret is required")
	ErrInvalidToken   = errors.New("guest token is invalid")
)

// JWTIssuer signs HS256 tokens whose subject is the order id.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(orderID kernel.UUID) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   orderID.String(),
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign guest token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and audience. Every failure wraps
// ErrInvalidToken.
func (i *JWTIssuer) Verify(token string) (kernel.UUID, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}); err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !claims.VerifyAudience(audience, true) {
		return kernel.UUID{}, fmt.Errorf("%w: wrong audience", ErrInvalidToken)
	}

	orderID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return orderID, nil
}
