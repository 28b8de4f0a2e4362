package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned for malformed tokens, bad signatures, or
	// unexpected signing methods.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned for a correctly signed token whose expiry
	// has elapsed. Callers may treat it like ErrTokenInvalid but the
	// distinction is useful for logging.
	ErrTokenExpired = errors.New("token has expired")
)

// Generator defines the interface for token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint) (string, error)
}

// Verifier defines the interface for token verification.
type Verifier interface {
	// VerifyToken checks the signature and expiry of a token and returns the
	// user ID it was issued for. It returns ErrTokenExpired or
	// ErrTokenInvalid on failure.
	VerifyToken(token string) (uint, error)
}

// Codec implements both Generator and Verifier with a shared HMAC secret.
// The secret is injected at construction and read-only afterwards.
type Codec struct {
	secret     []byte
	expiration time.Duration
}

var (
	_ Generator = (*Codec)(nil)
	_ Verifier  = (*Codec)(nil)
)

// NewCodec creates a new JWT codec with the provided secret and expiration duration.
func NewCodec(secret string, expiration time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed HS256 JWT token with standard claims.
func (c *Codec) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(c.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses a token, verifies its HMAC signature and expiry, and
// extracts the user ID from the sub claim.
func (c *Codec) VerifyToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrTokenInvalid
	}
	return uint(sub), nil
}
