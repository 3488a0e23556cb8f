// Package security resolves opaque bearer credentials to user identities.
// The Credentials interface is the seam that lets the demo token grammar be
// swapped for a real token subsystem without touching any handler.
package security

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
}

var (
	// ErrInvalidToken: credential not recognized at all.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMalformedToken: recognized shape but unusable payload.
	ErrMalformedToken = errors.New("invalid token format")
)

type Credentials interface {
	Verify(token string) (TokenClaims, error)
	Issue(claims TokenClaims) (string, error)
}

const (
	demoToken       = "demo-token"
	demoTokenPrefix = "token-"
)

// DemoCredentials implements the demo scheme: "demo-token" is user 1 and
// "token-<digits>" is that user id. No cryptographic verification happens.
type DemoCredentials struct{}

func (DemoCredentials) Verify(token string) (TokenClaims, error) {
	switch {
	case token == demoToken:
		return TokenClaims{UserID: 1}, nil
	case strings.HasPrefix(token, demoTokenPrefix):
		id, err := strconv.ParseInt(strings.TrimPrefix(token, demoTokenPrefix), 10, 64)
		if err != nil || id <= 0 {
			return TokenClaims{}, ErrMalformedToken
		}
		return TokenClaims{UserID: id}, nil
	default:
		return TokenClaims{}, ErrInvalidToken
	}
}

func (DemoCredentials) Issue(claims TokenClaims) (string, error) {
	if claims.UserID == 1 {
		return demoToken, nil
	}
	return demoTokenPrefix + strconv.FormatInt(claims.UserID, 10), nil
}

// JWTCredentials is the production-grade implementation: HS256 tokens whose
// subject is the user id.
type JWTCredentials struct {
	secret []byte
	expiry time.Duration
}

func NewJWTCredentials(secret string, expiry time.Duration) *JWTCredentials {
	if expiry <= 0 {
		expiry = time.Hour * 24 * 30
	}
	return &JWTCredentials{secret: []byte(secret), expiry: expiry}
}

func (c *JWTCredentials) Verify(token string) (TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return TokenClaims{}, ErrMalformedToken
		}
		return TokenClaims{}, ErrInvalidToken
	}

	claims := parsed.Claims.(*jwt.RegisteredClaims)
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return TokenClaims{}, ErrMalformedToken
	}
	return TokenClaims{UserID: id}, nil
}

func (c *JWTCredentials) Issue(claims TokenClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(claims.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
	})
	return token.SignedString(c.secret)
}
