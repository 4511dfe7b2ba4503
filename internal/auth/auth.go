package auth

import (
	"errors"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is what a valid bearer token resolves to.
type Identity struct {
	UserID string
	Email  string
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenVerifier resolves Authorization bearer tokens to identities by
// validating HS256 JWTs against the shared secret.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Resolve accepts either the raw token or the full "Bearer <token>"
// header value and returns the identity it carries.
func (v *TokenVerifier) Resolve(bearer string) (*Identity, error) {
	tokenStr := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: c.Subject, Email: c.Email}, nil
}
