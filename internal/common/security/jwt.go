package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

const signingAlg = "HS256"

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingSecret = errors.New("jwt secret is required")
)

// Claims is the identity carried by a verified token.
type Claims struct {
	UUID      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager mints and verifies HS256 bearer tokens with a shared secret.
type TokenManager struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
	now  func() time.Time
}

func NewTokenManager(secret []byte, ttl time.Duration) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return &TokenManager{
		auth: jwtauth.New(signingAlg, secret, nil),
		ttl:  ttl,
		now:  time.Now,
	}, nil
}

func (m *TokenManager) GenerateToken(userUUID, email string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"uuid":  userUUID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	_, tokenString, err := m.auth.Encode(claims)
	return tokenString, err
}

// VerifyToken checks signature, algorithm and expiry and returns the identity claims.
func (m *TokenManager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwtauth.VerifyToken(m.auth, tokenString)
	if err != nil || token == nil {
		return nil, ErrInvalidToken
	}
	if token.Expiration().IsZero() {
		return nil, ErrInvalidToken
	}

	claims, err := ClaimsFromMap(token.PrivateClaims())
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims.IssuedAt = token.IssuedAt()
	claims.ExpiresAt = token.Expiration()
	return claims, nil
}

// ClaimsFromMap pulls uuid and email out of a decoded claim set.
func ClaimsFromMap(claims map[string]interface{}) (*Claims, error) {
	id, ok := claims["uuid"].(string)
	if !ok || id == "" {
		return nil, errors.New("uuid claim is missing or not a string")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email claim is missing or not a string")
	}
	return &Claims{UUID: id, Email: email}, nil
}
