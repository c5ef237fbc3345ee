package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"riskscreen_backend/internal/models"
)

// Leeway tolerated on expiry checks to absorb clock skew between the server
// that issued a token and the one validating it.
const clockSkewLeeway = 30 * time.Second

// SecretProvider hands out the current signing secret. The indirection keeps
// rotation possible without touching the token code; today the only
// implementation is a static secret loaded at startup.
type SecretProvider interface {
	Secret() []byte
}

// StaticSecret is a SecretProvider around a fixed process-wide secret.
type StaticSecret []byte

func (s StaticSecret) Secret() []byte { return []byte(s) }

// Claims are the identity claims embedded in every session token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 session tokens. Tokens are not
// persisted and cannot be revoked: a token stays valid until its expiry
// regardless of later changes to the user row.
type TokenService struct {
	secrets SecretProvider
	ttl     time.Duration
}

func NewTokenService(secrets SecretProvider, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secrets: secrets, ttl: ttl}
}

// Generate mints a signed token for the user, expiring ttl after issue.
func (s *TokenService) Generate(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "riskscreen",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secrets.Secret())
}

// Validate checks signature and expiry and returns the embedded claims.
// Every failure mode (malformed, bad signature, expired) comes back as an
// error; callers map it to a single invalid-token response.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secrets.Secret(), nil
	}, jwt.WithLeeway(clockSkewLeeway))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
