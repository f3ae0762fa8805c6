package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const stateIssuer = "tripcraft-login"

type StateClaims struct {
	jwt.RegisteredClaims
}

// StateSigner issues and verifies the OAuth `state` parameter. Each state
// carries a random nonce in its ID so the callback can be consumed once.
type StateSigner struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	return &StateSigner{key: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *StateSigner) TTL() time.Duration { return s.ttl }

// Issue returns the signed state and its nonce.
func (s *StateSigner) Issue() (string, string, error) {
	nonce := uuid.NewString()
	now := s.now()
	claims := &StateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        nonce,
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", "", fmt.Errorf("sign state: %w", err)
	}
	return signed, nonce, nil
}

// Verify checks signature, issuer and expiry and returns the nonce.
func (s *StateSigner) Verify(state string) (string, error) {
	if state == "" {
		return "", ErrInvalidOAuthState
	}
	claims := &StateClaims{}
	token, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", errors.Join(ErrInvalidOAuthState, err)
	}
	if claims.ID == "" {
		return "", ErrInvalidOAuthState
	}
	return claims.ID, nil
}
