package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Issue creates a token bound to subject that expires ttl from now. The
// expiry is absolute, so a zero ttl produces an already-expired token.
func (j *JWT) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the token signature and expiry and returns the embedded
// subject. Failures map onto the model token errors.
func (j *JWT) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", model.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", model.ErrTokenExpired
		default:
			return "", model.ErrTokenInvalidSignature
		}
	}
	if !token.Valid {
		return "", model.ErrTokenInvalidSignature
	}
	if claims.Subject == "" {
		return "", model.ErrTokenMalformed
	}

	return claims.Subject, nil
}
