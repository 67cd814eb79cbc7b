package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for the user. The returned token id
// (jti) keys the server-side session registry, which is what makes logout
// revocation and the configurable TTL work on top of a stateless JWT.
func GenerateToken(secret string, ttl time.Duration, userID, email, name string) (token string, tokenID string, err error) {
	tokenID = uuid.NewString()
	claims := &SessionClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(secret))
	return token, tokenID, err
}

// generateTokenWithID is the SSO variant where the session id doubles as the
// token id, so /api/auth/sso/check can look the session up directly.
func generateTokenWithID(secret string, ttl time.Duration, tokenID, userID, email, name string) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
