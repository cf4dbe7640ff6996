// internal/utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// The session cookie carries an HS256-signed JWT wrapping the opaque
// server-side session token, so a forged cookie fails signature verification
// before any database lookup.

type SessionClaims struct {
	Token string `json:"token"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("dev-secret")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func SignSessionToken(token string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "comparison-market",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(jwtSecret)
}

// ParseSessionToken returns the opaque session token wrapped in the cookie
// value, or an error for anything unsigned, tampered, or expired.
func ParseSessionToken(cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.Token != "" {
		return claims.Token, nil
	}

	return "", errors.New("invalid session cookie")
}
