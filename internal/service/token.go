// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"cadastro-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims is the JWT payload asserting a user's identity.
type CustomClaims struct {
	UserID int    `json:"id"`
	Name   string `json:"nome"`
	jwt.RegisteredClaims
}

var timeNow = time.Now

// IssueAccessToken signs an HS256 bearer token for the user, expiring at
// now + ttl. The secret is injected from configuration; an empty secret is
// refused rather than defaulted.
func IssueAccessToken(secret string, user model.User, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret not configured")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
