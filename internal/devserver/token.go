package devserver

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/filebox/filebox/internal/common"
)

// claims carries the standard registered claims plus the owning user id.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

func generateToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	return token.SignedString(secret)
}

func userIDFromToken(tokenString string, secret []byte) (string, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return c.UserID, nil
}
