package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT mints a 30-day HS256 token carrying the user's ID.
func GenerateJWT(userID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(secret))
}
