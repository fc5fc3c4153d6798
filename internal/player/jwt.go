package player

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues the identity token handed to the arcade client when a
// player is created or fetched by username.
var GenerateToken = func(playerID string) (string, error) {
	claims := TokenClaims{
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
