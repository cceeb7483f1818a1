package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// MakeAuthToken issues the bearer token handed out after a successful
// OTP verification. The token is bound to the account identity only.
func MakeAuthToken(userID uint) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}
