// Package auth implements the token service: minting and verifying the
// signed bearer tokens that represent a successful authentication.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/readshelf/readshelf/internal/common"
)

// Claims is the identity embedded in a token: the registered claim set
// plus the user attributes the resolvers need.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   string `json:"userId"`
}

// GenerateToken signs an HS256 token carrying the given identity with an
// expiration validityDuration from now.
func GenerateToken(username, email, userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Username: username,
		Email:    email,
		UserID:   userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken checks signature and expiration and returns the embedded
// claims. Every failure mode (malformed, bad signature, expired) collapses
// into common.ErrorInvalidToken so callers cannot tell them apart.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrorInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
