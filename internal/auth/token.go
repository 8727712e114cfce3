package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	EmailAddress string `json:"emailAddress"`
	UserID       uint   `json:"id"`
	IsAdmin      bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate issues a bearer token for the given identity. Tokens carry no
// expiry: they stay valid until a new login rotates them, matching the
// deployed policy.
func (m *TokenManager) Generate(emailAddress string, userID uint, isAdmin bool) (string, error) {
	claims := &Claims{
		EmailAddress: emailAddress,
		UserID:       userID,
		IsAdmin:      isAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
