package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute lifetime of an access token.
const TokenTTL = time.Hour

// GenerateJWT issues an HS256 token carrying the user id as subject and an
// expiry one hour from issuance.
func GenerateJWT(userID string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	})
	return token.SignedString(secret)
}

// ParseJWT validates signature and expiry and returns the subject. Any
// malformed, forged or expired token yields an error.
func ParseJWT(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("subject claim missing")
	}
	return sub, nil
}
