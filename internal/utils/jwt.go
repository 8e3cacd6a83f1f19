package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type accountClaims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed bearer token for the provided account ID.
func GenerateToken(secret string, accountID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &accountClaims{
		AccountID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a bearer token and returns the embedded account ID.
// Signature, form and expiry failures are all reported as errors.
func ParseToken(secret, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accountClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if claims, ok := token.Claims.(*accountClaims); ok && token.Valid {
		return uuid.Parse(claims.AccountID)
	}

	return uuid.Nil, jwt.ErrTokenInvalidClaims
}
