package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"
)

var (
	instance *JWT
	once     sync.Once

	ErrInvalidToken = errors.New("jwt: invalid token")
)

type JWT struct {
	issuer             string
	secretKey          []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

// Initialize sets up the process-wide signer. Later calls are no-ops.
func Initialize(issuer, secretKey string, accessExpiry, refreshExpiry time.Duration) {
	once.Do(func() {
		instance = &JWT{
			issuer:             issuer,
			secretKey:          []byte(secretKey),
			accessTokenExpiry:  accessExpiry,
			refreshTokenExpiry: refreshExpiry,
		}
	})
}

func GetInstance() *JWT {
	return instance
}

func GenerateAccessToken(userID, email, level string) (string, error) {
	return instance.sign(userID, email, level, TokenTypeAccess, instance.accessTokenExpiry)
}

func GenerateRefreshToken(userID, email, level string) (string, error) {
	return instance.sign(userID, email, level, TokenTypeRefresh, instance.refreshTokenExpiry)
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return instance.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (j *JWT) sign(userID, email, level, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		ID:        userID,
		Email:     email,
		Level:     level,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signed, nil
}
