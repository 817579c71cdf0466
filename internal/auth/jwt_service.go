// Package auth handles admin login and JWT session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig holds the JWT signing settings.
type TokenConfig struct {
	Secret    []byte
	ExpiresIn time.Duration
}

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	Username string
	Exp      int64
	Iat      int64
}

// JWTService issues and validates HS256 access tokens.
type JWTService struct {
	config TokenConfig
}

// NewJWTService validates the signing settings and returns the service.
func NewJWTService(secret string, expiresIn time.Duration) (*JWTService, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT secret must be at least 32 characters long, got %d", len(secret))
	}
	if expiresIn <= 0 {
		return nil, errors.New("JWT token lifetime must be positive")
	}
	return &JWTService{config: TokenConfig{
		Secret:    []byte(secret),
		ExpiresIn: expiresIn,
	}}, nil
}

// GenerateAccessToken issues a token for the admin user.
func (s *JWTService) GenerateAccessToken(username string) (string, time.Time, error) {
	expiry := time.Now().Add(s.config.ExpiresIn)
	claims := jwt.MapClaims{
		"username": username,
		"type":     "access",
		"exp":      expiry.Unix(),
		"iat":      time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiry, nil
}

// ParseToken verifies the signature and returns the raw claims.
func (s *JWTService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.config.Secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ExtractClaims parses a token into typed claims.
func (s *JWTService) ExtractClaims(tokenString string) (*TokenClaims, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	username, _ := claims["username"].(string)
	expFloat, _ := claims["exp"].(float64)
	iatFloat, _ := claims["iat"].(float64)

	return &TokenClaims{
		Username: username,
		Exp:      int64(expFloat),
		Iat:      int64(iatFloat),
	}, nil
}
