package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	cryptopackage "github.com/basingerf-felix/spilna-peremoga-website/utils/crypto"
)

// ErrInvalidCredentials is returned for a wrong username or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult carries the issued access token.
type LoginResult struct {
	Username          string
	AccessToken       string
	AccessTokenExpiry time.Time
}

// LoginService authenticates the single configured admin account.
type LoginService struct {
	username     string
	passwordHash string
	jwtService   *JWTService
}

// NewLoginService validates the configured credentials up front, so a
// missing or malformed password hash fails at startup instead of turning
// every login attempt into a server error.
func NewLoginService(username, passwordHash string, jwtService *JWTService) (*LoginService, error) {
	if username == "" {
		return nil, errors.New("admin username is not configured")
	}
	if passwordHash == "" {
		return nil, errors.New("admin password hash is not configured")
	}
	if err := cryptopackage.ValidateEncodedHash(passwordHash); err != nil {
		return nil, fmt.Errorf("admin password hash is not a valid Argon2id hash: %w", err)
	}

	return &LoginService{
		username:     username,
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}, nil
}

// Login validates the credentials and issues an access token.
func (s *LoginService) Login(username, password string) (*LoginResult, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	ok, err := cryptopackage.ComparePasswordAndHash(password, s.passwordHash)
	if err != nil {
		return nil, fmt.Errorf("password comparison failed: %w", err)
	}
	if !usernameMatch || !ok {
		return nil, ErrInvalidCredentials
	}

	token, expiry, err := s.jwtService.GenerateAccessToken(s.username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{
		Username:          s.username,
		AccessToken:       token,
		AccessTokenExpiry: expiry,
	}, nil
}
