package service

import (
	"errors"
	"time"

	"changemoney-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidPassword = errors.New("mật khẩu không đúng")

// AuthService gates the admin panel behind a single shared password. The
// comparison is plain equality against a fixed value: no lockout, no rate
// limiting, no revocation. Not a security boundary; the JWT exists only so
// admin requests can carry a bearer token.
type AuthService struct {
	Config config.Config
}

type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (s AuthService) Login(password string) (*AuthResult, error) {
	if password != s.Config.AdminPassword {
		return nil, ErrInvalidPassword
	}

	now := time.Now()
	expiresAt := now.Add(s.Config.AccessTokenTTL)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        "admin",
		"role":       "admin",
		"token_type": "access",
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	}).SignedString([]byte(s.Config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
