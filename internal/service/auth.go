package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/laundry-service/config"
)

var (
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a JWT is malformed, expired or
	// signed with the wrong key.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the JWT claims issued by the auth service.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService authenticates the catalog administrator and validates tokens.
// Credentials come from configuration: a username and a bcrypt password hash.
type AuthService interface {
	// Login verifies credentials and issues a signed access token.
	Login(username, password string) (token string, expiresAt time.Time, err error)
	// ValidateToken parses and verifies an access token.
	ValidateToken(token string) (*Claims, error)
}

// AdminAuthService implements AuthService against configured admin credentials.
type AdminAuthService struct {
	cfg config.AuthConfig
}

// NewAdminAuthService creates an auth service from the given configuration.
func NewAdminAuthService(cfg config.AuthConfig) *AdminAuthService {
	return &AdminAuthService{cfg: cfg}
}

// Login verifies the admin credentials and issues an HS256 JWT.
func (s *AdminAuthService) Login(username, password string) (string, time.Time, error) {
	if username != s.cfg.AdminUser || s.cfg.AdminPasswordHash == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateToken parses and verifies an access token issued by Login.
func (s *AdminAuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
