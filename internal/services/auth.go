package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/platform/logger"
)

// AuthService issues and validates the bearer tokens used by the CMS. There
// is a single operator account configured from the environment; token
// refresh/expiry handling beyond TTL is the frontend's concern.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, int, error)
	ValidateToken(tokenString string) (string, error)
	AccessTTL() time.Duration
}

type AuthConfig struct {
	JWTSecretKey      string
	AccessTTL         time.Duration
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
}

type authService struct {
	log *logger.Logger
	cfg AuthConfig
}

func NewAuthService(baseLog *logger.Logger, cfg AuthConfig) AuthService {
	return &authService{log: baseLog.With("service", "AuthService"), cfg: cfg}
}

func (as *authService) Login(ctx context.Context, username, password string) (string, int, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", 0, apierr.Validation(fmt.Errorf("username and password are required"))
	}
	if !as.credentialsMatch(username, password) {
		as.log.Warn("login rejected", "username", username)
		return "", 0, apierr.Unauthorized(fmt.Errorf("incorrect username or password"))
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.cfg.AccessTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.cfg.JWTSecretKey))
	if err != nil {
		return "", 0, apierr.Internal(fmt.Errorf("sign access token: %w", err))
	}
	as.log.Info("operator logged in", "username", username)
	return token, int(as.cfg.AccessTTL.Seconds()), nil
}

func (as *authService) credentialsMatch(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(as.cfg.AdminUsername)) != 1 {
		return false
	}
	if as.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(as.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(as.cfg.AdminPassword)) == 1
}

func (as *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(as.cfg.JWTSecretKey), nil
		},
	)
	if err != nil || !token.Valid {
		return "", apierr.Unauthorized(fmt.Errorf("could not validate credentials"))
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apierr.Unauthorized(fmt.Errorf("could not validate credentials"))
	}
	return claims.Subject, nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.cfg.AccessTTL
}
