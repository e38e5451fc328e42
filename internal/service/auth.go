package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/canya/backend/internal/config"
	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/store"
)

// ErrMisconfigured is returned from NewAuthService; it aborts startup rather
// than letting the process run with a guessable signing key.
var ErrMisconfigured = fmt.Errorf("auth config invalid")

type AuthService struct {
	store     *store.FileStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

type authClaims struct {
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(fs *store.FileStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: SECRET_KEY is required", ErrMisconfigured)
	}

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid TOKEN_TTL", ErrMisconfigured)
	}

	return &AuthService{
		store:     fs,
		jwtSecret: []byte(cfg.Secret),
		tokenTTL:  tokenTTL,
	}, nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password both return ErrUnauthorized, so the response never reveals
// whether an account exists.
func (s *AuthService) Login(email, password string) (string, *model.AuthUser, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidInput
	}

	users, err := store.Read[model.User](s.store, store.Users)
	if err != nil {
		return "", nil, err
	}

	var found *model.User
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return "", nil, ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrUnauthorized
	}

	user := model.AuthUser{
		ID:    found.ID,
		Email: found.Email,
		Name:  found.Name,
		Role:  found.Role,
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// IssueToken signs an HS256 token carrying the user's identity claims,
// expiring tokenTTL from now.
func (s *AuthService) IssueToken(user model.AuthUser) (string, error) {
	now := time.Now()
	claims := authClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken verifies the signature and expiry and returns the embedded
// identity. Expired, tampered, and malformed tokens are indistinguishable to
// the caller: all come back as ErrUnauthorized.
func (s *AuthService) ParseToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	return &model.AuthUser{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
