package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhiburugu8586/StudentMart/internal/hash"
	"github.com/abhiburugu8586/StudentMart/internal/models"
	"github.com/abhiburugu8586/StudentMart/internal/repo"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	Repo          *repo.GormRepo
	JWTSecret     []byte
	RefreshSecret []byte
}

type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username required: %w", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password required: %w", ErrValidation)
	}

	if _, err := s.Repo.GetUserByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username %q already exists: %w", username, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, *models.User, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("invalid username or password: %w", ErrValidation)
		}
		return nil, nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, nil, fmt.Errorf("invalid username or password: %w", ErrValidation)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	refreshModel := &models.RefreshToken{
		Token:     pair.RefreshToken,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: pair.RefreshExpiresAt.Unix(),
	}
	if err := s.Repo.SaveRefreshToken(ctx, refreshModel); err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.Repo.RevokeRefreshToken(ctx, refreshToken)
}

// Refresh exchanges a stored refresh token for a fresh token pair. The spent
// token is revoked so each refresh token is single-use.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*TokenPair, *models.User, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.RefreshSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil, fmt.Errorf("invalid refresh token: %w", ErrValidation)
	}

	stored, err := s.Repo.GetRefreshToken(ctx, raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("unknown refresh token: %w", ErrValidation)
		}
		return nil, nil, err
	}
	if stored.Revoked || stored.ExpiresAt < time.Now().Unix() {
		return nil, nil, fmt.Errorf("refresh token revoked or expired: %w", ErrValidation)
	}

	user, err := s.Repo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Repo.RevokeRefreshToken(ctx, raw); err != nil {
		return nil, nil, err
	}
	next := &models.RefreshToken{
		Token:     pair.RefreshToken,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: pair.RefreshExpiresAt.Unix(),
	}
	if err := s.Repo.SaveRefreshToken(ctx, next); err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// ParseAccess validates an access token and returns the subject claims. Used
// by the auth middleware; the core only ever sees the resulting user id.
func (s *AuthService) ParseAccess(raw string) (uint, string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.JWTSecret, nil
	})
	if err != nil {
		return 0, "", err
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("invalid subject claim")
	}
	role, _ := claims["role"].(string)

	return uint(sub), role, nil
}

func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	accessExp := time.Now().Add(AccessTokenTTL)
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  accessExp.Unix(),
	})
	accessToken, err := access.SignedString(s.JWTSecret)
	if err != nil {
		return nil, err
	}

	refreshExp := time.Now().Add(RefreshTokenTTL)
	// jti keeps rotated tokens distinct even when issued within the same
	// second, which the unique token column requires.
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  refreshExp.Unix(),
		"typ":  "refresh",
		"jti":  uuid.NewString(),
	})
	refreshToken, err := refresh.SignedString(s.RefreshSecret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}
