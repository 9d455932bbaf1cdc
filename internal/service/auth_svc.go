package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Lucien-Luc/Programs/internal/model"
	"github.com/Lucien-Luc/Programs/internal/pkg/session"
	"github.com/Lucien-Luc/Programs/internal/repository"
)

type AuthService struct {
	users    *repository.UserRepository
	sessions *session.Manager
}

func NewAuthService(users *repository.UserRepository, sessions *session.Manager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials against the stored bcrypt hash and creates a
// session. No session is created on failure.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (string, *session.Session, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sess := &session.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		LoginTime: time.Now().UTC().Format(time.RFC3339),
	}
	token, err := s.sessions.Create(ctx, sess)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// Signup bootstraps the admin account. Only one admin can exist.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (string, *session.Session, error) {
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, ErrAdminExists
	}
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return "", nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	sess := &session.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		LoginTime: time.Now().UTC().Format(time.RFC3339),
	}
	token, err := s.sessions.Create(ctx, sess)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser resolves a session token; a missing or expired session yields
// (nil, nil) so the handler can answer JSON null.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) AdminExists(ctx context.Context) (bool, error) {
	return s.users.AdminExists(ctx)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
