package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"devnetwork-backend/internal/domains/user"
	"devnetwork-backend/pkg/jwt"
)

// userService implements user.Service
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates the service instance
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates a new identity and returns a signed token
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.TokenResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Avatar:       GravatarURL(req.Email),
	}

	if err := s.repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(usr.ID.String())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &user.TokenResponse{Token: token}, nil
}

// Login checks credentials and returns a signed token
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	usr, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(usr.ID.String())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &user.TokenResponse{Token: token}, nil
}

// GetByID returns the identity without its password hash
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	usr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	usr.PasswordHash = ""
	return usr, nil
}

// GravatarURL derives the avatar URL from an email address.
// 200px, PG rated, "mystery man" fallback.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(hash[:]))
}
