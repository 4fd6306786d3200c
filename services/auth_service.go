package services

import (
	"context"
	"errors"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"
	"github.com/alinaharnat/healthy-eating-tracking-system/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a bcrypt-hashed password. Role defaults to
// client when empty.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*models.User, string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	if role == "" {
		role = models.RoleClient
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate verifies credentials and rejects blocked accounts. The same
// error is returned whether the account is missing, blocked or the
// password is wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
