package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"khata/internal/core/apperror"
	"khata/internal/core/entity"
	"khata/internal/core/id"
	"khata/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{PasswordMinLength: 8}
}

// Service provides authentication and user management logic.
type Service struct {
	userRepo   UserRepository
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, jwtService *JWTService, config ServiceConfig) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		config:     config,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if len(req.Password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}
	role := req.Role
	if role == "" {
		role = RoleStaff
	}

	user := &User{
		Catalog:  entity.NewCatalog(),
		Username: req.Username,
		Role:     role,
	}
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicate("user", "username", req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info(ctx, "user registered", "username", user.Username, "role", user.Role)
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid username or password")
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user,
	}, nil
}

// ChangePassword verifies the old password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, userID id.ID, oldPassword, newPassword string) error {
	if len(newPassword) < s.config.PasswordMinLength {
		return apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "newPassword")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return apperror.NewUnauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}

// EnsureAdmin seeds the default admin account if it does not exist yet.
// Called on every boot after the schema bootstrap.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !apperror.IsNotFound(err) {
		return err
	}
	_, err = s.Register(ctx, RegisterRequest{
		Username: username,
		Password: password,
		Role:     RoleAdmin,
	})
	return err
}

// Users lists all login accounts.
func (s *Service) Users(ctx context.Context) ([]*User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser removes a login account.
func (s *Service) DeleteUser(ctx context.Context, userID id.ID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
