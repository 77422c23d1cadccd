package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rateserve/fx_rates_app/internal/core/domain"
	portsrepo "github.com/rateserve/fx_rates_app/internal/core/ports/repositories"
	portssvc "github.com/rateserve/fx_rates_app/internal/core/ports/services"
	"github.com/rateserve/fx_rates_app/internal/dto"
	"github.com/rateserve/fx_rates_app/internal/utils"
)

// UserService provides business logic for API users.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Ensure implementation matches interface
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser registers a new user with a bcrypt password hash.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username or ErrNotFound.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// GetUserByID returns the user with the given ID or ErrNotFound.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
