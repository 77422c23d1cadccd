package services

import (
	"context"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
	"github.com/rateserve/fx_rates_app/internal/dto"
)

// UserSvcFacade is the service interface for API users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
