package repositories

import (
	"context"

	"github.com/rateserve/fx_rates_app/internal/core/domain"
)

// UserRepository is the persistence abstraction over API users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
