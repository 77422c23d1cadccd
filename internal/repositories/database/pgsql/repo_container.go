package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/rateserve/fx_rates_app/internal/core/ports/repositories"
)

// RepositoryContainer bundles all pgsql-backed repositories.
type RepositoryContainer struct {
	ExchangeRate portsrepo.ExchangeRateRepository
	User         portsrepo.UserRepository
}

// NewRepositoryContainer wires every repository onto the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		ExchangeRate: NewPgxExchangeRateRepository(pool),
		User:         NewPgxUserRepository(pool),
	}
}
