package services

import (
	portssvc "github.com/rateserve/fx_rates_app/internal/core/ports/services"
	"github.com/rateserve/fx_rates_app/internal/repositories/database/pgsql"
)

// NewServiceContainer wires the concrete services onto the repositories and
// the feed source.
func NewServiceContainer(repos *pgsql.RepositoryContainer, feed RateFeed) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ExchangeRate: NewExchangeRateService(repos.ExchangeRate, feed),
		User:         NewUserService(repos.User),
	}
}
