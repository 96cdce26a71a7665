package components

import (
	"log/slog"

	"carrental-storefront/internal/infra/cache"
	"carrental-storefront/internal/infra/repository"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repository.NewCarRepository,
		NewCarProvider,
		NewConfirmGuard,
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}

// NewCarProvider puts the redis cache in front of the repository when redis is configured.
func NewCarProvider(repo *repository.CarRepository, client *redis.Client, cfg config.Config, logger *slog.Logger) shared.CarProvider {
	if client == nil {
		return repo
	}
	return cache.NewCarCache(client, repo, cfg.Redis, logger)
}

func NewConfirmGuard(client *redis.Client) shared.ConfirmGuard {
	if client == nil {
		return cache.NopGuard{}
	}
	return cache.NewConfirmGuard(client)
}
