package bootstrap

import (
	"carrental-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	MessagingModule,
	DomainModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
