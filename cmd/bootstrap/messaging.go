package bootstrap

import (
	"context"
	"log/slog"

	"carrental-storefront/internal/infra/messaging"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewIntentPublisher,
	),
)

func NewIntentPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.IntentPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("kafka disabled, booking intents are logged only")
		return messaging.NewLogPublisher(logger)
	}

	publisher := messaging.NewIntentPublisher(messaging.NewWriter(cfg.Kafka))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("kafka intent publisher ready", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.IntentsTopic)
	return publisher
}
