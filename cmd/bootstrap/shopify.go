package bootstrap

import (
	"context"
	"log/slog"

	"priceflow/internal/infra/catalog"
	"priceflow/internal/pkg/config"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"go.uber.org/fx"
)

var ShopifyModule = fx.Module("shopify",
	fx.Provide(
		catalog.NewClients,
		fx.Annotate(
			catalog.NewCommandClients,
			fx.As(new(commands.CatalogClients)),
		),
		fx.Annotate(
			catalog.NewReaderClients,
			fx.As(new(queries.CatalogReaders)),
		),
	),
	fx.Invoke(seedDevSession),
)

// seedDevSession stores the configured dev-shop token at startup so a
// local instance can talk to the catalog without an OAuth round trip.
func seedDevSession(lc fx.Lifecycle, cfg config.Config, sessions commands.SessionStore) {
	if cfg.Shopify.DevShop == "" || cfg.Shopify.DevToken == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sessions.Upsert(ctx, cfg.Shopify.DevShop, cfg.Shopify.DevToken, ""); err != nil {
				slog.Warn("failed to seed dev shop session", "shop", cfg.Shopify.DevShop, "error", err.Error())
				return nil
			}
			slog.Info("dev shop session seeded", "shop", cfg.Shopify.DevShop)
			return nil
		},
	})
}
