package main

import (
	"context"
	"log/slog"
	"os"

	"roost/config"
	"roost/internal/delivery"
	"roost/internal/delivery/http"
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/router/handler"
	"roost/internal/domain/search"
	"roost/internal/infra/geocoding"
	logs "roost/internal/infra/log"
	"roost/internal/infra/media"
	"roost/internal/infra/persistence/postgres"
	"roost/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPropertyRepository,
			postgres.NewLocationRepository,
			postgres.NewLeaseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocoding.NewResolver,
			media.New,
			newSearchCompiler,
		),
	)
}

// newSearchCompiler builds the filter compiler with the configured
// proximity radius.
func newSearchCompiler(cfg *config.Config) *search.Compiler {
	return search.NewCompiler(cfg.Search.RadiusMeters)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPropertyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPropertyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
