package main

import (
	"context"
	"log/slog"
	"os"

	"jobboard/config"
	"jobboard/internal/delivery"
	"jobboard/internal/delivery/api"
	"jobboard/internal/delivery/api/middleware"
	"jobboard/internal/delivery/api/router/handler"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/auth"
	logs "jobboard/internal/infra/log"
	"jobboard/internal/infra/metrics"
	"jobboard/internal/infra/persistence/database"
	"jobboard/internal/usecase/impl"

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
		database.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.AuthMetrics)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewAccountRepository,
			database.NewJobRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			service.NewOwnershipGuard,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAuthenticator,
			impl.NewJobService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewJobHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
