package main

import (
	"context"
	"log/slog"
	"os"

	"studyhub/config"
	"studyhub/internal/delivery"
	"studyhub/internal/delivery/api"
	"studyhub/internal/delivery/api/middleware"
	"studyhub/internal/delivery/api/router/handler"
	"studyhub/internal/infra/auth"
	"studyhub/internal/infra/cache"
	"studyhub/internal/infra/gdrive"
	logs "studyhub/internal/infra/log"
	"studyhub/internal/infra/persistence/postgres"
	"studyhub/internal/infra/pubsub"
	"studyhub/internal/infra/qrcode"
	"studyhub/internal/infra/storage"
	"studyhub/internal/usecase/impl"

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
			postgres.RegisterMigrations,
			impl.RegisterDepartmentCheck,
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
		storage.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewResourceRepository,
			postgres.NewDepartmentRepository,
			postgres.NewUserRepository,
			postgres.NewUploadRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewIdentityVerifier,
			cache.New,
			gdrive.NewTokenCacheFromConfig,
			gdrive.NewAccessTokenProvider,
			gdrive.NewFileLister,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResourceService,
			impl.NewFileService,
			impl.NewAuthService,
			impl.NewShareService,
			impl.NewFeedbackService,
			impl.NewUploadService,
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
			handler.NewDepartmentHandler,
			handler.NewResourceHandler,
			handler.NewFileHandler,
			handler.NewAuthHandler,
			handler.NewShareHandler,
			handler.NewFeedbackHandler,
			handler.NewAdminFileHandler,
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
