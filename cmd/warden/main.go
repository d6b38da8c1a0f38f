package main

import (
	"context"
	"log/slog"
	"os"

	"warden/config"
	"warden/internal/delivery"
	"warden/internal/delivery/http"
	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/router/handler"
	"warden/internal/domain/entity"
	"warden/internal/infra/auth"
	logs "warden/internal/infra/log"
	"warden/internal/infra/persistence/postgres"
	"warden/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewAccountStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIdentityClassifier,
		),
	)
}

// newIdentityClassifier resolves the identity settings once at startup. The
// classifier is immutable afterwards.
func newIdentityClassifier(cfg *config.Config) *entity.IdentityClassifier {
	anonymousEnabled := false
	anonymousPrincipal := ""
	internalPrincipals := entity.DefaultInternalPrincipals()

	if cfg.Security != nil {
		anonymousEnabled = cfg.Security.AnonymousEnabled
		anonymousPrincipal = cfg.Security.AnonymousPrincipal
		if len(cfg.Security.InternalPrincipals) > 0 {
			internalPrincipals = cfg.Security.InternalPrincipals
		}
	}

	return entity.NewIdentityClassifier(anonymousEnabled, anonymousPrincipal, internalPrincipals)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewPasswordService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
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
