package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/nvquang/product-api/internal/config"
	"github.com/nvquang/product-api/internal/events"
	"github.com/nvquang/product-api/internal/repo/mongodb"
	"github.com/nvquang/product-api/internal/server"
	"github.com/nvquang/product-api/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,

			server.NewProductController,
			server.NewAuthController,

			usecase.NewProductUsecase,
			usecase.NewAuthUsecase,

			mongodb.NewProductRepository,
			mongodb.NewUserRepository,
			mongodb.NewAuthTokenRepository,

			events.NewPublisher,
		),
		fx.Supply(conf),
		fx.Invoke(EnsureIndexes),
		fx.Invoke(InitializeUsers),
		fx.Invoke(CleanupExpiredTokens),
		fx.Invoke(funcs...),
	)
}

// EnsureIndexes creates the unique product id index on startup.
func EnsureIndexes(lc fx.Lifecycle, productRepo mongodb.ProductRepository) {
	lc.Append(fx.Hook{
		OnStart: productRepo.EnsureIndexes,
	})
}

// CleanupExpiredTokens drops stale auth tokens so the collection does not
// grow unbounded between deployments.
func CleanupExpiredTokens(lc fx.Lifecycle, tokenRepo mongodb.AuthTokenRepository) {
	lc.Append(fx.Hook{
		OnStart: tokenRepo.DeleteExpiredTokens,
	})
}

// InitializeUsers seeds the configured admin account on startup.
func InitializeUsers(lc fx.Lifecycle, userRepo mongodb.UserRepository, conf *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return usecase.SeedAdminUser(ctx, userRepo, conf)
		},
	})
}
