package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	echomdw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/nvquang/product-api/internal/config"
	"github.com/nvquang/product-api/internal/models"
	pkgmdw "github.com/nvquang/product-api/internal/server/middleware"
	"github.com/nvquang/product-api/internal/usecase"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	productController ProductController,
	authController AuthController,
	authUsecase usecase.AuthUsecase,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.CORS(conf.CORS.AllowOrigins))
	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(echomdw.RecoverWithConfig(echomdw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", productController.Health)

	requireAdmin := []echo.MiddlewareFunc{
		pkgmdw.JWTAuth(authUsecase),
		pkgmdw.RequireRole(models.RoleAdmin),
	}

	products := e.Group("/api/products")
	products.GET("/all", productController.List)
	products.POST("/save", productController.Create, requireAdmin...)
	products.GET("/:id", productController.Get)
	products.PUT("/update/:id", productController.Update, requireAdmin...)
	products.DELETE("/delete/:id", productController.Delete, requireAdmin...)

	auth := e.Group("/api/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/logout", authController.Logout, pkgmdw.JWTAuth(authUsecase))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
