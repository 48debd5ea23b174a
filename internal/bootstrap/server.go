package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/eleven-am/metric-frames/internal/frames"
	"github.com/eleven-am/metric-frames/internal/health"
	"github.com/eleven-am/metric-frames/internal/telemetry"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func corsConfig(cfg *Config) middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Accept",
			"Authorization",
		},
		MaxAge: 86400,
	}
}

func NewEchoServer(cfg *Config, logger *zap.Logger, metrics *telemetry.Metrics, healthHandler *health.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = frames.ErrorHandler(logger.Named("frames"))

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger.Named("access")))
	e.Use(metrics.Middleware())
	e.Use(healthHandler.Middleware())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig(cfg)))
	return e
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, e *echo.Echo, cfg *Config, logger *zap.Logger) {
	appendServerHooks(lc, shutdowner, e, cfg.ServerAddr, logger.Named("server"))
}

// appendServerHooks binds addr during start so a taken port fails the app
// instead of a background goroutine.
func appendServerHooks(lc fx.Lifecycle, shutdowner fx.Shutdowner, e *echo.Echo, addr string, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			e.Listener = ln
			logger.Info("listening", zap.String("addr", ln.Addr().String()))

			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

var ServerModule = fx.Options(
	fx.Provide(NewEchoServer),
	fx.Invoke(StartServer),
)

func Options() fx.Option {
	return fx.Options(
		fx.Provide(LoadConfig),
		LoggingModule,
		TelemetryModule,
		UpstreamModule,
		HealthModule,
		ServerModule,
		AdminModule,
		HandlersModule,
	)
}

func Run() {
	fx.New(Options()).Run()
}
