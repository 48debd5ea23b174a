package bootstrap

import (
	"github.com/eleven-am/metric-frames/internal/health"
	"github.com/eleven-am/metric-frames/internal/telemetry"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// AdminServer serves health, metrics and API docs on a separate listener so
// the public listener keeps every path for frames.
type AdminServer struct {
	*echo.Echo
}

func NewAdminServer(metrics *telemetry.Metrics, healthHandler *health.Handler) *AdminServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	healthHandler.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return &AdminServer{Echo: e}
}

func StartAdminServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, admin *AdminServer, cfg *Config, logger *zap.Logger) {
	if !cfg.AdminEnabled {
		return
	}
	appendServerHooks(lc, shutdowner, admin.Echo, cfg.AdminAddr, logger.Named("admin"))
}

var AdminModule = fx.Options(
	fx.Provide(NewAdminServer),
	fx.Invoke(StartAdminServer),
)
