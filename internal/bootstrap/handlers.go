package bootstrap

import (
	"github.com/eleven-am/metric-frames/internal/frames"
	"github.com/eleven-am/metric-frames/internal/gateway"
	"github.com/eleven-am/metric-frames/internal/metric"
	"github.com/eleven-am/metric-frames/internal/privacy"
	"github.com/eleven-am/metric-frames/internal/telemetry"
	"github.com/eleven-am/metric-frames/internal/upstream"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type HandlerParams struct {
	fx.In

	FramesHandler  *frames.Handler
	PrivacyHandler *privacy.Handler
	Config         *Config
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	params.PrivacyHandler.RegisterRoutes(e)
	params.FramesHandler.RegisterRoutes(e, gateway.RateLimiter(params.Config.RateLimiterConfig()))
}

func ProvideScopeResolver(cfg *Config) *metric.ScopeResolver {
	return metric.NewScopeResolver(cfg.DefaultScope, cfg.LegacyChartScope)
}

func ProvideRequestBuilder(cfg *Config) (*upstream.RequestBuilder, error) {
	return upstream.NewRequestBuilder(cfg.UpstreamConfig())
}

func ProvideUpstreamClient(cfg *Config, metrics *telemetry.Metrics, logger *zap.Logger) *upstream.Client {
	return upstream.NewClient(cfg.UpstreamConfig(), logger.Named("upstream"), metrics)
}

func ProvideFramesHandler(
	cfg *Config,
	scopes *metric.ScopeResolver,
	requests *upstream.RequestBuilder,
	client *upstream.Client,
	logger *zap.Logger,
) *frames.Handler {
	return frames.NewHandler(cfg.FramesSettings(), scopes, requests, client, logger.Named("frames"))
}

func ProvidePrivacyPolicy(cfg *Config) (*privacy.Policy, error) {
	return privacy.Load(cfg.PrivacyPolicyPath)
}

var TelemetryModule = fx.Options(
	fx.Provide(telemetry.New),
)

var UpstreamModule = fx.Options(
	fx.Provide(
		ProvideScopeResolver,
		ProvideRequestBuilder,
		ProvideUpstreamClient,
	),
)

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideFramesHandler,
		ProvidePrivacyPolicy,
		privacy.NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
