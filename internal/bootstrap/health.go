package bootstrap

import (
	"context"

	"github.com/eleven-am/metric-frames/internal/health"
	"github.com/eleven-am/metric-frames/internal/upstream"
	"go.uber.org/fx"
)

var version = "dev"

func ProvideHealthHandler(requests *upstream.RequestBuilder, client *upstream.Client) *health.Handler {
	base := requests.BaseURL()
	return health.NewHandler(version, health.Check{
		Name: "upstream",
		Probe: func(ctx context.Context) error {
			return client.Probe(ctx, base)
		},
	})
}

var HealthModule = fx.Options(
	fx.Provide(ProvideHealthHandler),
)
