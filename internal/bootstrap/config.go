package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/eleven-am/metric-frames/internal/frames"
	"github.com/eleven-am/metric-frames/internal/gateway"
	"github.com/eleven-am/metric-frames/internal/upstream"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr       string   `env:"SERVER_ADDR" envDefault:":8080"`
	AdminAddr        string   `env:"ADMIN_ADDR" envDefault:":9090"`
	AdminEnabled     bool     `env:"ADMIN_ENABLED" envDefault:"true"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	RevenueCatBaseURL      string        `env:"REVENUECAT_BASE_URL" envDefault:"https://api.revenuecat.com/v2/"`
	RevenueCatEndpointPath string        `env:"REVENUECAT_ENDPOINT_PATH"`
	UpstreamTimeout        time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`

	DefaultMetric    string `env:"DEFAULT_METRIC"`
	DefaultScope     string `env:"DEFAULT_SCOPE"`
	DefaultLabel     string `env:"DEFAULT_LABEL"`
	DefaultSuffix    string `env:"DEFAULT_SUFFIX"`
	DefaultIcon      string `env:"DEFAULT_ICON"`
	DefaultPrecision string `env:"DEFAULT_PRECISION"`

	LegacyChartScope   bool   `env:"LEGACY_CHART_SCOPE" envDefault:"false"`
	DefaultPeriod      string `env:"DEFAULT_PERIOD"`
	DefaultGranularity string `env:"DEFAULT_GRANULARITY"`
	DefaultStart       string `env:"DEFAULT_START"`
	DefaultEnd         string `env:"DEFAULT_END"`
	DefaultAppID       string `env:"DEFAULT_APP_ID"`

	PrivacyPolicyPath string `env:"PRIVACY_POLICY_PATH"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// LoadConfig reads the environment, after loading ENV_FILE (default .env)
// when it exists. Variables already set in the environment win over the file.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) FramesSettings() frames.Settings {
	return frames.Settings{
		DefaultMetric:    c.DefaultMetric,
		DefaultScope:     c.DefaultScope,
		DefaultLabel:     c.DefaultLabel,
		DefaultSuffix:    c.DefaultSuffix,
		DefaultIcon:      c.DefaultIcon,
		DefaultPrecision: c.DefaultPrecision,
	}
}

func (c *Config) UpstreamConfig() upstream.Config {
	return upstream.Config{
		BaseURL:      c.RevenueCatBaseURL,
		EndpointPath: c.RevenueCatEndpointPath,
		Timeout:      c.UpstreamTimeout,
		WindowDefaults: map[string]string{
			"period":      c.DefaultPeriod,
			"granularity": c.DefaultGranularity,
			"start":       c.DefaultStart,
			"end":         c.DefaultEnd,
			"app_id":      c.DefaultAppID,
		},
	}
}

func (c *Config) RateLimiterConfig() gateway.RateLimiterConfig {
	cfg := gateway.DefaultRateLimiterConfig()
	cfg.RequestsPerSecond = c.RateLimitRPS
	cfg.Burst = c.RateLimitBurst
	return cfg
}
