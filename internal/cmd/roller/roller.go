// Package roller parses roller command flags and serves the gRPC API.
package roller

import (
	"context"
	"flag"

	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	entrypoint "github.com/louisbranch/dicegoblin/internal/platform/cmd"
	server "github.com/louisbranch/dicegoblin/internal/services/roller/app"
)

// Config holds roller command configuration.
type Config struct {
	Addr        string  `env:"ROLLER_ADDR"         envDefault:"localhost:8090"`
	MetricsAddr string  `env:"ROLLER_METRICS_ADDR" envDefault:"localhost:9090"`
	RateLimit   float64 `env:"ROLLER_RATE_LIMIT"   envDefault:"0"`
	RateBurst   int     `env:"ROLLER_RATE_BURST"   envDefault:"20"`
	MaxDice     int64   `env:"MAX_DICE"            envDefault:"1000000"`
	MaxLength   int     `env:"MAX_LENGTH"          envDefault:"1024"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC listen address")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus metrics address (empty disables)")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "sustained rolls per second (0 disables)")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "rolls admitted at once")
	fs.Int64Var(&cfg.MaxDice, "max-dice", cfg.MaxDice, "maximum dice per roll")
	fs.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "maximum expression length in bytes")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts cfg into server options.
func (cfg Config) Options() server.Options {
	return server.Options{
		Addr:        cfg.Addr,
		MetricsAddr: cfg.MetricsAddr,
		Limits:      expr.Limits{MaxDice: cfg.MaxDice, MaxLength: cfg.MaxLength},
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
	}
}

// Run serves the roller until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoller, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Options())
	})
}
