// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	"github.com/louisbranch/dicegoblin/internal/dice"
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	entrypoint "github.com/louisbranch/dicegoblin/internal/platform/cmd"
	"github.com/louisbranch/dicegoblin/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr  string `env:"MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	MaxDice   int64  `env:"MAX_DICE"      envDefault:"1000000"`
	MaxLength int    `env:"MAX_LENGTH"    envDefault:"1024"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.Int64Var(&cfg.MaxDice, "max-dice", cfg.MaxDice, "maximum dice per roll")
	fs.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "maximum expression length in bytes")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		roller := dice.New(dice.WithLimits(expr.Limits{MaxDice: cfg.MaxDice, MaxLength: cfg.MaxLength}))
		return service.New(roller).Run(ctx, service.Config{
			Transport: cfg.Transport,
			HTTPAddr:  cfg.HTTPAddr,
		})
	})
}
