// Package roll implements the roll CLI: it answers chat-style messages from
// the command line or stdin, rolling locally or through a remote roller.
package roll

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/dicegoblin/internal/command"
	"github.com/louisbranch/dicegoblin/internal/dice"
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	entrypoint "github.com/louisbranch/dicegoblin/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/dicegoblin/internal/platform/grpc"
	"github.com/louisbranch/dicegoblin/internal/platform/timeouts"
	rollerservice "github.com/louisbranch/dicegoblin/internal/services/roller/api/grpc/roller"
)

// Config holds roll command configuration.
type Config struct {
	// Addr is a remote roller address; empty rolls in-process.
	Addr      string `env:"ROLL_ADDR"`
	MaxDice   int64  `env:"MAX_DICE"   envDefault:"1000000"`
	MaxLength int    `env:"MAX_LENGTH" envDefault:"1024"`
	// Seed replays rolls when set.
	Seed *int64
	// Args is the message to answer; empty reads messages from stdin.
	Args []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "remote roller address (empty rolls locally)")
	fs.Int64Var(&cfg.MaxDice, "max-dice", cfg.MaxDice, "maximum dice per roll")
	fs.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "maximum expression length in bytes")
	fs.Func("seed", "seed of a previous roll to replay", func(value string) error {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer: %w", err)
		}
		cfg.Seed = &seed
		return nil
	})
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// replier answers one chat message.
type replier interface {
	Reply(ctx context.Context, text string) string
}

type localReplier struct {
	dispatcher *command.Dispatcher
}

func (r localReplier) Reply(ctx context.Context, text string) string {
	return r.dispatcher.Reply(ctx, text).Text
}

type remoteReplier struct {
	client *rollerservice.Client
	seed   *int64
}

func (r remoteReplier) Reply(ctx context.Context, text string) string {
	cmd := command.Parse(text)
	switch cmd.Kind {
	case command.KindStart:
		return command.StartMessage
	case command.KindHelp:
		return command.HelpMessage
	case command.KindRoll:
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()
		reply, err := r.client.Roll(callCtx, cmd.Expression, r.seed)
		if err != nil {
			return rollerservice.UserMessage(err)
		}
		return reply.Text
	default:
		return command.UnknownMessage
	}
}

// Run answers cfg.Args, or each stdin line when there are no args.
func Run(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoll, func(ctx context.Context) error {
		r, closeFn, err := newReplier(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		if len(cfg.Args) > 0 {
			_, err := fmt.Fprintln(stdout, r.Reply(ctx, strings.Join(cfg.Args, " ")))
			return err
		}
		return replyLines(ctx, r, stdin, stdout)
	})
}

func newReplier(ctx context.Context, cfg Config) (replier, func(), error) {
	if cfg.Addr == "" {
		roller := dice.New(dice.WithLimits(expr.Limits{MaxDice: cfg.MaxDice, MaxLength: cfg.MaxLength}))
		dispatcher := command.NewDispatcher(roller)
		dispatcher.Seed = cfg.Seed
		return localReplier{dispatcher: dispatcher}, func() {}, nil
	}

	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Addr, rollerservice.ServiceName, timeouts.GRPCDial, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("dial roller %s: %w", cfg.Addr, err)
	}
	closeFn := func() { _ = conn.Close() }
	return remoteReplier{client: rollerservice.NewClient(conn), seed: cfg.Seed}, closeFn, nil
}

func replyLines(ctx context.Context, r replier, stdin io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(stdout, r.Reply(ctx, line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
