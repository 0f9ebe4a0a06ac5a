package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/louisbranch/dicegoblin/internal/cmd/roll"
	"github.com/louisbranch/dicegoblin/internal/platform/config"
)

// main answers roll messages from arguments or stdin.
func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[ROLL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rollcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("roll: %v", err)
	}
}
