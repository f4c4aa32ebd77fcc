// Command gridcaster runs the raycaster in a desktop window.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"gridcaster/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	if cfg.File != "" {
		slog.Info("loaded config", "file", cfg.File)
	}

	g, err := NewGame(cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		exit(1)
	}
	if err := g.Run(); err != nil {
		slog.Error("game stopped", "err", err)
		exit(1)
	}
}

func exit(rc int) {
	os.Exit(rc)
}
