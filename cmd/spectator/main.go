package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/wvoliveira/pong-duel/app"
	"github.com/wvoliveira/pong-duel/configs"
	"github.com/wvoliveira/pong-duel/spectate"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "path to a TOML config file (or PONG_CONFIG)")
		url        = flag.String("url", "", "spectator feed URL, defaults to spectate_url from config")
	)
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		slog.Error("error to load config", "error", err)
		return 1
	}
	if *url != "" {
		cfg.SpectateURL = *url
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	feed, err := spectate.Dial(ctx, cfg.SpectateURL)
	cancel()
	if err != nil {
		slog.Error("error to connect to game", "url", cfg.SpectateURL, "error", err)
		return 1
	}
	defer feed.Close()

	v, err := app.NewViewer(cfg, feed)
	if err != nil {
		slog.Error("error to create viewer", "error", err)
		return 1
	}

	if err := app.Run(v, cfg, cfg.Title+" (spectator)"); err != nil {
		slog.Error("error to run viewer", "error", err)
		return 1
	}
	return 0
}
