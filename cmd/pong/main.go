package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wvoliveira/pong-duel/app"
	"github.com/wvoliveira/pong-duel/audio"
	"github.com/wvoliveira/pong-duel/configs"
	"github.com/wvoliveira/pong-duel/game"
	"github.com/wvoliveira/pong-duel/spectate"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "path to a TOML config file (or PONG_CONFIG)")
		spectateOn = flag.String("spectate", "", "serve a read-only spectator feed on this address, e.g. :8080")
		sound      = flag.Bool("sound", false, "play bounce and score sounds")
	)
	flag.Parse()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		slog.Error("error to load config", "error", err)
		return 1
	}

	// Flags só valem quando passadas explicitamente.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spectate":
			cfg.SpectateAddr = *spectateOn
		case "sound":
			cfg.Sound = *sound
		}
	})

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []app.Option

	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub()
		go hub.Run(ctx)
		go func() {
			// O jogo continua mesmo sem o servidor de espectadores.
			if err := spectate.Serve(ctx, cfg.SpectateAddr, hub); err != nil {
				slog.Error("spectator feed stopped", "error", err)
			}
		}()
		opts = append(opts, app.WithPublisher(hub))
	}

	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			slog.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts = append(opts, app.WithSound(player))
		}
	}

	session := game.NewSession(cfg, game.SystemClock{}, nil)

	g, err := app.NewLocal(ctx, cfg, session, opts...)
	if err != nil {
		slog.Error("error to create game", "error", err)
		return 1
	}

	if err := app.Run(g, cfg, cfg.Title); err != nil {
		slog.Error("error to run game", "error", err)
		return 1
	}

	st := session.State()
	slog.Info("game over", "player_one", st.Score[game.PlayerOne], "player_two", st.Score[game.PlayerTwo])
	return 0
}
