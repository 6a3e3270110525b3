package configs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalid marca toda falha de validação de configuração.
var ErrInvalid = errors.New("invalid config")

// Constantes do jogo. O espectador precisa dos mesmos valores de tela.
type Config struct {
	Title string `toml:"title"`

	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`
	PaddleWidth  uint    `toml:"paddle_width"`
	PaddleHeight uint    `toml:"paddle_height"`
	// Distância da raquete até a borda, em fração da largura.
	PaddleInset float64 `toml:"paddle_inset"`
	PaddleSpeed float64 `toml:"paddle_speed"`
	BallSize    uint    `toml:"ball_size"`
	BallSpeed   float64 `toml:"ball_speed"`

	FrameDelay time.Duration `toml:"frame_delay"`
	MaxDelta   time.Duration `toml:"max_delta"`

	ShowHUD bool `toml:"show_hud"`
	Sound   bool `toml:"sound"`

	SpectateAddr string `toml:"spectate_addr"`
	SpectateURL  string `toml:"spectate_url"`

	LogLevel string `toml:"log_level"`

	Keys Keys `toml:"keys"`
}

// Nomes de tecla no formato do ebiten (ex.: "ArrowUp", "I").
type Keys struct {
	P1Up    string `toml:"p1_up"`
	P1Down  string `toml:"p1_down"`
	P2Up    string `toml:"p2_up"`
	P2Down  string `toml:"p2_down"`
	Quit    string `toml:"quit"`
	NewGame string `toml:"new_game"`
}

func New() Config {
	return Config{
		Title: "Pong",

		ScreenWidth:  640,
		ScreenHeight: 400,
		PaddleWidth:  20,
		PaddleHeight: 50,
		PaddleInset:  0.02,
		PaddleSpeed:  1,
		BallSize:     15,
		BallSpeed:    0.2,

		FrameDelay: 16 * time.Millisecond,
		MaxDelta:   20 * time.Millisecond,

		ShowHUD: true,

		SpectateURL: "ws://localhost:8080/ws",
		LogLevel:    "info",

		Keys: Keys{
			P1Up:    "ArrowUp",
			P1Down:  "ArrowDown",
			P2Up:    "I",
			P2Down:  "K",
			Quit:    "Escape",
			NewGame: "R",
		},
	}
}

// Load monta a configuração em camadas: padrões, arquivo TOML (opcional) e
// variáveis PONG_*. Um .env no diretório atual é carregado antes.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	cfg := New()

	if path == "" {
		path = os.Getenv("PONG_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("PONG_SPECTATE_ADDR"); ok {
		c.SpectateAddr = v
	}
	if v, ok := os.LookupEnv("PONG_SPECTATE_URL"); ok {
		c.SpectateURL = v
	}
	if v, ok := os.LookupEnv("PONG_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if err := envBool("PONG_SOUND", &c.Sound); err != nil {
		return err
	}
	if err := envBool("PONG_SHOW_HUD", &c.ShowHUD); err != nil {
		return err
	}
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalid, key, err)
	}
	*dst = b
	return nil
}

// Validate junta todos os problemas encontrados num único erro.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.ScreenWidth > 0, "screen_width must be positive, got %v", c.ScreenWidth)
	check(c.ScreenHeight > 0, "screen_height must be positive, got %v", c.ScreenHeight)
	check(c.PaddleWidth > 0, "paddle_width must be positive")
	check(c.PaddleHeight > 0, "paddle_height must be positive")
	check(c.PaddleInset >= 0 && c.PaddleInset < 0.5, "paddle_inset must be in [0, 0.5), got %v", c.PaddleInset)
	check(c.PaddleSpeed > 0, "paddle_speed must be positive, got %v", c.PaddleSpeed)
	check(c.BallSize > 0, "ball_size must be positive")
	check(c.BallSpeed > 0, "ball_speed must be positive, got %v", c.BallSpeed)
	check(c.FrameDelay > 0, "frame_delay must be positive, got %v", c.FrameDelay)
	check(c.MaxDelta >= 0, "max_delta must not be negative, got %v", c.MaxDelta)

	var lvl slog.Level
	check(lvl.UnmarshalText([]byte(c.LogLevel)) == nil, "unknown log_level %q", c.LogLevel)

	return errors.Join(errs...)
}

// Level converte LogLevel; valores desconhecidos viram Info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// TPS é a cadência fixa do loop derivada de FrameDelay.
func (c Config) TPS() int {
	tps := int(time.Second / c.FrameDelay)
	if tps < 1 {
		return 1
	}
	return tps
}
