// Package config loads settings for the pong binaries: defaults, then an
// optional TOML file, then PONG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/decred/slog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mo-shahab/pong-sync/ai"
	"github.com/mo-shahab/pong-sync/engine"
)

// Environment overrides.
const (
	EnvConfig    = "PONG_CONFIG"
	EnvListen    = "PONG_LISTEN"
	EnvSSHListen = "PONG_SSH_LISTEN"
	EnvHostKey   = "PONG_HOST_KEY"
	EnvServerURL = "PONG_SERVER_URL"
	EnvLogLevel  = "PONG_LOG_LEVEL"
)

var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration written as a string ("3s", "10m") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	// Listen is the relay's websocket address.
	Listen string `toml:"listen"`
	// ServerURL is where clients find the relay.
	ServerURL string `toml:"server_url"`
	LogLevel  string `toml:"log_level"`
	// BcryptCost hashes room passwords.
	BcryptCost int `toml:"bcrypt_cost"`
	// RoomWait closes rooms nobody joins in time; zero keeps them open.
	RoomWait Duration `toml:"room_wait"`

	SSH  SSHConfig  `toml:"ssh"`
	Game GameConfig `toml:"game"`
}

type SSHConfig struct {
	Listen      string   `toml:"listen"`
	HostKey     string   `toml:"host_key"`
	IdleTimeout Duration `toml:"idle_timeout"`
	MaxTimeout  Duration `toml:"max_timeout"`
}

type GameConfig struct {
	Variant      string   `toml:"variant"`
	Difficulty   string   `toml:"difficulty"`
	WinningScore int      `toml:"winning_score"`
	Countdown    Duration `toml:"countdown"`
}

func Default() Config {
	return Config{
		Listen:     ":8080",
		ServerURL:  "ws://localhost:8080/ws",
		LogLevel:   "info",
		BcryptCost: bcrypt.DefaultCost,
		RoomWait:   Duration{5 * time.Minute},
		SSH: SSHConfig{
			Listen:      ":2222",
			HostKey:     ".ssh/pong_ed25519",
			IdleTimeout: Duration{10 * time.Minute},
			MaxTimeout:  Duration{time.Hour},
		},
		Game: GameConfig{
			Variant:    engine.Classic.String(),
			Difficulty: ai.Medium.String(),
			Countdown:  Duration{3 * time.Second},
		},
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load builds the config. An empty path falls back to $PONG_CONFIG; with
// neither set only defaults and the environment apply.
func Load(path string) (Config, error) {
	c := Default()
	path = GetEnv(EnvConfig, path)
	if path != "" {
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	c.Listen = GetEnv(EnvListen, c.Listen)
	c.SSH.Listen = GetEnv(EnvSSHListen, c.SSH.Listen)
	c.SSH.HostKey = GetEnv(EnvHostKey, c.SSH.HostKey)
	c.ServerURL = GetEnv(EnvServerURL, c.ServerURL)
	c.LogLevel = GetEnv(EnvLogLevel, c.LogLevel)
}

func (c Config) Validate() error {
	if _, ok := slog.LevelFromString(c.LogLevel); !ok {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt_cost %d", ErrInvalid, c.BcryptCost)
	}
	if c.RoomWait.Duration < 0 {
		return fmt.Errorf("%w: negative room_wait", ErrInvalid)
	}
	if c.Game.Countdown.Duration < 0 {
		return fmt.Errorf("%w: negative countdown", ErrInvalid)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	if _, err := ai.ParseDifficulty(c.Game.Difficulty); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Rules returns the simulation rules for the configured game.
func (c Config) Rules() (engine.Rules, error) {
	v, err := engine.ParseVariant(c.Game.Variant)
	if err != nil {
		return engine.Rules{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	r := engine.DefaultRules(v)
	r.WinningScore = c.Game.WinningScore
	if err := r.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return r, nil
}

// Difficulty returns the configured AI difficulty, medium if unparsable.
func (c Config) Difficulty() ai.Difficulty {
	d, err := ai.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return ai.Medium
	}
	return d
}
