package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mo-shahab/pong-sync/ai"
	"github.com/mo-shahab/pong-sync/engine"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvConfig, EnvListen, EnvSSHListen, EnvHostKey, EnvServerURL, EnvLogLevel} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Fatalf("got %+v", c)
	}
	r, err := c.Rules()
	if err != nil {
		t.Fatal(err)
	}
	if r != engine.DefaultRules(engine.Classic) {
		t.Fatalf("rules %+v", r)
	}
	if c.Difficulty() != ai.Medium {
		t.Fatalf("difficulty %s", c.Difficulty())
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, `
listen = ":9000"
log_level = "debug"
room_wait = "0s"

[ssh]
idle_timeout = "90s"

[game]
variant = "arena"
difficulty = "expert"
winning_score = 3
countdown = "1500ms"
`)
	c, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Listen != ":9000" || c.LogLevel != "debug" || c.RoomWait.Duration != 0 {
		t.Fatalf("top level %+v", c)
	}
	if c.SSH.IdleTimeout.Duration != 90*time.Second || c.SSH.Listen != ":2222" {
		t.Fatalf("ssh %+v", c.SSH)
	}
	if c.Game.Countdown.Duration != 1500*time.Millisecond || c.Difficulty() != ai.Expert {
		t.Fatalf("game %+v", c.Game)
	}
	r, err := c.Rules()
	if err != nil {
		t.Fatal(err)
	}
	if !r.Arena() || r.Threshold() != 3 {
		t.Fatalf("rules %+v", r)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, `listen = ":9000"`)
	t.Setenv(EnvListen, ":7000")
	t.Setenv(EnvServerURL, "ws://relay:7000/ws")
	t.Setenv(EnvConfig, p)

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Listen != ":7000" || c.ServerURL != "ws://relay:7000/ws" {
		t.Fatalf("got %+v", c)
	}
}

func TestInvalid(t *testing.T) {
	clearEnv(t)
	tests := map[string]string{
		"log level":  `log_level = "loud"`,
		"variant":    "[game]\nvariant = \"squash\"",
		"difficulty": "[game]\ndifficulty = \"godlike\"",
		"score":      "[game]\nwinning_score = -1",
		"countdown":  "[game]\ncountdown = \"-1s\"",
		"bcrypt":     "bcrypt_cost = 99",
		"room wait":  `room_wait = "-5m"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v", err)
			}
		})
	}

	if _, err := Load(writeFile(t, "[game]\ncountdown = \"soon\"")); err == nil {
		t.Fatal("bad toml accepted")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
