package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/mo-shahab/pong-sync/ai"
	"github.com/mo-shahab/pong-sync/config"
	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath    = flag.String("config", "", "path to a pong.toml config file")
		mode       = flag.String("mode", "ai", "local, ai, host or join")
		roomID     = flag.String("room", "", "room id to host or join")
		password   = flag.String("password", "", "room password")
		serverURL  = flag.String("server", "", "relay websocket url (overrides config)")
		variant    = flag.String("variant", "", "classic or arena (overrides config)")
		difficulty = flag.String("difficulty", "", "easy, medium, hard or expert (overrides config)")
		logFile    = flag.String("logfile", "", "write logs to this file")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *variant != "" {
		cfg.Game.Variant = *variant
	}
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	diff := cfg.Difficulty()
	if *difficulty != "" {
		if diff, err = ai.ParseDifficulty(*difficulty); err != nil {
			return err
		}
	}
	m, err := terminal.ParseMode(*mode)
	if err != nil {
		return err
	}
	if m == terminal.ModeJoin && *roomID == "" {
		return errors.New("-mode join needs -room")
	}

	// The terminal is the game screen; logs only go to a file.
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	backend, err := logging.NewBackend(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	log := backend.Logger(logging.Main)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting %s game (%s)", m, rules.Variant)
	return terminal.Play(ctx, terminal.Options{
		Mode:       m,
		Rules:      rules,
		Difficulty: diff,
		Countdown:  cfg.Game.Countdown.Duration,
		ServerURL:  cfg.ServerURL,
		RoomID:     *roomID,
		Password:   *password,
		In:         os.Stdin,
		Out:        os.Stdout,
		Size:       terminal.StdoutSize,
		Log:        backend.Logger(logging.Terminal),
	})
}
