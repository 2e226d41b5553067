package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/decred/slog"
	"golang.org/x/sync/errgroup"

	"github.com/mo-shahab/pong-sync/config"
	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/room"
	"github.com/mo-shahab/pong-sync/terminal"
	"github.com/mo-shahab/pong-sync/wsserver"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to a pong.toml config file")
	noSSH := flag.Bool("no-ssh", false, "run only the websocket relay")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	backend, err := logging.NewBackend(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	log := backend.Logger(logging.Main)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rooms := room.NewManager(cfg.BcryptCost, backend.Logger(logging.Room))
	relay := wsserver.NewWebSocketHandler(rooms, backend.Logger(logging.WSServer))
	relay.WaitTimeout = cfg.RoomWait.Duration

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return relay.Serve(gctx, cfg.Listen) })

	if !*noSSH {
		s, err := newSSHServer(cfg, backend)
		if err != nil {
			return err
		}
		g.Go(func() error {
			log.Infof("Starting SSH server on %s", cfg.SSH.Listen)
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	log.Infof("Server stopped")
	return err
}

func newSSHServer(cfg config.Config, backend *logging.Backend) (*ssh.Server, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	base := terminal.Options{
		Rules:      rules,
		Difficulty: cfg.Difficulty(),
		Countdown:  cfg.Game.Countdown.Duration,
		ServerURL:  cfg.ServerURL,
		Log:        backend.Logger(logging.Game),
	}

	sshLog := backend.Logger(logging.SSH)
	opts := []ssh.Option{
		wish.WithAddress(cfg.SSH.Listen),
		wish.WithIdleTimeout(cfg.SSH.IdleTimeout.Duration),
		wish.WithMaxTimeout(cfg.SSH.MaxTimeout.Duration),
		wish.WithMiddleware(
			terminal.Middleware(base, sshLog),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
		ssh.WrapConn(noDelay(sshLog)),
	}
	if cfg.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKey))
	}
	return wish.NewServer(opts...)
}

// noDelay turns off Nagle on each client connection. Every frame and key
// press is a small write that should leave at once.
func noDelay(log slog.Logger) func(ssh.Context, net.Conn) net.Conn {
	return func(_ ssh.Context, conn net.Conn) net.Conn {
		tcp, ok := conn.(*net.TCPConn)
		if !ok {
			return conn
		}
		if err := tcp.SetNoDelay(true); err != nil {
			log.Debugf("No TCP_NODELAY for %s: %v", conn.RemoteAddr(), err)
		}
		return conn
	}
}
