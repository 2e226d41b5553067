// Package logging sets up the subsystem loggers used across the module.
// Library packages take a slog.Logger and default to slog.Disabled; the
// binaries create one Backend and hand out tagged loggers from it.
package logging

import (
	"fmt"
	"io"

	"github.com/decred/slog"
)

// Subsystem tags.
const (
	Game      = "GAME"
	Repl      = "REPL"
	Room      = "ROOM"
	WSServer  = "WSRV"
	Transport = "TRNS"
	Terminal  = "TERM"
	SSH       = "SSHD"
	Main      = "MAIN"
)

// Backend hands out loggers that share one writer and level.
type Backend struct {
	backend *slog.Backend
	level   slog.Level
}

// NewBackend writes to w at the named level ("trace", "debug", "info",
// "warn", "error", "critical", "off").
func NewBackend(w io.Writer, level string) (*Backend, error) {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return &Backend{backend: slog.NewBackend(w), level: lvl}, nil
}

func (b *Backend) Logger(subsystem string) slog.Logger {
	l := b.backend.Logger(subsystem)
	l.SetLevel(b.level)
	return l
}

// OrDisabled returns l, or slog.Disabled when l is nil.
func OrDisabled(l slog.Logger) slog.Logger {
	if l == nil {
		return slog.Disabled
	}
	return l
}
