package terminal

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/decred/slog"

	"github.com/mo-shahab/pong-sync/logging"
)

// SessionOptions fills in per-session options from the command an SSH
// client asked for:
//
//	ssh -t host            play the computer
//	ssh -t host local      two players, one keyboard
//	ssh -t host host [id] [password]
//	ssh -t host join id [password]
func SessionOptions(base Options, args []string) (Options, error) {
	opts := base
	opts.Mode = ModeAI
	if len(args) == 0 {
		return opts, nil
	}
	m, err := ParseMode(args[0])
	if err != nil {
		return Options{}, err
	}
	opts.Mode = m
	rest := args[1:]
	switch m {
	case ModeHost:
		if len(rest) > 0 {
			opts.RoomID = rest[0]
		}
		if len(rest) > 1 {
			opts.Password = rest[1]
		}
	case ModeJoin:
		if len(rest) == 0 {
			return Options{}, errors.New("join needs a room id")
		}
		opts.RoomID = rest[0]
		if len(rest) > 1 {
			opts.Password = rest[1]
		}
	}
	return opts, nil
}

// Middleware runs a game on every SSH session. Sessions without a PTY are
// turned away.
func Middleware(base Options, log slog.Logger) wish.Middleware {
	log = logging.OrDisabled(log)
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			opts, err := SessionOptions(base, sess.Command())
			if err != nil {
				wish.Fatalln(sess, "Error:", err)
				return
			}
			log.Infof("New game session: user=%s mode=%s terminal=%s size=%dx%d",
				sess.User(), opts.Mode, pty.Term, pty.Window.Width, pty.Window.Height)

			opts.In, opts.Out = sess, sess
			opts.Size = followWindow(pty.Window, winCh).Size
			if err := Play(sess.Context(), opts); err != nil {
				log.Warnf("Game error for %s: %v", sess.User(), err)
				wish.Println(sess, "Error:", strings.TrimSpace(err.Error()))
			}
			log.Infof("Session ended: user=%s", sess.User())
			next(sess)
		}
	}
}

// window is the client's PTY size, kept current from its resize events.
type window struct {
	cur atomic.Pointer[ssh.Window]
}

// followWindow tracks changes until the channel closes with the session.
func followWindow(initial ssh.Window, changes <-chan ssh.Window) *window {
	w := &window{}
	w.cur.Store(&initial)
	go func() {
		for win := range changes {
			w.cur.Store(&win)
		}
	}()
	return w
}

// Size implements SizeFunc.
func (w *window) Size() (int, int, error) {
	win := w.cur.Load()
	return win.Width, win.Height, nil
}
