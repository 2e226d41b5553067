package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/decred/slog"
	"golang.org/x/sync/errgroup"

	"github.com/mo-shahab/pong-sync/ai"
	"github.com/mo-shahab/pong-sync/engine"
	"github.com/mo-shahab/pong-sync/game"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/input"
	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/match"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/replication"
	"github.com/mo-shahab/pong-sync/transport"
)

// Mode selects who plays the far paddle.
type Mode int

const (
	// ModeLocal is two players on one keyboard.
	ModeLocal Mode = iota
	ModeAI
	// ModeHost creates a room on the relay and plays the near side.
	ModeHost
	// ModeJoin joins a room on the relay and plays the far side.
	ModeJoin
)

func (m Mode) String() string {
	switch m {
	case ModeAI:
		return "ai"
	case ModeHost:
		return "host"
	case ModeJoin:
		return "join"
	}
	return "local"
}

func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeLocal, ModeAI, ModeHost, ModeJoin} {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return ModeLocal, fmt.Errorf("unknown mode %q", s)
}

// ErrRoom is returned when the relay refuses to create or join a room.
var ErrRoom = errors.New("relay refused room")

const statusInterval = 100 * time.Millisecond

type Options struct {
	Mode       Mode
	Rules      engine.Rules
	Difficulty ai.Difficulty
	Countdown  time.Duration

	// Relay settings for ModeHost and ModeJoin.
	ServerURL string
	RoomID    string
	Password  string

	In   io.Reader
	Out  io.Writer
	Size SizeFunc
	Log  slog.Logger
}

// Play runs one terminal game until the player quits or ctx is done.
func Play(ctx context.Context, opts Options) error {
	if opts.Size == nil {
		opts.Size = StdoutSize
	}
	log := logging.OrDisabled(opts.Log)

	kb := input.StartKeyboard(opts.In)
	r := NewRenderer(opts.Out, opts.Size)

	clearScreen(opts.Out)
	hideCursor(opts.Out)
	defer func() {
		showCursor(opts.Out)
		clearScreen(opts.Out)
	}()

	switch opts.Mode {
	case ModeHost, ModeJoin:
		return playOnline(ctx, opts, kb, r, log)
	}

	role := match.RoleLocal
	if opts.Mode == ModeAI {
		role = match.RoleAI
	}
	s, err := game.NewSession(game.Options{
		Role:       role,
		Rules:      opts.Rules,
		Input:      &playerKeys{kb: kb, local: role == match.RoleLocal, own: paddle.Left},
		Difficulty: opts.Difficulty,
		Countdown:  opts.Countdown,
		Log:        log,
	})
	if err != nil {
		return err
	}
	return runLoop(ctx, s, kb, r, log)
}

func runLoop(ctx context.Context, s *game.Session, kb *input.Keyboard, r *Renderer, log slog.Logger) error {
	l := &game.Loop{
		Session:    s,
		Renderer:   r,
		BeforeTick: commandHandler(s, kb, log),
	}
	return l.Run(ctx)
}

// commandHandler applies one-shot key presses ahead of each tick. A press
// the current phase does not allow is dropped.
func commandHandler(s *game.Session, kb *input.Keyboard, log slog.Logger) func(time.Time) error {
	caps := s.Capabilities()
	return func(now time.Time) error {
		for _, cmd := range kb.Commands() {
			snap := s.Snapshot()
			if caps.Networked && !snap.Online && cmd != input.CommandQuit {
				continue
			}
			switch cmd {
			case input.CommandQuit:
				return game.ErrStopped
			case input.CommandPause:
				if snap.State.Phase() == match.PhaseMenu {
					if err := s.Start(now); err != nil {
						log.Debugf("Start ignored: %v", err)
					}
					continue
				}
				if err := s.TogglePause(caps.Own); err != nil {
					log.Debugf("Pause ignored: %v", err)
				}
			case input.CommandReset:
				if err := s.Reset(now); err != nil {
					log.Debugf("Restart ignored: %v", err)
				}
			case input.CommandMenu:
				if caps.Networked {
					// Leaving an online match closes the room for both.
					return game.ErrStopped
				}
				s.ToMenu()
			}
		}
		return nil
	}
}

type gameStart struct {
	roomID string
	side   paddle.Side
}

func playOnline(ctx context.Context, opts Options, kb *input.Keyboard, r *Renderer, log slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, err := transport.Dial(ctx, opts.ServerURL, log)
	if err != nil {
		return err
	}

	var (
		session atomic.Pointer[game.Session]
		created = make(chan string, 1)
		started = make(chan gameStart, 1)
		refused = make(chan string, 1)
	)
	cb := transport.Callbacks{
		OnRoomCreated: func(id string) {
			select {
			case created <- id:
			default:
			}
		},
		OnGameStart: func(id string, side paddle.Side) {
			select {
			case started <- gameStart{roomID: id, side: side}:
			default:
			}
		},
		OnError: func(msg string) {
			select {
			case refused <- msg:
			default:
			}
		},
		OnPeerDisconnected: func() {
			if s := session.Load(); s != nil {
				s.PeerDisconnected()
			}
		},
		OnMessage: func(matchID string, msg replication.Message) {
			if s := session.Load(); s != nil {
				s.Deliver(matchID, msg)
			}
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := conn.Run(gctx, cb)
		if gctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		var err error
		if opts.Mode == ModeHost {
			err = conn.CreateRoom(opts.RoomID, opts.Password)
		} else {
			err = conn.JoinRoom(opts.RoomID, opts.Password)
		}
		if err != nil {
			return err
		}

		gs, err := waitForStart(gctx, opts, kb, r, created, started, refused)
		if err != nil || gs == nil {
			return err
		}

		role := match.RoleForSide(gs.side)
		s, err := game.NewSession(game.Options{
			Role:      role,
			Rules:     opts.Rules,
			Input:     &playerKeys{kb: kb, own: gs.side, flip: gs.side == paddle.Right},
			Countdown: opts.Countdown,
			MatchID:   gs.roomID,
			Sender:    conn,
			Log:       log,
		})
		if err != nil {
			return err
		}
		session.Store(s)
		r.Flip = gs.side == paddle.Right
		if err := s.Start(time.Now()); err != nil {
			return err
		}
		log.Infof("Joined match %s as %s", gs.roomID, role)
		return runLoop(gctx, s, kb, r, log)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// waitForStart shows the lobby screen until the relay starts the game. A
// nil result with a nil error means the player quit.
func waitForStart(ctx context.Context, opts Options, kb *input.Keyboard, r *Renderer,
	created <-chan string, started <-chan gameStart, refused <-chan string) (*gameStart, error) {

	status := []string{"connecting to " + opts.ServerURL + " ..."}
	if opts.Mode == ModeJoin {
		status = []string{"joining room " + opts.RoomID + " ..."}
	}

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()
	for {
		if err := r.Status(append(status, "", "q to quit")...); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case id := <-created:
			status = []string{"room " + id, "waiting for an opponent to join"}
		case gs := <-started:
			return &gs, nil
		case msg := <-refused:
			return nil, fmt.Errorf("%w: %s", ErrRoom, msg)
		case <-ticker.C:
			for _, cmd := range kb.Commands() {
				if cmd == input.CommandQuit || cmd == input.CommandMenu {
					return nil, nil
				}
			}
		}
	}
}

// playerKeys maps the keyboard onto the paddles a player controls. With
// one player on the keyboard both key sets drive their paddle; flip swaps
// horizontal keys to match a mirrored view.
type playerKeys struct {
	kb    *input.Keyboard
	local bool
	own   paddle.Side
	flip  bool
}

func (p *playerKeys) HeldDirections(side paddle.Side) input.Directions {
	if p.local {
		return p.kb.HeldDirections(side)
	}
	if side != p.own {
		return input.Directions{}
	}
	a, b := p.kb.HeldDirections(paddle.Left), p.kb.HeldDirections(paddle.Right)
	d := input.Directions{
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
	}
	if p.flip {
		d.Left, d.Right = d.Right, d.Left
	}
	return d
}

func (p *playerKeys) PointerTarget(side paddle.Side) (geometry.Vector2, bool) {
	return p.kb.PointerTarget(side)
}
