package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/decred/slog"

	"github.com/mo-shahab/pong-sync/ai"
	"github.com/mo-shahab/pong-sync/engine"
	"github.com/mo-shahab/pong-sync/input"
	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/match"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/replication"
)

// ErrNoMatchID is returned by NewSession for a networked role without a
// match id.
var ErrNoMatchID = errors.New("networked session needs a match id")

// Options configures a Session.
type Options struct {
	Role       match.Role
	Rules      engine.Rules
	Input      input.Source
	Difficulty ai.Difficulty
	// MatchID and Sender are only used by networked roles.
	MatchID   string
	Sender    replication.Sender
	Countdown time.Duration
	Rand      *rand.Rand
	Log       slog.Logger
}

// Session runs one match from this process's point of view. Every method
// is safe to call from any goroutine; the tick itself is serialized.
type Session struct {
	mu      sync.Mutex
	role    match.Role
	caps    match.Capabilities
	engine  *engine.Engine
	machine *match.Machine
	input   *input.Aggregator
	ai      [2]*ai.Controller
	repl    *replication.Replicator
	log     slog.Logger

	tick        uint64
	finalSynced bool
	// peerPaused holds a pause from the peer that arrived while this end
	// was still counting down.
	peerPaused bool
	last       Snapshot
}

// NewSession builds a session in the menu. Networked roles need a MatchID
// and a Sender.
func NewSession(opts Options) (*Session, error) {
	caps := opts.Role.Capabilities()
	if caps.Networked && opts.MatchID == "" {
		return nil, ErrNoMatchID
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e, err := engine.New(opts.Rules, rng)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	countdown := opts.Countdown
	if countdown == 0 {
		countdown = match.DefaultCountdown
	}

	s := &Session{
		role:    opts.Role,
		caps:    caps,
		engine:  e,
		machine: match.NewMachine(countdown),
		input:   input.NewAggregator(opts.Input),
		log:     logging.OrDisabled(opts.Log),
	}
	for _, side := range paddle.Sides {
		if caps.AI[side] {
			s.ai[side] = ai.NewController(side, opts.Difficulty.Profile(), rng)
		}
	}
	if caps.Networked {
		s.repl = replication.New(opts.MatchID, caps, opts.Sender, s.log)
	}
	s.resetEngine()
	s.last = s.snapshot()
	return s, nil
}

// Role returns the role the session was built with.
func (s *Session) Role() match.Role {
	return s.role
}

// Capabilities returns what the session's role may drive.
func (s *Session) Capabilities() match.Capabilities {
	return s.caps
}

// Start leaves the menu and begins the countdown.
func (s *Session) Start(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.machine.Start(now); err != nil {
		return err
	}
	s.resetEngine()
	s.log.Infof("Match started as %s", s.role)
	return nil
}

// Deliver hands an inbound replicated message to the session. It only
// queues; the message is applied at the start of the next tick.
func (s *Session) Deliver(matchID string, msg replication.Message) {
	s.mu.Lock()
	repl := s.repl
	s.mu.Unlock()
	if repl == nil {
		return
	}
	repl.OnMessage(matchID, msg)
}

// Tick runs one fixed step: apply inbound messages, advance the lifecycle,
// gather intents, step the engine, publish owned state.
func (s *Session) Tick(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyInbound(now)

	if s.machine.Update(now) && s.caps.Networked {
		// Both ends start the networked match from 0-0.
		s.engine.ResetScores()
		if s.peerPaused {
			s.peerPaused = false
			if err := s.machine.Pause(match.PausedByPeer); err != nil {
				s.log.Debugf("Held peer pause dropped: %v", err)
			}
		}
	}

	if s.machine.State().Phase() == match.PhasePlaying {
		res := s.engine.Tick(s.intents(), s.caps.SimulatesBall)
		if res.Scored {
			s.log.Debugf("%s scored, %s", res.Scorer, s.engine.Scores())
		}
		if w, done := s.engine.Winner(); done {
			if err := s.machine.Finish(w); err == nil {
				s.log.Infof("Match over, %s wins %s", w, s.engine.Scores())
			}
		}
	}

	s.publish(now)
	s.tick++
	s.last = s.snapshot()
	return s.last
}

func (s *Session) intents() [2]paddle.Intent {
	var out [2]paddle.Intent
	for _, side := range paddle.Sides {
		p := s.engine.Paddle(side)
		b := s.engine.Bounds(side)
		switch {
		case s.caps.Input[side]:
			out[side] = s.input.Intent(side, p, b)
		case s.ai[side] != nil:
			out[side] = s.ai[side].Intent(ai.View{
				Ball:   s.engine.Ball(),
				Paddle: p,
				Bounds: b,
				Field:  s.engine.Rules().Field,
				Arena:  s.engine.Rules().Arena(),
			})
		}
	}
	return out
}

func (s *Session) applyInbound(now time.Time) {
	if s.repl == nil {
		return
	}
	for _, msg := range s.repl.Drain() {
		if err := s.repl.Accept(msg); err != nil {
			switch {
			case errors.Is(err, replication.ErrAuthorityViolation), errors.Is(err, replication.ErrMalformed):
				s.log.Warnf("Dropped %s: %v", msg.Kind, err)
			default:
				s.log.Tracef("Dropped %s: %v", msg.Kind, err)
			}
			continue
		}
		s.apply(now, msg)
	}
}

func (s *Session) apply(now time.Time, msg replication.Message) {
	phase := s.machine.State().Phase()
	switch msg.Kind {
	case replication.KindPaddleMove:
		if err := s.engine.ApplyPaddle(msg.PaddleMove.Side, msg.PaddleMove.Position); err != nil {
			s.log.Warnf("Paddle sync: %v", err)
		}
	case replication.KindBallSync:
		if phase == match.PhaseMenu || phase == match.PhaseCountdown {
			return
		}
		b := msg.BallSync
		if err := s.engine.ApplyBallSync(b.Ball(s.engine.Rules().BallRadius), b.Scores); err != nil {
			s.log.Warnf("Ball sync: %v", err)
		}
	case replication.KindPauseToggle:
		if phase == match.PhaseCountdown {
			// The peer's countdown ended first; catch up when ours does.
			s.peerPaused = msg.PauseToggle.Paused
			return
		}
		var err error
		if msg.PauseToggle.Paused {
			err = s.machine.Pause(match.PausedByPeer)
		} else {
			err = s.machine.Resume()
		}
		if err != nil {
			s.log.Debugf("Peer pause toggle ignored: %v", err)
		}
	case replication.KindRestart:
		if err := s.restart(now); err != nil {
			s.log.Debugf("Peer restart ignored: %v", err)
		}
	}
}

func (s *Session) publish(now time.Time) {
	if s.repl == nil {
		return
	}
	phase := s.machine.State().Phase()
	if phase == match.PhaseMenu {
		return
	}
	if err := s.repl.PublishPaddle(s.engine.Paddle(s.caps.Own).Position); err != nil {
		s.log.Errorf("Publish paddle: %v", err)
	}

	// Keep syncing while playing, then once more after the final point so
	// the mirror sees the winning score.
	if phase != match.PhasePlaying && (phase != match.PhaseFinished || s.finalSynced) {
		return
	}
	sent, err := s.repl.PublishBall(now, s.engine.Ball(), s.engine.Scores())
	if err != nil {
		s.log.Errorf("Publish ball: %v", err)
	}
	if sent && phase == match.PhaseFinished {
		s.finalSynced = true
	}
}

// TogglePause pauses or resumes play on behalf of actor and tells the peer.
func (s *Session) TogglePause(actor paddle.Side) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	paused, err := s.machine.Toggle(match.PausedByPlayer)
	if err != nil {
		return err
	}
	if s.repl != nil {
		if err := s.repl.PublishPause(paused, actor); err != nil {
			s.log.Errorf("Publish pause: %v", err)
		}
	}
	return nil
}

// Reset restarts the match through the countdown, on both ends when
// networked.
func (s *Session) Reset(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.restart(now); err != nil {
		return err
	}
	if s.repl != nil {
		if err := s.repl.PublishRestart(s.caps.Own); err != nil {
			s.log.Errorf("Publish restart: %v", err)
		}
	}
	return nil
}

func (s *Session) restart(now time.Time) error {
	if err := s.machine.Reset(now); err != nil {
		return err
	}
	s.resetEngine()
	return nil
}

// resetEngine restarts the engine for a new match. Without ball authority
// the ball waits at centre for the first sync.
func (s *Session) resetEngine() {
	s.engine.Restart()
	if !s.caps.SimulatesBall {
		s.engine.Park()
	}
	s.finalSynced = false
	s.peerPaused = false
}

// ToMenu abandons the match locally.
func (s *Session) ToMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.ToMenu()
	s.peerPaused = false
}

// PeerDisconnected ends a networked match: back to the menu and no more
// replication traffic.
func (s *Session) PeerDisconnected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repl == nil {
		return
	}
	s.log.Infof("Peer disconnected from match %s", s.repl.MatchID())
	s.machine.ToMenu()
	s.peerPaused = false
	s.repl = nil
	s.last = s.snapshot()
}

// Snapshot returns the state as of the last tick.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Role:    s.role,
		Own:     s.caps.Own,
		Field:   s.engine.Rules().Field,
		Ball:    s.engine.Ball(),
		Paddles: s.engine.Paddles(),
		Scores:  s.engine.Scores(),
		State:   s.machine.State(),
		Online:  s.repl != nil,
	}
}
