// Package replication keeps the two ends of a networked match in step.
//
// Each end owns its paddle; the near end also owns the ball and score.
// Owned state is published as it changes (the ball at most once per
// BallSyncInterval) and the other end overwrites its copy on receipt.
// Every message carries the match id and a per-sender sequence number so
// strays from another match and reordered duplicates are discarded.
package replication

import (
	"fmt"
	"sync"
	"time"

	"github.com/decred/slog"
	"golang.org/x/time/rate"

	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/match"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/scores"
)

// BallSyncInterval is the minimum wall time between two BallSync messages.
const BallSyncInterval = 16 * time.Millisecond

// Sender delivers an outbound message to the other end of the match.
type Sender interface {
	Send(matchID string, msg Message) error
}

// Replicator is the replication endpoint of one side of one match. Publish
// and Accept run on the tick goroutine; OnMessage may be called from any
// goroutine.
type Replicator struct {
	matchID string
	caps    match.Capabilities
	sender  Sender
	log     slog.Logger
	limiter *rate.Limiter

	seq         uint64
	lastApplied map[Kind]uint64
	lastPaddle  geometry.Vector2
	paddleSent  bool

	mu    sync.Mutex
	inbox []Message
}

// New returns the endpoint for the side described by caps. Outbound
// messages go through sender.
func New(matchID string, caps match.Capabilities, sender Sender, log slog.Logger) *Replicator {
	return &Replicator{
		matchID:     matchID,
		caps:        caps,
		sender:      sender,
		log:         logging.OrDisabled(log),
		limiter:     rate.NewLimiter(rate.Every(BallSyncInterval), 1),
		lastApplied: make(map[Kind]uint64),
	}
}

// MatchID returns the match this endpoint replicates.
func (r *Replicator) MatchID() string {
	return r.matchID
}

// OnMessage queues an inbound message for the next Drain. Messages for
// another match are dropped here.
func (r *Replicator) OnMessage(matchID string, msg Message) {
	if matchID != r.matchID || msg.MatchID != r.matchID {
		r.log.Debugf("Dropping %s for match %q: %v", msg.Kind, matchID, ErrProtocolViolation)
		return
	}
	r.mu.Lock()
	r.inbox = append(r.inbox, msg)
	r.mu.Unlock()
}

// Drain hands over every message queued since the last call, in arrival order.
func (r *Replicator) Drain() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.inbox
	r.inbox = nil
	return out
}

// Accept decides whether a drained message may be applied and, if so,
// records its sequence number. The returned error wraps one of the
// package's sentinel errors.
func (r *Replicator) Accept(msg Message) error {
	if msg.MatchID != r.matchID {
		return fmt.Errorf("%w: match %q", ErrProtocolViolation, msg.MatchID)
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if last, ok := r.lastApplied[msg.Kind]; ok && msg.Seq <= last {
		return fmt.Errorf("%w: %s seq %d <= %d", ErrStale, msg.Kind, msg.Seq, last)
	}
	switch msg.Kind {
	case KindPaddleMove:
		if msg.PaddleMove.Side == r.caps.Own {
			return fmt.Errorf("%w: peer moved our %s paddle", ErrAuthorityViolation, msg.PaddleMove.Side)
		}
	case KindBallSync:
		if r.caps.SimulatesBall {
			return fmt.Errorf("%w: ball sync received by the ball authority", ErrAuthorityViolation)
		}
	}
	r.lastApplied[msg.Kind] = msg.Seq
	return nil
}

func (r *Replicator) send(msg Message) error {
	r.seq++
	msg.MatchID = r.matchID
	msg.Seq = r.seq
	if r.sender == nil {
		return nil
	}
	if err := r.sender.Send(r.matchID, msg); err != nil {
		return fmt.Errorf("send %s: %w", msg.Kind, err)
	}
	return nil
}

// PublishPaddle sends our paddle position if it changed since the last
// one sent.
func (r *Replicator) PublishPaddle(pos geometry.Vector2) error {
	if r.paddleSent && pos == r.lastPaddle {
		return nil
	}
	r.lastPaddle, r.paddleSent = pos, true
	return r.send(NewPaddleMove(r.caps.Own, pos))
}

// PublishBall sends a BallSync unless one went out less than
// BallSyncInterval before now. Only the ball authority publishes; for
// anyone else this is a no-op. It reports whether a message was sent.
func (r *Replicator) PublishBall(now time.Time, b ball.Ball, s scores.Scores) (bool, error) {
	if !r.caps.SimulatesBall {
		return false, nil
	}
	if !r.limiter.AllowN(now, 1) {
		return false, nil
	}
	return true, r.send(NewBallSync(b, s))
}

// PublishPause tells the peer the match was paused or resumed by actor.
func (r *Replicator) PublishPause(paused bool, actor paddle.Side) error {
	return r.send(NewPauseToggle(paused, actor))
}

// PublishRestart tells the peer to restart the match. The next paddle
// publish goes out even if the paddle has not moved.
func (r *Replicator) PublishRestart(actor paddle.Side) error {
	r.paddleSent = false
	return r.send(NewRestart(actor))
}
