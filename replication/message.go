package replication

import (
	"errors"
	"fmt"

	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/scores"
)

var (
	// ErrProtocolViolation: the message belongs to a different match.
	ErrProtocolViolation = errors.New("protocol violation")
	// ErrAuthorityViolation: the sender wrote state it does not own.
	ErrAuthorityViolation = errors.New("authority violation")
	// ErrMalformed: missing payload or non-finite values.
	ErrMalformed = errors.New("malformed message")
	// ErrStale: sequence number not newer than the last applied one.
	ErrStale = errors.New("stale message")
)

type Kind int

const (
	KindPaddleMove Kind = iota + 1
	KindBallSync
	KindPauseToggle
	KindRestart
)

func (k Kind) String() string {
	switch k {
	case KindPaddleMove:
		return "PaddleMove"
	case KindBallSync:
		return "BallSync"
	case KindPauseToggle:
		return "PauseToggle"
	case KindRestart:
		return "Restart"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PaddleMove carries the sender's own paddle position.
type PaddleMove struct {
	Side     paddle.Side
	Position geometry.Vector2
}

// BallSync carries the ball and both scores from the ball authority.
type BallSync struct {
	Position geometry.Vector2
	Velocity geometry.Vector2
	Scores   scores.Scores
}

// Ball rebuilds the ball; the radius is a rule, not replicated state.
func (b BallSync) Ball(radius float64) ball.Ball {
	return ball.Ball{Position: b.Position, Velocity: b.Velocity, Radius: radius}
}

type PauseToggle struct {
	Paused bool
	Actor  paddle.Side
}

type Restart struct {
	Actor paddle.Side
}

// Message is one replicated update. Exactly one payload matching Kind is set.
type Message struct {
	MatchID string
	Seq     uint64
	Kind    Kind

	PaddleMove  *PaddleMove
	BallSync    *BallSync
	PauseToggle *PauseToggle
	Restart     *Restart
}

func NewPaddleMove(side paddle.Side, pos geometry.Vector2) Message {
	return Message{Kind: KindPaddleMove, PaddleMove: &PaddleMove{Side: side, Position: pos}}
}

func NewBallSync(b ball.Ball, s scores.Scores) Message {
	return Message{Kind: KindBallSync, BallSync: &BallSync{Position: b.Position, Velocity: b.Velocity, Scores: s}}
}

func NewPauseToggle(paused bool, actor paddle.Side) Message {
	return Message{Kind: KindPauseToggle, PauseToggle: &PauseToggle{Paused: paused, Actor: actor}}
}

func NewRestart(actor paddle.Side) Message {
	return Message{Kind: KindRestart, Restart: &Restart{Actor: actor}}
}

// Validate checks the payload is present and every number in it is usable.
func (m Message) Validate() error {
	switch m.Kind {
	case KindPaddleMove:
		p := m.PaddleMove
		if p == nil {
			break
		}
		if !p.Side.Valid() {
			return fmt.Errorf("%w: paddle side %d", ErrMalformed, p.Side)
		}
		if !p.Position.Finite() {
			return fmt.Errorf("%w: paddle position not finite", ErrMalformed)
		}
		return nil
	case KindBallSync:
		b := m.BallSync
		if b == nil {
			break
		}
		if !b.Position.Finite() || !b.Velocity.Finite() {
			return fmt.Errorf("%w: ball state not finite", ErrMalformed)
		}
		if !b.Scores.Valid() {
			return fmt.Errorf("%w: negative score", ErrMalformed)
		}
		return nil
	case KindPauseToggle:
		if m.PauseToggle == nil {
			break
		}
		if !m.PauseToggle.Actor.Valid() {
			return fmt.Errorf("%w: pause actor %d", ErrMalformed, m.PauseToggle.Actor)
		}
		return nil
	case KindRestart:
		if m.Restart != nil {
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrMalformed, int(m.Kind))
	}
	return fmt.Errorf("%w: %s without payload", ErrMalformed, m.Kind)
}
