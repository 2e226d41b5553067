// Package engine advances one match of paddle ball by fixed ticks. It is
// deterministic given its random source and is not safe for concurrent use;
// the owning session serializes every call.
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/scores"
)

// ErrNonFinite rejects replicated positions or velocities holding NaN or
// an infinity.
var ErrNonFinite = errors.New("non-finite state")

// Engine owns the ball, both paddles and the score of a single match.
type Engine struct {
	rules    Rules
	ball     ball.Ball
	paddles  [2]paddle.Paddle
	bounds   [2]paddle.Bounds
	scores   scores.Scores
	winner   paddle.Side
	finished bool
	rng      *rand.Rand
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	PaddleMoved [2]bool
	Hit         bool
	HitSide     paddle.Side
	Scored      bool
	Scorer      paddle.Side
	Finished    bool
	Winner      paddle.Side
}

// New builds an engine with both paddles home and the ball served. A nil
// rng gets a fixed seed.
func New(rules Rules, rng *rand.Rand) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	e := &Engine{rules: rules, rng: rng}
	for _, side := range paddle.Sides {
		e.bounds[side] = paddle.BoundsFor(side, rules.Field, rules.PaddleSize, rules.Arena())
		e.paddles[side] = paddle.Paddle{Size: rules.PaddleSize, Speed: rules.PaddleSpeed}
	}
	e.ball.Radius = rules.BallRadius
	e.Restart()
	return e, nil
}

// Restart zeroes the score, clears the winner, re-centers the paddles and
// serves a fresh ball.
func (e *Engine) Restart() {
	e.scores.Reset()
	e.finished = false
	e.winner = paddle.Left
	for _, side := range paddle.Sides {
		e.paddles[side].Position = paddle.Home(side, e.rules.Field, e.rules.PaddleSize)
	}
	e.serve()
}

// ResetScores zeroes the score without touching positions.
func (e *Engine) ResetScores() {
	e.scores.Reset()
	e.finished = false
}

func (e *Engine) serve() {
	e.ball.Serve(e.rules.Field.Center(), e.rules.ServeSpeed, e.rng)
}

// Park holds the ball still at the centre of the field. A side without
// ball authority parks it until the first replicated ball arrives.
func (e *Engine) Park() {
	e.ball.Position = e.rules.Field.Center()
	e.ball.Velocity = geometry.Vector2{}
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() ball.Ball {
	return e.ball
}

// Paddle returns a copy of side's paddle.
func (e *Engine) Paddle(side paddle.Side) paddle.Paddle {
	return e.paddles[side]
}

// Paddles returns both paddles indexed by side.
func (e *Engine) Paddles() [2]paddle.Paddle {
	return e.paddles
}

// Bounds returns the region side's paddle is clamped to.
func (e *Engine) Bounds(side paddle.Side) paddle.Bounds {
	return e.bounds[side]
}

// Scores returns the current score.
func (e *Engine) Scores() scores.Scores {
	return e.scores
}

// Winner returns the winning side once the match is over.
func (e *Engine) Winner() (paddle.Side, bool) {
	return e.winner, e.finished
}

// Tick applies one intent per paddle and, when simulateBall is set, moves
// the ball, resolves walls and paddle hits, and awards points. Once a side
// has won nothing changes until Restart.
func (e *Engine) Tick(intents [2]paddle.Intent, simulateBall bool) TickResult {
	var res TickResult
	if e.finished {
		res.Finished, res.Winner = true, e.winner
		return res
	}

	for _, side := range paddle.Sides {
		res.PaddleMoved[side] = e.paddles[side].Apply(intents[side], e.bounds[side])
	}

	if simulateBall {
		e.stepBall(&res)
	}

	if w, ok := e.scores.Winner(e.rules.Threshold()); ok {
		e.winner, e.finished = w, true
		res.Finished, res.Winner = true, w
	}
	return res
}

func (e *Engine) stepBall(res *TickResult) {
	prev := e.ball.Position
	e.ball.Position = e.ball.Position.Add(e.ball.Velocity)
	e.ball.ReflectWalls(e.rules.Field.Height)

	if side, at, ok := e.sweep(prev, e.ball.Position); ok {
		e.bounce(side, at)
		res.Hit, res.HitSide = true, side
	}

	switch {
	case e.ball.Position.X < 0:
		e.score(paddle.Right, res)
	case e.ball.Position.X > e.rules.Field.Width:
		e.score(paddle.Left, res)
	}
}

// sweep samples the segment prev->next at evenly spaced sub-steps and
// returns the first sample that overlaps a paddle the ball is moving toward.
func (e *Engine) sweep(prev, next geometry.Vector2) (paddle.Side, geometry.Vector2, bool) {
	n := e.rules.SubSteps
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		at := geometry.Vector2{
			X: geometry.Lerp(prev.X, next.X, t),
			Y: geometry.Lerp(prev.Y, next.Y, t),
		}
		for _, side := range paddle.Sides {
			if !e.approaching(side) {
				continue
			}
			if geometry.CircleIntersectsRect(at, e.ball.Radius, e.paddles[side].Rect()) {
				return side, at, true
			}
		}
	}
	return paddle.Left, geometry.Vector2{}, false
}

func (e *Engine) approaching(side paddle.Side) bool {
	if side == paddle.Left {
		return e.ball.Velocity.X < 0
	}
	return e.ball.Velocity.X > 0
}

// bounce sends the ball back away from the struck paddle, speeds it up by
// the restitution factor, steers it by where it hit, and sets it flush
// against the paddle face.
func (e *Engine) bounce(side paddle.Side, at geometry.Vector2) {
	p := e.paddles[side]
	vx := math.Abs(e.ball.Velocity.X) * e.rules.Restitution
	x := p.Face(side) + e.ball.Radius
	if side == paddle.Right {
		vx = -vx
		x = p.Face(side) - e.ball.Radius
	}
	vy := geometry.BounceVelocityY(at.Y, p.Rect(), e.rules.MaxBounceSpeed)

	e.ball.Position = geometry.Vector2{X: x, Y: at.Y}
	e.ball.Velocity = geometry.CapSpeed(geometry.Vector2{X: vx, Y: vy}, e.rules.MaxBallSpeed)
	e.ball.ReflectWalls(e.rules.Field.Height)
}

func (e *Engine) score(side paddle.Side, res *TickResult) {
	e.scores.Award(side)
	res.Scored, res.Scorer = true, side
	e.serve()
}

// ApplyBallSync overwrites the ball and score with replicated state from
// the side that holds ball authority.
func (e *Engine) ApplyBallSync(b ball.Ball, s scores.Scores) error {
	if !b.Position.Finite() || !b.Velocity.Finite() {
		return fmt.Errorf("ball sync: %w", ErrNonFinite)
	}
	if !s.Valid() {
		return fmt.Errorf("ball sync: negative score %s", s)
	}
	e.ball.Position = b.Position
	e.ball.Velocity = b.Velocity
	e.scores = s
	if w, ok := e.scores.Winner(e.rules.Threshold()); ok {
		e.winner, e.finished = w, true
	}
	return nil
}

// ApplyPaddle overwrites a paddle position with a replicated one, clamped
// into that paddle's bounds.
func (e *Engine) ApplyPaddle(side paddle.Side, pos geometry.Vector2) error {
	if !side.Valid() {
		return fmt.Errorf("paddle sync: invalid side %d", side)
	}
	if !pos.Finite() {
		return fmt.Errorf("paddle sync: %w", ErrNonFinite)
	}
	e.paddles[side].Position = e.bounds[side].Clamp(pos)
	return nil
}

// SetBall replaces the ball outright. Used to stage positions in tests and
// by tools; gameplay goes through Tick.
func (e *Engine) SetBall(b ball.Ball) {
	e.ball = b
}
