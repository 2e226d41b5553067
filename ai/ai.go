// Package ai drives a paddle for a computer opponent. The controller
// predicts where the ball will cross its face, folding the straight-line
// prediction off the top and bottom walls, and then degrades that
// prediction with per-tier noise and skipped reactions.
package ai

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/canvas"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// homeLerp is the fraction of the remaining distance covered per tick when
// returning home.
const homeLerp = 0.1

// Profile tunes one difficulty tier.
type Profile struct {
	Name string
	// Speed is the most the paddle moves per tick on each axis.
	Speed float64
	// ReactionDelay is the chance in [0,1] of ignoring the ball for a tick.
	ReactionDelay float64
	// PredictionError is the maximum noise, in field units, added to the
	// predicted intercept.
	PredictionError float64
}

var profiles = [...]Profile{
	Easy:   {Name: "easy", Speed: 5, ReactionDelay: 0.3, PredictionError: 60},
	Medium: {Name: "medium", Speed: 6, ReactionDelay: 0.2, PredictionError: 35},
	Hard:   {Name: "hard", Speed: 7, ReactionDelay: 0.1, PredictionError: 15},
	Expert: {Name: "expert", Speed: 8, ReactionDelay: 0, PredictionError: 0},
}

func (d Difficulty) Profile() Profile {
	if d < Easy || d > Expert {
		return profiles[Medium]
	}
	return profiles[d]
}

func (d Difficulty) String() string {
	return d.Profile().Name
}

func ParseDifficulty(s string) (Difficulty, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d, p := range profiles {
		if p.Name == want {
			return Difficulty(d), nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// View is the part of the match state the controller looks at.
type View struct {
	Ball   ball.Ball
	Paddle paddle.Paddle
	Bounds paddle.Bounds
	Field  canvas.Canvas
	Arena  bool
}

// Controller decides the AI paddle's intent each tick.
type Controller struct {
	side    paddle.Side
	profile Profile
	rng     *rand.Rand
}

func NewController(side paddle.Side, profile Profile, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Controller{side: side, profile: profile, rng: rng}
}

func (c *Controller) Profile() Profile {
	return c.profile
}

func (c *Controller) approaching(b ball.Ball) bool {
	if c.side == paddle.Left {
		return b.Velocity.X < 0
	}
	return b.Velocity.X > 0
}

// Intent returns a velocity intent whose components never exceed the
// profile speed.
func (c *Controller) Intent(v View) paddle.Intent {
	home := v.Bounds.Clamp(paddle.Home(c.side, v.Field, v.Paddle.Size))
	if !c.approaching(v.Ball) {
		return c.toward(v.Paddle.Position, geometry.Vector2{
			X: geometry.Lerp(v.Paddle.Position.X, home.X, homeLerp),
			Y: geometry.Lerp(v.Paddle.Position.Y, home.Y, homeLerp),
		})
	}

	face := v.Paddle.Face(c.side)
	distance := math.Abs(face - v.Ball.Position.X)
	t := distance / math.Abs(v.Ball.Velocity.X)
	predicted := geometry.Fold(v.Ball.Position.Y+v.Ball.Velocity.Y*t, 0, v.Field.Height)
	if c.profile.PredictionError > 0 {
		predicted += (c.rng.Float64()*2 - 1) * c.profile.PredictionError
	}

	if c.rng.Float64() < c.profile.ReactionDelay {
		return paddle.Idle
	}

	target := geometry.Vector2{
		X: v.Paddle.Position.X,
		Y: predicted - v.Paddle.Size.Y/2,
	}
	if v.Arena {
		target.X = c.arenaX(v, home, distance)
	}
	return c.toward(v.Paddle.Position, v.Bounds.Clamp(target))
}

// arenaX steps up to meet a ball that is close, otherwise holds the
// default stance at the back of the half.
func (c *Controller) arenaX(v View, home geometry.Vector2, distance float64) float64 {
	if distance > v.Field.Width/4 {
		return home.X
	}
	if c.side == paddle.Left {
		return v.Ball.Position.X - v.Ball.Radius - v.Paddle.Size.X*2
	}
	return v.Ball.Position.X + v.Ball.Radius + v.Paddle.Size.X
}

func (c *Controller) toward(from, to geometry.Vector2) paddle.Intent {
	s := c.profile.Speed
	d := to.Sub(from)
	d.X = geometry.Clamp(d.X, -s, s)
	d.Y = geometry.Clamp(d.Y, -s, s)
	if d == (geometry.Vector2{}) {
		return paddle.Idle
	}
	return paddle.Velocity(d)
}
