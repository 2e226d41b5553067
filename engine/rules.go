package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mo-shahab/pong-sync/canvas"
	"github.com/mo-shahab/pong-sync/geometry"
)

// Variant selects between the two rule sets the engine knows.
type Variant int

const (
	// Classic paddles only move vertically along their edge. First to 5.
	Classic Variant = iota
	// Arena paddles move in 2-D within their own half. First to 10.
	Arena
)

func (v Variant) String() string {
	if v == Arena {
		return "arena"
	}
	return "classic"
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return Classic, nil
	case "arena":
		return Arena, nil
	}
	return Classic, fmt.Errorf("unknown variant %q", s)
}

// Game constants
const (
	DefaultFieldWidth     = 800
	DefaultFieldHeight    = 450
	DefaultPaddleWidth    = 10
	DefaultPaddleHeight   = 100
	DefaultPaddleSpeed    = 8
	DefaultBallRadius     = 10
	DefaultServeSpeed     = 7
	DefaultMaxBallSpeed   = 15
	DefaultMaxBounceSpeed = 7.5
	DefaultRestitution    = 1.1
	DefaultSubSteps       = 4
)

// Rules carries every tunable of a match. A zero WinningScore means the
// variant's default.
type Rules struct {
	Variant        Variant
	Field          canvas.Canvas
	PaddleSize     geometry.Vector2
	PaddleSpeed    float64
	BallRadius     float64
	ServeSpeed     float64
	MaxBallSpeed   float64
	MaxBounceSpeed float64
	Restitution    float64
	SubSteps       int
	WinningScore   int
}

func DefaultRules(v Variant) Rules {
	return Rules{
		Variant:        v,
		Field:          canvas.Canvas{Width: DefaultFieldWidth, Height: DefaultFieldHeight},
		PaddleSize:     geometry.Vector2{X: DefaultPaddleWidth, Y: DefaultPaddleHeight},
		PaddleSpeed:    DefaultPaddleSpeed,
		BallRadius:     DefaultBallRadius,
		ServeSpeed:     DefaultServeSpeed,
		MaxBallSpeed:   DefaultMaxBallSpeed,
		MaxBounceSpeed: DefaultMaxBounceSpeed,
		Restitution:    DefaultRestitution,
		SubSteps:       DefaultSubSteps,
	}
}

// Threshold is the score that ends the match.
func (r Rules) Threshold() int {
	if r.WinningScore > 0 {
		return r.WinningScore
	}
	if r.Variant == Arena {
		return 10
	}
	return 5
}

func (r Rules) Arena() bool {
	return r.Variant == Arena
}

var ErrInvalidRules = errors.New("invalid rules")

func (r Rules) Validate() error {
	switch {
	case !r.Field.Valid():
		return fmt.Errorf("%w: field %vx%v", ErrInvalidRules, r.Field.Width, r.Field.Height)
	case r.PaddleSize.X <= 0 || r.PaddleSize.Y <= 0 || r.PaddleSize.Y > r.Field.Height:
		return fmt.Errorf("%w: paddle %vx%v", ErrInvalidRules, r.PaddleSize.X, r.PaddleSize.Y)
	case r.Arena() && r.PaddleSize.X > r.Field.Midline():
		return fmt.Errorf("%w: paddle wider than half the field", ErrInvalidRules)
	case r.BallRadius <= 0 || 2*r.BallRadius > r.Field.Height:
		return fmt.Errorf("%w: ball radius %v", ErrInvalidRules, r.BallRadius)
	case r.PaddleSpeed <= 0, r.ServeSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidRules)
	case r.MaxBallSpeed < r.ServeSpeed:
		return fmt.Errorf("%w: max ball speed %v below serve speed %v", ErrInvalidRules, r.MaxBallSpeed, r.ServeSpeed)
	case r.MaxBounceSpeed < 0 || r.Restitution <= 0:
		return fmt.Errorf("%w: bounce response", ErrInvalidRules)
	case r.SubSteps < 1:
		return fmt.Errorf("%w: sub-steps %d", ErrInvalidRules, r.SubSteps)
	case r.WinningScore < 0:
		return fmt.Errorf("%w: winning score %d", ErrInvalidRules, r.WinningScore)
	}
	return nil
}
