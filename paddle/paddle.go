package paddle

import (
	"fmt"
	"strings"

	"github.com/mo-shahab/pong-sync/canvas"
	"github.com/mo-shahab/pong-sync/geometry"
)

// Side identifies a paddle. Left is the near side and holds ball authority
// in networked matches; Right is the far side.
type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both sides in index order.
var Sides = [2]Side{Left, Right}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

func (s Side) Valid() bool {
	return s == Left || s == Right
}

func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// ParseSide accepts "left"/"right" as well as the player1/player2 aliases.
func ParseSide(v string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left", "near", "player1":
		return Left, nil
	case "right", "far", "player2":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown side %q", v)
}

// Paddle is a player-controlled rectangle. Position is its top-left corner.
type Paddle struct {
	Position geometry.Vector2
	Size     geometry.Vector2
	Speed    float64
}

func (p Paddle) Rect() geometry.Rect {
	return geometry.Rect{Position: p.Position, Size: p.Size}
}

func (p Paddle) Center() geometry.Vector2 {
	return p.Rect().Center()
}

// Bounds is the allowed range of a paddle's top-left corner.
type Bounds struct {
	Min, Max geometry.Vector2
}

func (b Bounds) Clamp(pos geometry.Vector2) geometry.Vector2 {
	return geometry.Vector2{
		X: geometry.Clamp(pos.X, b.Min.X, b.Max.X),
		Y: geometry.Clamp(pos.Y, b.Min.Y, b.Max.Y),
	}
}

func (b Bounds) Contains(pos geometry.Vector2) bool {
	return pos.X >= b.Min.X && pos.X <= b.Max.X && pos.Y >= b.Min.Y && pos.Y <= b.Max.Y
}

// BoundsFor returns where a paddle of the given size may travel. Classic
// paddles are pinned to their edge of the field; arena paddles roam their
// own half, split at the midline.
func BoundsFor(side Side, field canvas.Canvas, size geometry.Vector2, arena bool) Bounds {
	maxY := field.Height - size.Y
	if !arena {
		x := 0.0
		if side == Right {
			x = field.Width - size.X
		}
		return Bounds{
			Min: geometry.Vector2{X: x, Y: 0},
			Max: geometry.Vector2{X: x, Y: maxY},
		}
	}
	if side == Left {
		return Bounds{
			Min: geometry.Vector2{X: 0, Y: 0},
			Max: geometry.Vector2{X: field.Midline() - size.X, Y: maxY},
		}
	}
	return Bounds{
		Min: geometry.Vector2{X: field.Midline(), Y: 0},
		Max: geometry.Vector2{X: field.Width - size.X, Y: maxY},
	}
}

// Home is the resting position: the field edge of its side, vertically centered.
func Home(side Side, field canvas.Canvas, size geometry.Vector2) geometry.Vector2 {
	x := 0.0
	if side == Right {
		x = field.Width - size.X
	}
	return geometry.Vector2{X: x, Y: field.Height/2 - size.Y/2}
}

// Face is the x coordinate of the surface the ball strikes.
func (p Paddle) Face(side Side) float64 {
	if side == Left {
		return p.Position.X + p.Size.X
	}
	return p.Position.X
}

// Apply moves the paddle according to intent and clamps it into b. It
// reports whether the position changed.
func (p *Paddle) Apply(intent Intent, b Bounds) bool {
	before := p.Position
	switch intent.Kind {
	case IntentVelocity:
		if !intent.Vector.Finite() {
			return false
		}
		delta := geometry.Vector2{
			X: geometry.Clamp(intent.Vector.X, -p.Speed, p.Speed),
			Y: geometry.Clamp(intent.Vector.Y, -p.Speed, p.Speed),
		}
		p.Position = b.Clamp(p.Position.Add(delta))
	case IntentPosition:
		if !intent.Vector.Finite() {
			return false
		}
		p.Position = b.Clamp(intent.Vector)
	default:
		p.Position = b.Clamp(p.Position)
	}
	return p.Position != before
}
