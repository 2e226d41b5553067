// Package input turns held directions and pointer targets into per-paddle
// intents for the simulation.
package input

import (
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
)

// Directions is the set of directional controls held for one paddle.
type Directions struct {
	Up, Down, Left, Right bool
}

// Source is what the platform layer exposes for a paddle: the directional
// controls currently held and, if any, a pointer target in field coordinates.
type Source interface {
	HeldDirections(side paddle.Side) Directions
	PointerTarget(side paddle.Side) (geometry.Vector2, bool)
}

// Aggregator reads a Source and produces intents.
type Aggregator struct {
	src Source
}

func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// Intent resolves the controls for side into a single intent. A pointer
// target wins over held directions and centers the paddle on the pointer;
// out-of-range targets are clamped and non-finite ones ignored.
func (a *Aggregator) Intent(side paddle.Side, p paddle.Paddle, b paddle.Bounds) paddle.Intent {
	if a == nil || a.src == nil {
		return paddle.Idle
	}
	if target, ok := a.src.PointerTarget(side); ok && target.Finite() {
		pos := target.Sub(p.Size.Scale(0.5))
		// Classic bounds pin x, so only the vertical part of the pointer matters there.
		return paddle.Position(b.Clamp(pos))
	}

	d := a.src.HeldDirections(side)
	var v geometry.Vector2
	if d.Up {
		v.Y -= p.Speed
	}
	if d.Down {
		v.Y += p.Speed
	}
	if d.Left {
		v.X -= p.Speed
	}
	if d.Right {
		v.X += p.Speed
	}
	if v == (geometry.Vector2{}) {
		return paddle.Idle
	}
	return paddle.Velocity(v)
}
