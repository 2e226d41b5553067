package ball

import (
	"math"
	"math/rand"

	"github.com/mo-shahab/pong-sync/geometry"
)

// Ball moves by Velocity every tick; velocity is a per-tick displacement.
type Ball struct {
	Position geometry.Vector2
	Velocity geometry.Vector2
	Radius   float64
}

// Serve puts the ball at center with a diagonal velocity of exactly speed,
// each component's sign picked by rng.
func (b *Ball) Serve(center geometry.Vector2, speed float64, rng *rand.Rand) {
	component := speed / math.Sqrt2
	dx, dy := component, component
	if rng.Intn(2) == 0 {
		dx = -dx
	}
	if rng.Intn(2) == 0 {
		dy = -dy
	}
	b.Position = center
	b.Velocity = geometry.Vector2{X: dx, Y: dy}
}

// ReflectWalls bounces the ball off the top and bottom walls of a field of
// the given height, pulling it back inside. It reports whether it bounced.
func (b *Ball) ReflectWalls(height float64) bool {
	switch {
	case b.Position.Y-b.Radius < 0:
		b.Position.Y = b.Radius
		b.Velocity.Y = math.Abs(b.Velocity.Y)
		return true
	case b.Position.Y+b.Radius > height:
		b.Position.Y = height - b.Radius
		b.Velocity.Y = -math.Abs(b.Velocity.Y)
		return true
	}
	return false
}

func (b Ball) Speed() float64 {
	return b.Velocity.Length()
}

func (b Ball) Finite() bool {
	return b.Position.Finite() && b.Velocity.Finite() && geometry.Finite(b.Radius)
}
