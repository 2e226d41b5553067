package canvas

import "github.com/mo-shahab/pong-sync/geometry"

// Canvas is the playfield. Origin is the top-left corner, x grows toward
// the far (right) side and y grows downward.
type Canvas struct {
	Width  float64
	Height float64
}

func (c Canvas) Center() geometry.Vector2 {
	return geometry.Vector2{X: c.Width / 2, Y: c.Height / 2}
}

// Midline is the x coordinate splitting the two halves.
func (c Canvas) Midline() float64 {
	return c.Width / 2
}

func (c Canvas) Valid() bool {
	return c.Width > 0 && c.Height > 0 && geometry.Finite(c.Width, c.Height)
}
