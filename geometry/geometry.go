// Package geometry holds the vector and rectangle math shared by the
// simulation, the AI and the replication layer.
package geometry

import "math"

// Vector2 is a 2-D point or displacement in field units.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Length returns the euclidean norm of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vector2) Finite() bool {
	return Finite(v.X, v.Y)
}

// Rect is an axis aligned rectangle anchored at its top-left corner.
type Rect struct {
	Position Vector2
	Size     Vector2
}

func (r Rect) Left() float64   { return r.Position.X }
func (r Rect) Right() float64  { return r.Position.X + r.Size.X }
func (r Rect) Top() float64    { return r.Position.Y }
func (r Rect) Bottom() float64 { return r.Position.Y + r.Size.Y }

func (r Rect) Center() Vector2 {
	return Vector2{X: r.Position.X + r.Size.X/2, Y: r.Position.Y + r.Size.Y/2}
}

// Clamp limits v to [lo, hi]. When hi < lo the range is degenerate and lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp moves a toward b by the fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Finite reports whether every value is a real number.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CircleRectDistanceSquared clamps the circle center onto the rectangle to
// find the nearest point and returns the squared distance to it.
func CircleRectDistanceSquared(center Vector2, r Rect) float64 {
	nearestX := Clamp(center.X, r.Left(), r.Right())
	nearestY := Clamp(center.Y, r.Top(), r.Bottom())
	dx := center.X - nearestX
	dy := center.Y - nearestY
	return dx*dx + dy*dy
}

// CircleIntersectsRect holds iff the squared distance is within radius².
func CircleIntersectsRect(center Vector2, radius float64, r Rect) bool {
	return CircleRectDistanceSquared(center, r) <= radius*radius
}

// CapSpeed scales v down so its length does not exceed max.
func CapSpeed(v Vector2, max float64) Vector2 {
	l := v.Length()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// BounceVelocityY maps where a ball struck a paddle to an outgoing vertical
// velocity: -maxVY at the top edge, 0 at the center, +maxVY at the bottom.
func BounceVelocityY(hitY float64, paddle Rect, maxVY float64) float64 {
	half := paddle.Size.Y / 2
	if half <= 0 {
		return 0
	}
	relative := (hitY - paddle.Center().Y) / half
	return Clamp(relative, -1, 1) * maxVY
}

// Fold reflects y into [lo, hi] as if it bounced off both ends, so a value
// past hi comes back down and every odd span is mirrored.
func Fold(y, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	period := 2 * span
	m := math.Mod(y-lo, period)
	if m < 0 {
		m += period
	}
	if m > span {
		m = period - m
	}
	return lo + m
}
