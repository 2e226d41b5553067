package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/canvas"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
)

var (
	field = canvas.Canvas{Width: 800, Height: 450}
	size  = geometry.Vector2{X: 10, Y: 100}
)

func rightView(b ball.Ball, y float64, arena bool) View {
	bounds := paddle.BoundsFor(paddle.Right, field, size, arena)
	return View{
		Ball:   b,
		Paddle: paddle.Paddle{Position: geometry.Vector2{X: 790, Y: y}, Size: size, Speed: 8},
		Bounds: bounds,
		Field:  field,
		Arena:  arena,
	}
}

func TestExpertTracksPrediction(t *testing.T) {
	c := NewController(paddle.Right, Expert.Profile(), rand.New(rand.NewSource(1)))
	b := ball.Ball{
		Position: geometry.Vector2{X: 400, Y: 225},
		Velocity: geometry.Vector2{X: 7, Y: 1},
		Radius:   10,
	}
	// Intercept: distance 390 at 7/tick -> ~55.7 ticks -> y ~ 280.7
	want := 225 + 390.0/7.0
	p := rightView(b, 0, false).Paddle
	bounds := paddle.BoundsFor(paddle.Right, field, size, false)
	for i := 0; i < 100; i++ {
		v := rightView(b, p.Position.Y, false)
		p.Apply(c.Intent(v), bounds)
	}
	if math.Abs(p.Center().Y-want) > 1e-6 {
		t.Fatalf("paddle center %v, want %v", p.Center().Y, want)
	}
}

func TestPredictionFoldsOffWalls(t *testing.T) {
	c := NewController(paddle.Right, Expert.Profile(), rand.New(rand.NewSource(1)))
	// 390 units away at vx=3 -> 130 ticks, vy=3 -> raw y = 100+390 = 490,
	// which folds back to 410.
	b := ball.Ball{
		Position: geometry.Vector2{X: 400, Y: 100},
		Velocity: geometry.Vector2{X: 3, Y: 3},
		Radius:   10,
	}
	p := rightView(b, 0, false).Paddle
	bounds := paddle.BoundsFor(paddle.Right, field, size, false)
	for i := 0; i < 200; i++ {
		p.Apply(c.Intent(rightView(b, p.Position.Y, false)), bounds)
	}
	// Target 410-50=360 clamps to the lowest legal position.
	if p.Position.Y != 350 {
		t.Fatalf("paddle at %v, want 350", p.Position.Y)
	}
}

func TestReturnsHomeWhenBallLeaves(t *testing.T) {
	c := NewController(paddle.Right, Hard.Profile(), rand.New(rand.NewSource(1)))
	b := ball.Ball{Position: geometry.Vector2{X: 400, Y: 400}, Velocity: geometry.Vector2{X: -7, Y: 0}, Radius: 10}

	got := c.Intent(rightView(b, 0, false))
	if got.Kind != paddle.IntentVelocity || got.Vector.Y <= 0 {
		t.Fatalf("expected a move down toward home, got %+v", got)
	}
	// Lerp factor 0.1 of 175 is 17.5, capped at the tier speed.
	if got.Vector.Y != 7 {
		t.Fatalf("home return should be capped at speed, got %v", got.Vector.Y)
	}

	atHome := c.Intent(rightView(b, 175, false))
	if atHome != paddle.Idle {
		t.Fatalf("paddle at home should stay idle, got %+v", atHome)
	}
}

func TestIntentNeverExceedsSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for d := Easy; d <= Expert; d++ {
		c := NewController(paddle.Right, d.Profile(), rand.New(rand.NewSource(int64(d))))
		speed := d.Profile().Speed
		for i := 0; i < 2000; i++ {
			arena := i%2 == 0
			b := ball.Ball{
				Position: geometry.Vector2{X: rng.Float64() * 800, Y: rng.Float64() * 450},
				Velocity: geometry.Vector2{X: (rng.Float64() - 0.5) * 30, Y: (rng.Float64() - 0.5) * 30},
				Radius:   10,
			}
			v := rightView(b, rng.Float64()*350, arena)
			got := c.Intent(v)
			if math.Abs(got.Vector.X) > speed || math.Abs(got.Vector.Y) > speed {
				t.Fatalf("%s: intent %+v exceeds speed %v", d, got.Vector, speed)
			}
			p := v.Paddle
			p.Apply(got, v.Bounds)
			if !v.Bounds.Contains(p.Position) {
				t.Fatalf("%s: paddle left bounds at %+v", d, p.Position)
			}
		}
	}
}

func TestReactionDelaySkipsTicks(t *testing.T) {
	c := NewController(paddle.Right, Easy.Profile(), rand.New(rand.NewSource(3)))
	b := ball.Ball{Position: geometry.Vector2{X: 400, Y: 50}, Velocity: geometry.Vector2{X: 7, Y: 0}, Radius: 10}

	skipped := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if c.Intent(rightView(b, 300, false)) == paddle.Idle {
			skipped++
		}
	}
	ratio := float64(skipped) / n
	if ratio < 0.25 || ratio > 0.35 {
		t.Fatalf("easy tier skipped %.2f of ticks, want about 0.3", ratio)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Expert ")
	if err != nil || d != Expert {
		t.Fatalf("ParseDifficulty = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Fatal("expected an error")
	}
}
