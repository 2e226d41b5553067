package ball

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mo-shahab/pong-sync/geometry"
)

func TestServeMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	center := geometry.Vector2{X: 400, Y: 225}
	signs := map[[2]bool]bool{}

	for i := 0; i < 64; i++ {
		b := Ball{Radius: 10}
		b.Serve(center, 7, rng)
		if b.Position != center {
			t.Fatalf("served at %+v, want center", b.Position)
		}
		if math.Abs(b.Speed()-7) > 1e-9 {
			t.Fatalf("serve speed = %v, want 7", b.Speed())
		}
		signs[[2]bool{b.Velocity.X > 0, b.Velocity.Y > 0}] = true
	}
	if len(signs) != 4 {
		t.Fatalf("expected all four diagonal directions over 64 serves, saw %d", len(signs))
	}
}

func TestReflectWalls(t *testing.T) {
	top := Ball{Position: geometry.Vector2{X: 100, Y: 3}, Velocity: geometry.Vector2{X: 2, Y: -5}, Radius: 5}
	if !top.ReflectWalls(450) {
		t.Fatal("expected a bounce off the top wall")
	}
	if top.Position.Y != 5 || top.Velocity.Y != 5 {
		t.Fatalf("top bounce got y=%v vy=%v", top.Position.Y, top.Velocity.Y)
	}

	bottom := Ball{Position: geometry.Vector2{X: 100, Y: 449}, Velocity: geometry.Vector2{Y: 4}, Radius: 5}
	if !bottom.ReflectWalls(450) {
		t.Fatal("expected a bounce off the bottom wall")
	}
	if bottom.Position.Y != 445 || bottom.Velocity.Y != -4 {
		t.Fatalf("bottom bounce got y=%v vy=%v", bottom.Position.Y, bottom.Velocity.Y)
	}

	mid := Ball{Position: geometry.Vector2{X: 100, Y: 225}, Velocity: geometry.Vector2{Y: 4}, Radius: 5}
	if mid.ReflectWalls(450) {
		t.Fatal("ball in the middle must not bounce")
	}
}
