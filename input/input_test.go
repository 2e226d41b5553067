package input

import (
	"math"
	"testing"
	"time"

	"github.com/mo-shahab/pong-sync/canvas"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
)

type fakeSource struct {
	dirs    [2]Directions
	pointer [2]*geometry.Vector2
}

func (f *fakeSource) HeldDirections(side paddle.Side) Directions { return f.dirs[side] }

func (f *fakeSource) PointerTarget(side paddle.Side) (geometry.Vector2, bool) {
	if p := f.pointer[side]; p != nil {
		return *p, true
	}
	return geometry.Vector2{}, false
}

var (
	field  = canvas.Canvas{Width: 800, Height: 450}
	size   = geometry.Vector2{X: 10, Y: 100}
	bounds = paddle.BoundsFor(paddle.Left, field, size, false)
	pad    = paddle.Paddle{Position: paddle.Home(paddle.Left, field, size), Size: size, Speed: 8}
)

func TestAggregatorDirections(t *testing.T) {
	src := &fakeSource{}
	agg := NewAggregator(src)

	if got := agg.Intent(paddle.Left, pad, bounds); got != paddle.Idle {
		t.Fatalf("no keys held should be idle, got %+v", got)
	}

	src.dirs[paddle.Left] = Directions{Up: true}
	got := agg.Intent(paddle.Left, pad, bounds)
	if got.Kind != paddle.IntentVelocity || got.Vector.Y != -8 {
		t.Fatalf("up should be velocity -speed, got %+v", got)
	}

	src.dirs[paddle.Left] = Directions{Up: true, Down: true}
	if got := agg.Intent(paddle.Left, pad, bounds); got != paddle.Idle {
		t.Fatalf("opposite keys cancel, got %+v", got)
	}
}

func TestAggregatorPointer(t *testing.T) {
	src := &fakeSource{}
	agg := NewAggregator(src)

	src.pointer[paddle.Left] = &geometry.Vector2{X: 300, Y: 100}
	src.dirs[paddle.Left] = Directions{Down: true}
	got := agg.Intent(paddle.Left, pad, bounds)
	if got.Kind != paddle.IntentPosition {
		t.Fatalf("pointer should win over keys, got %+v", got)
	}
	if got.Vector != (geometry.Vector2{X: 0, Y: 50}) {
		t.Fatalf("paddle should center on the pointer, got %+v", got.Vector)
	}

	src.pointer[paddle.Left] = &geometry.Vector2{Y: 5000}
	if got := agg.Intent(paddle.Left, pad, bounds); got.Vector.Y != 350 {
		t.Fatalf("out of range pointer should clamp, got %+v", got.Vector)
	}

	src.pointer[paddle.Left] = &geometry.Vector2{Y: math.NaN()}
	if got := agg.Intent(paddle.Left, pad, bounds); got.Kind != paddle.IntentVelocity {
		t.Fatalf("NaN pointer should fall back to keys, got %+v", got)
	}
}

func TestKeyboardHoldAndCommands(t *testing.T) {
	now := time.Unix(100, 0)
	k := NewKeyboard()
	k.now = func() time.Time { return now }

	k.Feed([]byte("w\x1b[Bpr"))

	if d := k.HeldDirections(paddle.Left); !d.Up || d.Down {
		t.Fatalf("left directions = %+v", d)
	}
	if d := k.HeldDirections(paddle.Right); !d.Down || d.Up {
		t.Fatalf("right directions = %+v", d)
	}

	cmds := k.Commands()
	if len(cmds) != 2 || cmds[0] != CommandPause || cmds[1] != CommandReset {
		t.Fatalf("commands = %v", cmds)
	}
	if len(k.Commands()) != 0 {
		t.Fatal("commands should be drained")
	}

	now = now.Add(keyHoldDuration)
	if d := k.HeldDirections(paddle.Left); d.Up {
		t.Fatal("key should be released after the hold window")
	}
}

func TestKeyboardArrowSplitAcrossReads(t *testing.T) {
	now := time.Unix(100, 0)
	k := NewKeyboard()
	k.now = func() time.Time { return now }

	for _, parts := range [][]string{
		{"\x1b", "[A"},
		{"\x1b[", "A"},
		{"\x1bO", "A"},
		{"\x1bOA"},
	} {
		k.pressed = [2][4]time.Time{}
		for _, p := range parts {
			k.Feed([]byte(p))
			if cmds := k.Commands(); len(cmds) != 0 {
				t.Fatalf("%q: commands = %v", parts, cmds)
			}
		}
		if d := k.HeldDirections(paddle.Right); !d.Up {
			t.Fatalf("%q: right directions = %+v", parts, d)
		}
	}
}

func TestKeyboardBareEscape(t *testing.T) {
	now := time.Unix(100, 0)
	k := NewKeyboard()
	k.now = func() time.Time { return now }

	k.Feed([]byte("\x1b"))
	if cmds := k.Commands(); len(cmds) != 0 {
		t.Fatalf("escape resolved early: %v", cmds)
	}
	now = now.Add(escTimeout)
	if cmds := k.Commands(); len(cmds) != 1 || cmds[0] != CommandMenu {
		t.Fatalf("commands = %v", cmds)
	}

	// An escape followed by a plain key is Esc then that key.
	k.Feed([]byte("\x1bp"))
	if cmds := k.Commands(); len(cmds) != 2 || cmds[0] != CommandMenu || cmds[1] != CommandPause {
		t.Fatalf("commands = %v", cmds)
	}
}
