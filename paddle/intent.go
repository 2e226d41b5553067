package paddle

import "github.com/mo-shahab/pong-sync/geometry"

type IntentKind int

const (
	IntentIdle IntentKind = iota
	// IntentVelocity displaces the paddle by Vector this tick, each axis
	// limited to the paddle speed.
	IntentVelocity
	// IntentPosition places the paddle's top-left corner at Vector.
	IntentPosition
)

// Intent is what a controller (keyboard, pointer, AI) wants a paddle to do
// for one tick.
type Intent struct {
	Kind   IntentKind
	Vector geometry.Vector2
}

var Idle = Intent{}

func Velocity(v geometry.Vector2) Intent {
	return Intent{Kind: IntentVelocity, Vector: v}
}

func Position(p geometry.Vector2) Intent {
	return Intent{Kind: IntentPosition, Vector: p}
}
