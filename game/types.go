package game

import (
	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/canvas"
	"github.com/mo-shahab/pong-sync/match"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/scores"
)

// Snapshot is a point-in-time copy of everything a renderer needs.
type Snapshot struct {
	Tick    uint64
	Role    match.Role
	Own     paddle.Side
	Field   canvas.Canvas
	Ball    ball.Ball
	Paddles [2]paddle.Paddle
	Scores  scores.Scores
	State   match.State
	// Online is false once a networked match has lost its peer.
	Online bool
}

// Renderer draws snapshots. It is called from the loop goroutine.
type Renderer interface {
	Render(Snapshot) error
}
