package match

import (
	"fmt"
	"strings"

	"github.com/mo-shahab/pong-sync/paddle"
)

// Role is how this process takes part in a match.
type Role int

const (
	// RoleLocal: both paddles on this keyboard, ball simulated here.
	RoleLocal Role = iota
	// RoleAI: near paddle on the keyboard, far paddle driven by the AI.
	RoleAI
	// RoleAuthoritative: networked, owns the near paddle and the ball.
	RoleAuthoritative
	// RoleMirror: networked, owns the far paddle and mirrors the ball.
	RoleMirror
)

func (r Role) String() string {
	switch r {
	case RoleLocal:
		return "local"
	case RoleAI:
		return "ai"
	case RoleAuthoritative:
		return "authoritative"
	case RoleMirror:
		return "mirror"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return RoleLocal, nil
	case "ai":
		return RoleAI, nil
	case "authoritative", "host":
		return RoleAuthoritative, nil
	case "mirror", "guest":
		return RoleMirror, nil
	}
	return RoleLocal, fmt.Errorf("unknown role %q", s)
}

// RoleForSide maps the side a relay assigned to the networked role.
func RoleForSide(side paddle.Side) Role {
	if side == paddle.Left {
		return RoleAuthoritative
	}
	return RoleMirror
}

// Capabilities answers every "who does what" question for a role.
type Capabilities struct {
	// Input marks the sides driven by local input.
	Input [2]bool
	// AI marks the sides driven by the computer opponent.
	AI            [2]bool
	SimulatesBall bool
	Networked     bool
	// Own is the side this process controls in a networked match.
	Own paddle.Side
}

func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleAI:
		return Capabilities{
			Input:         [2]bool{paddle.Left: true},
			AI:            [2]bool{paddle.Right: true},
			SimulatesBall: true,
			Own:           paddle.Left,
		}
	case RoleAuthoritative:
		return Capabilities{
			Input:         [2]bool{paddle.Left: true},
			SimulatesBall: true,
			Networked:     true,
			Own:           paddle.Left,
		}
	case RoleMirror:
		return Capabilities{
			Input:     [2]bool{paddle.Right: true},
			Networked: true,
			Own:       paddle.Right,
		}
	}
	return Capabilities{
		Input:         [2]bool{true, true},
		SimulatesBall: true,
		Own:           paddle.Left,
	}
}

// Controls reports whether this process drives the given paddle.
func (c Capabilities) Controls(side paddle.Side) bool {
	return side.Valid() && (c.Input[side] || c.AI[side])
}
