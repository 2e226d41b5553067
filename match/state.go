package match

import (
	"fmt"

	"github.com/mo-shahab/pong-sync/paddle"
)

type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhasePlaying
	PhasePaused
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// PauseReason records why play stopped.
type PauseReason string

const (
	PausedByPlayer PauseReason = "player"
	PausedByPeer   PauseReason = "peer"
)

// State is the match phase plus the data only that phase carries. Values
// are built with the constructors below, so a countdown always has a count,
// a pause a reason and a finish a winner.
type State struct {
	phase     Phase
	remaining int
	reason    PauseReason
	winner    paddle.Side
}

func Menu() State {
	return State{phase: PhaseMenu}
}

func Countdown(remaining int) State {
	return State{phase: PhaseCountdown, remaining: remaining}
}

func Playing() State {
	return State{phase: PhasePlaying}
}

func Paused(reason PauseReason) State {
	return State{phase: PhasePaused, reason: reason}
}

func Finished(winner paddle.Side) State {
	return State{phase: PhaseFinished, winner: winner}
}

func (s State) Phase() Phase {
	return s.phase
}

// Remaining is the whole seconds left on the countdown, zero otherwise.
func (s State) Remaining() int {
	return s.remaining
}

func (s State) Reason() PauseReason {
	return s.reason
}

func (s State) Winner() (paddle.Side, bool) {
	return s.winner, s.phase == PhaseFinished
}

func (s State) String() string {
	switch s.phase {
	case PhaseCountdown:
		return fmt.Sprintf("countdown(%d)", s.remaining)
	case PhasePaused:
		return fmt.Sprintf("paused(%s)", s.reason)
	case PhaseFinished:
		return fmt.Sprintf("finished(%s)", s.winner)
	}
	return s.phase.String()
}
