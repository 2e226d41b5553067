// Package match holds the lifecycle of a single match and the role this
// process plays in it.
package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/mo-shahab/pong-sync/paddle"
)

var ErrInvalidTransition = errors.New("invalid transition")

// DefaultCountdown is the real-time delay between starting a match and
// the first gameplay tick.
const DefaultCountdown = 3 * time.Second

// Machine steps through
//
//	Menu -> Countdown(3,2,1) -> Playing <-> Paused -> Finished
//
// Countdown runs on wall time handed in by the caller. A rejected
// transition leaves the state untouched.
type Machine struct {
	state     State
	countdown time.Duration
	startedAt time.Time
}

// NewMachine returns a machine in the menu. A negative countdown counts
// as none.
func NewMachine(countdown time.Duration) *Machine {
	if countdown < 0 {
		countdown = 0
	}
	return &Machine{state: Menu(), countdown: countdown}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) invalid(action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, m.state)
}

func (m *Machine) beginCountdown(now time.Time) {
	m.startedAt = now
	m.state = Countdown(m.secondsLeft(0))
}

func (m *Machine) secondsLeft(elapsed time.Duration) int {
	left := m.countdown - elapsed
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Start leaves the menu and begins the countdown.
func (m *Machine) Start(now time.Time) error {
	if m.state.phase != PhaseMenu {
		return m.invalid("start")
	}
	m.beginCountdown(now)
	return nil
}

// Update advances the countdown. It reports true on the call that moves
// the match into Playing.
func (m *Machine) Update(now time.Time) bool {
	if m.state.phase != PhaseCountdown {
		return false
	}
	elapsed := now.Sub(m.startedAt)
	if elapsed >= m.countdown {
		m.state = Playing()
		return true
	}
	m.state = Countdown(m.secondsLeft(elapsed))
	return false
}

// Pause stops a playing match.
func (m *Machine) Pause(reason PauseReason) error {
	if m.state.phase != PhasePlaying {
		return m.invalid("pause")
	}
	m.state = Paused(reason)
	return nil
}

// Resume continues a paused match.
func (m *Machine) Resume() error {
	if m.state.phase != PhasePaused {
		return m.invalid("resume")
	}
	m.state = Playing()
	return nil
}

// Toggle pauses a playing match or resumes a paused one and reports
// whether the match is now paused.
func (m *Machine) Toggle(reason PauseReason) (bool, error) {
	switch m.state.phase {
	case PhasePlaying:
		m.state = Paused(reason)
		return true, nil
	case PhasePaused:
		m.state = Playing()
		return false, nil
	}
	return false, m.invalid("toggle pause")
}

// Finish ends a playing or paused match with winner.
func (m *Machine) Finish(winner paddle.Side) error {
	if m.state.phase != PhasePlaying && m.state.phase != PhasePaused {
		return m.invalid("finish")
	}
	m.state = Finished(winner)
	return nil
}

// Reset restarts a match in progress or one that has finished, going back
// through the countdown.
func (m *Machine) Reset(now time.Time) error {
	switch m.state.phase {
	case PhasePlaying, PhasePaused, PhaseFinished:
		m.beginCountdown(now)
		return nil
	}
	return m.invalid("reset")
}

// ToMenu abandons whatever is in progress.
func (m *Machine) ToMenu() {
	m.state = Menu()
}
