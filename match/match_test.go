package match

import (
	"errors"
	"testing"
	"time"

	"github.com/mo-shahab/pong-sync/paddle"
)

func TestCountdownToPlaying(t *testing.T) {
	m := NewMachine(DefaultCountdown)
	t0 := time.Unix(1000, 0)

	if err := m.Start(t0); err != nil {
		t.Fatal(err)
	}
	if s := m.State(); s.Phase() != PhaseCountdown || s.Remaining() != 3 {
		t.Fatalf("after start: %s", s)
	}

	steps := []struct {
		at      time.Duration
		want    int
		playing bool
	}{
		{500 * time.Millisecond, 3, false},
		{1 * time.Second, 2, false},
		{2500 * time.Millisecond, 1, false},
		{2999 * time.Millisecond, 1, false},
		{3 * time.Second, 0, true},
	}
	for _, st := range steps {
		entered := m.Update(t0.Add(st.at))
		if entered != st.playing {
			t.Fatalf("at %v: entered=%v", st.at, entered)
		}
		if st.playing {
			if m.State().Phase() != PhasePlaying {
				t.Fatalf("at %v: %s, want playing", st.at, m.State())
			}
			continue
		}
		if got := m.State().Remaining(); got != st.want {
			t.Fatalf("at %v: remaining %d, want %d", st.at, got, st.want)
		}
	}

	if m.Update(t0.Add(10 * time.Second)) {
		t.Fatal("entering playing must be reported once")
	}
}

func TestPauseOnlyWhilePlaying(t *testing.T) {
	m := NewMachine(0)
	if err := m.Pause(PausedByPlayer); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pause from menu: %v", err)
	}
	if m.State().Phase() != PhaseMenu {
		t.Fatal("rejected transition changed state")
	}

	now := time.Unix(0, 0)
	_ = m.Start(now)
	if _, err := m.Toggle(PausedByPlayer); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("toggle during countdown: %v", err)
	}
	m.Update(now)

	paused, err := m.Toggle(PausedByPeer)
	if err != nil || !paused {
		t.Fatalf("toggle from playing: %v %v", paused, err)
	}
	if m.State().Reason() != PausedByPeer {
		t.Fatalf("reason = %q", m.State().Reason())
	}
	if err := m.Resume(); err != nil {
		t.Fatal(err)
	}
	if err := m.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("resume while playing: %v", err)
	}
}

func TestFinishAndReset(t *testing.T) {
	m := NewMachine(time.Second)
	now := time.Unix(0, 0)
	if err := m.Reset(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reset from menu: %v", err)
	}
	_ = m.Start(now)
	m.Update(now.Add(time.Second))

	if err := m.Finish(paddle.Right); err != nil {
		t.Fatal(err)
	}
	if w, ok := m.State().Winner(); !ok || w != paddle.Right {
		t.Fatalf("winner = %v %v", w, ok)
	}
	if err := m.Pause(PausedByPlayer); !errors.Is(err, ErrInvalidTransition) {
		t.Fatal("finished match must not pause")
	}

	if err := m.Reset(now.Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if s := m.State(); s.Phase() != PhaseCountdown || s.Remaining() != 1 {
		t.Fatalf("after reset: %s", s)
	}
	m.ToMenu()
	if m.State().Phase() != PhaseMenu {
		t.Fatal("ToMenu must always land in the menu")
	}
}

func TestCapabilities(t *testing.T) {
	simulators := 0
	for _, r := range []Role{RoleAuthoritative, RoleMirror} {
		c := r.Capabilities()
		if !c.Networked {
			t.Fatalf("%s should be networked", r)
		}
		if c.SimulatesBall {
			simulators++
		}
		if !c.Controls(c.Own) || c.Controls(c.Own.Opponent()) {
			t.Fatalf("%s must control exactly its own paddle", r)
		}
	}
	if simulators != 1 {
		t.Fatalf("%d networked roles simulate the ball, want exactly 1", simulators)
	}
	if RoleForSide(paddle.Left) != RoleAuthoritative {
		t.Fatal("the near side holds ball authority")
	}

	ai := RoleAI.Capabilities()
	if !ai.AI[paddle.Right] || ai.Input[paddle.Right] || !ai.Input[paddle.Left] {
		t.Fatalf("ai capabilities = %+v", ai)
	}
	local := RoleLocal.Capabilities()
	if !local.Controls(paddle.Left) || !local.Controls(paddle.Right) || local.Networked {
		t.Fatalf("local capabilities = %+v", local)
	}
}
