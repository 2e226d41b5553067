package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/mo-shahab/pong-sync/ai"
	"github.com/mo-shahab/pong-sync/ball"
	"github.com/mo-shahab/pong-sync/engine"
	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/input"
	"github.com/mo-shahab/pong-sync/match"
	"github.com/mo-shahab/pong-sync/paddle"
	"github.com/mo-shahab/pong-sync/replication"
)

type heldKeys struct {
	held [2]input.Directions
}

func (h *heldKeys) HeldDirections(side paddle.Side) input.Directions {
	return h.held[side]
}

func (h *heldKeys) PointerTarget(paddle.Side) (geometry.Vector2, bool) {
	return geometry.Vector2{}, false
}

// link buffers outbound messages until flushed into the peer, so ticks on
// the two sessions never nest.
type link struct {
	mu      sync.Mutex
	pending []replication.Message
	peer    *Session
}

func (l *link) Send(matchID string, msg replication.Message) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = append(l.pending, msg)
	return nil
}

func (l *link) flush() {
	l.mu.Lock()
	out := l.pending
	l.pending = nil
	l.mu.Unlock()
	for _, m := range out {
		l.peer.Deliver(m.MatchID, m)
	}
}

const testMatch = "room42"

var t0 = time.Unix(1000, 0)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Rules == (engine.Rules{}) {
		opts.Rules = engine.DefaultRules(engine.Classic)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}
	s, err := NewSession(opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

type pair struct {
	host, guest         *Session
	toGuest, toHost     *link
	hostKeys, guestKeys *heldKeys
}

func newPair(t *testing.T, rules engine.Rules) *pair {
	t.Helper()
	return newPairAt(t, rules, t0, t0)
}

// newPairAt starts the host and guest countdowns at different instants, as
// happens when the two GameStart messages arrive apart.
func newPairAt(t *testing.T, rules engine.Rules, hostStart, guestStart time.Time) *pair {
	t.Helper()
	p := &pair{
		toGuest:   &link{},
		toHost:    &link{},
		hostKeys:  &heldKeys{},
		guestKeys: &heldKeys{},
	}
	p.host = newSession(t, Options{
		Role: match.RoleAuthoritative, Rules: rules, Input: p.hostKeys,
		MatchID: testMatch, Sender: p.toGuest,
	})
	p.guest = newSession(t, Options{
		Role: match.RoleMirror, Rules: rules, Input: p.guestKeys,
		MatchID: testMatch, Sender: p.toHost,
		Rand: rand.New(rand.NewSource(99)),
	})
	p.toGuest.peer = p.guest
	p.toHost.peer = p.host
	if err := p.host.Start(hostStart); err != nil {
		t.Fatal(err)
	}
	if err := p.guest.Start(guestStart); err != nil {
		t.Fatal(err)
	}
	return p
}

// tick advances both ends one step, host first, delivering in between.
func (p *pair) tick(now time.Time) (Snapshot, Snapshot) {
	h := p.host.Tick(now)
	p.toGuest.flush()
	g := p.guest.Tick(now)
	p.toHost.flush()
	return h, g
}

func TestCountdownFreezesPlay(t *testing.T) {
	s := newSession(t, Options{Role: match.RoleLocal})
	if got := s.Snapshot().State.Phase(); got != match.PhaseMenu {
		t.Fatalf("new session in %s", got)
	}
	if err := s.Start(t0); err != nil {
		t.Fatal(err)
	}
	center := s.Snapshot().Field.Center()

	snap := s.Tick(t0.Add(1200 * time.Millisecond))
	if snap.State.Phase() != match.PhaseCountdown || snap.State.Remaining() != 2 {
		t.Fatalf("state = %s", snap.State)
	}
	if snap.Ball.Position != center {
		t.Fatalf("ball moved during countdown: %v", snap.Ball.Position)
	}

	snap = s.Tick(t0.Add(3 * time.Second))
	if snap.State.Phase() != match.PhasePlaying {
		t.Fatalf("state = %s", snap.State)
	}
	if snap.Ball.Position == center {
		t.Fatal("ball did not move on the first playing tick")
	}
	if err := s.Start(t0); !errors.Is(err, match.ErrInvalidTransition) {
		t.Fatalf("second start: %v", err)
	}
}

func TestAIDrivesFarPaddle(t *testing.T) {
	s := newSession(t, Options{Role: match.RoleAI, Difficulty: ai.Expert})
	if err := s.Start(t0); err != nil {
		t.Fatal(err)
	}
	s.mu.Lock()
	s.engine.SetBall(ball.Ball{
		Position: geometry.Vector2{X: 600, Y: 40},
		Velocity: geometry.Vector2{X: 5, Y: 0},
		Radius:   10,
	})
	s.mu.Unlock()

	before := s.Snapshot().Paddles[paddle.Right].Position.Y
	now := t0.Add(3 * time.Second)
	var snap Snapshot
	for i := 0; i < 10; i++ {
		snap = s.Tick(now)
		now = now.Add(TickRate)
	}
	if got := snap.Paddles[paddle.Right].Position.Y; got >= before {
		t.Fatalf("far paddle did not move up toward the ball: %v -> %v", before, got)
	}
	if got := snap.Paddles[paddle.Left].Position.Y; got != before {
		t.Fatalf("idle near paddle moved to %v", got)
	}
}

func TestNetworkedPairStaysInStep(t *testing.T) {
	p := newPair(t, engine.DefaultRules(engine.Classic))
	p.hostKeys.held[paddle.Left].Up = true
	p.guestKeys.held[paddle.Right].Down = true

	now := t0.Add(3 * time.Second)
	var h, g Snapshot
	for i := 0; i < 30; i++ {
		h, g = p.tick(now)
		now = now.Add(17 * time.Millisecond)
	}
	if h.State.Phase() != match.PhasePlaying || g.State.Phase() != match.PhasePlaying {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}
	if g.Ball != h.Ball {
		t.Fatalf("guest ball %+v, host ball %+v", g.Ball, h.Ball)
	}
	if g.Scores != h.Scores {
		t.Fatalf("guest score %s, host score %s", g.Scores, h.Scores)
	}
	// The guest's paddle reaches the host one tick later.
	hostNow := p.host.Tick(now)
	if hostNow.Paddles[paddle.Right] != g.Paddles[paddle.Right] {
		t.Fatalf("host sees guest paddle at %v, guest at %v",
			hostNow.Paddles[paddle.Right].Position, g.Paddles[paddle.Right].Position)
	}
	if g.Paddles[paddle.Left] != h.Paddles[paddle.Left] {
		t.Fatalf("guest sees host paddle at %v, host at %v",
			g.Paddles[paddle.Left].Position, h.Paddles[paddle.Left].Position)
	}
	if h.Paddles[paddle.Left].Position.Y >= g.Paddles[paddle.Right].Position.Y {
		t.Fatal("held keys did not move the paddles apart")
	}
}

func TestPausePropagates(t *testing.T) {
	p := newPair(t, engine.DefaultRules(engine.Classic))
	now := t0.Add(3 * time.Second)
	p.tick(now)

	if err := p.host.TogglePause(paddle.Left); err != nil {
		t.Fatal(err)
	}
	now = now.Add(TickRate)
	h, g := p.tick(now)
	if h.State.Reason() != match.PausedByPlayer {
		t.Fatalf("host state %s", h.State)
	}
	if g.State.Phase() != match.PhasePaused || g.State.Reason() != match.PausedByPeer {
		t.Fatalf("guest state %s", g.State)
	}

	frozen := g.Ball
	now = now.Add(TickRate)
	if _, g = p.tick(now); g.Ball != frozen {
		t.Fatal("ball moved while paused")
	}

	// Either end may resume.
	if err := p.guest.TogglePause(paddle.Right); err != nil {
		t.Fatal(err)
	}
	p.toHost.flush()
	now = now.Add(TickRate)
	h, g = p.tick(now)
	if h.State.Phase() != match.PhasePlaying || g.State.Phase() != match.PhasePlaying {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}
}

func TestPauseDuringPeerCountdown(t *testing.T) {
	p := newPairAt(t, engine.DefaultRules(engine.Classic), t0, t0.Add(500*time.Millisecond))
	now := t0.Add(3 * time.Second)
	h, g := p.tick(now)
	if h.State.Phase() != match.PhasePlaying || g.State.Phase() != match.PhaseCountdown {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}

	if err := p.host.TogglePause(paddle.Left); err != nil {
		t.Fatal(err)
	}
	h, g = p.tick(now.Add(TickRate))
	if h.State.Reason() != match.PausedByPlayer || g.State.Phase() != match.PhaseCountdown {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}

	h, g = p.tick(t0.Add(3600 * time.Millisecond))
	if h.State.Phase() != match.PhasePaused {
		t.Fatalf("host state %s", h.State)
	}
	if g.State.Phase() != match.PhasePaused || g.State.Reason() != match.PausedByPeer {
		t.Fatalf("guest state %s", g.State)
	}

	// Resuming from either end still works afterwards.
	if err := p.guest.TogglePause(paddle.Right); err != nil {
		t.Fatal(err)
	}
	p.toHost.flush()
	h, g = p.tick(t0.Add(3700 * time.Millisecond))
	if h.State.Phase() != match.PhasePlaying || g.State.Phase() != match.PhasePlaying {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}
}

func TestPauseAndResumeDuringPeerCountdown(t *testing.T) {
	p := newPairAt(t, engine.DefaultRules(engine.Classic), t0, t0.Add(500*time.Millisecond))
	now := t0.Add(3 * time.Second)
	p.tick(now)

	for i := 0; i < 2; i++ {
		if err := p.host.TogglePause(paddle.Left); err != nil {
			t.Fatal(err)
		}
	}
	p.tick(now.Add(TickRate))

	h, g := p.tick(t0.Add(3600 * time.Millisecond))
	if h.State.Phase() != match.PhasePlaying || g.State.Phase() != match.PhasePlaying {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}
}

func TestMirrorBallWaitsForFirstSync(t *testing.T) {
	p := newPair(t, engine.DefaultRules(engine.Classic))
	center := p.guest.Snapshot().Field.Center()

	for _, now := range []time.Time{t0.Add(time.Second), t0.Add(3 * time.Second)} {
		g := p.guest.Tick(now)
		if g.Ball.Position != center || g.Ball.Velocity != (geometry.Vector2{}) {
			t.Fatalf("guest ball before any sync at %s: %+v", g.State, g.Ball)
		}
	}

	h := p.host.Tick(t0.Add(3 * time.Second))
	if h.Ball.Velocity == (geometry.Vector2{}) {
		t.Fatal("host did not serve")
	}
	p.toGuest.flush()
	g := p.guest.Tick(t0.Add(3*time.Second + TickRate))
	if g.Ball != h.Ball {
		t.Fatalf("guest ball %+v after sync, host ball %+v", g.Ball, h.Ball)
	}

	// A restart parks the guest's ball again.
	if err := p.guest.Reset(t0.Add(4 * time.Second)); err != nil {
		t.Fatal(err)
	}
	g = p.guest.Tick(t0.Add(4 * time.Second))
	if g.Ball.Position != center || g.Ball.Velocity != (geometry.Vector2{}) {
		t.Fatalf("guest ball after restart: %+v", g.Ball)
	}
}

func TestMirrorLearnsWinner(t *testing.T) {
	rules := engine.DefaultRules(engine.Classic)
	rules.WinningScore = 1
	p := newPair(t, rules)

	now := t0.Add(3 * time.Second)
	p.tick(now)

	p.host.mu.Lock()
	p.host.engine.SetBall(ball.Ball{
		Position: geometry.Vector2{X: 795, Y: 20},
		Velocity: geometry.Vector2{X: 10, Y: 0},
		Radius:   10,
	})
	p.host.mu.Unlock()

	now = now.Add(17 * time.Millisecond)
	h, g := p.tick(now)
	if w, ok := h.State.Winner(); !ok || w != paddle.Left {
		t.Fatalf("host state %s", h.State)
	}
	if w, ok := g.State.Winner(); !ok || w != paddle.Left {
		t.Fatalf("guest state %s", g.State)
	}
	if g.Scores.LeftScores != 1 {
		t.Fatalf("guest score %s", g.Scores)
	}

	// Restart from either end brings both back through the countdown.
	if err := p.guest.Reset(now); err != nil {
		t.Fatal(err)
	}
	p.toHost.flush()
	h, g = p.tick(now.Add(time.Second))
	if h.State.Phase() != match.PhaseCountdown || g.State.Phase() != match.PhaseCountdown {
		t.Fatalf("phases %s / %s", h.State, g.State)
	}
	if h.Scores.Total() != 0 {
		t.Fatalf("host score after restart %s", h.Scores)
	}
}

func TestForeignMessagesIgnored(t *testing.T) {
	p := newPair(t, engine.DefaultRules(engine.Classic))
	now := t0.Add(3 * time.Second)
	_, before := p.tick(now)

	stray := replication.NewPauseToggle(true, paddle.Left)
	stray.MatchID, stray.Seq = "other1", 500
	p.guest.Deliver("other1", stray)

	_, g := p.tick(now.Add(TickRate))
	if g.State.Phase() != match.PhasePlaying {
		t.Fatalf("stray pause applied: %s", g.State)
	}
	if g.Tick != before.Tick+1 {
		t.Fatalf("tick counter %d after %d", g.Tick, before.Tick)
	}
}

func TestPeerDisconnectReturnsToMenu(t *testing.T) {
	p := newPair(t, engine.DefaultRules(engine.Classic))
	p.tick(t0.Add(3 * time.Second))

	p.guest.PeerDisconnected()
	snap := p.guest.Snapshot()
	if snap.State.Phase() != match.PhaseMenu || snap.Online {
		t.Fatalf("after disconnect: %s online=%v", snap.State, snap.Online)
	}

	msg := replication.NewPauseToggle(true, paddle.Left)
	msg.MatchID, msg.Seq = testMatch, 1000
	p.guest.Deliver(testMatch, msg)
	if snap = p.guest.Tick(t0.Add(4 * time.Second)); snap.State.Phase() != match.PhaseMenu {
		t.Fatalf("message applied after disconnect: %s", snap.State)
	}
}

func TestNetworkedSessionNeedsMatchID(t *testing.T) {
	_, err := NewSession(Options{Role: match.RoleMirror, Rules: engine.DefaultRules(engine.Classic)})
	if !errors.Is(err, ErrNoMatchID) {
		t.Fatalf("err = %v", err)
	}
}

type countingRenderer struct {
	frames int
}

func (r *countingRenderer) Render(Snapshot) error {
	r.frames++
	return nil
}

func TestLoopStopsOnHook(t *testing.T) {
	s := newSession(t, Options{Role: match.RoleLocal})
	r := &countingRenderer{}
	calls := 0
	l := &Loop{
		Session:  s,
		Renderer: r,
		Interval: time.Millisecond,
		BeforeTick: func(time.Time) error {
			calls++
			if calls == 5 {
				return ErrStopped
			}
			return nil
		},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if r.frames != 4 {
		t.Fatalf("rendered %d frames, want 4", r.frames)
	}
}
