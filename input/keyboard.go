package input

import (
	"bufio"
	"io"
	"sync"
	"time"

	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals only report presses, so auto-repeat keeps a held key alive.
const keyHoldDuration = 120 * time.Millisecond

// escTimeout is how long a trailing escape waits for the rest of an arrow
// sequence before it counts as a bare Esc press.
const escTimeout = 50 * time.Millisecond

// Command is a one-shot key press outside paddle control.
type Command int

const (
	CommandPause Command = iota + 1
	CommandReset
	CommandQuit
	CommandMenu
)

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// Keyboard tracks terminal key presses. It implements Source with the left
// paddle on w/a/s/d and the right paddle on the arrow keys and i/j/k/l.
type Keyboard struct {
	mu       sync.Mutex
	pressed  [2][4]time.Time
	commands []Command
	closed   bool
	now      func() time.Time

	// esc holds an escape sequence cut off at the end of a read.
	esc   []byte
	escAt time.Time
}

var _ Source = (*Keyboard)(nil)

func NewKeyboard() *Keyboard {
	return &Keyboard{now: time.Now}
}

// StartKeyboard spawns a goroutine feeding bytes from r into a new Keyboard
// until r returns an error.
func StartKeyboard(r io.Reader) *Keyboard {
	k := NewKeyboard()
	br := bufio.NewReader(r)
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := br.Read(buf)
			if n > 0 {
				k.Feed(buf[:n])
			}
			if err != nil {
				k.mu.Lock()
				k.closed = true
				k.mu.Unlock()
				return
			}
		}
	}()
	return k
}

// Feed parses raw terminal bytes, including CSI (ESC [ A) and SS3 (ESC O A)
// arrow sequences. A sequence split across reads is completed by the next
// Feed; an escape nothing follows within escTimeout is an Esc press.
func (k *Keyboard) Feed(buf []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()

	if len(k.esc) > 0 {
		buf = append(k.esc, buf...)
		k.esc = nil
	}
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			k.applyByte(b, now)
			continue
		}
		rest := buf[i+1:]
		switch {
		case len(rest) == 0 || (len(rest) == 1 && (rest[0] == '[' || rest[0] == 'O')):
			k.esc = append([]byte(nil), buf[i:]...)
			k.escAt = now
			return
		case rest[0] == '[' || rest[0] == 'O':
			k.applyArrow(rest[1], now)
			i += 2
		default:
			k.commands = append(k.commands, CommandMenu)
		}
	}
}

func (k *Keyboard) applyArrow(final byte, now time.Time) {
	switch final {
	case 'A':
		k.pressed[paddle.Right][dirUp] = now
	case 'B':
		k.pressed[paddle.Right][dirDown] = now
	case 'C':
		k.pressed[paddle.Right][dirRight] = now
	case 'D':
		k.pressed[paddle.Right][dirLeft] = now
	}
}

// flushEsc turns a stale partial sequence into an Esc press.
func (k *Keyboard) flushEsc(now time.Time) {
	if len(k.esc) == 0 || now.Sub(k.escAt) < escTimeout {
		return
	}
	k.esc = nil
	k.commands = append(k.commands, CommandMenu)
}

func (k *Keyboard) applyByte(b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		k.pressed[paddle.Left][dirUp] = now
	case 's', 'S':
		k.pressed[paddle.Left][dirDown] = now
	case 'a', 'A':
		k.pressed[paddle.Left][dirLeft] = now
	case 'd', 'D':
		k.pressed[paddle.Left][dirRight] = now
	case 'i', 'I':
		k.pressed[paddle.Right][dirUp] = now
	case 'k', 'K':
		k.pressed[paddle.Right][dirDown] = now
	case 'j', 'J':
		k.pressed[paddle.Right][dirLeft] = now
	case 'l', 'L':
		k.pressed[paddle.Right][dirRight] = now
	case 'p', 'P', ' ':
		k.commands = append(k.commands, CommandPause)
	case 'r', 'R':
		k.commands = append(k.commands, CommandReset)
	case 'q', 'Q', '\x03':
		k.commands = append(k.commands, CommandQuit)
	case 'm', 'M':
		k.commands = append(k.commands, CommandMenu)
	}
}

func (k *Keyboard) HeldDirections(side paddle.Side) Directions {
	if !side.Valid() {
		return Directions{}
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	held := func(d direction) bool {
		return now.Sub(k.pressed[side][d]) < keyHoldDuration
	}
	return Directions{
		Up:    held(dirUp),
		Down:  held(dirDown),
		Left:  held(dirLeft),
		Right: held(dirRight),
	}
}

// PointerTarget always reports no pointer; terminals have none.
func (k *Keyboard) PointerTarget(paddle.Side) (geometry.Vector2, bool) {
	return geometry.Vector2{}, false
}

// Commands returns and clears the command presses seen since the last call.
// Once the underlying reader is gone it reports CommandQuit.
func (k *Keyboard) Commands() []Command {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.flushEsc(k.now())
	out := k.commands
	k.commands = nil
	if k.closed {
		out = append(out, CommandQuit)
	}
	return out
}
