// Package terminal plays pong in an ANSI terminal, locally or over SSH.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mo-shahab/pong-sync/game"
	"github.com/mo-shahab/pong-sync/match"
	"github.com/mo-shahab/pong-sync/paddle"
)

const (
	minCols = 24
	minRows = 10
	// Field area is capped so huge terminals don't stretch the court.
	maxCols = 160
	maxRows = 50

	paddleRune = '█'
	ballRune   = '●'
	netRune    = '┊'
)

const helpLine = "move: w/s (arrows)  space: pause/start  r: restart  m: menu  q: quit"

// Renderer draws snapshots as full-screen ANSI frames. It implements
// game.Renderer.
type Renderer struct {
	cw   *chunkWriter
	size SizeFunc
	// Flip mirrors the field horizontally so the right paddle is drawn on
	// the left, for the player on the far side.
	Flip bool
}

var _ game.Renderer = (*Renderer)(nil)

func NewRenderer(w io.Writer, size SizeFunc) *Renderer {
	return &Renderer{cw: newChunkWriter(w), size: size}
}

// grid is a frame of runes, row-major.
type grid [][]rune

func newGrid(cols, rows int) grid {
	g := make(grid, rows)
	for i := range g {
		g[i] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

func (g grid) set(col, row int, r rune) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = r
}

func (g grid) text(row int, s string) {
	if row < 0 || row >= len(g) {
		return
	}
	n := utf8.RuneCountInString(s)
	col := (len(g[row]) - n) / 2
	for _, r := range s {
		g.set(col, row, r)
		col++
	}
}

func (r *Renderer) dims() (cols, rows int, err error) {
	w, h, err := r.size()
	if err != nil {
		return 0, 0, err
	}
	return min(w, maxCols), min(h, maxRows), nil
}

// Render implements game.Renderer.
func (r *Renderer) Render(s game.Snapshot) error {
	cols, rows, err := r.dims()
	if err != nil {
		return err
	}
	if cols < minCols || rows < minRows {
		return r.Status("terminal too small", fmt.Sprintf("need %dx%d", minCols, minRows))
	}

	// Header, top border, field, bottom border, help.
	fw, fh := cols-2, rows-4
	field := newGrid(fw, fh)
	r.drawField(field, s)

	left, right := paddle.Left, paddle.Right
	if r.Flip {
		left, right = right, left
	}
	labels := sideLabels(s)
	header := fmt.Sprintf("%s %d", labels[left], s.Scores.Of(left))
	rightHeader := fmt.Sprintf("%d %s", s.Scores.Of(right), labels[right])
	pad := cols - utf8.RuneCountInString(header) - utf8.RuneCountInString(rightHeader)
	header += strings.Repeat(" ", max(pad, 1)) + rightHeader

	lines := make([]string, 0, rows)
	lines = append(lines, header)
	lines = append(lines, "┌"+strings.Repeat("─", fw)+"┐")
	for _, row := range field {
		lines = append(lines, "│"+string(row)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", fw)+"┘")
	lines = append(lines, truncate(helpLine, cols))
	return r.frame(lines)
}

func (r *Renderer) drawField(g grid, s game.Snapshot) {
	fw, fh := len(g[0]), len(g)
	W, H := s.Field.Width, s.Field.Height
	col := func(x float64) int {
		if r.Flip {
			x = W - x
		}
		return clampInt(int(math.Floor(x/W*float64(fw))), 0, fw-1)
	}
	row := func(y float64) int {
		return clampInt(int(math.Floor(y/H*float64(fh))), 0, fh-1)
	}

	mid := col(W / 2)
	for y := 0; y < fh; y += 2 {
		g.set(mid, y, netRune)
	}

	for _, p := range s.Paddles {
		rect := p.Rect()
		c0, c1 := col(rect.Left()), col(rect.Right()-1e-9)
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		for y := row(rect.Top()); y <= row(rect.Bottom()-1e-9); y++ {
			for x := c0; x <= c1; x++ {
				g.set(x, y, paddleRune)
			}
		}
	}

	if s.State.Phase() != match.PhaseMenu {
		g.set(col(s.Ball.Position.X), row(s.Ball.Position.Y), ballRune)
	}

	if b := banner(s); b != "" {
		g.text(fh/2, " "+b+" ")
	}
}

// Status draws a plain screen of centered lines, used outside a match.
func (r *Renderer) Status(lines ...string) error {
	cols, rows, err := r.dims()
	if err != nil {
		return err
	}
	width := cols
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	g := newGrid(width, max(rows, len(lines)))
	top := (len(g) - len(lines)) / 2
	for i, l := range lines {
		g.text(top+i, l)
	}
	out := make([]string, len(g))
	for i, row := range g {
		out[i] = string(row)
	}
	return r.frame(out)
}

func (r *Renderer) frame(lines []string) error {
	for i, l := range lines {
		r.cw.MoveCursor(1, i+1)
		r.cw.WriteString(l)
		r.cw.WriteString("\033[K")
	}
	return r.cw.Flush()
}

func sideLabels(s game.Snapshot) [2]string {
	switch {
	case s.Role == match.RoleAI:
		return [2]string{"YOU", "CPU"}
	case s.Role.Capabilities().Networked:
		var l [2]string
		l[s.Own] = "YOU"
		l[s.Own.Opponent()] = "THEM"
		return l
	}
	return [2]string{"LEFT", "RIGHT"}
}

func banner(s game.Snapshot) string {
	st := s.State
	switch st.Phase() {
	case match.PhaseMenu:
		if s.Role.Capabilities().Networked && !s.Online {
			return "opponent left - press q"
		}
		return "press space to start"
	case match.PhaseCountdown:
		return fmt.Sprintf("%d", st.Remaining())
	case match.PhasePaused:
		if st.Reason() == match.PausedByPeer {
			return "paused by opponent"
		}
		return "paused"
	case match.PhaseFinished:
		w, _ := st.Winner()
		return fmt.Sprintf("%s won - r to play again", sideLabels(s)[w])
	}
	return ""
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
