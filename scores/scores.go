package scores

import (
	"fmt"

	"github.com/mo-shahab/pong-sync/paddle"
)

// Scores is the per-side point count of a match. Within a match the counts
// only grow; a restart is the only way back to zero.
type Scores struct {
	LeftScores  int
	RightScores int
}

func (s Scores) Of(side paddle.Side) int {
	if side == paddle.Left {
		return s.LeftScores
	}
	return s.RightScores
}

func (s *Scores) Award(side paddle.Side) {
	if side == paddle.Left {
		s.LeftScores++
		return
	}
	s.RightScores++
}

func (s *Scores) Reset() {
	*s = Scores{}
}

func (s Scores) Total() int {
	return s.LeftScores + s.RightScores
}

// Winner returns the first side at or past threshold. Left is checked first;
// both reaching it in the same tick cannot happen because one point is
// awarded per tick at most.
func (s Scores) Winner(threshold int) (paddle.Side, bool) {
	if threshold <= 0 {
		return paddle.Left, false
	}
	if s.LeftScores >= threshold {
		return paddle.Left, true
	}
	if s.RightScores >= threshold {
		return paddle.Right, true
	}
	return paddle.Left, false
}

func (s Scores) Valid() bool {
	return s.LeftScores >= 0 && s.RightScores >= 0
}

func (s Scores) String() string {
	return fmt.Sprintf("%d-%d", s.LeftScores, s.RightScores)
}
