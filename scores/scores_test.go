package scores

import (
	"testing"

	"github.com/mo-shahab/pong-sync/paddle"
)

func TestAwardAndWinner(t *testing.T) {
	var s Scores
	for i := 0; i < 4; i++ {
		s.Award(paddle.Right)
	}
	s.Award(paddle.Left)

	if s.Of(paddle.Left) != 1 || s.Of(paddle.Right) != 4 || s.Total() != 5 {
		t.Fatalf("scores %s", s)
	}
	if _, ok := s.Winner(5); ok {
		t.Fatal("winner below threshold")
	}
	s.Award(paddle.Right)
	if w, ok := s.Winner(5); !ok || w != paddle.Right {
		t.Fatalf("winner %s %v", w, ok)
	}
	if _, ok := s.Winner(0); ok {
		t.Fatal("zero threshold produced a winner")
	}

	s.Reset()
	if s != (Scores{}) || s.String() != "0-0" {
		t.Fatalf("after reset %s", s)
	}
}

func TestValid(t *testing.T) {
	if !(Scores{LeftScores: 2}).Valid() {
		t.Fatal("positive scores invalid")
	}
	if (Scores{RightScores: -1}).Valid() {
		t.Fatal("negative score valid")
	}
}
