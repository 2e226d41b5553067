package replication

import (
	"fmt"

	"github.com/mo-shahab/pong-sync/geometry"
	"github.com/mo-shahab/pong-sync/paddle"
	pb "github.com/mo-shahab/pong-sync/proto"
	"github.com/mo-shahab/pong-sync/scores"
)

func sideToWire(s paddle.Side) int32 {
	if s == paddle.Right {
		return pb.SideRight
	}
	return pb.SideLeft
}

// SideFromWire maps a wire side value. Anything unknown comes back as an
// invalid side so validation rejects it.
func SideFromWire(v int32) paddle.Side {
	switch v {
	case pb.SideLeft:
		return paddle.Left
	case pb.SideRight:
		return paddle.Right
	}
	return paddle.Side(v)
}

// ToWire wraps msg in the relay envelope.
func ToWire(msg Message) (*pb.Message, error) {
	var payload pb.Payload
	switch {
	case msg.Kind == KindPaddleMove && msg.PaddleMove != nil:
		payload = &pb.PaddleMove{
			Side: sideToWire(msg.PaddleMove.Side),
			X:    msg.PaddleMove.Position.X,
			Y:    msg.PaddleMove.Position.Y,
		}
	case msg.Kind == KindBallSync && msg.BallSync != nil:
		b := msg.BallSync
		payload = &pb.BallSync{
			X:          b.Position.X,
			Y:          b.Position.Y,
			Dx:         b.Velocity.X,
			Dy:         b.Velocity.Y,
			LeftScore:  int32(b.Scores.LeftScores),
			RightScore: int32(b.Scores.RightScores),
		}
	case msg.Kind == KindPauseToggle && msg.PauseToggle != nil:
		payload = &pb.PauseToggle{Paused: msg.PauseToggle.Paused, Actor: sideToWire(msg.PauseToggle.Actor)}
	case msg.Kind == KindRestart && msg.Restart != nil:
		payload = &pb.Restart{Actor: sideToWire(msg.Restart.Actor)}
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrMalformed, msg.Kind)
	}
	w := pb.NewMessage(payload)
	w.MatchId = msg.MatchID
	w.Seq = msg.Seq
	return w, nil
}

// FromWire unwraps a replicated envelope. Values are not validated here;
// Accept does that on the tick.
func FromWire(w *pb.Message) (Message, error) {
	msg := Message{MatchID: w.GetMatchId(), Seq: w.GetSeq()}
	switch w.GetType() {
	case pb.MsgType_paddle_move:
		p := w.GetPaddleMove()
		if p == nil {
			break
		}
		msg.Kind = KindPaddleMove
		msg.PaddleMove = &PaddleMove{Side: SideFromWire(p.GetSide()), Position: geometry.Vector2{X: p.GetX(), Y: p.GetY()}}
		return msg, nil
	case pb.MsgType_ball_sync:
		b := w.GetBallSync()
		if b == nil {
			break
		}
		msg.Kind = KindBallSync
		msg.BallSync = &BallSync{
			Position: geometry.Vector2{X: b.GetX(), Y: b.GetY()},
			Velocity: geometry.Vector2{X: b.GetDx(), Y: b.GetDy()},
			Scores:   scores.Scores{LeftScores: int(b.GetLeftScore()), RightScores: int(b.GetRightScore())},
		}
		return msg, nil
	case pb.MsgType_pause_toggle:
		p := w.GetPauseToggle()
		if p == nil {
			break
		}
		msg.Kind = KindPauseToggle
		msg.PauseToggle = &PauseToggle{Paused: p.GetPaused(), Actor: SideFromWire(p.GetActor())}
		return msg, nil
	case pb.MsgType_restart:
		p := w.GetRestart()
		if p == nil {
			break
		}
		msg.Kind = KindRestart
		msg.Restart = &Restart{Actor: SideFromWire(p.GetActor())}
		return msg, nil
	}
	return Message{}, fmt.Errorf("%w: %s without replicated state", ErrMalformed, w.GetType())
}
