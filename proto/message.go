// Package pb holds the wire messages spoken between game clients and the
// relay. pong.pb.go is generated from pong.proto; this file adds the
// helpers both ends share.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative pong.proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Side values on the wire.
const (
	SideLeft  int32 = 0
	SideRight int32 = 1
)

var ErrTypeMismatch = errors.New("payload does not match message type")

// Replicated reports whether messages of this type are game state that
// the relay forwards between the two players untouched.
func (t MsgType) Replicated() bool {
	switch t {
	case MsgType_paddle_move, MsgType_ball_sync, MsgType_pause_toggle, MsgType_restart:
		return true
	}
	return false
}

// Payload is one of the messages an envelope carries.
type Payload interface {
	proto.Message
	msgType() MsgType
}

func (*RoomCreateRequest) msgType() MsgType { return MsgType_room_create_request }
func (*RoomJoinRequest) msgType() MsgType   { return MsgType_room_join_request }
func (*RoomCreated) msgType() MsgType       { return MsgType_room_created }
func (*GameStart) msgType() MsgType         { return MsgType_game_start }
func (*ErrorMessage) msgType() MsgType      { return MsgType_error }
func (*PeerDisconnected) msgType() MsgType  { return MsgType_peer_disconnected }
func (*PaddleMove) msgType() MsgType        { return MsgType_paddle_move }
func (*BallSync) msgType() MsgType          { return MsgType_ball_sync }
func (*PauseToggle) msgType() MsgType       { return MsgType_pause_toggle }
func (*Restart) msgType() MsgType           { return MsgType_restart }

// NewMessage wraps p in an envelope, taking the type from it.
func NewMessage(p Payload) *Message {
	m := &Message{Type: p.msgType()}
	switch p := p.(type) {
	case *RoomCreateRequest:
		m.MessageType = &Message_RoomCreateRequest{RoomCreateRequest: p}
	case *RoomJoinRequest:
		m.MessageType = &Message_RoomJoinRequest{RoomJoinRequest: p}
	case *RoomCreated:
		m.MessageType = &Message_RoomCreated{RoomCreated: p}
	case *GameStart:
		m.MessageType = &Message_GameStart{GameStart: p}
	case *ErrorMessage:
		m.MessageType = &Message_Error{Error: p}
	case *PeerDisconnected:
		m.MessageType = &Message_PeerDisconnected{PeerDisconnected: p}
	case *PaddleMove:
		m.MessageType = &Message_PaddleMove{PaddleMove: p}
	case *BallSync:
		m.MessageType = &Message_BallSync{BallSync: p}
	case *PauseToggle:
		m.MessageType = &Message_PauseToggle{PauseToggle: p}
	case *Restart:
		m.MessageType = &Message_Restart{Restart: p}
	}
	return m
}

// Payload returns the carried message, or nil when the envelope has none.
func (x *Message) Payload() Payload {
	switch v := x.GetMessageType().(type) {
	case *Message_RoomCreateRequest:
		return v.RoomCreateRequest
	case *Message_RoomJoinRequest:
		return v.RoomJoinRequest
	case *Message_RoomCreated:
		return v.RoomCreated
	case *Message_GameStart:
		return v.GameStart
	case *Message_Error:
		return v.Error
	case *Message_PeerDisconnected:
		return v.PeerDisconnected
	case *Message_PaddleMove:
		return v.PaddleMove
	case *Message_BallSync:
		return v.BallSync
	case *Message_PauseToggle:
		return v.PauseToggle
	case *Message_Restart:
		return v.Restart
	}
	return nil
}

// Validate reports an envelope whose payload disagrees with its type. An
// envelope without a payload is valid; its getters return nil.
func (x *Message) Validate() error {
	if p := x.Payload(); p != nil && p.msgType() != x.GetType() {
		return fmt.Errorf("%w: %s carrying %s", ErrTypeMismatch, x.GetType(), p.msgType())
	}
	return nil
}
