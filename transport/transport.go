// Package transport is the game client's connection to the relay.
package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/proto"

	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/paddle"
	pb "github.com/mo-shahab/pong-sync/proto"
	"github.com/mo-shahab/pong-sync/replication"
)

const writeTimeout = 2 * time.Second

var ErrClosed = errors.New("connection closed")

// Callbacks receive what the relay sends. They run on the Run goroutine
// and must not block. Nil callbacks are skipped.
type Callbacks struct {
	OnRoomCreated      func(roomID string)
	OnGameStart        func(roomID string, side paddle.Side)
	OnError            func(message string)
	OnPeerDisconnected func()
	OnMessage          func(matchID string, msg replication.Message)
}

// Conn is a websocket connection to the relay. It implements
// replication.Sender.
type Conn struct {
	ws  *websocket.Conn
	log slog.Logger

	writeMu sync.Mutex
	closed  bool
}

// Dial connects to the relay at url (ws:// or wss://).
func Dial(ctx context.Context, url string, log slog.Logger) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Conn{ws: ws, log: logging.OrDisabled(log)}, nil
}

func (c *Conn) write(m *pb.Message) error {
	b, err := proto.Marshal(m)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	return c.ws.WriteMessage(websocket.BinaryMessage, b)
}

// CreateRoom asks the relay for a room. An empty id lets the relay pick.
func (c *Conn) CreateRoom(id, password string) error {
	return c.write(pb.NewMessage(&pb.RoomCreateRequest{RoomId: id, Password: password}))
}

func (c *Conn) JoinRoom(id, password string) error {
	return c.write(pb.NewMessage(&pb.RoomJoinRequest{RoomId: id, Password: password}))
}

// Send implements replication.Sender.
func (c *Conn) Send(matchID string, msg replication.Message) error {
	w, err := replication.ToWire(msg)
	if err != nil {
		return err
	}
	w.MatchId = matchID
	return c.write(w)
}

// Run reads from the relay and dispatches to cb until ctx is done or the
// connection fails. The connection is closed when Run returns.
func (c *Conn) Run(ctx context.Context, cb Callbacks) error {
	stop := context.AfterFunc(ctx, func() { c.Close() })
	defer stop()
	defer c.Close()

	for {
		_, p, err := c.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read: %w", err)
		}
		m := &pb.Message{}
		if err := proto.Unmarshal(p, m); err != nil {
			c.log.Warnf("Dropping undecodable message: %v", err)
			continue
		}
		if err := m.Validate(); err != nil {
			c.log.Warnf("Dropping message: %v", err)
			continue
		}
		c.dispatch(m, cb)
	}
}

func (c *Conn) dispatch(m *pb.Message, cb Callbacks) {
	switch m.GetType() {
	case pb.MsgType_room_created:
		if cb.OnRoomCreated != nil {
			cb.OnRoomCreated(m.GetRoomCreated().GetRoomId())
		}
	case pb.MsgType_game_start:
		gs := m.GetGameStart()
		side := replication.SideFromWire(gs.GetSide())
		if !side.Valid() {
			c.log.Warnf("Game start with invalid side %d", gs.GetSide())
			return
		}
		if cb.OnGameStart != nil {
			cb.OnGameStart(gs.GetRoomId(), side)
		}
	case pb.MsgType_error:
		if cb.OnError != nil {
			cb.OnError(m.GetError().GetError())
		}
	case pb.MsgType_peer_disconnected:
		if cb.OnPeerDisconnected != nil {
			cb.OnPeerDisconnected()
		}
	default:
		if !m.GetType().Replicated() {
			c.log.Debugf("Ignoring %s", m.GetType())
			return
		}
		msg, err := replication.FromWire(m)
		if err != nil {
			c.log.Warnf("Dropping %s: %v", m.GetType(), err)
			return
		}
		if cb.OnMessage != nil {
			cb.OnMessage(m.GetMatchId(), msg)
		}
	}
}

// Close sends a close frame and drops the connection.
func (c *Conn) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	return c.ws.Close()
}
