// wsserver/handler.go

package wsserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/decred/slog"
	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/proto"

	"github.com/mo-shahab/pong-sync/client"
	"github.com/mo-shahab/pong-sync/logging"
	pb "github.com/mo-shahab/pong-sync/proto"
	"github.com/mo-shahab/pong-sync/replication"
	"github.com/mo-shahab/pong-sync/room"
)

// NewWebSocketHandler creates a relay backed by rooms.
func NewWebSocketHandler(rooms *room.Manager, log slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		Upgrader:     websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		RoomManager:  rooms,
		Connections:  make(map[string]*client.Client),
		WaitTimeout:  DefaultWaitTimeout,
		WaitingRooms: make(map[string]context.CancelFunc),
		log:          logging.OrDisabled(log),
	}
}

// ServeHTTP handles WebSocket connections
func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		wsh.log.Errorf("Error %v when connecting to the socket", err)
		return
	}

	c := client.New(conn)

	// Message queue goroutine; the only writer on conn.
	go func() {
		for msg := range c.SendQueue {
			if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				wsh.log.Debugf("Write to client %s failed: %v", c.ID, err)
				wsh.disconnectPlayer(c)
				return
			}
		}
	}()

	wsh.Mu.Lock()
	wsh.Connections[c.ID] = c
	wsh.Mu.Unlock()
	wsh.log.Debugf("Client %s connected from %s", c.ID, conn.RemoteAddr())

	// Handle incoming messages
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				wsh.log.Debugf("Error reading from client %s: %v", c.ID, err)
			}
			wsh.disconnectPlayer(c)
			return
		}

		message := &pb.Message{}
		if err := proto.Unmarshal(p, message); err != nil {
			wsh.log.Warnf("Error unmarshalling message from client %s: %v", c.ID, err)
			continue
		}
		if err := message.Validate(); err != nil {
			wsh.log.Warnf("Invalid message from client %s: %v", c.ID, err)
			continue
		}
		wsh.handleMessage(c, message, p)
	}
}

func (wsh *WebSocketHandler) handleMessage(c *client.Client, message *pb.Message, raw []byte) {
	switch message.GetType() {
	case pb.MsgType_room_create_request:
		req := message.GetRoomCreateRequest()
		r, err := wsh.RoomManager.CreateRoom(req.GetRoomId(), req.GetPassword(), c)
		if err != nil {
			wsh.sendError(c, err)
			return
		}
		wsh.send(c, pb.NewMessage(&pb.RoomCreated{RoomId: r.ID}))
		wsh.startWaitingRoom(r.ID, c)

	case pb.MsgType_room_join_request:
		req := message.GetRoomJoinRequest()
		r, _, err := wsh.RoomManager.JoinRoom(req.GetRoomId(), req.GetPassword(), c)
		if err != nil {
			wsh.sendError(c, err)
			return
		}
		wsh.startGame(r)

	default:
		if !message.GetType().Replicated() {
			wsh.log.Warnf("Unexpected %s from client %s", message.GetType(), c.ID)
			return
		}
		wsh.relay(c, message, raw)
	}
}

// relay forwards a replicated message to the sender's peer untouched. A
// message for any match but the sender's own room is a protocol violation
// and goes nowhere.
func (wsh *WebSocketHandler) relay(c *client.Client, message *pb.Message, raw []byte) {
	roomId := c.RoomId()
	if roomId == "" || message.GetMatchId() != roomId {
		wsh.log.Debugf("Dropping %s from client %s for match %q: %v",
			message.GetType(), c.ID, message.GetMatchId(), replication.ErrProtocolViolation)
		return
	}
	peer, ok := wsh.RoomManager.Peer(c)
	if !ok {
		return
	}
	if !peer.Enqueue(raw) {
		wsh.log.Warnf("Dropping %s, send queue full for client %s", message.GetType(), peer.ID)
	}
}

func (wsh *WebSocketHandler) startGame(r *room.Room) {
	wsh.stopWaitingRoom(r.ID)
	for side, c := range r.Clients() {
		if c == nil {
			continue
		}
		wsh.send(c, pb.NewMessage(&pb.GameStart{RoomId: r.ID, Side: int32(side)}))
	}
	wsh.log.Infof("Game started in room %s", r.ID)
}

func (wsh *WebSocketHandler) send(c *client.Client, message *pb.Message) {
	encoded, err := proto.Marshal(message)
	if err != nil {
		wsh.log.Errorf("Failed to marshal %s: %v", message.GetType(), err)
		return
	}
	if !c.Enqueue(encoded) {
		wsh.log.Warnf("Dropping %s, send queue full for client %s", message.GetType(), c.ID)
	}
}

func (wsh *WebSocketHandler) sendError(c *client.Client, err error) {
	switch {
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, room.ErrWrongPassword),
		errors.Is(err, room.ErrRoomFull), errors.Is(err, room.ErrRoomExists),
		errors.Is(err, room.ErrInRoom):
		wsh.log.Debugf("Client %s: %v", c.ID, err)
	default:
		wsh.log.Errorf("Client %s: %v", c.ID, err)
	}
	wsh.send(c, pb.NewMessage(&pb.ErrorMessage{Error: err.Error()}))
}

// disconnectPlayer handles player disconnection. The peer, if any, is told
// and the room is closed.
func (wsh *WebSocketHandler) disconnectPlayer(c *client.Client) {
	wsh.Mu.Lock()
	_, exists := wsh.Connections[c.ID]
	delete(wsh.Connections, c.ID)
	wsh.Mu.Unlock()
	if !exists {
		return
	}

	if roomId := c.RoomId(); roomId != "" {
		wsh.stopWaitingRoom(roomId)
	}
	if peer, ok := wsh.RoomManager.Leave(c); ok {
		wsh.send(peer, pb.NewMessage(&pb.PeerDisconnected{}))
	}
	c.Close()
	c.Conn.Close()
	wsh.log.Debugf("Client %s disconnected", c.ID)
}

// Len returns the number of connected clients.
func (wsh *WebSocketHandler) Len() int {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()
	return len(wsh.Connections)
}
