package wsserver

import (
	"context"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/gorilla/websocket"

	"github.com/mo-shahab/pong-sync/client"
	"github.com/mo-shahab/pong-sync/room"
)

// WebSocketHandler is the relay. It pairs clients into rooms and forwards
// replicated game messages between the two members of a room; it never
// looks inside them beyond the match id.
type WebSocketHandler struct {
	Upgrader    websocket.Upgrader
	RoomManager *room.Manager
	Mu          sync.Mutex
	Connections map[string]*client.Client

	// WaitTimeout closes rooms nobody joins in time; zero waits forever.
	WaitTimeout  time.Duration
	WaitingRooms map[string]context.CancelFunc

	log slog.Logger
}
