package client

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SendQueueSize is how many outbound frames a client may have pending
// before new ones are dropped.
const SendQueueSize = 100

// Client is one websocket connection to the relay.
type Client struct {
	ID        string
	Conn      *websocket.Conn
	SendQueue chan []byte

	mu     sync.Mutex
	roomId string
	closed bool
}

func New(conn *websocket.Conn) *Client {
	return &Client{
		ID:        uuid.NewString(),
		Conn:      conn,
		SendQueue: make(chan []byte, SendQueueSize),
	}
}

// Enqueue queues msg for the writer goroutine. It reports false when the
// queue is full or the client is closed; the message is dropped.
func (c *Client) Enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.SendQueue <- msg:
		return true
	default:
		return false
	}
}

// Close stops the writer goroutine. It is safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.SendQueue)
}

func (c *Client) RoomId() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomId
}

func (c *Client) SetRoomId(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomId = id
}
