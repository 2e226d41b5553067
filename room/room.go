// Package room keeps the in-memory set of two-player rooms the relay
// pairs clients into.
package room

import (
	"errors"
	"sync"

	"github.com/decred/slog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mo-shahab/pong-sync/client"
	"github.com/mo-shahab/pong-sync/logging"
	"github.com/mo-shahab/pong-sync/paddle"
)

// MaxPlayers is the capacity of every room.
const MaxPlayers = 2

var (
	ErrRoomExists    = errors.New("room already exists")
	ErrRoomNotFound  = errors.New("room not found")
	ErrWrongPassword = errors.New("wrong room password")
	ErrRoomFull      = errors.New("room is full")
	ErrInRoom        = errors.New("client is already in a room")
)

// Room seats up to two clients. The creator plays the near (left) side.
type Room struct {
	ID           string
	passwordHash []byte
	clients      [MaxPlayers]*client.Client
}

// Clients returns the seated clients; empty seats are nil.
func (r *Room) Clients() [MaxPlayers]*client.Client {
	return r.clients
}

func (r *Room) full() bool {
	return r.clients[paddle.Left] != nil && r.clients[paddle.Right] != nil
}

// Manager is the state of all the rooms.
type Manager struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	byConn map[string]string
	cost   int
	log    slog.Logger
}

// NewManager creates an empty manager. cost is the bcrypt cost used for
// room passwords; zero picks bcrypt.DefaultCost.
func NewManager(cost int, log slog.Logger) *Manager {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Manager{
		rooms:  make(map[string]*Room),
		byConn: make(map[string]string),
		cost:   cost,
		log:    logging.OrDisabled(log),
	}
}

func generateRoomId() string {
	return uuid.New().String()[:6]
}

// CreateRoom opens a room and seats host on the left. An empty id gets a
// generated one. An empty password leaves the room open to anyone who
// joins without one.
func (m *Manager) CreateRoom(id, password string, host *client.Client) (*Room, error) {
	var hash []byte
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byConn[host.ID]; ok {
		return nil, ErrInRoom
	}
	if id == "" {
		id = generateRoomId()
		for m.rooms[id] != nil {
			id = generateRoomId()
		}
	} else if _, exists := m.rooms[id]; exists {
		return nil, ErrRoomExists
	}

	r := &Room{ID: id, passwordHash: hash}
	r.clients[paddle.Left] = host
	m.rooms[id] = r
	m.byConn[host.ID] = id
	host.SetRoomId(id)
	m.log.Infof("Room %s created by client %s", id, host.ID)
	return r, nil
}

// JoinRoom seats c on the right side of room id.
func (m *Manager) JoinRoom(id, password string, c *client.Client) (*Room, paddle.Side, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byConn[c.ID]; ok {
		return nil, 0, ErrInRoom
	}
	r, exists := m.rooms[id]
	if !exists {
		return nil, 0, ErrRoomNotFound
	}
	if r.full() {
		return nil, 0, ErrRoomFull
	}
	if r.passwordHash == nil {
		if password != "" {
			return nil, 0, ErrWrongPassword
		}
	} else if bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)) != nil {
		return nil, 0, ErrWrongPassword
	}

	r.clients[paddle.Right] = c
	m.byConn[c.ID] = id
	c.SetRoomId(id)
	m.log.Infof("Client %s joined room %s", c.ID, id)
	return r, paddle.Right, nil
}

// Peer returns the other client seated with c, if any.
func (m *Manager) Peer(c *client.Client) (*client.Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[m.byConn[c.ID]]
	if !ok {
		return nil, false
	}
	for _, other := range r.clients {
		if other != nil && other.ID != c.ID {
			return other, true
		}
	}
	return nil, false
}

// Leave removes c from its room and closes the room. It returns the client
// left behind, which is no longer in any room.
func (m *Manager) Leave(c *client.Client) (*client.Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byConn[c.ID]
	if !ok {
		return nil, false
	}
	r := m.rooms[id]
	delete(m.rooms, id)

	var peer *client.Client
	for _, other := range r.clients {
		if other == nil {
			continue
		}
		delete(m.byConn, other.ID)
		other.SetRoomId("")
		if other.ID != c.ID {
			peer = other
		}
	}
	m.log.Infof("Room %s closed, client %s left", id, c.ID)
	return peer, peer != nil
}

// Expire closes room id if nobody has joined it yet and returns the host,
// who is no longer in any room.
func (m *Manager) Expire(id string) (*client.Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[id]
	if !ok || r.full() {
		return nil, false
	}
	host := r.clients[paddle.Left]
	delete(m.rooms, id)
	delete(m.byConn, host.ID)
	host.SetRoomId("")
	m.log.Infof("Room %s expired waiting for an opponent", id)
	return host, true
}

func (m *Manager) GetRoom(id string) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	return r, ok
}

// Len returns the number of open rooms.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rooms)
}
