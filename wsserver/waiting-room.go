package wsserver

import (
	"context"
	"errors"
	"time"

	"github.com/mo-shahab/pong-sync/client"
	pb "github.com/mo-shahab/pong-sync/proto"
)

// DefaultWaitTimeout is how long a new room waits for its second player.
const DefaultWaitTimeout = 5 * time.Minute

var ErrWaitExpired = errors.New("no opponent joined in time")

func (wsh *WebSocketHandler) startWaitingRoom(roomId string, host *client.Client) {
	if wsh.WaitTimeout <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), wsh.WaitTimeout)

	wsh.Mu.Lock()
	wsh.WaitingRooms[roomId] = cancel
	wsh.Mu.Unlock()

	go wsh.runWaitingRoom(ctx, roomId, host)
	wsh.log.Debugf("Room %s waiting %v for an opponent", roomId, wsh.WaitTimeout)
}

func (wsh *WebSocketHandler) runWaitingRoom(ctx context.Context, roomId string, host *client.Client) {
	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return
	}
	wsh.stopWaitingRoom(roomId)

	if _, ok := wsh.RoomManager.Expire(roomId); !ok {
		return
	}
	wsh.send(host, pb.NewMessage(&pb.ErrorMessage{Error: ErrWaitExpired.Error()}))
}

// stopWaitingRoom cancels the timer of roomId, if one is running.
func (wsh *WebSocketHandler) stopWaitingRoom(roomId string) {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()
	if cancel, ok := wsh.WaitingRooms[roomId]; ok {
		cancel()
		delete(wsh.WaitingRooms, roomId)
	}
}
