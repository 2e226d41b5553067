package wsserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Path is where the relay accepts websocket upgrades.
const Path = "/ws"

const shutdownTimeout = 5 * time.Second

// Serve runs the relay on addr until ctx is cancelled.
func (wsh *WebSocketHandler) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(Path, wsh)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		wsh.log.Infof("Relay listening on %s%s", addr, Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	// Hijacked websocket connections outlive Shutdown.
	wsh.closeAll()
	if err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (wsh *WebSocketHandler) closeAll() {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()
	for id, cancel := range wsh.WaitingRooms {
		cancel()
		delete(wsh.WaitingRooms, id)
	}
	for _, c := range wsh.Connections {
		c.Conn.Close()
	}
}
