package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server — HTTP-обвязка зеркала.
type Server struct {
	addr string
	hub  *Hub
}

// NewServer binds the hub to a listen address.
func NewServer(addr string, hub *Hub) *Server {
	return &Server{addr: addr, hub: hub}
}

// Run запускает сервер и останавливает его по отмене контекста.
func (s *Server) Run(ctx context.Context) error {
	r := mux.NewRouter()
	r.Handle("/ws/mirror", s.hub)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)

	srv := &http.Server{Addr: s.addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("mirror server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("mirror server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("mirror server: %w", err)
		}
		return nil
	}
}
