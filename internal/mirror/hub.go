// Package mirror — опциональное зеркало удалённого игрока: read-only
// наблюдатели получают по websocket снапшот аллокаций при подключении и
// после каждой мутации стора. Зеркало никогда не пишет в стор.
package mirror

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// SnapshotFunc returns the current allocation snapshot blob.
type SnapshotFunc func() ([]byte, error)

// Hub рассылает снапшоты подключённым наблюдателям.
type Hub struct {
	snapshot SnapshotFunc

	mu      sync.Mutex
	clients map[uuid.UUID]*websocket.Conn
}

// NewHub creates a hub producing snapshots via fn.
func NewHub(fn SnapshotFunc) *Hub {
	return &Hub{
		snapshot: fn,
		clients:  make(map[uuid.UUID]*websocket.Conn),
	}
}

// ClientCount returns the number of connected observers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast шлёт свежий снапшот всем наблюдателям. Вешается на
// store.OnChange; наблюдатель с мёртвым соединением отключается.
func (h *Hub) Broadcast() {
	blob, err := h.snapshot()
	if err != nil {
		slog.Error("mirror snapshot failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, blob); err != nil {
			slog.Warn("dropping mirror observer", "id", id, "error", err)
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// ServeHTTP апгрейдит соединение и сразу шлёт текущий снапшот.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("mirror upgrade failed", "error", err)
		return
	}

	blob, err := h.snapshot()
	if err != nil {
		slog.Error("mirror snapshot failed", "error", err)
		conn.Close()
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, blob); err != nil {
		conn.Close()
		return
	}

	id := uuid.New()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
	slog.Info("mirror observer connected", "id", id)

	// Наблюдатели read-only: читаем только ради детекции закрытия.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, id)
			h.mu.Unlock()
			conn.Close()
			slog.Info("mirror observer disconnected", "id", id)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
