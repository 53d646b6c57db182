package mirror

import (
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_SnapshotOnConnect(t *testing.T) {
	hub := NewHub(func() ([]byte, error) {
		return []byte(`{"skills":{}}`), nil
	})
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":{}}`, string(msg))
}

func TestHub_BroadcastOnChange(t *testing.T) {
	var snapshot atomic.Value
	snapshot.Store([]byte(`{"rev":1}`))
	hub := NewHub(func() ([]byte, error) {
		return snapshot.Load().([]byte), nil
	})
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Initial snapshot.
	_, _, err := conn.ReadMessage()
	require.NoError(t, err)

	// Подождать регистрацию наблюдателя перед бродкастом.
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	snapshot.Store([]byte(`{"rev":2}`))
	hub.Broadcast()

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"rev":2}`, string(msg))
}

func TestHub_DropsDeadObservers(t *testing.T) {
	hub := NewHub(func() ([]byte, error) {
		return []byte(`{}`), nil
	})
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv)
	_, _, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}
