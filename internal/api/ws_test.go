package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravi/optionpulse/pkg/logger"
)

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub := NewHub(logger.NewNop())

	server := httptest.NewServer(http.HandlerFunc(hub.Handle))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens just after the handshake response, poll for it
	require.Eventually(t, func() bool {
		return hub.Clients() == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(map[string]interface{}{"final_score": 60.1})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var payload map[string]interface{}
	require.NoError(t, conn.ReadJSON(&payload))
	assert.Equal(t, 60.1, payload["final_score"])
}

func TestHub_DropsDisconnectedClients(t *testing.T) {
	hub := NewHub(logger.NewNop())

	server := httptest.NewServer(http.HandlerFunc(hub.Handle))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return hub.Clients() == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()

	// The read loop notices the close and unregisters
	assert.Eventually(t, func() bool {
		return hub.Clients() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_RejectsPlainHTTP(t *testing.T) {
	hub := NewHub(logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()

	hub.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hub.Clients())
}
