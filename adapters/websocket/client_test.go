package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestClient upgrades a loopback connection and wraps the server side in
// a Client, the way Handler does.
func dialTestClient(t *testing.T, observer string) *Client {
	t.Helper()

	upgrader := websocket.Upgrader{}
	conns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)

	peer, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { peer.Close() })

	client := NewClient(<-conns, observer)
	t.Cleanup(client.Close)
	return client
}

func TestClientCarriesObserverIdentity(t *testing.T) {
	client := dialTestClient(t, "backend")

	assert.Equal(t, "backend", client.Context().Value("user_name"))
}

func TestCloseLeavesSendQueueOpen(t *testing.T) {
	client := dialTestClient(t, "backend")

	client.Close()

	// The hub loop may be parked in SendMessage's send case when a pump
	// goroutine closes the client; the queue must stay open so that send
	// can never panic.
	select {
	case _, ok := <-client.send:
		assert.True(t, ok, "send queue must not be closed")
	default:
	}

	assert.True(t, client.IsClosed())
	assert.ErrorIs(t, client.SendMessage([]byte("x")), websocket.ErrCloseSent)
}

func TestCloseIsIdempotent(t *testing.T) {
	client := dialTestClient(t, "backend")

	client.Close()
	client.Close()

	assert.True(t, client.IsClosed())
}

func TestConcurrentSendAndClose(t *testing.T) {
	client := dialTestClient(t, "backend")
	client.Run()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				client.SendMessage([]byte("frame"))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		client.Close()
	}()

	// Must finish without a send-on-closed-channel panic.
	wg.Wait()
}
