package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestBroadcastSerializesConcurrentWrites(t *testing.T) {
	hub := NewRealtimeHub()
	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: 1, Conn: conn}
		hub.Register(cl)
		close(registered)

		// pings race the broadcasts below on the same connection
		go func() {
			for {
				if err := cl.Ping(); err != nil {
					return
				}
				time.Sleep(time.Millisecond)
			}
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))
	defer srv.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	<-registered

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Broadcast(1, EventRecommendation, map[string]string{"msg": "hi"})
		}()
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < n; i++ {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Contains(t, string(msg), EventRecommendation)
	}
}
