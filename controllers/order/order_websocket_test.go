package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/bakery-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedServer() *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderFeedHandler)
	return httptest.NewServer(r)
}

func feedURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	conn, resp, err := websocket.DefaultDialer.Dial(feedURL(srv), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

// waitForFeed blocks until the feed has settled at exactly n clients, so a
// test never races the handler goroutines that register and drop them.
func waitForFeed(t *testing.T, n int) {
	deadline := time.Now().Add(2 * time.Second)
	for feed.size() != n {
		require.True(t, time.Now().Before(deadline), "feed never reached %d clients", n)
		time.Sleep(5 * time.Millisecond)
	}
}

func TestOrderFeedDeliversBroadcast(t *testing.T) {
	srv := feedServer()
	defer srv.Close()
	waitForFeed(t, 0)

	conn := dialFeed(t, srv)
	defer conn.Close()
	waitForFeed(t, 1)

	order := models.Order{ID: 7, UserID: 1, Subtotal: 25, TotalAmount: 24}
	BroadcastNewOrder(order)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.TotalAmount, got.TotalAmount)
}

func TestOrderFeedConcurrentBroadcasts(t *testing.T) {
	srv := feedServer()
	defer srv.Close()
	waitForFeed(t, 0)

	conn := dialFeed(t, srv)
	defer conn.Close()
	waitForFeed(t, 1)

	order := models.Order{ID: 1, Subtotal: 10, TotalAmount: 10}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				BroadcastNewOrder(order)
			}
		}()
	}

	// churn connections while broadcasts are in flight
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			c, resp, err := websocket.DefaultDialer.Dial(feedURL(srv), nil)
			if err != nil {
				continue
			}
			if resp != nil {
				resp.Body.Close()
			}
			c.Close()
		}
	}()
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"total_amount":10`)
}
