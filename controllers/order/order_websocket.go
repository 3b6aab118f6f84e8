package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/bakery-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// orderFeed tracks connected dashboard clients. Handlers register and drop
// connections from their own goroutines while broadcasts arrive from request
// goroutines, so every access to the client set holds the lock. The lock
// also serializes writes per connection, which the websocket package
// requires.
type orderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

var feed = &orderFeed{clients: make(map[*websocket.Conn]bool)}

func (f *orderFeed) add(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[conn] = true
}

func (f *orderFeed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clients, conn)
}

func (f *orderFeed) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

func (f *orderFeed) broadcast(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

// GET /order/ws — live feed of newly created orders for the admin dashboard.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feed.add(conn)
	defer feed.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastNewOrder pushes a freshly created order to every connected client.
func BroadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	feed.broadcast(data)
}
