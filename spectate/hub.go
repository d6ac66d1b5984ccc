package spectate

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/status"
)

// Hub fans encoded frames out to subscribed clients
// Each client has a bounded queue; a full queue drops the frame for that client only
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}

	statClients *atomic.Int64
	statSent    *atomic.Int64
	statDropped *atomic.Int64
}

// Client is one subscriber's frame queue
type Client struct {
	send chan []byte
}

// Frames returns the client's receive channel
func (c *Client) Frames() <-chan []byte {
	return c.send
}

// NewHub creates an empty hub
func NewHub(reg *status.Registry) *Hub {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		clients:     make(map[*Client]struct{}),
		statClients: reg.Ints.Get("spectate.clients"),
		statSent:    reg.Ints.Get("spectate.frames_sent"),
		statDropped: reg.Ints.Get("spectate.frames_dropped"),
	}
}

// Subscribe registers a client; the returned func unregisters it and is safe to call twice
func (h *Hub) Subscribe() (*Client, func()) {
	c := &Client{send: make(chan []byte, constants.EventQueueSize)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.statClients.Store(int64(len(h.clients)))
	h.mu.Unlock()

	var once sync.Once
	return c, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, c)
			h.statClients.Store(int64(len(h.clients)))
			h.mu.Unlock()
		})
	}
}

// Broadcast queues msg for every client without blocking
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
			h.statSent.Add(1)
		default:
			h.statDropped.Add(1)
		}
	}
}

// Clients returns the number of subscribers
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
