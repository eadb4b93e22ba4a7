// Package hub fans game events out to websocket spectators. Each running
// session gets its own SessionHub; slow clients are dropped rather than
// allowed to stall a broadcast.
package hub

import (
	"log"
	"sync"

	"quizprize-game/internal/models"
)

type Hub struct {
	sessions map[string]*SessionHub
	mu       sync.RWMutex
}

type SessionHub struct {
	sessionID  string
	clients    map[string]*WebSocketClient
	broadcast  chan []byte
	unregister chan *WebSocketClient
	closed     chan struct{}
	mu         sync.RWMutex
}

type WebSocketClient struct {
	ID        string
	SessionID string
	Send      chan []byte
	Hub       *SessionHub
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*SessionHub),
	}
}

func (h *Hub) GetSessionHub(sessionID string) *SessionHub {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sessions[sessionID]
}

func (h *Hub) CreateSessionHub(sessionID string) *SessionHub {
	h.mu.Lock()
	defer h.mu.Unlock()

	sh := &SessionHub{
		sessionID:  sessionID,
		clients:    make(map[string]*WebSocketClient),
		broadcast:  make(chan []byte, 16),
		unregister: make(chan *WebSocketClient),
		closed:     make(chan struct{}),
	}
	h.sessions[sessionID] = sh
	go sh.run()

	return sh
}

// RemoveSessionHub tears the hub down when its session ends; connected
// spectators are disconnected.
func (h *Hub) RemoveSessionHub(sessionID string) {
	h.mu.Lock()
	sh := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.mu.Unlock()
	if sh != nil {
		close(sh.closed)
	}
}

func (sh *SessionHub) run() {
	for {
		select {
		case client := <-sh.unregister:
			sh.mu.Lock()
			if _, ok := sh.clients[client.ID]; ok {
				delete(sh.clients, client.ID)
				close(client.Send)
			}
			sh.mu.Unlock()

		case message := <-sh.broadcast:
			var stalled []string
			sh.mu.RLock()
			for id, client := range sh.clients {
				select {
				case client.Send <- message:
				default:
					stalled = append(stalled, id)
				}
			}
			sh.mu.RUnlock()

			if len(stalled) > 0 {
				sh.mu.Lock()
				for _, id := range stalled {
					if client, ok := sh.clients[id]; ok {
						log.Printf("Hub: dropping stalled spectator %s on session %s", id, sh.sessionID)
						close(client.Send)
						delete(sh.clients, id)
					}
				}
				sh.mu.Unlock()
			}

		case <-sh.closed:
			sh.mu.Lock()
			for id, client := range sh.clients {
				close(client.Send)
				delete(sh.clients, id)
			}
			sh.mu.Unlock()
			return
		}
	}
}

func (sh *SessionHub) Register(client *WebSocketClient) {
	sh.mu.Lock()
	if existing, ok := sh.clients[client.ID]; ok && existing.Send != client.Send {
		close(existing.Send)
	}
	sh.clients[client.ID] = client
	sh.mu.Unlock()
}

func (sh *SessionHub) Unregister(client *WebSocketClient) {
	select {
	case sh.unregister <- client:
	case <-sh.closed:
	}
}

// Broadcast queues an encoded event for every spectator. Broadcasts on a
// closed hub are discarded.
func (sh *SessionHub) Broadcast(data []byte) {
	select {
	case sh.broadcast <- data:
	case <-sh.closed:
	}
}

func (sh *SessionHub) ClientCount() int {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return len(sh.clients)
}

// Event is a convenience re-export so callers build hub payloads from
// the shared model type.
type Event = models.GameEvent
