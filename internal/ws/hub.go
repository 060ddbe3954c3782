package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is the transient message shown to operators after an action.
type Notification struct {
	Type        string  `json:"type"`
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Action      string  `json:"action,omitempty"`
}

func Success(action, title, description string) Notification {
	return Notification{Type: "notification", Variant: VariantDefault, Title: title, Description: description, Action: action}
}

func Failure(action, title, description string) Notification {
	return Notification{Type: "notification", Variant: VariantDestructive, Title: title, Description: description, Action: action}
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 16),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Notify queues n for every connected client. It never blocks the caller;
// when the queue is full the notification is dropped.
func (h *Hub) Notify(n Notification) {
	msg, err := json.Marshal(n)
	if err != nil {
		log.Printf("ws: encode notification: %v", err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		log.Printf("ws: queue full, dropped %q notification", n.Action)
	}
}

// ClientCount is the number of live connections.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Serve is the per-connection loop mounted on the websocket route. Clients
// only listen; anything they send is discarded.
func (h *Hub) Serve(c *websocket.Conn) {
	h.Register <- c
	defer func() {
		h.Unregister <- c
	}()
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
