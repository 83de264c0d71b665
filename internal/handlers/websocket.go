package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mafia-game/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// Client is one WebSocket subscriber to a host's notification feed.
type Client struct {
	CallerID string
	Host     string
	Conn     *websocket.Conn
	Send     chan []byte
}

type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan *BroadcastMessage
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

type BroadcastMessage struct {
	Host    string
	Message []byte
}

var hub = &Hub{
	Clients:    make(map[*Client]bool),
	Broadcast:  make(chan *BroadcastMessage, 64),
	Register:   make(chan *Client),
	Unregister: make(chan *Client),
}

func init() {
	go hub.Run()
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			log.Printf("Client registered: %s watching host %s", client.CallerID, client.Host)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Printf("Client unregistered: %s", client.CallerID)
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.Clients {
				if client.Host != message.Host {
					continue
				}
				select {
				case client.Send <- message.Message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// HandleWebSocket subscribes a caller to the notification feed of one host's
// game. Clients receive game_initialized, player_joined, game_started,
// phase_executed, game_cancelled and game_finished events.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade error: %v", err)
			return
		}

		callerID := c.Query("callerId")
		host := c.Query("host")

		if callerID == "" || host == "" {
			conn.Close()
			return
		}

		client := &Client{
			CallerID: callerID,
			Host:     host,
			Conn:     conn,
			Send:     make(chan []byte, 256),
		}

		hub.Register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}

// ReadPump drains the connection until the client goes away. Commands only
// arrive over the HTTP API, so inbound frames are discarded.
func (c *Client) ReadPump() {
	defer func() {
		hub.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Write error: %v", err)
			return
		}
	}
}

// notifyHost broadcasts an event to every subscriber of the host's game.
func notifyHost(host, eventType string, payload interface{}) {
	msg := models.WSMessage{
		Type:    eventType,
		Payload: payload,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("JSON marshal error: %v", err)
		return
	}

	hub.Broadcast <- &BroadcastMessage{
		Host:    host,
		Message: data,
	}
}
