package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for dev simplicity
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is a change notification for one store topic. Topics mirror the
// store paths ("settings", "users", "notifications/{userId}", "sales", ...).
type Event struct {
	Topic  string      `json:"topic"`
	Action string      `json:"action"` // created, updated, deleted
	Data   interface{} `json:"data,omitempty"`
}

// Action constants for Event
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// SessionTracker is notified when an authenticated connection opens; the
// returned stop function is called exactly once when it closes.
type SessionTracker interface {
	StartSession(userID string) (stop func())
}

// subscribeRequest is the only message clients are expected to send
type subscribeRequest struct {
	Action string `json:"action"` // subscribe or unsubscribe
	Topic  string `json:"topic"`
}

// Client represents a single connected WebSocket client
type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string

	mu          sync.Mutex
	topics      map[string]bool
	stopSession func()
}

// subscribed reports whether the client listens to the topic, either
// exactly or as a parent subtree ("sales" covers "sales/{userId}").
func (c *Client) subscribed(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for sub := range c.topics {
		if topicMatches(sub, topic) {
			return true
		}
	}
	return false
}

func (c *Client) setTopic(topic string, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.topics[topic] = true
	} else {
		delete(c.topics, topic)
	}
}

// topicMatches reports whether a subscription covers a published topic
func topicMatches(sub, topic string) bool {
	return sub == topic || strings.HasPrefix(topic, sub+"/")
}

type publication struct {
	topic   string
	payload []byte
}

// Hub maintains the set of active clients and fans published events out to
// the clients subscribed to the matching topic
type Hub struct {
	clients    map[*Client]bool
	publish    chan publication
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex // lock just in case if doing manual iter
}

// NewHub initializes a new WS Hub instance
func NewHub() *Hub {
	return &Hub{
		publish:    make(chan publication, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Publish fans an event out to every client subscribed to its topic.
// It never blocks the caller on slow consumers.
func (h *Hub) Publish(topic, action string, data interface{}) {
	payload, err := json.Marshal(Event{Topic: topic, Action: action, Data: data})
	if err != nil {
		log.Println("WebSocket publish marshal failed:", err)
		return
	}
	h.publish <- publication{topic: topic, payload: payload}
}

// Run starts the core dispatch loop for WebSocket events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Println("New WebSocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				if client.stopSession != nil {
					// Teardown writes to the store; keep it off the dispatch loop
					go client.stopSession()
				}
				log.Println("WebSocket client disconnected")
			}
			h.mu.Unlock()
		case pub := <-h.publish:
			h.mu.Lock()
			for client := range h.clients {
				if !client.subscribed(pub.topic) {
					continue
				}
				select {
				case client.Send <- pub.payload:
				default:
					close(client.Send)
					if client.stopSession != nil {
						go client.stopSession()
					}
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		w, err := c.Conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.Send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.Send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump consumes subscribe/unsubscribe requests from the connection
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		var req subscribeRequest
		if err := json.Unmarshal(message, &req); err != nil {
			continue
		}
		switch req.Action {
		case "subscribe":
			if req.Topic != "" {
				c.setTopic(req.Topic, true)
			}
		case "unsubscribe":
			c.setTopic(req.Topic, false)
		}
	}
}

// ServeWs handles websocket requests from the peer. A valid connection
// doubles as the user's session: presence is marked online for its
// lifetime and offline when it closes.
func ServeWs(hub *Hub, c *gin.Context, secret []byte, tracker SessionTracker) {
	// 1. Authenticate via token query param
	tokenString := c.Query("token")
	if tokenString == "" {
		log.Println("WebSocket connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})

	if err != nil || !token.Valid {
		log.Println("WebSocket connection rejected: invalid token:", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Println("WebSocket connection rejected: invalid claims")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || (role != "admin" && role != "user") {
		log.Println("WebSocket connection rejected: inadequate permissions")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return
	}
	client := &Client{
		Hub:    hub,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		UserID: userID,
		topics: make(map[string]bool),
	}
	if tracker != nil {
		client.stopSession = tracker.StartSession(userID)
	}
	client.Hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in new goroutines
	go client.writePump()
	go client.readPump()
}
