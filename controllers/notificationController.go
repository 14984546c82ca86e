package controllers

import (
	"log"
	"net/http"
	"sync"

	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationController pushes the typed event feed (completed orders,
// daily closes) to websocket clients.
type NotificationController struct {
	events *services.EventBus

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewNotificationController(events *services.EventBus) *NotificationController {
	ctl := &NotificationController{
		events:  events,
		clients: make(map[*websocket.Conn]bool),
	}
	go ctl.broadcastLoop()
	return ctl
}

func (ctl *NotificationController) broadcastLoop() {
	ch := ctl.events.Subscribe()
	for event := range ch {
		ctl.mu.Lock()
		for client := range ctl.clients {
			if err := client.WriteJSON(event); err != nil {
				log.Println("error writing websocket message:", err)
				client.Close()
				delete(ctl.clients, client)
			}
		}
		ctl.mu.Unlock()
	}
}

func (ctl *NotificationController) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		ctl.mu.Lock()
		ctl.clients[conn] = true
		ctl.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				ctl.mu.Lock()
				delete(ctl.clients, conn)
				ctl.mu.Unlock()
				break
			}
		}
	}
}
