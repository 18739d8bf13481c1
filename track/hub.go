package track

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

// Event types pushed to order-tracking clients.
const (
	EventOrderUpdate   = "order_update"
	EventOrderDone     = "order_done"
	EventOrderCanceled = "order_canceled"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the order-tracking websocket clients, keyed by the
// customer they authenticated as.
type Hub struct {
	clients map[*websocket.Conn]uint
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]uint),
}

// RegisterClient adds a connection for a customer.
func RegisterClient(conn *websocket.Conn, customerID uint) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = customerID
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate pushes an order status change to that order's
// customer.
func BroadcastOrderUpdate(order models.Order) {
	event := EventOrderUpdate
	switch order.Status {
	case models.OrderDone:
		event = EventOrderDone
	case models.OrderCanceled:
		event = EventOrderCanceled
	}
	sendTo(order.CustomerID, Message{Event: event, Data: order})
}

func sendTo(customerID uint, msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("track: marshaling message: %v", err)
		return
	}

	for conn, id := range hub.clients {
		if id != customerID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("track: sending to client: %v", err)
		}
	}
}
