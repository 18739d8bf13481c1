package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/food2go/storefront/track"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TrackOrdersHandler upgrades to a WebSocket and streams order status
// updates for the authenticated customer until they disconnect.
func TrackOrdersHandler(c *gin.Context) {
	customerID := c.GetUint("customer_id")
	if customerID == 0 {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	track.RegisterClient(ws, customerID)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	track.UnregisterClient(ws)
}
