package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/track"
	"github.com/food2go/storefront/utils"
)

// OrderMonitor polls for order rows touched since the last pass and
// pushes status updates to connected tracking clients. Polling keeps
// the storefront working against databases we cannot attach triggers
// or replication streams to.
type OrderMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration

	lastSeen time.Time
}

func NewOrderMonitor(db *gorm.DB) *OrderMonitor {
	return &OrderMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 2 * time.Second,
		lastSeen: time.Now(),
	}
}

func (om *OrderMonitor) Start() {
	go func() {
		ticker := time.NewTicker(om.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				om.checkOrders()
			case <-om.StopChan:
				return
			}
		}
	}()
}

func (om *OrderMonitor) Stop() {
	close(om.StopChan)
}

func (om *OrderMonitor) checkOrders() {
	var orders []models.Order
	cutoff := om.lastSeen
	om.lastSeen = time.Now()

	err := om.DB.Where("updated_at > ?", cutoff).
		Order("updated_at ASC").
		Limit(100).
		Find(&orders).Error
	if err != nil {
		utils.ErrorLogger.Printf("order monitor: fetching changed orders: %v", err)
		return
	}

	for _, order := range orders {
		track.BroadcastOrderUpdate(order)
	}
	if len(orders) > 0 {
		utils.InfoLogger.Printf("order monitor: broadcast %d order updates", len(orders))
	}
}
