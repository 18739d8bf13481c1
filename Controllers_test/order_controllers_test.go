package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/controllers"
	"github.com/food2go/storefront/middlewares"
	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

func setupOrderRouter(db *gorm.DB, manager *cart.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	orderCtrl := controllers.NewOrderController(db, manager)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	auth.POST("/checkout", orderCtrl.Checkout)
	auth.GET("/orders", orderCtrl.GetOrders)
	auth.GET("/orders/:id", orderCtrl.GetOrderByID)

	return router
}

func seedCheckoutData(t *testing.T, db *gorm.DB, customerID uint) (models.Address, models.PaymentMethod) {
	t.Helper()

	zone := models.Zone{Name: "City center", Price: 20}
	if err := db.Create(&zone).Error; err != nil {
		t.Fatalf("failed to seed zone: %v", err)
	}
	address := models.Address{CustomerID: customerID, ZoneID: zone.ID, Street: "12 Market St"}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}
	payment := models.PaymentMethod{Name: "Cash on delivery"}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("failed to seed payment method: %v", err)
	}
	return address, payment
}

func TestCheckoutDeliveryOrder(t *testing.T) {
	db := setupTestDB(t)
	manager := newManager()
	router := setupOrderRouter(db, manager)

	customer, token := seedCustomer(t, db, "customer@example.com")
	address, payment := seedCheckoutData(t, db, customer.ID)
	product := seedBurger(t, db)

	session := utils.NewCartSessionToken()
	store := manager.StoreFor(session)
	store.AddToCart(&product, 2, cart.Selection{Note: "no onion"})
	cartTotal := store.Cart().Total

	headers := map[string]string{
		"Authorization":            "Bearer " + token,
		controllers.SessionHeader: session,
	}
	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"order_type":        "delivery",
		"address_id":        address.ID,
		"payment_method_id": payment.ID,
		"notes":             "leave at door",
	}, headers)
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	decodeData(t, w, &order)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 20.0, order.DeliveryPrice, 1e-9)
	assert.InDelta(t, cartTotal+20.0, order.Amount, 1e-9)

	// The cart is cleared once the order is placed.
	assert.Empty(t, store.Cart().Items)

	// The stored payload carries the projected lines.
	var saved models.Order
	assert.NoError(t, db.First(&saved, order.ID).Error)
	var products []cart.OrderProduct
	assert.NoError(t, saved.GetProducts(&products))
	assert.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ProductID)
	assert.Equal(t, 2, products[0].Count)
	assert.Equal(t, "no onion", products[0].Note)
}

func TestCheckoutTakeAwayOrder(t *testing.T) {
	db := setupTestDB(t)
	manager := newManager()
	router := setupOrderRouter(db, manager)

	customer, token := seedCustomer(t, db, "customer@example.com")
	_, payment := seedCheckoutData(t, db, customer.ID)
	branch := models.Branch{Name: "Downtown"}
	assert.NoError(t, db.Create(&branch).Error)
	product := seedBurger(t, db)

	session := utils.NewCartSessionToken()
	store := manager.StoreFor(session)
	store.AddToCart(&product, 1, cart.Selection{})
	cartTotal := store.Cart().Total

	headers := map[string]string{
		"Authorization":            "Bearer " + token,
		controllers.SessionHeader: session,
	}
	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"order_type":        "take_away",
		"branch_id":         branch.ID,
		"payment_method_id": payment.ID,
	}, headers)
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	decodeData(t, w, &order)
	assert.InDelta(t, 0.0, order.DeliveryPrice, 1e-9)
	assert.InDelta(t, cartTotal, order.Amount, 1e-9)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	manager := newManager()
	router := setupOrderRouter(db, manager)

	customer, token := seedCustomer(t, db, "customer@example.com")
	address, payment := seedCheckoutData(t, db, customer.ID)

	headers := map[string]string{
		"Authorization":            "Bearer " + token,
		controllers.SessionHeader: utils.NewCartSessionToken(),
	}
	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"order_type":        "delivery",
		"address_id":        address.ID,
		"payment_method_id": payment.ID,
	}, headers)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	db := setupTestDB(t)
	manager := newManager()
	router := setupOrderRouter(db, manager)

	customer, token := seedCustomer(t, db, "customer@example.com")
	other, _ := seedCustomer(t, db, "other@example.com")
	_, payment := seedCheckoutData(t, db, customer.ID)
	foreign, _ := seedCheckoutData(t, db, other.ID)
	product := seedBurger(t, db)

	session := utils.NewCartSessionToken()
	manager.StoreFor(session).AddToCart(&product, 1, cart.Selection{})

	headers := map[string]string{
		"Authorization":            "Bearer " + token,
		controllers.SessionHeader: session,
	}
	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"order_type":        "delivery",
		"address_id":        foreign.ID,
		"payment_method_id": payment.ID,
	}, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHistory(t *testing.T) {
	db := setupTestDB(t)
	manager := newManager()
	router := setupOrderRouter(db, manager)

	customer, token := seedCustomer(t, db, "customer@example.com")
	address, payment := seedCheckoutData(t, db, customer.ID)
	product := seedBurger(t, db)

	session := utils.NewCartSessionToken()
	manager.StoreFor(session).AddToCart(&product, 1, cart.Selection{})

	headers := map[string]string{
		"Authorization":            "Bearer " + token,
		controllers.SessionHeader: session,
	}
	w := doJSON(t, router, "POST", "/checkout", gin.H{
		"order_type":        "delivery",
		"address_id":        address.ID,
		"payment_method_id": payment.ID,
	}, headers)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/orders", nil, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decodeData(t, w, &orders)
	assert.Len(t, orders, 1)

	w = doJSON(t, router, "GET", fmt.Sprintf("/orders/%d", orders[0].ID), nil, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Order    models.Order        `json:"order"`
		Products []cart.OrderProduct `json:"products"`
	}
	decodeData(t, w, &detail)
	assert.Len(t, detail.Products, 1)

	// Another customer cannot see the order.
	_, otherToken := seedCustomer(t, db, "other@example.com")
	w = doJSON(t, router, "GET", fmt.Sprintf("/orders/%d", orders[0].ID), nil,
		map[string]string{"Authorization": "Bearer " + otherToken})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
