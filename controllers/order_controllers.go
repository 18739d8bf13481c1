package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/track"
	"github.com/food2go/storefront/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Manager *cart.Manager
}

func NewOrderController(db *gorm.DB, manager *cart.Manager) *OrderController {
	return &OrderController{DB: db, Manager: manager}
}

// Checkout converts the session cart into an order. The cart is cleared
// only after the order row is committed; the persisted products payload
// is the platform order shape built by cart.OrderProducts.
func (oc *OrderController) Checkout(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var body struct {
		OrderType       string `json:"order_type" binding:"required"`
		AddressID       *uint  `json:"address_id"`
		BranchID        *uint  `json:"branch_id"`
		PaymentMethodID uint   `json:"payment_method_id" binding:"required"`
		ScheduleSlotID  *uint  `json:"sechedule_slot_id"`
		Notes           string `json:"notes"`
		ConfirmOrder    int    `json:"confirm_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.OrderType != models.OrderTypeDelivery && body.OrderType != models.OrderTypeTakeAway {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown order type"))
		return
	}

	token := c.GetHeader(SessionHeader)
	if !utils.ValidCartSessionToken(token) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing cart session"))
		return
	}
	store := oc.Manager.StoreFor(token)
	snapshot := store.Cart()
	if len(snapshot.Items) == 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("cart is empty"))
		return
	}

	var deliveryPrice float64
	if body.OrderType == models.OrderTypeDelivery {
		if body.AddressID == nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("delivery orders need an address"))
			return
		}
		var address models.Address
		err := oc.DB.Preload("Zone").
			Where("id = ? AND customer_id = ?", *body.AddressID, customerID).
			First(&address).Error
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("address not found"))
			return
		}
		deliveryPrice = address.Zone.Price
	} else if body.BranchID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("take away orders need a branch"))
		return
	}

	order := models.Order{
		CustomerID:      customerID,
		Status:          models.OrderPending,
		OrderType:       body.OrderType,
		AddressID:       body.AddressID,
		BranchID:        body.BranchID,
		PaymentMethodID: body.PaymentMethodID,
		ScheduleSlotID:  body.ScheduleSlotID,
		Notes:           body.Notes,
		ConfirmOrder:    body.ConfirmOrder,
		Source:          "web",
		Amount:          snapshot.Total + deliveryPrice,
		TotalTax:        snapshot.TotalTax,
		TotalDiscount:   snapshot.TotalDiscount,
		DeliveryPrice:   deliveryPrice,
	}
	if err := order.SetProducts(cart.OrderProducts(snapshot.Items)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	store.ClearCart()
	oc.Manager.Drop(token)
	track.BroadcastOrderUpdate(order)

	utils.InfoLogger.Printf("Order %d created for customer %d (%s, %s)",
		order.ID, customerID, order.OrderType, utils.FormatCurrencyEGP(order.Amount))
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetOrders lists the authenticated customer's orders, newest first.
func (oc *OrderController) GetOrders(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var orders []models.Order
	err := oc.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders", orders)
}

// GetOrderByID returns one of the customer's orders including the
// stored products payload.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var order models.Order
	err := oc.DB.Where("id = ? AND customer_id = ?", c.Param("id"), customerID).
		First(&order).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var products []cart.OrderProduct
	if err := order.GetProducts(&products); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order", gin.H{
		"order":       order,
		"products":    products,
		"amount_text": utils.FormatCurrencyEGP(order.Amount),
	})
}
