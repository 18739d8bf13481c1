package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

// GetOrderTypes returns everything the checkout screen needs to pick
// how the order is fulfilled: branches for take_away, payment methods
// and schedule slots.
func (bc *BranchController) GetOrderTypes(c *gin.Context) {
	var branches []models.Branch
	if err := bc.DB.Where("status = ?", "open").Find(&branches).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var paymentMethods []models.PaymentMethod
	if err := bc.DB.Find(&paymentMethods).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order types", gin.H{
		"branches":        branches,
		"payment_methods": paymentMethods,
	})
}

// GetScheduleList returns the delivery/pickup time slots.
func (bc *BranchController) GetScheduleList(c *gin.Context) {
	var slots []models.ScheduleSlot
	if err := bc.DB.Find(&slots).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Schedule list", gin.H{"schedule_list": slots})
}

// GetAddresses lists the logged-in customer's delivery addresses with
// their zones (the zone carries the delivery price).
func (bc *BranchController) GetAddresses(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var addresses []models.Address
	if err := bc.DB.Preload("Zone").
		Where("customer_id = ?", customerID).
		Find(&addresses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Addresses", gin.H{"addresses": addresses})
}

// CreateAddress stores a new delivery address for the customer.
func (bc *BranchController) CreateAddress(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var body struct {
		ZoneID   uint   `json:"zone_id" binding:"required"`
		Street   string `json:"street" binding:"required"`
		Building string `json:"building"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	address := models.Address{
		CustomerID: customerID,
		ZoneID:     body.ZoneID,
		Street:     body.Street,
		Building:   body.Building,
		Notes:      body.Notes,
	}
	if err := bc.DB.Create(&address).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Address created", address)
}
