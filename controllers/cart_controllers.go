package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

// SessionHeader carries the opaque cart session token. Clients keep it
// between requests; a missing or invalid token gets a fresh session.
const SessionHeader = "X-Cart-Session"

type CartController struct {
	DB      *gorm.DB
	Manager *cart.Manager
}

func NewCartController(db *gorm.DB, manager *cart.Manager) *CartController {
	return &CartController{DB: db, Manager: manager}
}

// session resolves the cart session token, issuing a new one when
// needed, and always echoes it on the response.
func (cc *CartController) session(c *gin.Context) string {
	token := c.GetHeader(SessionHeader)
	if !utils.ValidCartSessionToken(token) {
		token = utils.NewCartSessionToken()
	}
	c.Header(SessionHeader, token)
	return token
}

// GetCart returns the cart snapshot for the session.
func (cc *CartController) GetCart(c *gin.Context) {
	store := cc.Manager.StoreFor(cc.session(c))
	utils.RespondJSON(c, http.StatusOK, "Cart", store.Cart())
}

// AddToCart resolves the product snapshot from the catalog and hands
// it to the cart engine together with the customization selection.
// Identical product+selection combinations merge into one line.
func (cc *CartController) AddToCart(c *gin.Context) {
	var body struct {
		ProductID  uint                          `json:"product_id" binding:"required"`
		Quantity   int                           `json:"quantity"`
		Variations map[uint]cart.OptionSelection `json:"variations"`
		Addons     map[uint]cart.AddonSelection  `json:"addons"`
		Extras     map[uint]int                  `json:"extras"`
		Excludes   []uint                        `json:"excludes"`
		Note       string                        `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Quantity < 1 {
		body.Quantity = 1
	}

	var product models.Product
	err := cc.DB.
		Preload("Variations.Options").
		Preload("Addons").
		Preload("AllExtras").
		Preload("Excludes").
		First(&product, body.ProductID).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	sel := cart.Selection{
		Variations: body.Variations,
		Addons:     body.Addons,
		Extras:     body.Extras,
		Excludes:   body.Excludes,
		Note:       body.Note,
	}

	store := cc.Manager.StoreFor(cc.session(c))
	item := store.AddToCart(&product, body.Quantity, sel)

	utils.RespondJSON(c, http.StatusCreated, "Added to cart", gin.H{
		"item": item,
		"cart": store.Cart(),
	})
}

// UpdateCartItem patches one line's selection, quantity or note.
// Unknown item ids are accepted and ignored, matching the engine's
// stale-reference policy.
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var body struct {
		Quantity   *int                          `json:"quantity"`
		Variations map[uint]cart.OptionSelection `json:"variations"`
		Addons     map[uint]cart.AddonSelection  `json:"addons"`
		Extras     map[uint]int                  `json:"extras"`
		Excludes   []uint                        `json:"excludes"`
		Note       *string                       `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store := cc.Manager.StoreFor(cc.session(c))
	store.UpdateCartItem(itemID, cart.ItemPatch{
		Quantity:   body.Quantity,
		Variations: body.Variations,
		Addons:     body.Addons,
		Extras:     body.Extras,
		Excludes:   body.Excludes,
		Note:       body.Note,
	})

	utils.RespondJSON(c, http.StatusOK, "Cart item updated", store.Cart())
}

// IncrementQuantity raises a line's quantity by one.
func (cc *CartController) IncrementQuantity(c *gin.Context) {
	store := cc.Manager.StoreFor(cc.session(c))
	store.IncrementQuantity(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", store.Cart())
}

// DecrementQuantity lowers a line's quantity by one, never below 1.
func (cc *CartController) DecrementQuantity(c *gin.Context) {
	store := cc.Manager.StoreFor(cc.session(c))
	store.DecrementQuantity(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", store.Cart())
}

// RemoveFromCart drops one line.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	store := cc.Manager.StoreFor(cc.session(c))
	store.RemoveFromCart(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Cart item removed", store.Cart())
}

// ClearCart empties the session's cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	store := cc.Manager.StoreFor(cc.session(c))
	store.ClearCart()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", store.Cart())
}
