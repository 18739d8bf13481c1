package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

func (pc *ProductController) preloaded() *gorm.DB {
	return pc.DB.
		Preload("Category").
		Preload("Variations.Options").
		Preload("Addons").
		Preload("AllExtras").
		Preload("Excludes")
}

// GetAllProducts returns the catalog, optionally filtered by category.
// Endpoint: GET /products?category=<id>
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	query := pc.preloaded()

	if categoryIDStr := c.Query("category"); categoryIDStr != "" {
		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid category ID"))
			return
		}
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID returns the full product snapshot the cart consumes:
// variations with options, addons, extras and excludes.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	idStr := c.Param("product_id")
	id, _ := strconv.Atoi(idStr)

	var product models.Product
	if err := pc.preloaded().First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// ToggleFavourite flips a product's favourite flag for the logged-in
// customer. Body: {"favourite": 0|1}
func (pc *ProductController) ToggleFavourite(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	idStr := c.Param("product_id")
	productID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product ID"))
		return
	}

	var body struct {
		Favourite int `json:"favourite"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Favourite == 1 {
		fav := models.Favourite{CustomerID: customerID, ProductID: uint(productID)}
		if err := pc.DB.Where(&fav).FirstOrCreate(&fav).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	} else {
		if err := pc.DB.
			Where("customer_id = ? AND product_id = ?", customerID, productID).
			Delete(&models.Favourite{}).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Favourite updated", gin.H{
		"product_id": productID,
		"favourite":  body.Favourite,
	})
}

// GetFavourites lists the customer's saved products.
func (pc *ProductController) GetFavourites(c *gin.Context) {
	customerID := c.GetUint("customer_id")

	var favourites []models.Favourite
	if err := pc.DB.Where("customer_id = ?", customerID).Find(&favourites).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	productIDs := make([]uint, 0, len(favourites))
	for _, fav := range favourites {
		productIDs = append(productIDs, fav.ProductID)
	}

	var products []models.Product
	if len(productIDs) > 0 {
		if err := pc.preloaded().Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Favourite products", products)
}
