package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/controllers"
	"github.com/food2go/storefront/middlewares"
)

func SetupRouter(db *gorm.DB, manager *cart.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	branchCtrl := controllers.NewBranchController(db)
	cartCtrl := controllers.NewCartController(db, manager)
	orderCtrl := controllers.NewOrderController(db, manager)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter on credential endpoints
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Catalog browsing, no auth required
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/products", productCtrl.GetAllProducts)
	r.GET("/products/:product_id", productCtrl.GetProductByID)

	// Checkout reference data
	r.GET("/order-types", branchCtrl.GetOrderTypes)
	r.GET("/schedule-list", branchCtrl.GetScheduleList)

	// Cart, keyed by the X-Cart-Session header, no auth required
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddToCart)
	r.PATCH("/cart/items/:item_id", cartCtrl.UpdateCartItem)
	r.POST("/cart/items/:item_id/increment", cartCtrl.IncrementQuantity)
	r.POST("/cart/items/:item_id/decrement", cartCtrl.DecrementQuantity)
	r.DELETE("/cart/items/:item_id", cartCtrl.RemoveFromCart)
	r.DELETE("/cart", cartCtrl.ClearCart)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)
		auth.PATCH("/profile", userCtrl.UpdateProfile)

		auth.POST("/products/:product_id/favourite", productCtrl.ToggleFavourite)
		auth.GET("/favourites", productCtrl.GetFavourites)

		auth.GET("/addresses", branchCtrl.GetAddresses)
		auth.POST("/addresses", branchCtrl.CreateAddress)

		auth.POST("/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
	}

	// WebSocket auth reads the token from the query string
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/orders", controllers.TrackOrdersHandler)
	}

	return r
}
