package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/config"
	"github.com/food2go/storefront/database"
	"github.com/food2go/storefront/middlewares"
	"github.com/food2go/storefront/router"
	"github.com/food2go/storefront/services"
	"github.com/food2go/storefront/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding demo data: %v", err)
		}
	}

	manager := cart.NewManager(cart.NewGormStorage(db))

	monitor := services.NewOrderMonitor(db)
	monitor.Start()
	defer monitor.Stop()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, manager)
	r.Use(rateLimiter.RateLimit())
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
