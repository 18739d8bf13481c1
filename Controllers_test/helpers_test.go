package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/food2go/storefront/cart"
	"github.com/food2go/storefront/database"
	"github.com/food2go/storefront/models"
	"github.com/food2go/storefront/utils"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory SQLite database per test. The
// named shared-cache DSN keeps the pooled connections on the same
// database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:storefront_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedBurger inserts a product with the full customization surface the
// cart exercises.
func seedBurger(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()

	discounted := 100.0
	size := 1
	product := models.Product{
		Name:               "Classic Burger",
		Price:              120,
		PriceAfterDiscount: &discounted,
		TaxVal:             5,
		Taxes:              models.Taxes{Setting: models.TaxIncluded},
		Variations: []models.Variation{
			{
				Name:     "Size",
				Type:     models.VariationSingle,
				Required: true,
				Max:      &size,
				Options: []models.Option{
					{Name: "Single", Price: 0},
					{Name: "Double", Price: 35},
				},
			},
		},
		Addons: []models.Addon{
			{Name: "Fries", Price: 25, QuantityAdd: 1},
		},
		Excludes: []models.Exclude{
			{Name: "Onion"},
		},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) (models.Customer, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	customer := models.Customer{
		Name:     "Test Customer",
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	token, err := utils.GenerateToken(customer.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return customer, token
}

func newManager() *cart.Manager {
	return cart.NewManager(cart.NewMemoryStorage())
}

// doJSON performs a request with an optional JSON body and extra
// headers, returning the recorder.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of the standard response
// envelope into dest.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if dest != nil {
		assert.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
}
