// internal/handlers/analytics_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/freshchain/pos-backend/internal/models"
	"github.com/freshchain/pos-backend/internal/repository"
	"github.com/freshchain/pos-backend/internal/services"
)

type stubAnalyticsRepo struct {
	distinct int64
	loyal    []repository.LoyalCustomer
	sales    []repository.ProductSales
}

func (s *stubAnalyticsRepo) Create(_ context.Context, _ *models.Purchase) error {
	return nil
}

func (s *stubAnalyticsRepo) CountDistinctCustomers(_ context.Context) (int64, error) {
	return s.distinct, nil
}

func (s *stubAnalyticsRepo) LoyalCustomers(_ context.Context, minPurchases int) ([]repository.LoyalCustomer, error) {
	var out []repository.LoyalCustomer
	for _, c := range s.loyal {
		if c.PurchaseCount >= int64(minPurchases) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubAnalyticsRepo) ProductSalesCounts(_ context.Context) ([]repository.ProductSales, error) {
	return s.sales, nil
}

func analyticsRouter(repo repository.PurchaseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAnalyticsHandler(services.NewAnalyticsService(repo))

	r := gin.New()
	r.GET("/unique-customers", handler.GetUniqueCustomers)
	r.GET("/loyal-customers", handler.GetLoyalCustomers)
	r.GET("/top-products", handler.GetTopProducts)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) map[string]interface{} {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestGetUniqueCustomers(t *testing.T) {
	r := analyticsRouter(&stubAnalyticsRepo{distinct: 17})

	response := get(t, r, "/unique-customers")

	assert.Equal(t, float64(17), response["unique_customers"])
	assert.NotEmpty(t, response["description"])
}

func TestGetLoyalCustomers(t *testing.T) {
	r := analyticsRouter(&stubAnalyticsRepo{
		loyal: []repository.LoyalCustomer{
			{CustomerID: "abc123", CustomerUUID: "u1", PurchaseCount: 5, TotalSpent: 120.50},
			{CustomerID: "def456", CustomerUUID: "u2", PurchaseCount: 2, TotalSpent: 19.00},
		},
	})

	response := get(t, r, "/loyal-customers")

	assert.Equal(t, "Customers with 3+ purchases", response["criteria"])
	assert.Equal(t, float64(1), response["count"])

	customers := response["loyal_customers"].([]interface{})
	assert.Len(t, customers, 1)
	first := customers[0].(map[string]interface{})
	assert.Equal(t, "abc123", first["customer_id"])
	assert.Equal(t, "u1", first["customer_uuid"])
	assert.Equal(t, float64(5), first["purchase_count"])
	assert.Equal(t, 120.50, first["total_spent"])
}

func TestGetLoyalCustomersEmpty(t *testing.T) {
	r := analyticsRouter(&stubAnalyticsRepo{})

	response := get(t, r, "/loyal-customers")

	assert.Equal(t, float64(0), response["count"])
	assert.Equal(t, []interface{}{}, response["loyal_customers"])
}

func TestGetTopProductsIncludesTies(t *testing.T) {
	r := analyticsRouter(&stubAnalyticsRepo{
		sales: []repository.ProductSales{
			{ProductName: "Bread", SalesCount: 5},
			{ProductName: "Milk", SalesCount: 5},
			{ProductName: "Cheese", SalesCount: 4},
			{ProductName: "Jam", SalesCount: 3},
			{ProductName: "Tea", SalesCount: 1},
		},
	})

	response := get(t, r, "/top-products")

	// 5, 4 and 3 are the top three distinct counts; Tea is cut.
	assert.Equal(t, float64(4), response["count"])
	products := response["top_products"].([]interface{})
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.(map[string]interface{})["product_name"].(string))
	}
	assert.Equal(t, []string{"Bread", "Milk", "Cheese", "Jam"}, names)
}

func TestGetTopProductsEmpty(t *testing.T) {
	r := analyticsRouter(&stubAnalyticsRepo{})

	response := get(t, r, "/top-products")

	assert.Equal(t, float64(0), response["count"])
	assert.Equal(t, []interface{}{}, response["top_products"])
}
