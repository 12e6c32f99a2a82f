// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/freshchain/pos-backend/internal/models"
)

// ErrNotFound is returned by lookup methods when no row matches.
var ErrNotFound = errors.New("repository: record not found")

// CatalogRepository reads the product catalog and the supermarket set.
// The write methods exist for the bulk loader only; the transaction
// workflow treats the catalog as read-only.
type CatalogRepository interface {
	SupermarketExists(ctx context.Context, id string) (bool, error)
	PriceOf(ctx context.Context, name string) (float64, error)
	ProductCount(ctx context.Context) (int64, error)
	ListSupermarkets(ctx context.Context) ([]models.Supermarket, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateSupermarketIfAbsent(ctx context.Context, id string) error
	CreateProductIfAbsent(ctx context.Context, name string, price float64) error
}

// CustomerRepository manages the real_id <-> uuid mapping. The two
// insert-if-absent methods key on different unique constraints because the
// live and bulk creation paths assign the columns opposite roles.
type CustomerRepository interface {
	FindByRealID(ctx context.Context, realID string) (*models.Customer, error)

	// CreateIfAbsentByRealID inserts the mapping unless a row with the same
	// real_id already exists, and returns the uuid of whichever row won.
	// Safe under concurrent duplicate inserts.
	CreateIfAbsentByRealID(ctx context.Context, realID, uuid string) (string, error)

	// CreateIfAbsentByUUID inserts the mapping unless a row with the same
	// uuid already exists (bulk historical load path).
	CreateIfAbsentByUUID(ctx context.Context, realID, uuid string) error
}

// LoyalCustomer is one row of the loyal-customers report.
type LoyalCustomer struct {
	CustomerID    string  `json:"customer_id" gorm:"column:customer_id"`
	CustomerUUID  string  `json:"customer_uuid" gorm:"column:customer_uuid"`
	PurchaseCount int64   `json:"purchase_count" gorm:"column:purchase_count"`
	TotalSpent    float64 `json:"total_spent" gorm:"column:total_spent"`
}

// ProductSales is a per-product purchase-record count. A product name
// appearing twice in one purchase's item list counts twice.
type ProductSales struct {
	ProductName string `json:"product_name" gorm:"column:product_name"`
	SalesCount  int64  `json:"sales_count" gorm:"column:sales_count"`
}

// PurchaseRepository appends purchase records and serves the read-side
// aggregates over them.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	CountDistinctCustomers(ctx context.Context) (int64, error)
	LoyalCustomers(ctx context.Context, minPurchases int) ([]LoyalCustomer, error)
	ProductSalesCounts(ctx context.Context) ([]ProductSales, error)
}
