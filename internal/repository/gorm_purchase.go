// internal/repository/gorm_purchase.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/freshchain/pos-backend/internal/models"
)

// GormPurchaseRepo implements PurchaseRepository using GORM.
type GormPurchaseRepo struct {
	db *gorm.DB
}

func NewGormPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &GormPurchaseRepo{db: db}
}

func (r *GormPurchaseRepo) Create(ctx context.Context, purchase *models.Purchase) error {
	if err := r.db.WithContext(ctx).Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

func (r *GormPurchaseRepo) CountDistinctCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT user_id) FROM purchases").
		Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct customers: %w", err)
	}
	return count, nil
}

func (r *GormPurchaseRepo) LoyalCustomers(ctx context.Context, minPurchases int) ([]LoyalCustomer, error) {
	var customers []LoyalCustomer
	query := `
		SELECT
			c.real_id AS customer_id,
			c.uuid AS customer_uuid,
			COUNT(p.id) AS purchase_count,
			SUM(p.total_amount) AS total_spent
		FROM customers c
		JOIN purchases p ON c.uuid = p.user_id
		GROUP BY c.real_id, c.uuid
		HAVING COUNT(p.id) >= ?
		ORDER BY purchase_count DESC, total_spent DESC`
	if err := r.db.WithContext(ctx).Raw(query, minPurchases).Scan(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to query loyal customers: %w", err)
	}
	return customers, nil
}

// ProductSalesCounts returns one row per product name that appears in any
// purchase, counting every occurrence across all item lists, ordered by
// count descending then name ascending.
func (r *GormPurchaseRepo) ProductSalesCounts(ctx context.Context) ([]ProductSales, error) {
	var sales []ProductSales
	query := `
		SELECT
			unnest(item_list) AS product_name,
			COUNT(*) AS sales_count
		FROM purchases
		GROUP BY unnest(item_list)
		ORDER BY sales_count DESC, product_name ASC`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to query product sales: %w", err)
	}
	return sales, nil
}
