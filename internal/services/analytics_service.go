// internal/services/analytics_service.go
package services

import (
	"context"

	"github.com/freshchain/pos-backend/internal/apperrors"
	"github.com/freshchain/pos-backend/internal/repository"
)

// loyalCustomerMinPurchases is the purchase count at which a customer
// qualifies for the loyal-customers report.
const loyalCustomerMinPurchases = 3

// topProductRanks is how many distinct sales-count values the top-products
// report covers. Ties within a rank are all included.
const topProductRanks = 3

// AnalyticsService serves the read-only aggregate reports. Each query is
// independent and stateless; no coordination with the write side exists or
// is needed.
type AnalyticsService struct {
	purchaseRepo repository.PurchaseRepository
}

func NewAnalyticsService(purchaseRepo repository.PurchaseRepository) *AnalyticsService {
	return &AnalyticsService{purchaseRepo: purchaseRepo}
}

func (s *AnalyticsService) UniqueCustomers(ctx context.Context) (int64, error) {
	count, err := s.purchaseRepo.CountDistinctCustomers(ctx)
	if err != nil {
		return 0, apperrors.StoreUnavailable(err)
	}
	return count, nil
}

func (s *AnalyticsService) LoyalCustomers(ctx context.Context) ([]repository.LoyalCustomer, error) {
	customers, err := s.purchaseRepo.LoyalCustomers(ctx, loyalCustomerMinPurchases)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return customers, nil
}

// TopProducts returns every product whose sales count is among the top
// three distinct count values, ordered by count descending then name
// ascending. With counts {A:5, B:5, C:4, D:4, E:3} all five products
// appear, because 5, 4 and 3 are the top three distinct values.
func (s *AnalyticsService) TopProducts(ctx context.Context) ([]repository.ProductSales, error) {
	sales, err := s.purchaseRepo.ProductSalesCounts(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return cutTopDistinctCounts(sales, topProductRanks), nil
}

// cutTopDistinctCounts keeps the rows whose count is one of the first n
// distinct count values. Rows must already be ordered by count descending;
// the cut is by distinct value, not by row position.
func cutTopDistinctCounts(sales []repository.ProductSales, n int) []repository.ProductSales {
	top := make([]repository.ProductSales, 0, len(sales))
	distinct := 0
	var lastCount int64 = -1

	for _, row := range sales {
		if row.SalesCount != lastCount {
			distinct++
			if distinct > n {
				break
			}
			lastCount = row.SalesCount
		}
		top = append(top, row)
	}

	return top
}
