// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"

	"github.com/freshchain/pos-backend/internal/apperrors"
	"github.com/freshchain/pos-backend/internal/models"
	"github.com/freshchain/pos-backend/internal/repository"
)

// CatalogService exposes read-only access to the product catalog and the
// supermarket set. It has no side effects; catalog writes happen only
// through the bulk loader.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// PriceOf returns the unit price for a product name. A name absent from the
// catalog is an invalid reference naming the product, which is the sole
// validation basket items get beyond shape checks.
func (s *CatalogService) PriceOf(ctx context.Context, name string) (float64, error) {
	price, err := s.catalogRepo.PriceOf(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apperrors.InvalidReference("Invalid product: %s", name)
		}
		return 0, apperrors.StoreUnavailable(err)
	}
	return price, nil
}

func (s *CatalogService) SupermarketExists(ctx context.Context, id string) (bool, error) {
	exists, err := s.catalogRepo.SupermarketExists(ctx, id)
	if err != nil {
		return false, apperrors.StoreUnavailable(err)
	}
	return exists, nil
}

func (s *CatalogService) ProductCount(ctx context.Context) (int64, error) {
	count, err := s.catalogRepo.ProductCount(ctx)
	if err != nil {
		return 0, apperrors.StoreUnavailable(err)
	}
	return count, nil
}

func (s *CatalogService) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	supermarkets, err := s.catalogRepo.ListSupermarkets(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return supermarkets, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return products, nil
}
