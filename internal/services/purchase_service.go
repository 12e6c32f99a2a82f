// internal/services/purchase_service.go
package services

import (
	"context"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/freshchain/pos-backend/internal/apperrors"
	"github.com/freshchain/pos-backend/internal/models"
	"github.com/freshchain/pos-backend/internal/repository"
)

const maxItemNameLength = 100

var (
	supermarketIDPattern = regexp.MustCompile(`^SMKT\d{3}$`)
	itemNamePattern      = regexp.MustCompile(`^[A-Za-z0-9\s\-.,'"]+$`)
)

// PurchaseService runs the purchase-registration workflow: validate the
// supermarket, validate and price the basket, resolve the customer's
// identity, then append one immutable purchase record.
type PurchaseService struct {
	catalogService  *CatalogService
	customerService *CustomerService
	purchaseRepo    repository.PurchaseRepository
}

type RegisterPurchaseRequest struct {
	RealID        string   `json:"real_id" validate:"required"`
	SupermarketID string   `json:"supermarket_id" validate:"required"`
	ItemNames     []string `json:"item_names" validate:"required"`
}

type RegisterPurchaseResult struct {
	UUID  string
	Total float64
}

func NewPurchaseService(catalogService *CatalogService, customerService *CustomerService, purchaseRepo repository.PurchaseRepository) *PurchaseService {
	return &PurchaseService{
		catalogService:  catalogService,
		customerService: customerService,
		purchaseRepo:    purchaseRepo,
	}
}

// Register validates and records one purchase. The validation order is part
// of the external contract (which error a bad request receives depends on
// it): supermarket, then basket shape, then pricing, then identity, then
// persist. Every validation failure aborts before any write.
func (s *PurchaseService) Register(ctx context.Context, req *RegisterPurchaseRequest) (*RegisterPurchaseResult, error) {
	if err := s.validateSupermarket(ctx, req.SupermarketID); err != nil {
		return nil, err
	}

	items, err := s.validateBasket(ctx, req.ItemNames)
	if err != nil {
		return nil, err
	}

	total, err := s.priceBasket(ctx, items)
	if err != nil {
		return nil, err
	}

	userUUID, err := s.customerService.ResolveOrCreate(ctx, req.RealID)
	if err != nil {
		return nil, err
	}

	purchase := &models.Purchase{
		SupermarketID: req.SupermarketID,
		Timestamp:     time.Now().UTC(),
		UserID:        userUUID,
		ItemList:      items,
		TotalAmount:   total,
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	return &RegisterPurchaseResult{UUID: userUUID, Total: total}, nil
}

func (s *PurchaseService) validateSupermarket(ctx context.Context, id string) error {
	if !supermarketIDPattern.MatchString(id) {
		return apperrors.InvalidReference("Invalid supermarket ID: %s", id)
	}

	exists, err := s.catalogService.SupermarketExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.InvalidReference("Invalid supermarket ID: %s", id)
	}
	return nil
}

// validateBasket checks the basket's shape and returns the trimmed item
// names in submitted order. The basket size is bounded by the number of
// distinct products in the catalog, and no two items may be equal
// case-insensitively (duplicates are rejected, never deduplicated).
func (s *PurchaseService) validateBasket(ctx context.Context, itemNames []string) ([]string, error) {
	if len(itemNames) == 0 {
		return nil, apperrors.InvalidInput("item_names must not be empty")
	}

	productCount, err := s.catalogService.ProductCount(ctx)
	if err != nil {
		return nil, err
	}
	if int64(len(itemNames)) > productCount {
		return nil, apperrors.TooManyItems("basket size %d exceeds the catalog's %d distinct products", len(itemNames), productCount)
	}

	items := make([]string, 0, len(itemNames))
	seen := make(map[string]struct{}, len(itemNames))
	for _, name := range itemNames {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, apperrors.InvalidInput("item name must not be empty")
		}
		if len(trimmed) > maxItemNameLength {
			return nil, apperrors.InvalidInput("item name exceeds %d characters: %s", maxItemNameLength, trimmed)
		}
		if !itemNamePattern.MatchString(trimmed) {
			return nil, apperrors.InvalidInput("item name contains invalid characters: %s", trimmed)
		}

		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			return nil, apperrors.DuplicateItem("duplicate item in basket: %s", trimmed)
		}
		seen[key] = struct{}{}
		items = append(items, trimmed)
	}

	return items, nil
}

// priceBasket sums unit prices for the validated items, one unit per listed
// name. The sum is accumulated in integer cents so repeated decimal prices
// cannot drift.
func (s *PurchaseService) priceBasket(ctx context.Context, items []string) (float64, error) {
	var totalCents int64
	for _, name := range items {
		price, err := s.catalogService.PriceOf(ctx, name)
		if err != nil {
			return 0, err
		}
		totalCents += int64(math.Round(price * 100))
	}
	return float64(totalCents) / 100, nil
}
