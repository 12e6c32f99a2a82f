// internal/repository/gorm_catalog.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshchain/pos-backend/internal/models"
)

// GormCatalogRepo implements CatalogRepository using GORM.
type GormCatalogRepo struct {
	db *gorm.DB
}

func NewGormCatalogRepo(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepo{db: db}
}

func (r *GormCatalogRepo) SupermarketExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Supermarket{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check supermarket %s: %w", id, err)
	}
	return count > 0, nil
}

func (r *GormCatalogRepo) PriceOf(ctx context.Context, name string) (float64, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to look up product %s: %w", name, err)
	}
	return product.Price, nil
}

func (r *GormCatalogRepo) ProductCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *GormCatalogRepo) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	var supermarkets []models.Supermarket
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&supermarkets).Error; err != nil {
		return nil, fmt.Errorf("failed to list supermarkets: %w", err)
	}
	return supermarkets, nil
}

func (r *GormCatalogRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *GormCatalogRepo) CreateSupermarketIfAbsent(ctx context.Context, id string) error {
	supermarket := models.Supermarket{ID: id}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&supermarket).Error
	if err != nil {
		return fmt.Errorf("failed to insert supermarket %s: %w", id, err)
	}
	return nil
}

func (r *GormCatalogRepo) CreateProductIfAbsent(ctx context.Context, name string, price float64) error {
	product := models.Product{Name: name, Price: price}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&product).Error
	if err != nil {
		return fmt.Errorf("failed to insert product %s: %w", name, err)
	}
	return nil
}
