// internal/repository/gorm_customer.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshchain/pos-backend/internal/models"
)

// GormCustomerRepo implements CustomerRepository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) FindByRealID(ctx context.Context, realID string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("real_id = ?", realID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up customer %s: %w", realID, err)
	}
	return &customer, nil
}

func (r *GormCustomerRepo) CreateIfAbsentByRealID(ctx context.Context, realID, uuid string) (string, error) {
	customer := models.Customer{RealID: realID, UUID: uuid}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "real_id"}}, DoNothing: true}).
		Create(&customer)
	if result.Error != nil {
		return "", fmt.Errorf("failed to insert customer %s: %w", realID, result.Error)
	}

	// Lost the race: another insert for the same real_id won. Re-fetch so
	// the caller still gets the one uuid this real_id converged to.
	if result.RowsAffected == 0 {
		winner, err := r.FindByRealID(ctx, realID)
		if err != nil {
			return "", err
		}
		return winner.UUID, nil
	}

	return customer.UUID, nil
}

func (r *GormCustomerRepo) CreateIfAbsentByUUID(ctx context.Context, realID, uuid string) error {
	customer := models.Customer{RealID: realID, UUID: uuid}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "uuid"}}, DoNothing: true}).
		Create(&customer).Error
	if err != nil {
		return fmt.Errorf("failed to insert customer %s: %w", uuid, err)
	}
	return nil
}
