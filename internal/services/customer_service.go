// internal/services/customer_service.go
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/freshchain/pos-backend/internal/apperrors"
	"github.com/freshchain/pos-backend/internal/repository"
)

const maxRealIDLength = 20

var realIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// CustomerService resolves a customer's external identifier (real_id) to
// the internally generated opaque identifier (uuid), creating the mapping
// on first sight.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// ResolveOrCreate returns the uuid mapped to realID, minting the mapping if
// it does not exist yet. Repeat calls for the same realID return the same
// uuid, including under concurrent first-sight calls: the unique constraint
// on real_id decides the winner and losers re-fetch the winning row.
func (s *CustomerService) ResolveOrCreate(ctx context.Context, realID string) (string, error) {
	realID = strings.TrimSpace(realID)

	if realID == "" {
		return "", apperrors.InvalidInput("real_id must not be empty")
	}
	if len(realID) > maxRealIDLength {
		return "", apperrors.InvalidInput("real_id must be at most %d characters", maxRealIDLength)
	}
	if !realIDPattern.MatchString(realID) {
		return "", apperrors.InvalidInput("real_id must contain only letters and digits")
	}

	customer, err := s.customerRepo.FindByRealID(ctx, realID)
	if err == nil {
		return customer.UUID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", apperrors.StoreUnavailable(err)
	}

	winner, err := s.customerRepo.CreateIfAbsentByRealID(ctx, realID, uuid.NewString())
	if err != nil {
		return "", apperrors.StoreUnavailable(err)
	}
	return winner, nil
}
