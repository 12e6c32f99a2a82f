// internal/services/fakes_test.go
package services

import (
	"context"
	"sort"

	"github.com/freshchain/pos-backend/internal/models"
	"github.com/freshchain/pos-backend/internal/repository"
)

// In-memory repository fakes. They honor the same contracts as the GORM
// implementations (ErrNotFound on misses, insert-if-absent semantics) so
// the services can be exercised without a database.

type fakeCatalogRepo struct {
	supermarkets map[string]struct{}
	products     map[string]float64
	err          error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		supermarkets: make(map[string]struct{}),
		products:     make(map[string]float64),
	}
}

func (f *fakeCatalogRepo) SupermarketExists(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.supermarkets[id]
	return ok, nil
}

func (f *fakeCatalogRepo) PriceOf(_ context.Context, name string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	price, ok := f.products[name]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return price, nil
}

func (f *fakeCatalogRepo) ProductCount(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.products)), nil
}

func (f *fakeCatalogRepo) ListSupermarkets(_ context.Context) ([]models.Supermarket, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]string, 0, len(f.supermarkets))
	for id := range f.supermarkets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	supermarkets := make([]models.Supermarket, 0, len(ids))
	for _, id := range ids {
		supermarkets = append(supermarkets, models.Supermarket{ID: id})
	}
	return supermarkets, nil
}

func (f *fakeCatalogRepo) ListProducts(_ context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.products))
	for name := range f.products {
		names = append(names, name)
	}
	sort.Strings(names)
	products := make([]models.Product, 0, len(names))
	for _, name := range names {
		products = append(products, models.Product{Name: name, Price: f.products[name]})
	}
	return products, nil
}

func (f *fakeCatalogRepo) CreateSupermarketIfAbsent(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.supermarkets[id] = struct{}{}
	return nil
}

func (f *fakeCatalogRepo) CreateProductIfAbsent(_ context.Context, name string, price float64) error {
	if f.err != nil {
		return f.err
	}
	if _, exists := f.products[name]; !exists {
		f.products[name] = price
	}
	return nil
}

type fakeCustomerRepo struct {
	byRealID map[string]*models.Customer
	byUUID   map[string]*models.Customer

	// raceWinnerUUID simulates losing the insert race: the insert is
	// discarded and the winning row carries this uuid instead.
	raceWinnerUUID string

	realIDInserts int
	uuidInserts   int
	err           error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byRealID: make(map[string]*models.Customer),
		byUUID:   make(map[string]*models.Customer),
	}
}

func (f *fakeCustomerRepo) FindByRealID(_ context.Context, realID string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	customer, ok := f.byRealID[realID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepo) CreateIfAbsentByRealID(_ context.Context, realID, uuid string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.realIDInserts++

	if f.raceWinnerUUID != "" {
		winner := &models.Customer{RealID: realID, UUID: f.raceWinnerUUID}
		f.byRealID[realID] = winner
		f.byUUID[winner.UUID] = winner
		return winner.UUID, nil
	}

	if existing, ok := f.byRealID[realID]; ok {
		return existing.UUID, nil
	}
	customer := &models.Customer{RealID: realID, UUID: uuid}
	f.byRealID[realID] = customer
	f.byUUID[uuid] = customer
	return uuid, nil
}

func (f *fakeCustomerRepo) CreateIfAbsentByUUID(_ context.Context, realID, uuid string) error {
	if f.err != nil {
		return f.err
	}
	f.uuidInserts++
	if _, ok := f.byUUID[uuid]; ok {
		return nil
	}
	customer := &models.Customer{RealID: realID, UUID: uuid}
	f.byRealID[realID] = customer
	f.byUUID[uuid] = customer
	return nil
}

type fakePurchaseRepo struct {
	purchases []*models.Purchase
	distinct  int64
	loyal     []repository.LoyalCustomer
	sales     []repository.ProductSales
	err       error
}

func (f *fakePurchaseRepo) Create(_ context.Context, purchase *models.Purchase) error {
	if f.err != nil {
		return f.err
	}
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakePurchaseRepo) CountDistinctCustomers(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.distinct, nil
}

func (f *fakePurchaseRepo) LoyalCustomers(_ context.Context, minPurchases int) ([]repository.LoyalCustomer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.LoyalCustomer
	for _, c := range f.loyal {
		if c.PurchaseCount >= int64(minPurchases) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) ProductSalesCounts(_ context.Context) ([]repository.ProductSales, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sales, nil
}
