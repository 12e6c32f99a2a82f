// internal/services/loader_service.go
package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/freshchain/pos-backend/internal/models"
	"github.com/freshchain/pos-backend/internal/repository"
)

// timestampLayouts are tried in order when parsing historical purchase
// timestamps from the CSV.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoaderService ingests catalog and historical purchase data from CSV
// files. Supermarkets and products load insert-if-absent; purchases load
// unconditionally. The three routines must run in order because purchases
// reference the other two tables.
type LoaderService struct {
	catalogRepo  repository.CatalogRepository
	customerRepo repository.CustomerRepository
	purchaseRepo repository.PurchaseRepository
}

func NewLoaderService(catalogRepo repository.CatalogRepository, customerRepo repository.CustomerRepository, purchaseRepo repository.PurchaseRepository) *LoaderService {
	return &LoaderService{
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		purchaseRepo: purchaseRepo,
	}
}

// LoadAll runs the three ingestion routines in dependency order.
func (s *LoaderService) LoadAll(ctx context.Context, supermarketsPath, productsPath, purchasesPath string) error {
	logrus.Info("Starting data initialization...")

	logrus.Info("Loading supermarkets...")
	n, err := s.LoadSupermarkets(ctx, supermarketsPath)
	if err != nil {
		return fmt.Errorf("loading supermarkets: %w", err)
	}
	logrus.WithField("rows", n).Info("Supermarkets loaded")

	logrus.Info("Loading products...")
	n, err = s.LoadProducts(ctx, productsPath)
	if err != nil {
		return fmt.Errorf("loading products: %w", err)
	}
	logrus.WithField("rows", n).Info("Products loaded")

	logrus.Info("Loading purchases...")
	n, err = s.LoadPurchases(ctx, purchasesPath)
	if err != nil {
		return fmt.Errorf("loading purchases: %w", err)
	}
	logrus.WithField("rows", n).Info("Purchases loaded")

	logrus.Info("All data loaded successfully")
	return nil
}

// LoadSupermarkets reads the id column and inserts each supermarket unless
// it already exists.
func (s *LoaderService) LoadSupermarkets(ctx context.Context, path string) (int, error) {
	rows, err := readCSV(path, []string{"id"})
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, row := range rows {
		id := strings.TrimSpace(row["id"])
		if err := s.catalogRepo.CreateSupermarketIfAbsent(ctx, id); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// LoadProducts reads name and price columns and inserts each product unless
// the name already exists (first write wins).
func (s *LoaderService) LoadProducts(ctx context.Context, path string) (int, error) {
	rows, err := readCSV(path, []string{"product_name", "unit_price"})
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, row := range rows {
		name := strings.TrimSpace(row["product_name"])
		price, err := strconv.ParseFloat(strings.TrimSpace(row["unit_price"]), 64)
		if err != nil {
			return loaded, fmt.Errorf("row %d: invalid unit_price for %s: %w", loaded+1, name, err)
		}
		if err := s.catalogRepo.CreateProductIfAbsent(ctx, name, price); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// LoadPurchases ingests historical purchases. The first time a user_id is
// seen in the run, a customer is minted with a sequential synthetic real_id
// and the file's user_id stored as the uuid column; the roles of real_id
// and uuid are inverted relative to live registration, and that inversion
// is load-bearing for historical data. Purchase rows themselves insert
// unconditionally, with no duplicate detection.
func (s *LoaderService) LoadPurchases(ctx context.Context, path string) (int, error) {
	rows, err := readCSV(path, []string{"supermarket_id", "timestamp", "user_id", "items_list", "total_amount"})
	if err != nil {
		return 0, err
	}

	seenUUIDs := make(map[string]struct{})
	customerCounter := 1

	loaded := 0
	for _, row := range rows {
		supermarketID := strings.TrimSpace(row["supermarket_id"])
		userUUID := strings.TrimSpace(row["user_id"])

		timestamp, err := parseTimestamp(strings.TrimSpace(row["timestamp"]))
		if err != nil {
			return loaded, fmt.Errorf("row %d: %w", loaded+1, err)
		}

		totalAmount, err := strconv.ParseFloat(strings.TrimSpace(row["total_amount"]), 64)
		if err != nil {
			return loaded, fmt.Errorf("row %d: invalid total_amount: %w", loaded+1, err)
		}

		items := splitItems(row["items_list"])

		if _, seen := seenUUIDs[userUUID]; !seen {
			realID := fmt.Sprintf("customer_%06d", customerCounter)
			if err := s.customerRepo.CreateIfAbsentByUUID(ctx, realID, userUUID); err != nil {
				return loaded, err
			}
			seenUUIDs[userUUID] = struct{}{}
			customerCounter++
		}

		purchase := &models.Purchase{
			SupermarketID: supermarketID,
			Timestamp:     timestamp,
			UserID:        userUUID,
			ItemList:      pq.StringArray(items),
			TotalAmount:   totalAmount,
		}
		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

func splitItems(itemsList string) []string {
	parts := strings.Split(itemsList, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return items
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %s", value)
}

// readCSV reads a headered CSV file into column-keyed rows. A UTF-8 BOM on
// the first header cell is tolerated. Missing required columns fail before
// any row is returned.
func readCSV(path string, required []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", path, col)
		}
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		row := make(map[string]string, len(required))
		for col, i := range index {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
