// cmd/loader/main.go
package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/freshchain/pos-backend/internal/config"
	"github.com/freshchain/pos-backend/internal/database"
	"github.com/freshchain/pos-backend/internal/repository"
	"github.com/freshchain/pos-backend/internal/services"
)

// One-shot batch loader. Ingests supermarkets, products and historical
// purchases in that order; purchases reference the other two tables.
func main() {
	supermarketsPath := flag.String("supermarkets", "supermarkets.csv", "path to the supermarkets CSV")
	productsPath := flag.String("products", "products_list.csv", "path to the products CSV")
	purchasesPath := flag.String("purchases", "purchases.csv", "path to the historical purchases CSV")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	loader := services.NewLoaderService(
		repository.NewGormCatalogRepo(db),
		repository.NewGormCustomerRepo(db),
		repository.NewGormPurchaseRepo(db),
	)

	if err := loader.LoadAll(context.Background(), *supermarketsPath, *productsPath, *purchasesPath); err != nil {
		logrus.Fatal("Data initialization failed: ", err)
	}
}
