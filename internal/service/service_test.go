package service

import (
	"testing"

	"github.com/Remisdv/BDD/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // a single in-memory database for the whole test

	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.StockMovement{},
		&model.User{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, reference string, stock, threshold int) *model.Product {
	t.Helper()

	product := &model.Product{
		Reference:      reference,
		Name:           "Product " + reference,
		UnitPrice:      decimal.NewFromFloat(9.99),
		StockQuantity:  stock,
		AlertThreshold: threshold,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, p *model.Product) *model.Product {
	t.Helper()

	var fresh model.Product
	require.NoError(t, db.First(&fresh, "id = ?", p.ID).Error)
	return &fresh
}
