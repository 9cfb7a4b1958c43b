package repository

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

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.StockMovement{},
		&model.User{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, reference, name string, stock, threshold int) *model.Product {
	t.Helper()

	product := &model.Product{
		Reference:      reference,
		Name:           name,
		UnitPrice:      decimal.NewFromFloat(19.90),
		StockQuantity:  stock,
		AlertThreshold: threshold,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
