package repository

import (
	"testing"
	"time"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentMovements(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockMovementRepo(db)
	product := seedProduct(t, db, "REF-001", "Keyboard", 0, 10)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		movement := &model.StockMovement{
			ProductID: product.ID,
			Kind:      model.MovementIn,
			Quantity:  i + 1,
		}
		movement.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(movement).Error)
	}

	recent, err := repo.Recent(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	// newest first, product joined for display
	assert.Equal(t, 5, recent[0].Quantity)
	assert.Equal(t, 4, recent[1].Quantity)
	require.NotNil(t, recent[0].Product)
	assert.Equal(t, "REF-001", recent[0].Product.Reference)
}

func TestHistoryByProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockMovementRepo(db)
	first := seedProduct(t, db, "REF-001", "Keyboard", 0, 10)
	second := seedProduct(t, db, "REF-002", "Mouse", 0, 10)

	require.NoError(t, db.Create(&model.StockMovement{ProductID: first.ID, Kind: model.MovementIn, Quantity: 2}).Error)
	require.NoError(t, db.Create(&model.StockMovement{ProductID: second.ID, Kind: model.MovementIn, Quantity: 9}).Error)

	history, err := repo.HistoryByProduct(first.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Quantity)
}

func TestDeleteMovementKeepsStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockMovementRepo(db)
	product := seedProduct(t, db, "REF-001", "Keyboard", 10, 5)

	movement := &model.StockMovement{ProductID: product.ID, Kind: model.MovementIn, Quantity: 10}
	require.NoError(t, db.Create(movement).Error)

	require.NoError(t, repo.Delete(movement.ID))

	// the running total is intentionally NOT recomputed
	var fresh model.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	assert.Equal(t, 10, fresh.StockQuantity)

	assert.ErrorIs(t, repo.Delete(uuid.New()), apperr.ErrNotFound)
}
