package repository

import (
	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockMovementRepository interface {
	Recent(limit int) ([]model.StockMovement, error)
	HistoryByProduct(productID uuid.UUID) ([]model.StockMovement, error)
	Delete(id uuid.UUID) error
}

type movementRepo struct {
	db *gorm.DB
}

func NewStockMovementRepo(db *gorm.DB) StockMovementRepository {
	return &movementRepo{db}
}

// Recent returns the latest movements with their product preloaded for
// reference/name display, newest first.
func (r *movementRepo) Recent(limit int) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, err
}

func (r *movementRepo) HistoryByProduct(productID uuid.UUID) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}

// Delete removes a ledger entry without recomputing the product's on-hand
// quantity. Exploratory maintenance path; using it desynchronizes the
// running total from the ledger.
func (r *movementRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.StockMovement{}, "id = ?", id)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
