package service

import (
	"errors"
	"fmt"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"
	"github.com/Remisdv/BDD/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRecentLimit bounds the "recent movements" listing.
const DefaultRecentLimit = 50

// MovementInput is a request to move stock in or out of a product.
type MovementInput struct {
	ProductID uuid.UUID `validate:"uuid_required"`
	Quantity  int       `validate:"required,gt=0"`
	Reason    string
}

type StockService interface {
	RecordInbound(input MovementInput) (*model.StockMovement, error)
	RecordOutbound(input MovementInput) (*model.StockMovement, error)
	History(productID uuid.UUID) ([]model.StockMovement, error)
	Recent(limit int) ([]model.StockMovement, error)
}

type stockService struct {
	movementRepo repository.StockMovementRepository
	db           *gorm.DB
}

func NewStockService(movementRepo repository.StockMovementRepository, db *gorm.DB) StockService {
	return &stockService{
		movementRepo: movementRepo,
		db:           db,
	}
}

// RecordInbound appends an IN movement and increments the product's on-hand
// quantity. Both writes share one transaction.
func (s *stockService) RecordInbound(input MovementInput) (*model.StockMovement, error) {
	return s.record(model.MovementIn, input)
}

// RecordOutbound appends an OUT movement and decrements the product's on-hand
// quantity. Fails with apperr.ErrInsufficientStock when the on-hand quantity
// is below the requested amount; the check and the decrement run as a single
// guarded UPDATE, so a concurrent writer cannot drive the stock negative.
func (s *stockService) RecordOutbound(input MovementInput) (*model.StockMovement, error) {
	return s.record(model.MovementOut, input)
}

func (s *stockService) record(kind model.MovementKind, input MovementInput) (*model.StockMovement, error) {
	if errs := validator.ValidateStruct(&input); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, validator.FirstMessage(errs))
	}

	movement := &model.StockMovement{
		ProductID: input.ProductID,
		Kind:      kind,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}

		update := tx.Model(&model.Product{}).Where("id = ?", product.ID)
		switch kind {
		case model.MovementIn:
			update = update.Update("stock_quantity", gorm.Expr("stock_quantity + ?", input.Quantity))
		case model.MovementOut:
			update = update.
				Where("stock_quantity >= ?", input.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", input.Quantity))
		}
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			// The row existed above, so the quantity guard is what failed.
			return apperr.ErrInsufficientStock
		}

		return tx.Create(movement).Error
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

func (s *stockService) History(productID uuid.UUID) ([]model.StockMovement, error) {
	return s.movementRepo.HistoryByProduct(productID)
}

func (s *stockService) Recent(limit int) ([]model.StockMovement, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.movementRepo.Recent(limit)
}
