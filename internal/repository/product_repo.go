package repository

import (
	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByReference(reference string) (*model.Product, error)
	Search(term string) ([]model.Product, error)
	LowStock() ([]model.Product, error)
	ByCategory(categoryID uuid.UUID) ([]model.Product, error)
	Update(id uuid.UUID, input ProductUpdate) error
	Delete(id uuid.UUID) error
}

// ProductUpdate carries the optional fields of a partial update; nil fields
// are left untouched. Clearing a column back to NULL is not possible through
// this path.
type ProductUpdate struct {
	Reference      *string
	Name           *string
	Description    *string
	UnitPrice      *decimal.Decimal
	StockQuantity  *int
	AlertThreshold *int
	CategoryID     *uuid.UUID
	SupplierID     *uuid.UUID
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return apperr.FromDB(r.db.Create(product).Error)
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Preload("Supplier").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").Preload("Supplier").First(&product, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &product, nil
}

func (r *productRepo) FindByReference(reference string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").Preload("Supplier").First(&product, "reference = ?", reference).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &product, nil
}

func (r *productRepo) Search(term string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + term + "%"
	err := r.db.Preload("Category").Preload("Supplier").
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(reference) LIKE LOWER(?)", pattern, pattern).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) LowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("stock_quantity <= alert_threshold").
		Order("stock_quantity ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) ByCategory(categoryID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(id uuid.UUID, input ProductUpdate) error {
	updates := map[string]interface{}{}
	if input.Reference != nil {
		updates["reference"] = *input.Reference
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.UnitPrice != nil {
		updates["unit_price"] = *input.UnitPrice
	}
	if input.StockQuantity != nil {
		updates["stock_quantity"] = *input.StockQuantity
	}
	if input.AlertThreshold != nil {
		updates["alert_threshold"] = *input.AlertThreshold
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.SupplierID != nil {
		updates["supplier_id"] = *input.SupplierID
	}
	if len(updates) == 0 {
		return apperr.ErrValidation
	}

	res := r.db.Model(&model.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes the product and its movement history in one transaction.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.StockMovement{}).Error; err != nil {
			return apperr.FromDB(err)
		}
		res := tx.Delete(&model.Product{}, "id = ?", id)
		if res.Error != nil {
			return apperr.FromDB(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
