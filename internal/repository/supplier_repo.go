package repository

import (
	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	Update(id uuid.UUID, input SupplierUpdate) error
	Delete(id uuid.UUID) error
}

type SupplierUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return apperr.FromDB(r.db.Create(supplier).Error)
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(id uuid.UUID, input SupplierUpdate) error {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if len(updates) == 0 {
		return apperr.ErrValidation
	}

	res := r.db.Model(&model.Supplier{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Supplier{}, "id = ?", id)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
