package repository

import (
	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindAll() ([]model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Count() (int64, error)
	ActiveAdminExists() (bool, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
	UpdateRole(id uuid.UUID, role string) error
	SetActive(id uuid.UUID, active bool) error
	Delete(id uuid.UUID) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(user *model.User) error {
	return apperr.FromDB(r.db.Create(user).Error)
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Order("username ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &user, nil
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &user, nil
}

func (r *userRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// ActiveAdminExists gates whether self-registration is still offered.
func (r *userRepo) ActiveAdminExists() (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("role = ? AND active = ?", model.RoleAdmin, true).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) UpdatePassword(id uuid.UUID, passwordHash string) error {
	return r.updateColumn(id, "password_hash", passwordHash)
}

func (r *userRepo) UpdateRole(id uuid.UUID, role string) error {
	return r.updateColumn(id, "role", role)
}

func (r *userRepo) SetActive(id uuid.UUID, active bool) error {
	return r.updateColumn(id, "active", active)
}

func (r *userRepo) updateColumn(id uuid.UUID, column string, value interface{}) error {
	res := r.db.Model(&model.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
