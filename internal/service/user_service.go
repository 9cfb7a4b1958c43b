package service

import (
	"fmt"
	"strings"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"

	"github.com/google/uuid"
)

// UserService covers the admin-gated account management operations.
type UserService interface {
	CreateUser(username, password, role string) (*model.User, error)
	GetUsers() ([]model.User, error)
	ChangePassword(id uuid.UUID, newPassword string) error
	ChangeRole(id uuid.UUID, role string) error
	Activate(id uuid.UUID) error
	Deactivate(id uuid.UUID) error
	DeleteUser(id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(username, password, role string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be %q or %q", apperr.ErrValidation, model.RoleAdmin, model.RoleUser)
	}

	user := &model.User{
		Username: username,
		Role:     role,
		Active:   true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) ChangePassword(id uuid.UUID, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}

	var user model.User
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(id, user.PasswordHash)
}

func (s *userService) ChangeRole(id uuid.UUID, role string) error {
	if !model.ValidRole(role) {
		return fmt.Errorf("%w: role must be %q or %q", apperr.ErrValidation, model.RoleAdmin, model.RoleUser)
	}
	return s.userRepo.UpdateRole(id, role)
}

func (s *userService) Activate(id uuid.UUID) error {
	return s.userRepo.SetActive(id, true)
}

func (s *userService) Deactivate(id uuid.UUID) error {
	return s.userRepo.SetActive(id, false)
}

func (s *userService) DeleteUser(id uuid.UUID) error {
	return s.userRepo.Delete(id)
}
