package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Authenticate(username, password string) (*model.User, error)
	Register(username, password string) (*model.User, error)
	ActiveAdminExists() (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Authenticate succeeds only when the username exists, the account is active
// and the password matches the stored hash. All three failure cases report
// the same error so the login screen cannot leak which one it was.
func (s *authService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register creates a self-service account. The very first account in an
// empty user table is granted the administrator role; everyone after that
// gets the plain user role.
func (s *authService) Register(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	count, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	role := model.RoleUser
	if count == 0 {
		role = model.RoleAdmin
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

func (s *authService) ActiveAdminExists() (bool, error) {
	return s.userRepo.ActiveAdminExists()
}
