package service

import (
	"testing"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	user, err := svc.CreateUser("carol", "secret", model.RoleUser)
	require.NoError(t, err)
	assert.True(t, user.Active)
	assert.True(t, user.CheckPassword("secret"))

	_, err = svc.CreateUser("dave", "secret", "superuser")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.CreateUser("", "secret", model.RoleUser)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.CreateUser("carol", "secret", model.RoleUser)
	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewUserService(userRepo)
	auth := NewAuthService(userRepo)

	user, err := svc.CreateUser("carol", "old", model.RoleUser)
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangePassword(user.ID, ""), apperr.ErrValidation)
	require.NoError(t, svc.ChangePassword(user.ID, "new"))

	_, err = auth.Authenticate("carol", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Authenticate("carol", "new")
	assert.NoError(t, err)
}

func TestChangeRole(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewUserService(userRepo)

	user, err := svc.CreateUser("carol", "secret", model.RoleUser)
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangeRole(user.ID, "root"), apperr.ErrValidation)
	require.NoError(t, svc.ChangeRole(user.ID, model.RoleAdmin))

	fresh, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, fresh.Role)

	assert.ErrorIs(t, svc.ChangeRole(uuid.New(), model.RoleUser), apperr.ErrNotFound)
}

func TestActivateDeactivateDelete(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewUserService(userRepo)

	user, err := svc.CreateUser("carol", "secret", model.RoleUser)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(user.ID))
	fresh, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, fresh.Active)

	require.NoError(t, svc.Activate(user.ID))
	fresh, err = userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, fresh.Active)

	require.NoError(t, svc.DeleteUser(user.ID))
	_, err = userRepo.FindByID(user.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteUser(user.ID), apperr.ErrNotFound)
}
