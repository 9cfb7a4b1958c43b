package service

import (
	"testing"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapFirstUserIsAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	alice, err := svc.Register("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, alice.Role)

	bob, err := svc.Register("bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, bob.Role)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	registered, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	_, err = svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)

	user, err := svc.Register("alice", "secret")
	require.NoError(t, err)
	require.NoError(t, userRepo.SetActive(user.ID, false))

	// correct credentials still fail once the account is inactive
	_, err = svc.Authenticate("alice", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register("", "secret")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Register("alice", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Register("alice", "secret")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other")
	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)
}

func TestActiveAdminExists(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)

	exists, err := svc.ActiveAdminExists()
	require.NoError(t, err)
	assert.False(t, exists)

	admin, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	exists, err = svc.ActiveAdminExists()
	require.NoError(t, err)
	assert.True(t, exists)

	// deactivating the only admin reopens the bootstrap window
	require.NoError(t, userRepo.SetActive(admin.ID, false))
	exists, err = svc.ActiveAdminExists()
	require.NoError(t, err)
	assert.False(t, exists)
}
