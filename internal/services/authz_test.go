package services_test

import (
	"testing"

	"asteria/internal/models"
	"asteria/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	user := services.Actor{ID: 1, Username: "alice", Authenticated: true}
	admin := services.Actor{ID: 2, Username: "daonil", IsAdmin: true, Authenticated: true}

	publicActions := []services.Action{
		services.ActionBrowseCatalog,
		services.ActionViewProduct,
		services.ActionSubmitSuggestion,
		services.ActionRegister,
		services.ActionLogin,
	}
	selfServiceActions := []services.Action{
		services.ActionEditProfile,
		services.ActionViewOwnCart,
		services.ActionModifyOwnCart,
	}
	adminActions := []services.Action{
		services.ActionListUsers,
		services.ActionListSuggestions,
		services.ActionViewAnyCart,
		services.ActionDeleteUser,
	}

	for _, action := range publicActions {
		assert.NoError(t, services.Authorize(services.Anonymous, action, nil))
		assert.NoError(t, services.Authorize(user, action, nil))
		assert.NoError(t, services.Authorize(admin, action, nil))
	}

	for _, action := range selfServiceActions {
		assert.ErrorIs(t, services.Authorize(services.Anonymous, action, nil), services.ErrUnauthenticated)
		assert.NoError(t, services.Authorize(user, action, nil))
		assert.NoError(t, services.Authorize(admin, action, nil))
	}

	for _, action := range adminActions {
		assert.ErrorIs(t, services.Authorize(services.Anonymous, action, nil), services.ErrUnauthenticated)
		assert.ErrorIs(t, services.Authorize(user, action, nil), services.ErrForbidden)
		assert.NoError(t, services.Authorize(admin, action, nil))
	}
}

func TestAuthorize_SelfDeleteForbidden(t *testing.T) {
	admin := services.Actor{ID: 2, Username: "daonil", IsAdmin: true, Authenticated: true}

	// An admin may delete other accounts but never their own.
	other := &models.User{ID: 1, Username: "alice"}
	assert.NoError(t, services.Authorize(admin, services.ActionDeleteUser, other))

	self := &models.User{ID: 2, Username: "daonil", IsAdmin: true}
	assert.ErrorIs(t, services.Authorize(admin, services.ActionDeleteUser, self), services.ErrSelfDeleteForbidden)
}
