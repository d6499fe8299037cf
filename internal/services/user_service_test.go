package services_test

import (
	"testing"

	"asteria/internal/models"
	"asteria/internal/repositories"
	"asteria/internal/services"

	"github.com/stretchr/testify/assert"
)

// newUserFixture wires a UserService over in-memory repositories with two
// regular users, one admin, and a few cart items.
func newUserFixture(t *testing.T) (*services.UserService, *repositories.MockUserRepository, *repositories.MockCartItemRepository) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	assert.NoError(t, userRepo.Create(&models.User{ID: 1, Username: "alice", Email: "alice@example.com"}))
	assert.NoError(t, userRepo.Create(&models.User{ID: 2, Username: "bob", Email: "bob@example.com"}))
	assert.NoError(t, userRepo.Create(&models.User{ID: 99, Username: "daonil", Email: "admin@asteriamoon.com", IsAdmin: true}))

	cartRepo := repositories.NewMockCartItemRepository(nil)
	assert.NoError(t, cartRepo.Create(&models.CartItem{UserID: 1, ProductID: 3, Quantity: 2}))
	assert.NoError(t, cartRepo.Create(&models.CartItem{UserID: 1, ProductID: 7, Quantity: 1}))
	assert.NoError(t, cartRepo.Create(&models.CartItem{UserID: 2, ProductID: 3, Quantity: 5}))

	return services.NewUserService(userRepo, cartRepo), userRepo, cartRepo
}

func TestUserService_UpdateProfile(t *testing.T) {
	userService, _, _ := newUserFixture(t)

	// Keeping the current username and email is not a collision.
	user, err := userService.UpdateProfile(alice, "alice", "alice@example.com", "555-0101")
	assert.NoError(t, err)
	assert.Equal(t, "555-0101", user.PhoneNumber)

	// Changing to a free username works.
	user, err = userService.UpdateProfile(alice, "alice2", "alice@example.com", "555-0101")
	assert.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)

	// Colliding with another user's username or email fails.
	_, err = userService.UpdateProfile(alice, "bob", "alice@example.com", "")
	assert.ErrorIs(t, err, services.ErrDuplicateIdentity)

	_, err = userService.UpdateProfile(alice, "alice2", "bob@example.com", "")
	assert.ErrorIs(t, err, services.ErrDuplicateIdentity)

	_, err = userService.UpdateProfile(services.Anonymous, "ghost", "ghost@example.com", "")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestUserService_ListUsers(t *testing.T) {
	userService, _, _ := newUserFixture(t)

	users, err := userService.ListUsers(admin)
	assert.NoError(t, err)
	assert.Len(t, users, 3)

	_, err = userService.ListUsers(alice)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = userService.ListUsers(services.Anonymous)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestUserService_DeleteUserCascades(t *testing.T) {
	userService, userRepo, cartRepo := newUserFixture(t)

	deleted, err := userService.DeleteUser(admin, 1)
	assert.NoError(t, err)
	assert.Equal(t, "alice", deleted.Username)

	// Alice is gone and so are her cart items.
	_, err = userRepo.GetByID(1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	aliceItems, err := cartRepo.ListByUser(1)
	assert.NoError(t, err)
	assert.Empty(t, aliceItems)

	// Bob and his cart are untouched.
	_, err = userRepo.GetByID(2)
	assert.NoError(t, err)
	bobItems, err := cartRepo.ListByUser(2)
	assert.NoError(t, err)
	assert.Len(t, bobItems, 1)

	users, err := userService.ListUsers(admin)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_DeleteUserDenied(t *testing.T) {
	userService, userRepo, _ := newUserFixture(t)

	// An admin may never delete their own account.
	_, err := userService.DeleteUser(admin, admin.ID)
	assert.ErrorIs(t, err, services.ErrSelfDeleteForbidden)

	// Non-admins and anonymous actors are rejected outright.
	_, err = userService.DeleteUser(bob, 1)
	assert.ErrorIs(t, err, services.ErrForbidden)
	_, err = userService.DeleteUser(services.Anonymous, 1)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	// Deleting a user that does not exist is a not-found.
	_, err = userService.DeleteUser(admin, 12345)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Nothing was deleted along the way.
	users, err := userRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 3)
}
