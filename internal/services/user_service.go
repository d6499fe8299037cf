package services

import (
	"errors"
	"fmt"

	"asteria/internal/models"
	"asteria/internal/repositories"
)

// UserService handles profile self-service and the admin user management
// actions, including the cart cascade on user deletion.
type UserService struct {
	userRepo repositories.UserRepository
	cartRepo repositories.CartItemRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, cartRepo repositories.CartItemRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// GetProfile returns the actor's own user record.
func (s *UserService) GetProfile(actor Actor) (*models.User, error) {
	if err := Authorize(actor, ActionEditProfile, nil); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the actor's username, email, and phone number. The
// uniqueness checks exclude the actor's own row, so keeping the current
// username or email is not a collision.
func (s *UserService) UpdateProfile(actor Actor, username, email, phoneNumber string) (*models.User, error) {
	if err := Authorize(actor, ActionEditProfile, nil); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if username != user.Username {
		if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
			return nil, fmt.Errorf("username %q already taken: %w", username, ErrDuplicateIdentity)
		}
	}
	if email != user.Email {
		if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
			return nil, fmt.Errorf("email %q already registered: %w", email, ErrDuplicateIdentity)
		}
	}

	user.Username = username
	user.Email = email
	user.PhoneNumber = phoneNumber
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ListUsers is the admin-only listing of all users.
func (s *UserService) ListUsers(actor Actor) ([]models.User, error) {
	if err := Authorize(actor, ActionListUsers, nil); err != nil {
		return nil, err
	}
	return s.userRepo.GetAll()
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes a user and, as an explicit cascade, all of their cart
// items. Only admins may delete users, and never their own account.
func (s *UserService) DeleteUser(actor Actor, targetID uint) (*models.User, error) {
	// Deny non-admins before revealing whether the target exists.
	if err := Authorize(actor, ActionDeleteUser, nil); err != nil {
		return nil, err
	}

	target, err := s.GetUser(targetID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, ActionDeleteUser, target); err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteByUser(target.ID); err != nil {
		return nil, fmt.Errorf("failed to delete cart items of user %d: %w", target.ID, err)
	}
	if err := s.userRepo.Delete(target.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user %d: %w", target.ID, err)
	}
	return target, nil
}
