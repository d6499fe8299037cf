package services

import "asteria/internal/models"

// Actor is the identity performing a request: either Anonymous or a user
// resolved from a session token. It is passed explicitly into every service
// call rather than read from ambient state.
type Actor struct {
	ID            uint
	Username      string
	IsAdmin       bool
	Authenticated bool
}

// Anonymous is the non-authenticated actor.
var Anonymous = Actor{}

// Action enumerates the operations the authorization policy knows about.
type Action int

const (
	ActionBrowseCatalog Action = iota
	ActionViewProduct
	ActionSubmitSuggestion
	ActionRegister
	ActionLogin
	ActionEditProfile
	ActionViewOwnCart
	ActionModifyOwnCart
	ActionListUsers
	ActionListSuggestions
	ActionViewAnyCart
	ActionDeleteUser
)

// Authorize decides whether the actor may perform the action. Target is only
// consulted for actions aimed at another user (currently delete-user) and may
// be nil otherwise. Public actions are always allowed, self-service actions
// require authentication, and admin actions require the admin flag. An admin
// may never delete their own account.
func Authorize(actor Actor, action Action, target *models.User) error {
	switch action {
	case ActionBrowseCatalog, ActionViewProduct, ActionSubmitSuggestion, ActionRegister, ActionLogin:
		return nil

	case ActionEditProfile, ActionViewOwnCart, ActionModifyOwnCart:
		if !actor.Authenticated {
			return ErrUnauthenticated
		}
		return nil

	case ActionListUsers, ActionListSuggestions, ActionViewAnyCart, ActionDeleteUser:
		if !actor.Authenticated {
			return ErrUnauthenticated
		}
		if !actor.IsAdmin {
			return ErrForbidden
		}
		if action == ActionDeleteUser && target != nil && target.ID == actor.ID {
			return ErrSelfDeleteForbidden
		}
		return nil
	}

	// Unknown actions are denied rather than silently allowed.
	return ErrForbidden
}
