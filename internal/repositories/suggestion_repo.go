package repositories

import "asteria/internal/models"

// SuggestionRepository defines the interface for suggestion data access.
// Suggestions are append-only; there are no update or delete paths.
type SuggestionRepository interface {
	Create(suggestion *models.Suggestion) error
	// GetAll returns suggestions newest first (descending ID).
	GetAll() ([]models.Suggestion, error)
}
