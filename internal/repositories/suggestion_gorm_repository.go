package repositories

import (
	"fmt"

	"asteria/internal/models"

	"gorm.io/gorm"
)

// GORMSuggestionRepository is a GORM implementation of SuggestionRepository.
type GORMSuggestionRepository struct {
	db *gorm.DB
}

// NewGORMSuggestionRepository creates a new instance of GORMSuggestionRepository.
func NewGORMSuggestionRepository(db *gorm.DB) *GORMSuggestionRepository {
	return &GORMSuggestionRepository{
		db: db,
	}
}

// Create creates a new suggestion in the database.
func (r *GORMSuggestionRepository) Create(suggestion *models.Suggestion) error {
	if err := r.db.Create(suggestion).Error; err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	return nil
}

// GetAll retrieves all suggestions, newest first.
func (r *GORMSuggestionRepository) GetAll() ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	if err := r.db.Order("id desc").Find(&suggestions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suggestions: %w", err)
	}
	return suggestions, nil
}
