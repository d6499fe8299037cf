package repositories

import (
	"sort"
	"sync"

	"asteria/internal/models"
)

// MockSuggestionRepository is an in-memory implementation of
// SuggestionRepository.
type MockSuggestionRepository struct {
	suggestions []models.Suggestion
	nextID      uint
	mu          sync.RWMutex
}

// NewMockSuggestionRepository creates a new instance of MockSuggestionRepository.
func NewMockSuggestionRepository() *MockSuggestionRepository {
	return &MockSuggestionRepository{nextID: 1}
}

// Create appends a new suggestion.
func (r *MockSuggestionRepository) Create(suggestion *models.Suggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if suggestion.ID == 0 {
		suggestion.ID = r.nextID
		r.nextID++
	}
	r.suggestions = append(r.suggestions, *suggestion)
	return nil
}

// GetAll returns all suggestions, newest first.
func (r *MockSuggestionRepository) GetAll() ([]models.Suggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suggestionList := make([]models.Suggestion, len(r.suggestions))
	copy(suggestionList, r.suggestions)
	sort.Slice(suggestionList, func(i, j int) bool { return suggestionList[i].ID > suggestionList[j].ID })
	return suggestionList, nil
}
