package services

import (
	"fmt"
	"log"

	"asteria/internal/models"
	"asteria/internal/repositories"
	"asteria/pkg/rabbitmq"
)

// SuggestionService handles the public contact form intake and the admin
// listing of received suggestions.
type SuggestionService struct {
	repo     repositories.SuggestionRepository
	mqClient *rabbitmq.Client
}

// NewSuggestionService creates a new SuggestionService. The RabbitMQ client
// may be nil, in which case no events are published.
func NewSuggestionService(repo repositories.SuggestionRepository, mqClient *rabbitmq.Client) *SuggestionService {
	return &SuggestionService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// Submit persists a suggestion from the contact form. There is no
// deduplication and no rate limiting; field presence is the caller's
// concern. After the write, a suggestion.created event is published so
// downstream consumers (admin notifications) can react; publish failures are
// logged and do not fail the submission.
func (s *SuggestionService) Submit(name, email, message string) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.repo.Create(suggestion); err != nil {
		return nil, fmt.Errorf("failed to save suggestion: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"suggestionID": suggestion.ID,
			"name":         suggestion.Name,
			"email":        suggestion.Email,
		}
		if err := s.mqClient.PublishSuggestionCreated(event); err != nil {
			log.Printf("Warning: failed to publish suggestion created event for suggestion %d: %v", suggestion.ID, err)
		}
	}

	return suggestion, nil
}

// ListAll is the admin-only listing of all suggestions, newest first.
func (s *SuggestionService) ListAll(actor Actor) ([]models.Suggestion, error) {
	if err := Authorize(actor, ActionListSuggestions, nil); err != nil {
		return nil, err
	}
	return s.repo.GetAll()
}
