package services_test

import (
	"testing"

	"asteria/internal/repositories"
	"asteria/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionService_Submit(t *testing.T) {
	repo := repositories.NewMockSuggestionRepository()
	// nil RabbitMQ client: submissions must work without a broker.
	suggestionService := services.NewSuggestionService(repo, nil)

	suggestion, err := suggestionService.Submit("Carla", "carla@example.com", "More emerald pieces, please")
	assert.NoError(t, err)
	assert.NotZero(t, suggestion.ID)
	assert.Equal(t, "Carla", suggestion.Name)

	stored, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "More emerald pieces, please", stored[0].Message)
}

func TestSuggestionService_ListAllNewestFirst(t *testing.T) {
	repo := repositories.NewMockSuggestionRepository()
	suggestionService := services.NewSuggestionService(repo, nil)

	for _, message := range []string{"first", "second", "third"} {
		_, err := suggestionService.Submit("Carla", "carla@example.com", message)
		assert.NoError(t, err)
	}

	suggestions, err := suggestionService.ListAll(admin)
	assert.NoError(t, err)
	assert.Len(t, suggestions, 3)
	assert.Equal(t, "third", suggestions[0].Message)
	assert.Equal(t, "first", suggestions[2].Message)
}

func TestSuggestionService_ListAllAdminOnly(t *testing.T) {
	repo := repositories.NewMockSuggestionRepository()
	suggestionService := services.NewSuggestionService(repo, nil)

	_, err := suggestionService.ListAll(alice)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = suggestionService.ListAll(services.Anonymous)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}
