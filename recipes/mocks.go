package recipes

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coldhands175/globedine/models"
)

// MockFetcher is a mock implementation of the Fetcher interface for
// testing
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher creates a new mock fetcher
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

// FetchRecipesForCuisine mocks the FetchRecipesForCuisine method
func (m *MockFetcher) FetchRecipesForCuisine(ctx context.Context, cuisine string) ([]models.RecipeRecord, error) {
	args := m.Called(ctx, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeRecord), args.Error(1)
}
