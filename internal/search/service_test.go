package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/pagination"
	"github.com/homez-ar/api/internal/remote"
)

// MockAPI is a mock implementation of remote.API for testing
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Search(ctx context.Context, req remote.SearchRequest) remote.SearchPage {
	args := m.Called(ctx, req)
	return args.Get(0).(remote.SearchPage)
}

func (m *MockAPI) FetchProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func properties(ids ...string) []models.Property {
	out := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Property{
			PropertyID:   id,
			Neighborhood: models.Neighborhood{Name: "Palermo"},
		})
	}
	return out
}

func TestSearch_AssemblesPage(t *testing.T) {
	// Arrange
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, logger.New("test"))
	ctx := context.Background()

	mockAPI.On("Search", ctx, remote.SearchRequest{
		Offset:  24,
		Limit:   pagination.PageSize,
		Filters: &remote.FilterPayload{Currency: "U$D"},
	}).Return(remote.SearchPage{
		Properties: properties("a", "b"),
		Total:      95,
	})

	// Act
	result := service.Search(ctx, 3, models.Filter{Currency: models.CurrencyUSD})

	// Assert
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, pagination.PageSize, result.PageSize)
	assert.Equal(t, 95, result.Total)
	assert.Equal(t, 8, result.TotalPages)
	assert.Len(t, result.Properties, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, result.PageWindow)
	mockAPI.AssertExpectations(t)
}

func TestSearch_ClampsPageBelowOne(t *testing.T) {
	// Arrange
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, logger.New("test"))
	ctx := context.Background()

	// Offset must be 0, never negative
	mockAPI.On("Search", ctx, remote.SearchRequest{
		Offset: 0,
		Limit:  pagination.PageSize,
	}).Return(remote.SearchPage{})

	// Act
	result := service.Search(ctx, -5, models.Filter{})

	// Assert
	assert.Equal(t, 1, result.Page)
	mockAPI.AssertExpectations(t)
}

func TestSearch_LocationFilterOverridesTotal(t *testing.T) {
	// Arrange
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, logger.New("test"))
	ctx := context.Background()

	fetched := []models.Property{
		{PropertyID: "1", Neighborhood: models.Neighborhood{Name: "Palermo"}},
		{PropertyID: "2", Neighborhood: models.Neighborhood{Name: "Belgrano"}},
		{PropertyID: "3", City: models.City{Name: "Palermo"}},
	}

	mockAPI.On("Search", ctx, mock.Anything).Return(remote.SearchPage{
		Properties: fetched,
		Total:      300, // remote total ignores the location narrowing
	})

	// Act
	result := service.Search(ctx, 1, models.Filter{Location: "palermo"})

	// Assert
	require.Len(t, result.Properties, 2)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	mockAPI.AssertExpectations(t)
}

func TestSearch_RemoteTotalKeptWithoutLocation(t *testing.T) {
	// Arrange
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, logger.New("test"))
	ctx := context.Background()

	mockAPI.On("Search", ctx, mock.Anything).Return(remote.SearchPage{
		Properties: properties("a"),
		Total:      300,
	})

	// Act
	result := service.Search(ctx, 1, models.Filter{Currency: models.CurrencyARS})

	// Assert
	assert.Equal(t, 300, result.Total)
	assert.Equal(t, 25, result.TotalPages)
	mockAPI.AssertExpectations(t)
}

func TestSearch_EmptyUpstreamYieldsEmptyResult(t *testing.T) {
	// Arrange
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, logger.New("test"))
	ctx := context.Background()

	mockAPI.On("Search", ctx, mock.Anything).Return(remote.SearchPage{})

	// Act
	result := service.Search(ctx, 1, models.Filter{})

	// Assert
	assert.Empty(t, result.Properties)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.TotalPages)
	assert.Empty(t, result.PageWindow)
	mockAPI.AssertExpectations(t)
}
