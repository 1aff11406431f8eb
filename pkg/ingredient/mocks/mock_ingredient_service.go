package mocks

import (
	"Recipe-App-Backend/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) GetIngredients(ctx context.Context, userID string, assignedOnly bool) ([]domain.IngredientResponse, error) {
	args := m.Called(ctx, userID, assignedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IngredientResponse), args.Error(1)
}

func (m *MockIngredientService) GetIngredientByID(ctx context.Context, ingredientID string, userID string) (domain.IngredientResponse, error) {
	args := m.Called(ctx, ingredientID, userID)
	return args.Get(0).(domain.IngredientResponse), args.Error(1)
}

func (m *MockIngredientService) CreateIngredient(ctx context.Context, req domain.IngredientRequest, userID string) (domain.IngredientResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.IngredientResponse), args.Error(1)
}

func (m *MockIngredientService) UpdateIngredient(ctx context.Context, ingredientID string, req domain.IngredientRequest, userID string) (domain.IngredientResponse, error) {
	args := m.Called(ctx, ingredientID, req, userID)
	return args.Get(0).(domain.IngredientResponse), args.Error(1)
}

func (m *MockIngredientService) DeleteIngredient(ctx context.Context, ingredientID string, userID string) error {
	args := m.Called(ctx, ingredientID, userID)
	return args.Error(0)
}
