package mocks

import (
	"Recipe-App-Backend/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.RecipeDetailResponse), args.Error(1)
}

func (m *MockRecipeService) GetRecipes(ctx context.Context, userID string, filter domain.RecipeListFilter) ([]domain.RecipeResponse, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Get(0).(domain.RecipeDetailResponse), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	args := m.Called(ctx, recipeID, req, userID)
	return args.Get(0).(domain.RecipeDetailResponse), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockRecipeService) UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string) (domain.UploadRecipeImageResponse, error) {
	args := m.Called(ctx, recipeID, req, userID)
	return args.Get(0).(domain.UploadRecipeImageResponse), args.Error(1)
}
