package ingredient_test

import (
	"context"
	"testing"

	"Recipe-App-Backend/domain"
	"Recipe-App-Backend/entities"
	"Recipe-App-Backend/pkg/ingredient"
	"Recipe-App-Backend/pkg/ingredient/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestIngredientService_GetIngredients(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("maps entities to responses", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		salt := &entities.Ingredient{ID: uuid.New(), Name: "Salt"}
		kale := &entities.Ingredient{ID: uuid.New(), Name: "Kale"}
		mockRepo.On("GetIngredients", ctx, userID, false).
			Return([]*entities.Ingredient{salt, kale}, nil).Once()

		res, err := svc.GetIngredients(ctx, userID, false)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, salt.ID.String(), res[0].ID)
		assert.Equal(t, "Salt", res[0].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("passes assigned_only through", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		mockRepo.On("GetIngredients", ctx, userID, true).
			Return([]*entities.Ingredient{}, nil).Once()

		res, err := svc.GetIngredients(ctx, userID, true)

		assert.NoError(t, err)
		assert.Empty(t, res)
		mockRepo.AssertExpectations(t)
	})
}

func TestIngredientService_CreateIngredient(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("resolves through get-or-create", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		existing := &entities.Ingredient{ID: uuid.New(), Name: "Cucumber"}
		mockRepo.On("GetOrCreateIngredient", ctx, userID, "Cucumber").
			Return(existing, nil).Once()

		res, err := svc.CreateIngredient(ctx, domain.IngredientRequest{Name: "Cucumber"}, userID)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID.String(), res.ID)
		assert.Equal(t, "Cucumber", res.Name)
		mockRepo.AssertExpectations(t)
	})
}

func TestIngredientService_UpdateIngredient(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	ingredientID := uuid.NewString()

	t.Run("persists new name", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		current := &entities.Ingredient{ID: uuid.MustParse(ingredientID), Name: "Cabage"}
		mockRepo.On("GetIngredientByID", ctx, ingredientID, userID).Return(current, nil).Once()
		mockRepo.On("UpdateIngredient", ctx, mock.MatchedBy(func(ing *entities.Ingredient) bool {
			return ing.Name == "Cabbage"
		})).Return(nil).Once()

		res, err := svc.UpdateIngredient(ctx, ingredientID, domain.IngredientRequest{Name: "Cabbage"}, userID)

		assert.NoError(t, err)
		assert.Equal(t, "Cabbage", res.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		mockRepo.On("GetIngredientByID", ctx, ingredientID, userID).
			Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.UpdateIngredient(ctx, ingredientID, domain.IngredientRequest{Name: "Cabbage"}, userID)

		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestIngredientService_DeleteIngredient(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	ingredientID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		mockRepo.On("DeleteIngredient", ctx, ingredientID, userID).Return(nil).Once()

		assert.NoError(t, svc.DeleteIngredient(ctx, ingredientID, userID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found maps to domain error", func(t *testing.T) {
		mockRepo := new(mocks.MockIngredientRepository)
		svc := ingredient.NewIngredientService(mockRepo)

		mockRepo.On("DeleteIngredient", ctx, ingredientID, userID).
			Return(gorm.ErrRecordNotFound).Once()

		err := svc.DeleteIngredient(ctx, ingredientID, userID)

		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
		mockRepo.AssertExpectations(t)
	})
}
