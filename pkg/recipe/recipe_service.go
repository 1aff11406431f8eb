package recipe

import (
	"Recipe-App-Backend/domain"
	"Recipe-App-Backend/entities"
	"Recipe-App-Backend/internal/utils/storage"
	"Recipe-App-Backend/pkg/ingredient"
	"Recipe-App-Backend/pkg/tag"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, userID string, filter domain.RecipeListFilter) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

// resolveTags maps nested tag payloads to rows owned by the requesting
// user, creating any that do not exist yet.
func (s *recipeService) resolveTags(ctx context.Context, reqs []domain.TagRequest, userID string) ([]*entities.Tag, error) {
	tags := make([]*entities.Tag, 0, len(reqs))
	for _, req := range reqs {
		t, err := s.tagRepository.GetOrCreateTag(ctx, userID, req.Name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, reqs []domain.IngredientRequest, userID string) ([]*entities.Ingredient, error) {
	ingredients := make([]*entities.Ingredient, 0, len(reqs))
	for _, req := range reqs {
		ing, err := s.ingredientRepository.GetOrCreateIngredient(ctx, userID, req.Name)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.TagResponse{ID: t.ID.String(), Name: t.Name})
	}

	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{ID: ing.ID.String(), Name: ing.Name})
	}

	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		ImageURL:    recipe.ImageURL,
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   recipe.CreatedAt,
	}
}

func toRecipeDetailResponse(recipe *entities.Recipe) domain.RecipeDetailResponse {
	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Description:    recipe.Description,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	tags, err := s.resolveTags(ctx, req.Tags, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients, err := s.resolveIngredients(ctx, req.Ingredients, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Description: req.Description,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, filter domain.RecipeListFilter) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.TimeMinutes > 0 {
		recipe.TimeMinutes = req.TimeMinutes
	}
	if req.Price > 0 {
		recipe.Price = req.Price
	}
	if req.Link != "" {
		recipe.Link = req.Link
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	// A nil slice means the field was omitted and associations stay as
	// they are; a present (even empty) slice clears and replaces them.
	if req.Tags != nil {
		tags, err := s.resolveTags(ctx, *req.Tags, userID)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.recipeRepository.ReplaceTags(ctx, recipe, tags); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Tags = tags
	}

	if req.Ingredients != nil {
		ingredients, err := s.resolveIngredients(ctx, *req.Ingredients, userID)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		recipe.Ingredients = ingredients
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe); err != nil {
		return err
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string) (domain.UploadRecipeImageResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadRecipeImageResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadRecipeImageResponse{}, err
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}

	if uploadErr != nil {
		if errors.Is(uploadErr, storage.ErrFileTypeNotAllowed) {
			return domain.UploadRecipeImageResponse{}, domain.ErrInvalidImageFormat
		}
		return domain.UploadRecipeImageResponse{}, uploadErr
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{
		ID:       recipe.ID.String(),
		ImageURL: recipe.ImageURL,
	}, nil
}
