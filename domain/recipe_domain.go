package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidImageFormat       = errors.New("invalid image format")
)

type (
	CreateRecipeRequest struct {
		Title       string              `json:"title" validate:"required,max=255"`
		TimeMinutes int                 `json:"time_minutes" validate:"required,min=1"`
		Price       float64             `json:"price" validate:"required,min=0"`
		Link        string              `json:"link" validate:"omitempty,max=255"`
		Description string              `json:"description" validate:"omitempty"`
		Tags        []TagRequest        `json:"tags" validate:"omitempty,dive"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	// UpdateRecipeRequest keeps nested slices behind pointers so that an
	// omitted field can be told apart from an explicitly empty one:
	// nil leaves existing associations untouched, an empty slice clears them.
	UpdateRecipeRequest struct {
		Title       string               `json:"title" validate:"omitempty,max=255"`
		TimeMinutes int                  `json:"time_minutes" validate:"omitempty,min=1"`
		Price       float64              `json:"price" validate:"omitempty,min=0"`
		Link        string               `json:"link" validate:"omitempty,max=255"`
		Description string               `json:"description" validate:"omitempty"`
		Tags        *[]TagRequest        `json:"tags" validate:"omitempty,dive"`
		Ingredients *[]IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeResponse struct {
		ID          string               `json:"id"`
		Title       string               `json:"title"`
		TimeMinutes int                  `json:"time_minutes"`
		Price       float64              `json:"price"`
		Link        string               `json:"link"`
		ImageURL    string               `json:"image_url,omitempty"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Description string `json:"description"`
	}

	RecipeListFilter struct {
		TagIDs        []string
		IngredientIDs []string
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadRecipeImageResponse struct {
		ID       string `json:"id"`
		ImageURL string `json:"image_url"`
	}
)
