package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Recipe-App-Backend/domain"
	"Recipe-App-Backend/internal/api/handlers"
	"Recipe-App-Backend/pkg/user/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		mockSvc := new(mocks.MockUserService)
		handler := handlers.NewUserHandler(mockSvc, validator.New())

		app := fiber.New()
		app.Post("/users/register", handler.Register)

		mockSvc.On("Register", mock.Anything, domain.RegisterRequest{
			Name:     "Cook",
			Email:    "cook@example.com",
			Password: "secretpass",
		}).Return(domain.RegisterResponse{ID: "u1", Email: "cook@example.com"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/register", jsonBody(t, fiber.Map{
			"name":     "Cook",
			"email":    "cook@example.com",
			"password": "secretpass",
		}))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, res.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("400 on a short password", func(t *testing.T) {
		mockSvc := new(mocks.MockUserService)
		handler := handlers.NewUserHandler(mockSvc, validator.New())

		app := fiber.New()
		app.Post("/users/register", handler.Register)

		req := httptest.NewRequest(http.MethodPost, "/users/register", jsonBody(t, fiber.Map{
			"name":     "Cook",
			"email":    "cook@example.com",
			"password": "short",
		}))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
		mockSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("401 on bad credentials", func(t *testing.T) {
		mockSvc := new(mocks.MockUserService)
		handler := handlers.NewUserHandler(mockSvc, validator.New())

		app := fiber.New()
		app.Post("/users/login", handler.Login)

		mockSvc.On("Login", mock.Anything, mock.Anything).
			Return(domain.LoginResponse{}, domain.ErrCredentialsInvalid).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/login", jsonBody(t, fiber.Map{
			"email":    "cook@example.com",
			"password": "wrongpass",
		}))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("200 with a token", func(t *testing.T) {
		mockSvc := new(mocks.MockUserService)
		handler := handlers.NewUserHandler(mockSvc, validator.New())

		app := fiber.New()
		app.Post("/users/login", handler.Login)

		mockSvc.On("Login", mock.Anything, domain.LoginRequest{
			Email:    "cook@example.com",
			Password: "secretpass",
		}).Return(domain.LoginResponse{Token: "jwt-token", Role: domain.RoleUser}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/login", jsonBody(t, fiber.Map{
			"email":    "cook@example.com",
			"password": "secretpass",
		}))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		mockSvc := new(mocks.MockUserService)
		handler := handlers.NewUserHandler(mockSvc, validator.New())

		app := newTestApp()
		app.Get("/users/me", handler.Me)

		mockSvc.On("Me", mock.Anything, testUserID).
			Return(domain.UserResponse{ID: testUserID, Name: "Cook"}, nil).Once()

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
