package user_test

import (
	"context"
	"testing"
	"time"

	"Recipe-App-Backend/domain"
	"Recipe-App-Backend/entities"
	"Recipe-App-Backend/pkg/jwt"
	"Recipe-App-Backend/pkg/user"
	"Recipe-App-Backend/pkg/user/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and stores the user", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		mockRepo.On("CheckEmailExists", ctx, "cook@example.com").Return(false, nil).Once()
		mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *entities.User) bool {
			if u.Email != "cook@example.com" || u.Role != domain.RoleUser {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secretpass")) == nil
		})).Return(nil).Once()

		res, err := svc.Register(ctx, domain.RegisterRequest{
			Name:     "Cook",
			Email:    "cook@example.com",
			Password: "secretpass",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cook@example.com", res.Email)
		assert.NotEmpty(t, res.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		mockRepo.On("CheckEmailExists", ctx, "cook@example.com").Return(true, nil).Once()

		_, err := svc.Register(ctx, domain.RegisterRequest{
			Name:     "Cook",
			Email:    "cook@example.com",
			Password: "secretpass",
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secretpass"), bcrypt.DefaultCost)
	stored := &entities.User{
		ID:       uuid.New(),
		Email:    "cook@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	t.Run("returns a token on valid credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		jwtService := jwt.NewJWTService()
		svc := user.NewUserService(mockRepo, jwtService)

		mockRepo.On("GetUserByEmail", ctx, "cook@example.com").Return(stored, nil).Once()

		res, err := svc.Login(ctx, domain.LoginRequest{
			Email:    "cook@example.com",
			Password: "secretpass",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)

		userID, role, err := jwtService.GetUserIDByToken(res.Token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID.String(), userID)
		assert.Equal(t, domain.RoleUser, role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		mockRepo.On("GetUserByEmail", ctx, "cook@example.com").Return(stored, nil).Once()

		_, err := svc.Login(ctx, domain.LoginRequest{
			Email:    "cook@example.com",
			Password: "wrongpass",
		})

		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email looks identical to a bad password", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		mockRepo.On("GetUserByEmail", ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Login(ctx, domain.LoginRequest{
			Email:    "ghost@example.com",
			Password: "secretpass",
		})

		assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the profile", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		stored := &entities.User{ID: uuid.New(), Name: "Cook", Email: "cook@example.com", IsVerified: true}
		mockRepo.On("GetUserByID", ctx, stored.ID.String()).Return(stored, nil).Once()

		res, err := svc.Me(ctx, stored.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Cook", res.Name)
		assert.True(t, res.IsVerified)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		mockRepo.On("GetUserByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Me(ctx, "missing")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rehashes a changed password", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		stored := &entities.User{ID: uuid.New(), Name: "Cook", Password: "old-hash"}
		mockRepo.On("GetUserByID", ctx, stored.ID.String()).Return(stored, nil).Once()
		mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.Name == "Chef" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newsecret")) == nil
		})).Return(nil).Once()

		err := svc.UpdateUser(ctx, domain.UpdateUserRequest{Name: "Chef", Password: "newsecret"}, stored.ID.String())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the user verified", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		jwtService := jwt.NewJWTService()
		svc := user.NewUserService(mockRepo, jwtService)

		token, err := jwtService.GenerateTokenMail(map[string]any{"email": "cook@example.com"}, time.Hour)
		assert.NoError(t, err)

		stored := &entities.User{ID: uuid.New(), Email: "cook@example.com"}
		mockRepo.On("GetUserByEmail", ctx, "cook@example.com").Return(stored, nil).Once()
		mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return u.IsVerified
		})).Return(nil).Once()

		assert.NoError(t, svc.VerifyEmail(ctx, token))
		mockRepo.AssertExpectations(t)
	})

	t.Run("already verified", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		jwtService := jwt.NewJWTService()
		svc := user.NewUserService(mockRepo, jwtService)

		token, err := jwtService.GenerateTokenMail(map[string]any{"email": "cook@example.com"}, time.Hour)
		assert.NoError(t, err)

		stored := &entities.User{ID: uuid.New(), Email: "cook@example.com", IsVerified: true}
		mockRepo.On("GetUserByEmail", ctx, "cook@example.com").Return(stored, nil).Once()

		assert.ErrorIs(t, svc.VerifyEmail(ctx, token), domain.ErrEmailAlreadyVerified)
		mockRepo.AssertExpectations(t)
	})

	t.Run("garbage token", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := user.NewUserService(mockRepo, jwt.NewJWTService())

		assert.Error(t, svc.VerifyEmail(ctx, "not-a-token"))
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the new password from a valid token", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		jwtService := jwt.NewJWTService()
		svc := user.NewUserService(mockRepo, jwtService)

		token, err := jwtService.GenerateTokenMail(map[string]any{"email": "cook@example.com"}, time.Minute*30)
		assert.NoError(t, err)

		stored := &entities.User{ID: uuid.New(), Email: "cook@example.com", Password: "old-hash"}
		mockRepo.On("GetUserByEmail", ctx, "cook@example.com").Return(stored, nil).Once()
		mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u *entities.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newsecret")) == nil
		})).Return(nil).Once()

		err = svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: token, Password: "newsecret"})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("expired token", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		jwtService := jwt.NewJWTService()
		svc := user.NewUserService(mockRepo, jwtService)

		token, err := jwtService.GenerateTokenMail(map[string]any{"email": "cook@example.com"}, -time.Minute)
		assert.NoError(t, err)

		err = svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: token, Password: "newsecret"})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}
