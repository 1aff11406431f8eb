package mocks

import (
	"Recipe-App-Backend/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.RegisterResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	args := m.Called(ctx, req, userID)
	return args.Error(0)
}

func (m *MockUserService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) VerifyEmail(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
