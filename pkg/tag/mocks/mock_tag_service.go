package mocks

import (
	"Recipe-App-Backend/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error) {
	args := m.Called(ctx, userID, assignedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TagResponse), args.Error(1)
}

func (m *MockTagService) GetTagByID(ctx context.Context, tagID string, userID string) (domain.TagResponse, error) {
	args := m.Called(ctx, tagID, userID)
	return args.Get(0).(domain.TagResponse), args.Error(1)
}

func (m *MockTagService) CreateTag(ctx context.Context, req domain.TagRequest, userID string) (domain.TagResponse, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.TagResponse), args.Error(1)
}

func (m *MockTagService) UpdateTag(ctx context.Context, tagID string, req domain.TagRequest, userID string) (domain.TagResponse, error) {
	args := m.Called(ctx, tagID, req, userID)
	return args.Get(0).(domain.TagResponse), args.Error(1)
}

func (m *MockTagService) DeleteTag(ctx context.Context, tagID string, userID string) error {
	args := m.Called(ctx, tagID, userID)
	return args.Error(0)
}
