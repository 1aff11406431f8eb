package tag

import (
	"Recipe-App-Backend/domain"
	"Recipe-App-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	TagService interface {
		GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error)
		GetTagByID(ctx context.Context, tagID string, userID string) (domain.TagResponse, error)
		CreateTag(ctx context.Context, req domain.TagRequest, userID string) (domain.TagResponse, error)
		UpdateTag(ctx context.Context, tagID string, req domain.TagRequest, userID string) (domain.TagResponse, error)
		DeleteTag(ctx context.Context, tagID string, userID string) error
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func toTagResponse(tag *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:   tag.ID.String(),
		Name: tag.Name,
	}
}

func (s *tagService) GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		res = append(res, toTagResponse(tag))
	}
	return res, nil
}

func (s *tagService) GetTagByID(ctx context.Context, tagID string, userID string) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetTagByID(ctx, tagID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}
	return toTagResponse(tag), nil
}

func (s *tagService) CreateTag(ctx context.Context, req domain.TagRequest, userID string) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetOrCreateTag(ctx, userID, req.Name)
	if err != nil {
		return domain.TagResponse{}, err
	}
	return toTagResponse(tag), nil
}

func (s *tagService) UpdateTag(ctx context.Context, tagID string, req domain.TagRequest, userID string) (domain.TagResponse, error) {
	tag, err := s.tagRepository.GetTagByID(ctx, tagID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}

	tag.Name = req.Name

	if err := s.tagRepository.UpdateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}
	return toTagResponse(tag), nil
}

func (s *tagService) DeleteTag(ctx context.Context, tagID string, userID string) error {
	if err := s.tagRepository.DeleteTag(ctx, tagID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTagNotFound
		}
		return err
	}
	return nil
}
