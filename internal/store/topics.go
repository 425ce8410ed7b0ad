package store

import (
	"context"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/models"
)

func (s *Store) Topics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.db.WithContext(ctx).Select("slug", "description").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *Store) CreateTopic(ctx context.Context, req models.CreateTopicRequest) (models.Topic, error) {
	if req.Slug == nil || req.Description == nil {
		return models.Topic{}, apperr.BadRequest("bad request")
	}

	topic := models.Topic{
		Slug:        *req.Slug,
		Description: *req.Description,
	}
	if req.ImgURL != nil {
		topic.ImgURL = *req.ImgURL
	}

	if err := s.db.WithContext(ctx).Create(&topic).Error; err != nil {
		return models.Topic{}, err
	}
	return topic, nil
}
