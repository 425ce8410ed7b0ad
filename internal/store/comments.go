package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/models"
	"github.com/oliviamartin/nc-news/backend/internal/query"
)

// CommentsByArticleID returns a page of the article's comments, newest
// first. The comment_id tiebreak keeps the order total so pagination stays
// stable across equal timestamps.
func (s *Store) CommentsByArticleID(ctx context.Context, articleID int, page query.Pagination) ([]models.Comment, error) {
	exists, err := s.articleExists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("not found")
	}

	var comments []models.Comment
	err = s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc, comment_id desc").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) CreateComment(ctx context.Context, articleID int, req models.CreateCommentRequest) (models.Comment, error) {
	if req.Author == nil || req.Body == nil {
		return models.Comment{}, apperr.BadRequest("bad request")
	}

	if exists, err := s.articleExists(ctx, articleID); err != nil {
		return models.Comment{}, err
	} else if !exists {
		return models.Comment{}, apperr.NotFound("not found")
	}
	if exists, err := s.userExists(ctx, *req.Author); err != nil {
		return models.Comment{}, err
	} else if !exists {
		return models.Comment{}, apperr.NotFound("not found")
	}

	comment := models.Comment{
		ArticleID: articleID,
		Author:    *req.Author,
		Body:      *req.Body,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (s *Store) IncrementCommentVotes(ctx context.Context, commentID, inc int) (models.Comment, error) {
	var comment models.Comment
	tx := s.db.WithContext(ctx).
		Model(&comment).
		Clauses(clause.Returning{}).
		Where("comment_id = ?", commentID).
		Update("votes", gorm.Expr("votes + ?", inc))
	if tx.Error != nil {
		return models.Comment{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Comment{}, apperr.NotFound("not found")
	}
	return comment, nil
}

func (s *Store) DeleteComment(ctx context.Context, commentID int) error {
	exists, err := s.commentExists(ctx, commentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("not found")
	}
	return s.db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&models.Comment{}).Error
}
