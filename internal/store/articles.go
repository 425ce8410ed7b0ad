package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/models"
	"github.com/oliviamartin/nc-news/backend/internal/query"
)

const commentCountSubquery = `(SELECT count(*) FROM comments WHERE comments.article_id = articles.article_id)::text`

func (s *Store) ArticleByID(ctx context.Context, articleID int) (models.Article, error) {
	var article models.Article
	tx := s.db.WithContext(ctx).Raw(
		`SELECT articles.*, `+commentCountSubquery+` AS comment_count
		 FROM articles
		 WHERE articles.article_id = ?`, articleID).Scan(&article)
	if tx.Error != nil {
		return models.Article{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Article{}, apperr.NotFound("not found")
	}
	return article, nil
}

// Articles executes a validated listing plan. Rows omit the body column and
// carry comment_count plus total_count, the number of rows matching the
// filter before the limit/offset window is applied.
func (s *Store) Articles(ctx context.Context, plan query.ArticleListing) ([]models.Article, error) {
	if plan.Topic != "" {
		exists, err := s.topicExists(ctx, plan.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.BadRequest("bad request")
		}
	}

	tx := s.db.WithContext(ctx).
		Table("articles").
		Select(`articles.article_id, articles.title, articles.topic, articles.author,
			articles.created_at, articles.votes, articles.article_img_url,
			` + commentCountSubquery + ` AS comment_count,
			(count(*) OVER ())::text AS total_count`)
	if plan.Topic != "" {
		tx = tx.Where("articles.topic = ?", plan.Topic)
	}

	// SortBy and Order come from the greenlist, so interpolating them into
	// the ORDER BY clause cannot inject.
	var articles []models.Article
	err := tx.Order(fmt.Sprintf("articles.%s %s", plan.SortBy, plan.Order)).
		Limit(plan.Limit).
		Offset(plan.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *Store) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (models.Article, error) {
	if req.Author == nil || req.Title == nil || req.Body == nil || req.Topic == nil {
		return models.Article{}, apperr.BadRequest("bad request")
	}

	if exists, err := s.userExists(ctx, *req.Author); err != nil {
		return models.Article{}, err
	} else if !exists {
		return models.Article{}, apperr.NotFound("not found")
	}
	if exists, err := s.topicExists(ctx, *req.Topic); err != nil {
		return models.Article{}, err
	} else if !exists {
		return models.Article{}, apperr.NotFound("not found")
	}

	article := models.Article{
		Title:  *req.Title,
		Topic:  *req.Topic,
		Author: *req.Author,
		Body:   *req.Body,
	}
	if req.ArticleImgURL != nil {
		article.ArticleImgURL = *req.ArticleImgURL
	}

	if err := s.db.WithContext(ctx).Create(&article).Error; err != nil {
		return models.Article{}, err
	}
	article.CommentCount = "0"
	return article, nil
}

// IncrementArticleVotes adds inc to the current votes value in a single
// UPDATE so concurrent increments cannot lose updates.
func (s *Store) IncrementArticleVotes(ctx context.Context, articleID, inc int) (models.Article, error) {
	var article models.Article
	tx := s.db.WithContext(ctx).
		Model(&article).
		Clauses(clause.Returning{}).
		Where("article_id = ?", articleID).
		Update("votes", gorm.Expr("votes + ?", inc))
	if tx.Error != nil {
		return models.Article{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Article{}, apperr.NotFound("not found")
	}
	return article, nil
}

// DeleteArticle removes an article and its comments in one transaction so a
// partial failure never leaves orphaned comments.
func (s *Store) DeleteArticle(ctx context.Context, articleID int) error {
	exists, err := s.articleExists(ctx, articleID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("not found")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("article_id = ?", articleID).Delete(&models.Article{}).Error
	})
}
