// Package store is the data access layer. It executes validated query plans
// against Postgres through gorm, shapes rows into the response records, and
// performs targeted existence checks before dependent writes.
package store

import (
	"context"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) topicExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := s.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM topics WHERE slug = ?)", slug).
		Scan(&exists).Error
	return exists, err
}

func (s *Store) userExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)", username).
		Scan(&exists).Error
	return exists, err
}

func (s *Store) articleExists(ctx context.Context, articleID int) (bool, error) {
	var exists bool
	err := s.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = ?)", articleID).
		Scan(&exists).Error
	return exists, err
}

func (s *Store) commentExists(ctx context.Context, commentID int) (bool, error) {
	var exists bool
	err := s.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = ?)", commentID).
		Scan(&exists).Error
	return exists, err
}
