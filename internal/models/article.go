package models

import "time"

type Article struct {
	ArticleID     int       `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url" json:"article_img_url"`

	// Derived at read time, never stored. comment_count is kept as the
	// stringly-typed value Postgres aggregates produce on the wire.
	CommentCount string `gorm:"->;-:migration;column:comment_count" json:"comment_count,omitempty"`
	TotalCount   string `gorm:"->;-:migration;column:total_count" json:"total_count,omitempty"`
}

type CreateArticleRequest struct {
	Author        *string `json:"author"`
	Title         *string `json:"title"`
	Body          *string `json:"body"`
	Topic         *string `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

type VoteRequest struct {
	IncVotes *int `json:"inc_votes"`
}
