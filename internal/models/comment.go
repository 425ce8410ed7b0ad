package models

import "time"

type Comment struct {
	CommentID int       `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ArticleID int       `gorm:"column:article_id" json:"article_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Author *string `json:"author"`
	Body   *string `json:"body"`
}
