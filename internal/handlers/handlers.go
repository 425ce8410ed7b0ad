package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Topic   *TopicHandler
	Article *ArticleHandler
	Comment *CommentHandler
	User    *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	st := store.New(db)

	return &Handler{
		Topic:   NewTopicHandler(st),
		Article: NewArticleHandler(st),
		Comment: NewCommentHandler(st),
		User:    NewUserHandler(st),
	}
}

// pathID parses a numeric path parameter, attaching a bad-request error on
// non-numeric input.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Error(apperr.BadRequest("bad request"))
		return 0, false
	}
	return id, true
}
