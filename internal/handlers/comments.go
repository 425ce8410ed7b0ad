package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/models"
	"github.com/oliviamartin/nc-news/backend/internal/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

func (h *CommentHandler) PatchComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		c.Error(apperr.BadRequest("bad request"))
		return
	}

	comment, err := h.store.IncrementCommentVotes(c.Request.Context(), commentID, *req.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.store.DeleteComment(c.Request.Context(), commentID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
