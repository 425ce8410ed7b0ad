package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/models"
	"github.com/oliviamartin/nc-news/backend/internal/store"
)

type TopicHandler struct {
	store *store.Store
}

func NewTopicHandler(st *store.Store) *TopicHandler {
	return &TopicHandler{store: st}
}

func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.store.Topics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	if topics == nil {
		topics = []models.Topic{}
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("bad request"))
		return
	}

	topic, err := h.store.CreateTopic(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
