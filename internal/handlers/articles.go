package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
	"github.com/oliviamartin/nc-news/backend/internal/models"
	"github.com/oliviamartin/nc-news/backend/internal/query"
	"github.com/oliviamartin/nc-news/backend/internal/store"
)

type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(st *store.Store) *ArticleHandler {
	return &ArticleHandler{store: st}
}

// GetArticles lists articles filtered, sorted and paginated per the
// validated query plan. Each row carries comment_count and total_count.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	plan, err := query.ParseArticleListing(c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	articles, err := h.store.Articles(c.Request.Context(), plan)
	if err != nil {
		c.Error(err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	article, err := h.store.ArticleByID(c.Request.Context(), articleID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("bad request"))
		return
	}

	article, err := h.store.CreateArticle(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) PatchArticle(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		c.Error(apperr.BadRequest("bad request"))
		return
	}

	article, err := h.store.IncrementArticleVotes(c.Request.Context(), articleID, *req.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	if err := h.store.DeleteArticle(c.Request.Context(), articleID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) GetComments(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	page, err := query.ParsePagination(c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.store.CommentsByArticleID(c.Request.Context(), articleID, page)
	if err != nil {
		c.Error(err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *ArticleHandler) CreateComment(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("bad request"))
		return
	}

	comment, err := h.store.CreateComment(c.Request.Context(), articleID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
