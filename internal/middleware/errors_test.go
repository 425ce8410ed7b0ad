package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
)

func newTestRouter(fail error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(fail)
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestMalformedInputDatabaseError(t *testing.T) {
	rec := serve(newTestRouter(&pgconn.PgError{Code: "22P02"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"bad request"}`, rec.Body.String())
}

func TestApplicationErrorsCarryTheirStatus(t *testing.T) {
	rec := serve(newTestRouter(apperr.NotFound("not found")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"not found"}`, rec.Body.String())

	rec = serve(newTestRouter(apperr.BadRequest("bad request")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"bad request"}`, rec.Body.String())
}

func TestUnexpectedErrorsAreNotLeaked(t *testing.T) {
	rec := serve(newTestRouter(errors.New("pq: connection reset")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"msg":"internal server error"}`, rec.Body.String())
}

func TestNoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
