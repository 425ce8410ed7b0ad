// Package middleware holds the error normalization chain. Handlers attach
// errors to the gin context and return; this middleware maps them to an HTTP
// status and a uniform {msg} body after the handler runs.
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
)

// Postgres class 22 is "data exception": malformed input such as a
// non-numeric value where an integer is expected.
const pgDataExceptionClass = "22"

// ErrorHandler normalizes errors in three tiers: malformed-input database
// errors become 400 "bad request", tagged application errors map through
// their kind, and everything else is logged and returned as a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgDataExceptionClass) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "bad request"})
			return
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind != apperr.KindUnexpected {
			c.JSON(appErr.Status(), gin.H{"msg": appErr.Msg})
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
			return
		}

		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
	}
}
