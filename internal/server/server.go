package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oliviamartin/nc-news/backend/internal/database"
	"github.com/oliviamartin/nc-news/backend/internal/handlers"
	"github.com/oliviamartin/nc-news/backend/internal/middleware"
)

type Server struct {
	db      *database.Database
	handler *handlers.Handler
}

// NewServer configures the router around an injected database connection.
func NewServer(db *database.Database) *http.Server {
	handler := handlers.NewHandler(db.DB)

	newServer := &Server{
		db:      db,
		handler: handler,
	}

	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(middleware.ErrorHandler())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("", handlers.Endpoints)

		// Topic routes
		api.GET("/topics", s.handler.Topic.GetTopics)
		api.POST("/topics", s.handler.Topic.CreateTopic)

		// Article routes
		api.GET("/articles", s.handler.Article.GetArticles)
		api.POST("/articles", s.handler.Article.CreateArticle)
		api.GET("/articles/:article_id", s.handler.Article.GetArticle)
		api.PATCH("/articles/:article_id", s.handler.Article.PatchArticle)
		api.DELETE("/articles/:article_id", s.handler.Article.DeleteArticle)
		api.GET("/articles/:article_id/comments", s.handler.Article.GetComments)
		api.POST("/articles/:article_id/comments", s.handler.Article.CreateComment)

		// Comment routes
		api.PATCH("/comments/:comment_id", s.handler.Comment.PatchComment)
		api.DELETE("/comments/:comment_id", s.handler.Comment.DeleteComment)

		// User routes
		api.GET("/users", s.handler.User.GetUsers)
		api.GET("/users/:username", s.handler.User.GetUserByUsername)
	}

	return r
}
