package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emberblog/backend/internal/database"
	"github.com/emberblog/backend/internal/handlers"
	"github.com/emberblog/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	db := database.New()
	handler := handlers.NewHandler(db.GetDB())

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

	log.Printf("Server starting on port %s", port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Post routes (public reads)
		api.GET("/posts", s.handler.Post.GetPosts)
		api.GET("/posts/:id", s.handler.Post.GetPost)

		// Comment routes (public reads)
		api.GET("/posts/:id/comments", s.handler.Comment.GetComments)

		// Like routes (public reads); stats personalizes for a valid token
		api.GET("/posts/:id/likes", s.handler.Like.GetPostLikes)
		api.GET("/posts/:id/likes/stats", middleware.OptionalAuth(), s.handler.Like.GetLikeStats)

		// Tag routes (public)
		api.POST("/tags", s.handler.Tag.CreateTag)
		api.GET("/tags", s.handler.Tag.GetTags)
		api.GET("/tags/:id", s.handler.Tag.GetTag)
		api.DELETE("/tags/:id", s.handler.Tag.DeleteTag)

		// User routes (public reads)
		api.GET("/users", s.handler.User.GetUsers)
		api.GET("/users/:id", s.handler.User.GetUserProfile)
		api.GET("/users/:id/posts", s.handler.User.GetUserPosts)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", s.handler.Auth.GetMe)
			protected.GET("/me/likes", s.handler.Like.GetMyLikes)

			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)

			protected.POST("/posts/:id/comments", s.handler.Comment.CreateComment)
			protected.PUT("/comments/:commentId", s.handler.Comment.UpdateComment)
			protected.DELETE("/comments/:commentId", s.handler.Comment.DeleteComment)

			protected.POST("/posts/:id/like", s.handler.Like.LikePost)
			protected.DELETE("/posts/:id/like", s.handler.Like.UnlikePost)

			protected.POST("/posts/:id/tags/:tagId", s.handler.Tag.AddTagToPost)
			protected.DELETE("/posts/:id/tags/:tagId", s.handler.Tag.RemoveTagFromPost)
		}
	}

	return r
}
