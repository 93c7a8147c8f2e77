package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/middleware"
	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/services"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Post    *PostHandler
	Comment *CommentHandler
	Like    *LikeHandler
	Tag     *TagHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db),
		User:    NewUserHandler(db),
		Post:    NewPostHandler(db),
		Comment: NewCommentHandler(db),
		Like:    NewLikeHandler(db),
		Tag:     NewTagHandler(db),
	}
}

// respondError maps service error kinds to wire statuses. Storage failures
// are logged here and never leak their cause to the client.
func respondError(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case services.KindModerationRejected, services.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentIdentity reads the identity the auth middleware stored on the
// context. The role string is passed through untouched so an unknown role
// keeps failing threshold checks instead of being coerced to reader.
func currentIdentity(c *gin.Context) (services.Identity, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return services.Identity{}, false
	}
	id, ok := raw.(int)
	if !ok {
		return services.Identity{}, false
	}

	role := models.Role("")
	if r, exists := c.Get(middleware.RoleKey); exists {
		if s, ok := r.(string); ok {
			role = models.Role(s)
		}
	}
	return services.Identity{ID: id, Role: role}, true
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
