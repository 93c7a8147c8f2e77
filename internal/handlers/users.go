package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/services"
)

type UserHandler struct {
	db    *gorm.DB
	posts *services.PostService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db, posts: services.NewPostService(db)}
}

// GetUsers returns registered users
func (h *UserHandler) GetUsers(c *gin.Context) {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 10)

	var users []models.User
	if err := h.db.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserProfile returns a user's public profile
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"role":       user.Role,
		"bio":        user.Bio,
		"avatar":     user.Avatar,
		"created_at": user.CreatedAt,
	})
}

// GetUserPosts returns all posts by a specific user
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 10)

	posts, err := h.posts.ListUserPosts(userID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}
