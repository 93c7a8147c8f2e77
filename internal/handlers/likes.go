package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/services"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(db *gorm.DB) *LikeHandler {
	return &LikeHandler{likes: services.NewLikeService(db)}
}

// LikePost records a like and returns the updated stats
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	stats, err := h.likes.Like(postID, identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UnlikePost removes a like and returns the updated stats
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	stats, err := h.likes.Unlike(postID, identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetPostLikes returns a post's likes, newest first
func (h *LikeHandler) GetPostLikes(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 100)

	likes, err := h.likes.ListPostLikes(postID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if likes == nil {
		likes = []models.Like{}
	}
	c.JSON(http.StatusOK, likes)
}

// GetLikeStats returns {count, is_liked}. is_liked reflects the caller when
// a valid token accompanies the request, false otherwise.
func (h *LikeHandler) GetLikeStats(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	userID := 0
	if identity, ok := currentIdentity(c); ok {
		userID = identity.ID
	}

	stats, err := h.likes.GetStats(postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMyLikes returns everything the caller has liked, newest first
func (h *LikeHandler) GetMyLikes(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 100)

	likes, err := h.likes.ListUserLikes(identity.ID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if likes == nil {
		likes = []models.Like{}
	}
	c.JSON(http.StatusOK, likes)
}
