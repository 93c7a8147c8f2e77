package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/services"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{comments: services.NewCommentService(db)}
}

// GetComments returns all comments for a post
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListComments(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.comments.CreateComment(postID, input, identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// UpdateComment updates a comment (owner or admin)
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.comments.UpdateComment(commentID, input, identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment (owner or admin)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.comments.DeleteComment(commentID, identity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
