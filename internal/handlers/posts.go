package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/services"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{posts: services.NewPostService(db)}
}

// GetPosts returns posts newest first, optionally filtered by author
func (h *PostHandler) GetPosts(c *gin.Context) {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 10)
	authorID := queryInt(c, "author_id", 0)

	posts, err := h.posts.ListPosts(skip, limit, authorID)
	if err != nil {
		respondError(c, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post by ID
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetPostDetail(postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post (requires author role or above)
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post, err := h.posts.CreatePost(input, identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost updates an existing post (owner or admin)
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post, err := h.posts.UpdatePost(postID, input, identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post and its comments and likes (owner or admin)
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	identity, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.posts.DeletePost(postID, identity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
