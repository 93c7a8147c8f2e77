package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/services"
)

type TagHandler struct {
	tags *services.TagService
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{tags: services.NewTagService(db)}
}

// CreateTag creates a tag, returning the existing one on a name clash
func (h *TagHandler) CreateTag(c *gin.Context) {
	var input models.CreateTagRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	tag, err := h.tags.CreateTag(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// GetTags returns all tags
func (h *TagHandler) GetTags(c *gin.Context) {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 100)

	tags, err := h.tags.ListTags(skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if tags == nil {
		tags = []models.Tag{}
	}
	c.JSON(http.StatusOK, tags)
}

// GetTag returns a single tag by ID
func (h *TagHandler) GetTag(c *gin.Context) {
	tagID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tags.GetTag(tagID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag and its post links
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tags.DeleteTag(tagID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}

// AddTagToPost links a tag to a post
func (h *TagHandler) AddTagToPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	post, err := h.tags.AddTagToPost(postID, tagID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// RemoveTagFromPost unlinks a tag from a post
func (h *TagHandler) RemoveTagFromPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	post, err := h.tags.RemoveTagFromPost(postID, tagID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
