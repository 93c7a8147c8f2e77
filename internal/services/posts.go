package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/moderation"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// CreatePost persists a new post after verifying the author exists, holds at
// least the author role, and the content clears moderation.
func (s *PostService) CreatePost(req models.CreatePostRequest, authorID int) (*models.Post, error) {
	var user models.User
	if err := s.db.First(&user, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, storage("create post", err)
	}

	if !user.Role.AtLeast(models.RoleAuthor) {
		return nil, forbidden("only authors and admins can create posts")
	}

	if moderation.ContainsSensitiveWords(req.Content) {
		return nil, moderationRejected("post")
	}

	post := models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, storage("create post", err)
	}
	return &post, nil
}

// GetPost is the single source of truth for "post exists"; the comment and
// like services validate against it before acting.
func (s *PostService) GetPost(postID int) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("post")
		}
		return nil, storage("get post", err)
	}
	return &post, nil
}

// GetPostDetail loads a post with its author and tags for read endpoints.
func (s *PostService) GetPostDetail(postID int) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").Preload("Tags").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("post")
		}
		return nil, storage("get post", err)
	}
	return &post, nil
}

// ListPosts returns posts newest first. authorID 0 means no author filter.
func (s *PostService) ListPosts(skip, limit, authorID int) ([]models.Post, error) {
	query := s.db.Preload("Author").Preload("Tags").
		Order("created_at desc").Offset(skip).Limit(limit)
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, storage("list posts", err)
	}
	return posts, nil
}

// ListUserPosts returns a user's posts, failing if the user doesn't exist.
func (s *PostService) ListUserPosts(userID, skip, limit int) ([]models.Post, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, storage("list user posts", err)
	}

	var posts []models.Post
	err := s.db.Preload("Tags").Where("author_id = ?", userID).
		Order("created_at desc").Offset(skip).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, storage("list user posts", err)
	}
	return posts, nil
}

// UpdatePost changes title and content only; the like counter is never
// touched on this path.
func (s *PostService) UpdatePost(postID int, req models.CreatePostRequest, identity Identity) (*models.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}

	if err := RequireOwnerOrAdmin(post.AuthorID, identity, "post"); err != nil {
		return nil, err
	}

	if moderation.ContainsSensitiveWords(req.Content) {
		return nil, moderationRejected("post")
	}

	post.Title = req.Title
	post.Content = req.Content
	if err := s.db.Model(post).Select("title", "content").Updates(*post).Error; err != nil {
		return nil, storage("update post", err)
	}
	return post, nil
}

// DeletePost removes the post along with its comments, likes, and tag links
// in one transaction so no orphans survive a partial failure.
func (s *PostService) DeletePost(postID int, identity Identity) error {
	post, err := s.GetPost(postID)
	if err != nil {
		return err
	}

	if err := RequireOwnerOrAdmin(post.AuthorID, identity, "post"); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	if err != nil {
		return storage("delete post", err)
	}
	return nil
}
