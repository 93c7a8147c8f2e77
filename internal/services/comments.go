package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
	"github.com/emberblog/backend/internal/moderation"
)

type CommentService struct {
	db    *gorm.DB
	posts *PostService
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db, posts: NewPostService(db)}
}

// CreateComment validates the parent post exists and the content clears
// moderation, then persists the comment.
func (s *CommentService) CreateComment(postID int, req models.CreateCommentRequest, authorID int) (*models.Comment, error) {
	if _, err := s.posts.GetPost(postID); err != nil {
		return nil, err
	}

	if moderation.ContainsSensitiveWords(req.Content) {
		return nil, moderationRejected("comment")
	}

	comment := models.Comment{
		Content:  req.Content,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, storage("create comment", err)
	}
	return &comment, nil
}

func (s *CommentService) getComment(commentID int) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("comment")
		}
		return nil, storage("get comment", err)
	}
	return &comment, nil
}

// UpdateComment is restricted to the comment's author or an admin.
func (s *CommentService) UpdateComment(commentID int, req models.CreateCommentRequest, identity Identity) (*models.Comment, error) {
	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}

	if err := RequireOwnerOrAdmin(comment.AuthorID, identity, "comment"); err != nil {
		return nil, err
	}

	if moderation.ContainsSensitiveWords(req.Content) {
		return nil, moderationRejected("comment")
	}

	comment.Content = req.Content
	if err := s.db.Model(comment).Update("content", req.Content).Error; err != nil {
		return nil, storage("update comment", err)
	}
	return comment, nil
}

// DeleteComment is restricted to the comment's author or an admin.
func (s *CommentService) DeleteComment(commentID int, identity Identity) error {
	comment, err := s.getComment(commentID)
	if err != nil {
		return err
	}

	if err := RequireOwnerOrAdmin(comment.AuthorID, identity, "comment"); err != nil {
		return err
	}

	if err := s.db.Delete(comment).Error; err != nil {
		return storage("delete comment", err)
	}
	return nil
}

// ListComments returns all comments on a post, newest first. Fails with
// NotFound if the post itself is absent.
func (s *CommentService) ListComments(postID int) ([]models.Comment, error) {
	if _, err := s.posts.GetPost(postID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := s.db.Preload("Author").Where("post_id = ?", postID).
		Order("created_at desc").Find(&comments).Error
	if err != nil {
		return nil, storage("list comments", err)
	}
	return comments, nil
}
