package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
)

type TagService struct {
	db    *gorm.DB
	posts *PostService
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db, posts: NewPostService(db)}
}

// CreateTag returns the existing tag when the name is already taken instead
// of failing, so tagging is idempotent by name.
func (s *TagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	var existing models.Tag
	err := s.db.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage("create tag", err)
	}

	tag := models.Tag{Name: req.Name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, storage("create tag", err)
	}
	return &tag, nil
}

func (s *TagService) GetTag(tagID int) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tag")
		}
		return nil, storage("get tag", err)
	}
	return &tag, nil
}

func (s *TagService) ListTags(skip, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Offset(skip).Limit(limit).Find(&tags).Error; err != nil {
		return nil, storage("list tags", err)
	}
	return tags, nil
}

// DeleteTag removes the tag and its post links.
func (s *TagService) DeleteTag(tagID int) error {
	tag, err := s.GetTag(tagID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
	if err != nil {
		return storage("delete tag", err)
	}
	return nil
}

// AddTagToPost links a tag to a post, returning the post with tags loaded.
func (s *TagService) AddTagToPost(postID, tagID int) (*models.Post, error) {
	post, err := s.posts.GetPost(postID)
	if err != nil {
		return nil, err
	}
	tag, err := s.GetTag(tagID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(post).Association("Tags").Append(tag); err != nil {
		return nil, storage("add tag to post", err)
	}
	return s.posts.GetPostDetail(post.ID)
}

// RemoveTagFromPost unlinks a tag from a post.
func (s *TagService) RemoveTagFromPost(postID, tagID int) (*models.Post, error) {
	post, err := s.posts.GetPost(postID)
	if err != nil {
		return nil, err
	}
	tag, err := s.GetTag(tagID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(post).Association("Tags").Delete(tag); err != nil {
		return nil, storage("remove tag from post", err)
	}
	return s.posts.GetPostDetail(post.ID)
}
