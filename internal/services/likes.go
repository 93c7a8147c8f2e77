package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emberblog/backend/internal/models"
)

// LikeStats is the read model returned by every like mutation and by the
// stats endpoint.
type LikeStats struct {
	Count   int64 `json:"count"`
	IsLiked bool  `json:"is_liked"`
}

type LikeService struct {
	db    *gorm.DB
	posts *PostService
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db, posts: NewPostService(db)}
}

// Like records a like and bumps the post's counter in one transaction. A
// concurrent duplicate loses on the (user_id, post_id) unique index and
// surfaces as Conflict, so the counter moves exactly once.
func (s *LikeService) Like(postID, userID int) (*LikeStats, error) {
	if _, err := s.posts.GetPost(postID); err != nil {
		return nil, err
	}

	var existing models.Like
	err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		return nil, conflict("you have already liked this post")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage("like post", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Like{UserID: userID, PostID: postID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("you have already liked this post")
		}
		return nil, storage("like post", err)
	}

	return s.GetStats(postID, userID)
}

// Unlike removes the like and decrements the counter in one transaction. The
// decrement is additionally guarded at the database so the counter can never
// go negative under concurrent unlikes.
func (s *LikeService) Unlike(postID, userID int) (*LikeStats, error) {
	var existing models.Like
	err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, conflict("you have not liked this post")
	}
	if err != nil {
		return nil, storage("unlike post", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost a race with another unlike; nothing to decrement.
			return nil
		}
		return tx.Model(&models.Post{}).Where("id = ? AND like_count > 0", postID).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
	})
	if err != nil {
		return nil, storage("unlike post", err)
	}

	return s.GetStats(postID, userID)
}

// GetStats counts likes from the fact table. userID 0 means anonymous, which
// always reads as not liked. A nonexistent post reads as zero likes rather
// than NotFound; this is the one relaxed read path in the service.
func (s *LikeService) GetStats(postID, userID int) (*LikeStats, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	if err != nil {
		return nil, storage("like stats", err)
	}

	isLiked := false
	if userID != 0 {
		var n int64
		err := s.db.Model(&models.Like{}).
			Where("post_id = ? AND user_id = ?", postID, userID).Count(&n).Error
		if err != nil {
			return nil, storage("like stats", err)
		}
		isLiked = n > 0
	}

	return &LikeStats{Count: count, IsLiked: isLiked}, nil
}

// ListPostLikes returns a post's likes newest first, validating the post
// exists.
func (s *LikeService) ListPostLikes(postID, skip, limit int) ([]models.Like, error) {
	if _, err := s.posts.GetPost(postID); err != nil {
		return nil, err
	}

	var likes []models.Like
	err := s.db.Preload("User").Where("post_id = ?", postID).
		Order("created_at desc").Offset(skip).Limit(limit).Find(&likes).Error
	if err != nil {
		return nil, storage("list post likes", err)
	}
	return likes, nil
}

// ListUserLikes returns everything a user has liked, newest first.
func (s *LikeService) ListUserLikes(userID, skip, limit int) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Offset(skip).Limit(limit).Find(&likes).Error
	if err != nil {
		return nil, storage("list user likes", err)
	}
	return likes, nil
}
