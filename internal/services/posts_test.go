package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberblog/backend/internal/models"
)

func TestCreatePostRoleRules(t *testing.T) {
	resetTables(t)
	svc := NewPostService(testDB)
	req := models.CreatePostRequest{Title: "hello", Content: "hello world"}

	reader := createUser(t, models.RoleReader)
	_, err := svc.CreatePost(req, reader.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	author := createUser(t, models.RoleAuthor)
	post, err := svc.CreatePost(req, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, 0, post.LikeCount)

	admin := createUser(t, models.RoleAdmin)
	_, err = svc.CreatePost(req, admin.ID)
	assert.NoError(t, err)

	_, err = svc.CreatePost(req, 9999)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCreatePostModeration(t *testing.T) {
	resetTables(t)
	svc := NewPostService(testDB)
	author := createUser(t, models.RoleAuthor)

	_, err := svc.CreatePost(models.CreatePostRequest{Title: "rant", Content: "this is shit"}, author.ID)
	assert.Equal(t, KindModerationRejected, KindOf(err))

	// Denylisted term embedded in a longer word must pass.
	_, err = svc.CreatePost(models.CreatePostRequest{Title: "review", Content: "my assessment of classical music"}, author.ID)
	assert.NoError(t, err)
}

func TestUpdatePostAuthorization(t *testing.T) {
	resetTables(t)
	svc := NewPostService(testDB)
	author := createUser(t, models.RoleAuthor)
	stranger := createUser(t, models.RoleAuthor)
	admin := createUser(t, models.RoleAdmin)
	post := createPost(t, author.ID)
	req := models.CreatePostRequest{Title: "edited", Content: "edited content"}

	_, err := svc.UpdatePost(post.ID, req, Identity{ID: stranger.ID, Role: stranger.Role})
	assert.Equal(t, KindForbidden, KindOf(err))

	updated, err := svc.UpdatePost(post.ID, req, Identity{ID: author.ID, Role: author.Role})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)

	// Admin can edit regardless of ownership.
	_, err = svc.UpdatePost(post.ID, models.CreatePostRequest{Title: "by admin", Content: "fine"}, Identity{ID: admin.ID, Role: admin.Role})
	assert.NoError(t, err)

	_, err = svc.UpdatePost(post.ID, models.CreatePostRequest{Title: "x", Content: "damn"}, Identity{ID: author.ID, Role: author.Role})
	assert.Equal(t, KindModerationRejected, KindOf(err))

	_, err = svc.UpdatePost(9999, req, Identity{ID: author.ID, Role: author.Role})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUpdatePostLeavesLikeCountAlone(t *testing.T) {
	resetTables(t)
	posts := NewPostService(testDB)
	likes := NewLikeService(testDB)
	author := createUser(t, models.RoleAuthor)
	reader := createUser(t, models.RoleReader)
	post := createPost(t, author.ID)

	_, err := likes.Like(post.ID, reader.ID)
	require.NoError(t, err)

	_, err = posts.UpdatePost(post.ID, models.CreatePostRequest{Title: "v2", Content: "v2"}, Identity{ID: author.ID, Role: author.Role})
	require.NoError(t, err)

	assert.Equal(t, 1, likeCountOf(t, post.ID))
}

func TestDeletePostCascades(t *testing.T) {
	resetTables(t)
	posts := NewPostService(testDB)
	comments := NewCommentService(testDB)
	likes := NewLikeService(testDB)
	tags := NewTagService(testDB)

	author := createUser(t, models.RoleAuthor)
	reader := createUser(t, models.RoleReader)
	stranger := createUser(t, models.RoleReader)
	post := createPost(t, author.ID)

	_, err := comments.CreateComment(post.ID, models.CreateCommentRequest{Content: "nice"}, reader.ID)
	require.NoError(t, err)
	_, err = likes.Like(post.ID, reader.ID)
	require.NoError(t, err)
	tag, err := tags.CreateTag(models.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)
	_, err = tags.AddTagToPost(post.ID, tag.ID)
	require.NoError(t, err)

	err = posts.DeletePost(post.ID, Identity{ID: stranger.ID, Role: stranger.Role})
	assert.Equal(t, KindForbidden, KindOf(err))

	require.NoError(t, posts.DeletePost(post.ID, Identity{ID: author.ID, Role: author.Role}))

	_, err = posts.GetPost(post.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	var commentCount, likeCount, linkCount int64
	testDB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)
	testDB.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeCount)
	testDB.Table("post_tags").Where("post_id = ?", post.ID).Count(&linkCount)
	assert.Zero(t, commentCount)
	assert.Zero(t, likeCount)
	assert.Zero(t, linkCount)

	// The tag itself survives the post.
	_, err = tags.GetTag(tag.ID)
	assert.NoError(t, err)
}

func TestListPosts(t *testing.T) {
	resetTables(t)
	svc := NewPostService(testDB)
	a := createUser(t, models.RoleAuthor)
	b := createUser(t, models.RoleAuthor)
	createPost(t, a.ID)
	createPost(t, a.ID)
	createPost(t, b.ID)

	all, err := svc.ListPosts(0, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byA, err := svc.ListPosts(0, 10, a.ID)
	require.NoError(t, err)
	assert.Len(t, byA, 2)

	paged, err := svc.ListPosts(2, 10, 0)
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestListUserPosts(t *testing.T) {
	resetTables(t)
	svc := NewPostService(testDB)
	author := createUser(t, models.RoleAuthor)
	createPost(t, author.ID)

	posts, err := svc.ListUserPosts(author.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	_, err = svc.ListUserPosts(9999, 0, 10)
	assert.Equal(t, KindNotFound, KindOf(err))
}
