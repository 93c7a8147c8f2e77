package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberblog/backend/internal/models"
)

func TestCreateTagIdempotentByName(t *testing.T) {
	resetTables(t)
	svc := NewTagService(testDB)

	first, err := svc.CreateTag(models.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)

	second, err := svc.CreateTag(models.CreateTagRequest{Name: "golang"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	tags, err := svc.ListTags(0, 100)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagAttachDetach(t *testing.T) {
	resetTables(t)
	svc := NewTagService(testDB)
	author := createUser(t, models.RoleAuthor)
	post := createPost(t, author.ID)

	tag, err := svc.CreateTag(models.CreateTagRequest{Name: "databases"})
	require.NoError(t, err)

	got, err := svc.AddTagToPost(post.ID, tag.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "databases", got.Tags[0].Name)

	_, err = svc.AddTagToPost(9999, tag.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	_, err = svc.AddTagToPost(post.ID, 9999)
	assert.Equal(t, KindNotFound, KindOf(err))

	got, err = svc.RemoveTagFromPost(post.ID, tag.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestDeleteTagClearsLinks(t *testing.T) {
	resetTables(t)
	svc := NewTagService(testDB)
	author := createUser(t, models.RoleAuthor)
	post := createPost(t, author.ID)

	tag, err := svc.CreateTag(models.CreateTagRequest{Name: "go"})
	require.NoError(t, err)
	_, err = svc.AddTagToPost(post.ID, tag.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTag(tag.ID))

	_, err = svc.GetTag(tag.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	var linkCount int64
	testDB.Table("post_tags").Where("tag_id = ?", tag.ID).Count(&linkCount)
	assert.Zero(t, linkCount)

	err = svc.DeleteTag(tag.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}
