package services

import (
	"testing"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogComment(t *testing.T) {
	database.NewTestGorm(t)
	author := seedAccount(t, models.RoleEditor, "en,")
	reader := seedAccount(t, models.RoleVisitor, "en,")

	blog := seedBlog(t, author, nil)

	comment, err := NewBlogComment(reader, blog, "first!")
	require.NoError(t, err)
	assert.Equal(t, blog.ID, comment.BlogID)
	assert.Equal(t, reader.ID, comment.AccountID)

	draft := seedBlog(t, author, func(blog *models.Blog) {
		blog.Publish = false
	})
	_, err = NewBlogComment(reader, draft, "too early")
	assert.Error(t, err)

	muted := seedBlog(t, author, func(blog *models.Blog) {
		blog.Commentable = false
	})
	_, err = NewBlogComment(reader, muted, "not welcome here")
	assert.Error(t, err)
}

func TestListAndDeleteBlogComments(t *testing.T) {
	database.NewTestGorm(t)
	author := seedAccount(t, models.RoleEditor, "en,")
	reader := seedAccount(t, models.RoleVisitor, "en,")
	blog := seedBlog(t, author, nil)

	first, err := NewBlogComment(reader, blog, "first comment")
	require.NoError(t, err)
	_, err = NewBlogComment(reader, blog, "second comment")
	require.NoError(t, err)

	comments, err := ListBlogComments(blog.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)

	require.NoError(t, DeleteBlogComment(first))

	comments, err = ListBlogComments(blog.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
