package services

import (
	"strings"
	"testing"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUploadFileName(t *testing.T) {
	name := NewUploadFileName("../sneaky/cover.png")
	assert.True(t, strings.HasSuffix(name, "_cover.png"), name)
	assert.NotEqual(t, name, NewUploadFileName("cover.png"))
}

func TestStoreImageFile(t *testing.T) {
	viper.Set("uploads.root", t.TempDir())

	fileName := NewUploadFileName("cover.png")
	publicPath, err := StoreImageFile(fileName, bytesReader("fake image bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/images/"+fileName, publicPath)
	assert.FileExists(t, UploadDiskPath(publicPath))
}

func TestRecordBlogImageDefault(t *testing.T) {
	database.NewTestGorm(t)
	viper.Set("uploads.root", t.TempDir())

	author := seedAccount(t, models.RoleEditor, "en,")
	blog := seedBlog(t, author, nil)

	var images []models.BlogImage
	for _, original := range []string{"one.png", "two.png", "three.png"} {
		fileName := NewUploadFileName(original)
		publicPath, err := StoreImageFile(fileName, bytesReader(original))
		require.NoError(t, err)

		image, err := RecordBlogImage(author, blog, fileName, publicPath)
		require.NoError(t, err)
		images = append(images, image)
	}

	// Only the first stored image becomes the default
	assert.True(t, images[0].IsDefault)
	assert.False(t, images[1].IsDefault)
	assert.False(t, images[2].IsDefault)
}

func TestDeleteBlogImageKeepsOthersUnpromoted(t *testing.T) {
	database.NewTestGorm(t)
	viper.Set("uploads.root", t.TempDir())

	author := seedAccount(t, models.RoleEditor, "en,")
	blog := seedBlog(t, author, nil)

	var images []models.BlogImage
	for _, original := range []string{"one.png", "two.png"} {
		fileName := NewUploadFileName(original)
		publicPath, err := StoreImageFile(fileName, bytesReader(original))
		require.NoError(t, err)

		image, err := RecordBlogImage(author, blog, fileName, publicPath)
		require.NoError(t, err)
		images = append(images, image)
	}

	require.NoError(t, DeleteBlogImage(images[0]))
	assert.NoFileExists(t, UploadDiskPath(images[0].Upload.Path))

	_, err := GetBlogImage(images[0].ID)
	assert.Error(t, err)

	// Deleting the default leaves the blog without one
	survivor, err := GetBlogImage(images[1].ID)
	require.NoError(t, err)
	assert.False(t, survivor.IsDefault)
	assert.FileExists(t, UploadDiskPath(survivor.Upload.Path))
}
