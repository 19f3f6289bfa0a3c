package queries

import (
	"strings"
	"testing"
	"time"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8445"

func seedAccount(t *testing.T, role string) models.Account {
	t.Helper()

	account := models.Account{
		Name:  gofakeit.Username(),
		Email: gofakeit.Email(),
		Role:  role,
	}
	require.NoError(t, database.C.Create(&account).Error)

	return account
}

func seedBlog(t *testing.T, author models.Account, lang string) models.Blog {
	t.Helper()

	blog := models.Blog{
		Title:       gofakeit.Sentence(4),
		Body:        gofakeit.Paragraph(1, 3, 8, "\n"),
		Language:    lang,
		Publish:     true,
		Commentable: true,
		ReleaseDate: time.Now(),
		AccountID:   author.ID,
	}
	require.NoError(t, database.C.Create(&blog).Error)

	return blog
}

func seedImage(t *testing.T, actor models.Account, blog models.Blog, original string) models.BlogImage {
	t.Helper()

	fileName := services.NewUploadFileName(original)
	publicPath, err := services.StoreImageFile(fileName, strings.NewReader(original))
	require.NoError(t, err)

	image, err := services.RecordBlogImage(actor, blog, fileName, publicPath)
	require.NoError(t, err)

	return image
}

func TestCompleteBlogMeta(t *testing.T) {
	database.NewTestGorm(t)
	viper.Set("uploads.root", t.TempDir())

	author := seedAccount(t, models.RoleEditor)
	fans := []models.Account{
		seedAccount(t, models.RoleVisitor),
		seedAccount(t, models.RoleVisitor),
	}
	critic := seedAccount(t, models.RoleVisitor)

	blog := seedBlog(t, author, "en")
	quiet := seedBlog(t, author, "en")

	for _, fan := range fans {
		_, _, err := services.ReactBlog(fan, blog.ID, models.LikeAttitudePositive)
		require.NoError(t, err)
	}
	_, _, err := services.ReactBlog(critic, blog.ID, models.LikeAttitudeNegative)
	require.NoError(t, err)

	_, err = services.NewBlogComment(critic, blog, "could be better")
	require.NoError(t, err)
	_, err = services.NewBlogComment(fans[0], blog, "loved it")
	require.NoError(t, err)

	cover := seedImage(t, author, blog, "cover.png")
	require.True(t, cover.IsDefault)

	out, err := CompleteBlogMeta(testBaseURL, blog, quiet)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.EqualValues(t, 2, out[0].Metric.LikeCount)
	assert.EqualValues(t, 1, out[0].Metric.DislikeCount)
	assert.EqualValues(t, 2, out[0].Metric.CommentCount)
	require.NotNil(t, out[0].Metric.DefaultImage)
	assert.Equal(t, testBaseURL+cover.Upload.Path, *out[0].Metric.DefaultImage)

	// A blog with no activity keeps zero counters and no default image
	assert.EqualValues(t, 0, out[1].Metric.LikeCount)
	assert.EqualValues(t, 0, out[1].Metric.CommentCount)
	assert.Nil(t, out[1].Metric.DefaultImage)
}

func TestCompleteBlogDetail(t *testing.T) {
	database.NewTestGorm(t)
	viper.Set("uploads.root", t.TempDir())

	author := seedAccount(t, models.RoleEditor)
	reader := seedAccount(t, models.RoleVisitor)

	food, err := services.UpsertSourceCategory(nil, "Food")
	require.NoError(t, err)
	english, err := services.UpsertCategory(food.ID, "en", "Food")
	require.NoError(t, err)
	_, err = services.UpsertCategory(food.ID, "ar", "طعام")
	require.NoError(t, err)

	// The blog is Arabic but was linked through the English category row
	blog := seedBlog(t, author, "ar")
	require.NoError(t, database.C.Create(&models.BlogCategoryLink{
		BlogID:     blog.ID,
		CategoryID: english.ID,
	}).Error)

	comment, err := services.NewBlogComment(reader, blog, "شكرا")
	require.NoError(t, err)

	cover := seedImage(t, author, blog, "cover.png")
	gallery := seedImage(t, author, blog, "gallery.png")
	require.True(t, cover.IsDefault)
	require.False(t, gallery.IsDefault)

	detail, err := CompleteBlogDetail(testBaseURL, blog)
	require.NoError(t, err)

	// Category names follow the blog's own language
	names := lo.Map(detail.Metric.Categories, func(item models.BlogCategory, _ int) string {
		return item.Name
	})
	assert.Equal(t, []string{"طعام"}, names)

	require.Len(t, detail.Metric.Comments, 1)
	assert.Equal(t, comment.Comment, detail.Metric.Comments[0].Comment)
	assert.Equal(t, reader.Name, detail.Metric.Comments[0].AccountName)

	// The gallery excludes the default image and resolves absolute URLs
	require.Len(t, detail.Metric.Images, 1)
	assert.Equal(t, gallery.ID, detail.Metric.Images[0].ID)
	assert.Equal(t, testBaseURL+gallery.Upload.Path, detail.Metric.Images[0].URL)
}
