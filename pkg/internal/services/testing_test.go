package services

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, role string, languages string) models.Account {
	t.Helper()

	account := models.Account{
		Name:              gofakeit.Username(),
		Email:             gofakeit.Email(),
		Role:              role,
		SelectedLanguages: languages,
	}
	require.NoError(t, database.C.Create(&account).Error)

	return account
}

func seedBlog(t *testing.T, author models.Account, mutate func(*models.Blog)) models.Blog {
	t.Helper()

	blog := models.Blog{
		Title:       gofakeit.Sentence(4),
		ShortTitle:  gofakeit.Sentence(2),
		Body:        gofakeit.Paragraph(1, 3, 8, "\n"),
		Language:    "en",
		Publish:     true,
		Commentable: true,
		ReleaseDate: time.Now(),
		AccountID:   author.ID,
	}
	if mutate != nil {
		mutate(&blog)
	}
	require.NoError(t, database.C.Create(&blog).Error)

	return blog
}

func bytesReader(content string) io.Reader {
	return strings.NewReader(content)
}

func seedCategory(t *testing.T, name, lang string) models.BlogCategory {
	t.Helper()

	source := models.BlogSourceCategory{Name: name}
	require.NoError(t, database.C.Create(&source).Error)

	category := models.BlogCategory{SourceID: source.ID, Language: lang, Name: name}
	require.NoError(t, database.C.Create(&category).Error)

	return category
}
