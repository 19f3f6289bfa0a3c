package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// RunSeeding makes sure the designated SuperAdmin account exists and,
// when sample seeding is switched on, fills an empty database with fake
// content for local development.
func RunSeeding(source *gorm.DB) error {
	var superAdmin models.Account
	if err := source.Where("role = ?", models.RoleSuperAdmin).First(&superAdmin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		superAdmin = models.Account{
			Name:              viper.GetString("seeding.superadmin_name"),
			Email:             viper.GetString("seeding.superadmin_email"),
			Role:              models.RoleSuperAdmin,
			SelectedLanguages: "ar,en,",
		}
		if err := source.Create(&superAdmin).Error; err != nil {
			return err
		}
		log.Info().Str("name", superAdmin.Name).Msg("Created the default SuperAdmin account.")
	}

	if viper.GetBool("debug.seed_samples") {
		return seedSamples(source, superAdmin)
	}

	return nil
}

func seedSamples(source *gorm.DB, author models.Account) error {
	var count int64
	if err := source.Model(&models.Blog{}).Count(&count).Error; err != nil {
		return err
	} else if count > 0 {
		return nil
	}

	seed := models.BlogSourceCategory{Name: "General"}
	if err := source.Create(&seed).Error; err != nil {
		return err
	}
	category := models.BlogCategory{
		SourceID: seed.ID,
		Language: "en",
		Name:     "General",
	}
	if err := source.Create(&category).Error; err != nil {
		return err
	}

	for idx := 0; idx < 10; idx++ {
		blog := models.Blog{
			Title:       gofakeit.Sentence(5),
			ShortTitle:  gofakeit.Sentence(3),
			Body:        gofakeit.Paragraph(3, 5, 10, "\n"),
			Language:    "en",
			Publish:     true,
			Commentable: true,
			ReleaseDate: time.Now().Add(-time.Duration(idx) * time.Hour),
			AccountID:   author.ID,
		}
		if err := source.Create(&blog).Error; err != nil {
			return fmt.Errorf("unable to seed sample blogs: %v", err)
		}
		link := models.BlogCategoryLink{BlogID: blog.ID, CategoryID: category.ID}
		if err := source.Create(&link).Error; err != nil {
			return err
		}
	}
	log.Info().Msg("Seeded sample blogs for local development.")

	return nil
}
