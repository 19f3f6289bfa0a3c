package database

import (
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.BlogSourceCategory{},
	&models.BlogCategory{},
	&models.BlogCategoryLink{},
	&models.Blog{},
	&models.BlogComment{},
	&models.BlogLike{},
	&models.Upload{},
	&models.BlogImage{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.ErrorLog{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
