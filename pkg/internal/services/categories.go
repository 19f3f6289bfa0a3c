package services

import (
	"errors"
	"fmt"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"gorm.io/gorm"
)

func ListSourceCategories() ([]models.BlogSourceCategory, error) {
	var sources []models.BlogSourceCategory
	err := database.C.Find(&sources).Error

	return sources, err
}

func GetSourceCategory(id uint) (models.BlogSourceCategory, error) {
	var source models.BlogSourceCategory
	if err := database.C.Where("id = ?", id).First(&source).Error; err != nil {
		return source, err
	}
	return source, nil
}

// UpsertSourceCategory inserts a new source category when id is nil and
// renames an existing one otherwise. The canonical name is unique across
// the whole table; an id that points nowhere is rejected instead of being
// treated as an insert.
func UpsertSourceCategory(id *uint, name string) (models.BlogSourceCategory, error) {
	var source models.BlogSourceCategory

	var dupe models.BlogSourceCategory
	if err := database.C.Where("name = ?", name).First(&dupe).Error; err == nil {
		return source, fmt.Errorf("the %s category existed before", name)
	}

	if id != nil {
		if err := database.C.Where("id = ?", *id).First(&source).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return source, fmt.Errorf("source category with id %d does not exist, leave the id empty to add a new one", *id)
			}
			return source, err
		}
		source.Name = name
		err := database.C.Save(&source).Error
		return source, err
	}

	source = models.BlogSourceCategory{Name: name}
	err := database.C.Save(&source).Error

	return source, err
}

// DeleteSourceCategory removes the row for good; a soft deleted one would
// keep the canonical name occupied in the unique index.
func DeleteSourceCategory(source models.BlogSourceCategory) error {
	return database.C.Unscoped().Delete(&source).Error
}

func ListCategoriesByLanguage(lang string) ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := database.C.Where("language = ?", lang).Find(&categories).Error

	return categories, err
}

func GetCategory(id uint) (models.BlogCategory, error) {
	var category models.BlogCategory
	if err := database.C.Where("id = ?", id).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

// ResolveCategoryName returns the localized name of a source category in
// the given language, or an error when no translation exists.
func ResolveCategoryName(sourceID uint, lang string) (models.BlogCategory, error) {
	var category models.BlogCategory
	if err := database.C.
		Where("source_id = ? AND language = ?", sourceID, lang).
		First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

// UpsertCategory binds a localized name to a source category. The pair
// (source, language) is the upsert key; a localized name that is already
// taken in any language is rejected.
func UpsertCategory(sourceID uint, lang, name string) (models.BlogCategory, error) {
	var category models.BlogCategory

	var sourceCount int64
	if err := database.C.Model(&models.BlogSourceCategory{}).
		Where("id = ?", sourceID).
		Count(&sourceCount).Error; err != nil {
		return category, err
	} else if sourceCount == 0 {
		return category, fmt.Errorf("source category with id %d does not exist", sourceID)
	}

	var dupe models.BlogCategory
	if err := database.C.
		Where("name = ? AND NOT (source_id = ? AND language = ?)", name, sourceID, lang).
		First(&dupe).Error; err == nil {
		return category, fmt.Errorf("the %s category existed before", name)
	}

	if err := database.C.
		Where("source_id = ? AND language = ?", sourceID, lang).
		First(&category).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return category, err
		}
		category = models.BlogCategory{
			SourceID: sourceID,
			Language: lang,
			Name:     name,
		}
	} else {
		category.Name = name
	}

	err := database.C.Save(&category).Error

	return category, err
}

// DeleteCategory removes the row for good so the (source, language) pair
// can be bound again later.
func DeleteCategory(category models.BlogCategory) error {
	return database.C.Unscoped().Delete(&category).Error
}

// CheckCategoriesExist verifies every referenced localized category id
// before a blog mutation is allowed to commit.
func CheckCategoriesExist(ids []uint) error {
	for _, id := range ids {
		var count int64
		if err := database.C.Model(&models.BlogCategory{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		} else if count == 0 {
			return fmt.Errorf("category with id %d does not exist", id)
		}
	}
	return nil
}
