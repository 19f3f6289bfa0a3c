package services

import (
	"strings"
	"sync"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// The listing never looks further back than this many most recent
// releases. A performance ceiling, not a correctness bound.
const blogListingWindow = 5000

const (
	SortBlogTitleAsc  = "titleAsc"
	SortBlogTitleDesc = "titleDesc"
	SortBlogDateAsc   = "dateAsc"
)

func FilterBlogPublished(tx *gorm.DB) *gorm.DB {
	return tx.Where("publish = ?", true)
}

func FilterBlogRecentWindow(tx *gorm.DB) *gorm.DB {
	window := database.C.Model(&models.Blog{}).
		Select("id").
		Order("release_date DESC").
		Limit(blogListingWindow)
	return tx.Where("blogs.id IN (?)", window)
}

func FilterBlogWithCategory(tx *gorm.DB, categoryID uint) *gorm.DB {
	links := database.C.Model(&models.BlogCategoryLink{}).
		Select("blog_id").
		Where("category_id = ?", categoryID)
	return tx.Where("blogs.id IN (?)", links)
}

// FilterBlogWithLanguages keeps blogs written in any of the reader's
// preferred languages. An empty preference list matches nothing.
func FilterBlogWithLanguages(tx *gorm.DB, languages []string) *gorm.DB {
	if len(languages) == 0 {
		return tx.Where("1 = 0")
	}
	return tx.Where("language IN ?", languages)
}

func FilterBlogWithSearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.Where("LOWER(title) LIKE ?", probe)
}

// SortBlogs orders a listing. Pinned blogs always come first; the
// secondary key defaults to most recent release.
func SortBlogs(tx *gorm.DB, sortKey string) *gorm.DB {
	tx = tx.Order("at_top DESC")
	switch sortKey {
	case SortBlogTitleAsc:
		return tx.Order("title ASC")
	case SortBlogTitleDesc:
		return tx.Order("title DESC")
	case SortBlogDateAsc:
		return tx.Order("release_date ASC")
	default:
		return tx.Order("release_date DESC")
	}
}

func CountBlogs(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Blog{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListBlogs(tx *gorm.DB, take int, offset int) ([]models.Blog, error) {
	if take > 100 {
		take = 100
	}

	var blogs []models.Blog
	if err := tx.Limit(take).Offset(offset).Find(&blogs).Error; err != nil {
		return blogs, err
	}

	return blogs, nil
}

func GetBlog(tx *gorm.DB, id uint) (models.Blog, error) {
	var blog models.Blog
	if err := tx.Where("id = ?", id).First(&blog).Error; err != nil {
		return blog, err
	}
	return blog, nil
}

func ListBlogCategoryLinks(blogID uint) ([]models.BlogCategoryLink, error) {
	var links []models.BlogCategoryLink
	err := database.C.Where("blog_id = ?", blogID).Find(&links).Error

	return links, err
}

// NewBlog stores a blog and its category links in one transaction. The
// referenced categories must have been validated beforehand. A missing
// language code is filled by detection over title and body.
func NewBlog(blog models.Blog, categoryIDs []uint) (models.Blog, error) {
	if len(blog.Language) == 0 {
		blog.Language = DetectBlogLanguage(blog.Title + " " + blog.Body)
	}

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&blog).Error; err != nil {
			return err
		}
		for _, id := range categoryIDs {
			link := models.BlogCategoryLink{
				BlogID:     blog.ID,
				CategoryID: id,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return blog, err
}

// EditBlog saves the changed fields and recreates the category links
// wholesale, all inside one transaction.
func EditBlog(blog models.Blog, categoryIDs []uint) (models.Blog, error) {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&blog).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blog.ID).
			Delete(&models.BlogCategoryLink{}).Error; err != nil {
			return err
		}
		for _, id := range categoryIDs {
			link := models.BlogCategoryLink{
				BlogID:     blog.ID,
				CategoryID: id,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return blog, err
}

// DeleteBlog removes the blog and everything hanging off it in one
// transaction, then clears the image files off the disk. A file that
// survives its rows is logged and left behind.
func DeleteBlog(blog models.Blog) error {
	uploads, err := CollectBlogUploads(blog.ID)
	if err != nil {
		return err
	}

	err = database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.BlogComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.BlogLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.BlogCategoryLink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.BlogImage{}).Error; err != nil {
			return err
		}
		for _, upload := range uploads {
			if err := tx.Delete(&upload).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&blog).Error
	})
	if err != nil {
		return err
	}

	RemoveUploadFiles(uploads...)

	return nil
}

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectBlogLanguage guesses the ISO 639-1 code of a text. Falls back to
// English when the detector cannot decide.
func DetectBlogLanguage(content string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.German,
				lingua.Arabic,
				lingua.French,
				lingua.Spanish,
				lingua.Russian,
				lingua.Turkish,
			).
			Build()
	})

	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	log.Debug().Msg("Unable to detect the language of a blog, assuming English...")
	return "en"
}
