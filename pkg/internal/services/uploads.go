package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const blogImageBasePath = "/uploads/images/"

func BlogImageDirectory() string {
	return filepath.Join(viper.GetString("uploads.root"), "images")
}

// UploadDiskPath maps the stored public path of an upload back to its
// location on disk.
func UploadDiskPath(publicPath string) string {
	return filepath.Join(
		viper.GetString("uploads.root"),
		strings.TrimPrefix(publicPath, "/uploads/"),
	)
}

// NewUploadFileName prefixes the original name with a short random
// fragment so concurrent uploads of the same file cannot collide.
func NewUploadFileName(original string) string {
	return uuid.NewString()[:8] + "_" + filepath.Base(original)
}

// StoreImageFile writes the bytes under the image directory and returns
// the public path the rows will reference. The file is written before any
// row so the database never points at bytes that do not exist.
func StoreImageFile(fileName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(BlogImageDirectory(), 0o755); err != nil {
		return "", fmt.Errorf("unable to prepare image directory: %v", err)
	}

	dst, err := os.Create(filepath.Join(BlogImageDirectory(), fileName))
	if err != nil {
		return "", fmt.Errorf("unable to create image file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("unable to write image file: %v", err)
	}

	return blogImageBasePath + fileName, nil
}

// RecordBlogImage inserts the upload and association rows in one
// transaction. The image becomes the blog's default when the blog has no
// default yet.
func RecordBlogImage(actor models.Account, blog models.Blog, fileName, publicPath string) (models.BlogImage, error) {
	var image models.BlogImage

	err := database.C.Transaction(func(tx *gorm.DB) error {
		var defaults int64
		if err := tx.Model(&models.BlogImage{}).
			Where("blog_id = ? AND is_default = ?", blog.ID, true).
			Count(&defaults).Error; err != nil {
			return err
		}

		upload := models.Upload{
			Name:      fileName,
			Path:      publicPath,
			AccountID: actor.ID,
		}
		if err := tx.Create(&upload).Error; err != nil {
			return err
		}

		image = models.BlogImage{
			BlogID:    blog.ID,
			UploadID:  upload.ID,
			IsDefault: defaults == 0,
		}
		image.Upload = upload
		return tx.Create(&image).Error
	})

	return image, err
}

// SaveBlogImages stores a batch of incoming files for a blog. Each file is
// written to disk first and removed again when its rows fail to commit.
func SaveBlogImages(actor models.Account, blog models.Blog, files []*multipart.FileHeader) ([]models.BlogImage, error) {
	var images []models.BlogImage
	for _, file := range files {
		if file == nil || file.Size == 0 {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return images, fmt.Errorf("unable to read the uploaded file: %v", err)
		}

		fileName := NewUploadFileName(file.Filename)
		publicPath, err := StoreImageFile(fileName, src)
		_ = src.Close()
		if err != nil {
			return images, err
		}

		image, err := RecordBlogImage(actor, blog, fileName, publicPath)
		if err != nil {
			if removeErr := os.Remove(UploadDiskPath(publicPath)); removeErr != nil {
				log.Warn().Err(removeErr).Str("path", publicPath).
					Msg("Unable to remove the image file of a failed upload...")
			}
			return images, err
		}

		images = append(images, image)
	}

	return images, nil
}

func GetBlogImage(id uint) (models.BlogImage, error) {
	var image models.BlogImage
	if err := database.C.Preload("Upload").Where("id = ?", id).First(&image).Error; err != nil {
		return image, err
	}
	return image, nil
}

// DeleteBlogImage removes the association and upload rows in one
// transaction, then the file. No other image is promoted to default.
func DeleteBlogImage(image models.BlogImage) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&image).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Upload{}, "id = ?", image.UploadID).Error
	})
	if err != nil {
		return err
	}

	RemoveUploadFiles(image.Upload)

	return nil
}

func CollectBlogUploads(blogID uint) ([]models.Upload, error) {
	var images []models.BlogImage
	if err := database.C.Where("blog_id = ?", blogID).Find(&images).Error; err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(images))
	for _, image := range images {
		ids = append(ids, image.UploadID)
	}

	var uploads []models.Upload
	err := database.C.Where("id IN ?", ids).Find(&uploads).Error

	return uploads, err
}

// RemoveUploadFiles clears upload files off the disk after their rows are
// gone. Failures are logged and never retried.
func RemoveUploadFiles(uploads ...models.Upload) {
	for _, upload := range uploads {
		if err := os.Remove(UploadDiskPath(upload.Path)); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", upload.Path).
				Msg("Unable to remove the file of a deleted upload...")
		}
	}
}
