package queries

import (
	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/samber/lo"
)

// CompleteBlogMeta enriches a page of blogs with their recomputed
// counters and the resolved default image URL. Counts are batch loaded,
// one query per metric for the whole page.
func CompleteBlogMeta(baseURL string, in ...models.Blog) ([]models.Blog, error) {
	if len(in) == 0 {
		return in, nil
	}

	idx := make([]uint, len(in))
	itemMap := make(map[uint]*models.Blog, len(in))
	for i, item := range in {
		idx[i] = item.ID
		itemMap[item.ID] = &in[i]
	}

	// Batch count reactions per attitude
	var likes []struct {
		BlogID   uint
		Attitude models.BlogLikeAttitude
		Count    int64
	}
	if err := database.C.Model(&models.BlogLike{}).
		Select("blog_id, attitude, COUNT(id) as count").
		Where("blog_id IN ?", idx).
		Group("blog_id").Group("attitude").
		Find(&likes).Error; err != nil {
		return in, err
	}
	for _, info := range likes {
		blog, exists := itemMap[info.BlogID]
		if !exists {
			continue
		}
		switch info.Attitude {
		case models.LikeAttitudePositive:
			blog.Metric.LikeCount = info.Count
		case models.LikeAttitudeNegative:
			blog.Metric.DislikeCount = info.Count
		}
	}

	// Batch count comments
	var comments []struct {
		BlogID uint
		Count  int64
	}
	if err := database.C.Model(&models.BlogComment{}).
		Select("blog_id, COUNT(id) as count").
		Where("blog_id IN ?", idx).
		Group("blog_id").
		Find(&comments).Error; err != nil {
		return in, err
	}
	for _, info := range comments {
		if blog, exists := itemMap[info.BlogID]; exists {
			blog.Metric.CommentCount = info.Count
		}
	}

	// Batch resolve default images
	var defaults []struct {
		BlogID uint
		Path   string
	}
	if err := database.C.Model(&models.BlogImage{}).
		Select("blog_images.blog_id, uploads.path").
		Joins("JOIN uploads ON uploads.id = blog_images.upload_id").
		Where("blog_images.blog_id IN ? AND blog_images.is_default = ?", idx, true).
		Find(&defaults).Error; err != nil {
		return in, err
	}
	for _, info := range defaults {
		if blog, exists := itemMap[info.BlogID]; exists {
			blog.Metric.DefaultImage = lo.ToPtr(baseURL + info.Path)
		}
	}

	return in, nil
}

// CompleteBlogDetail builds the full projection of a single blog: metrics
// plus its categories localized to the blog's own language, its comments
// with resolved commenter names, and the non-default image gallery.
func CompleteBlogDetail(baseURL string, blog models.Blog) (models.Blog, error) {
	out, err := CompleteBlogMeta(baseURL, blog)
	if err != nil {
		return blog, err
	}
	blog = out[0]

	// Localized category names follow the blog's own language, whatever
	// language the linked rows were created in.
	var categories []models.BlogCategory
	if err := database.C.Model(&models.BlogCategory{}).
		Distinct().
		Joins("JOIN blog_categories AS linked ON linked.source_id = blog_categories.source_id").
		Joins("JOIN blog_category_links AS links ON links.category_id = linked.id").
		Where("links.blog_id = ? AND blog_categories.language = ?", blog.ID, blog.Language).
		Find(&categories).Error; err != nil {
		return blog, err
	}
	blog.Metric.Categories = categories

	var comments []models.BlogComment
	if err := database.C.Where("blog_id = ?", blog.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return blog, err
	}
	if len(comments) > 0 {
		accountIdx := lo.Uniq(lo.Map(comments, func(item models.BlogComment, _ int) uint {
			return item.AccountID
		}))
		var accounts []models.Account
		if err := database.C.Where("id IN ?", accountIdx).Find(&accounts).Error; err != nil {
			return blog, err
		}
		for i, comment := range comments {
			comments[i].AccountName = lo.FindOrElse(accounts, models.Account{}, func(item models.Account) bool {
				return item.ID == comment.AccountID
			}).Name
		}
	}
	blog.Metric.Comments = comments

	var images []models.BlogImage
	if err := database.C.Preload("Upload").
		Where("blog_id = ? AND is_default = ?", blog.ID, false).
		Find(&images).Error; err != nil {
		return blog, err
	}
	for i := range images {
		images[i].URL = baseURL + images[i].Upload.Path
	}
	blog.Metric.Images = images

	return blog, nil
}
