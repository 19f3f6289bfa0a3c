package services

import (
	"errors"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"gorm.io/gorm"
)

// ReactBlog toggles an account's attitude towards a blog. Reacting with
// the attitude already stored removes the row; the opposite attitude flips
// it, so like and dislike stay mutually exclusive. Returns whether a
// reaction remains afterwards.
func ReactBlog(actor models.Account, blogID uint, attitude models.BlogLikeAttitude) (bool, models.BlogLike, error) {
	var like models.BlogLike
	if err := database.C.
		Where("blog_id = ? AND account_id = ?", blogID, actor.ID).
		First(&like).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, like, err
		}

		like = models.BlogLike{
			Attitude:  attitude,
			BlogID:    blogID,
			AccountID: actor.ID,
		}
		err = database.C.Save(&like).Error
		return true, like, err
	}

	if like.Attitude == attitude {
		// Hard delete, a soft deleted row would still occupy the
		// (blog, account) unique index and block the next reaction
		err := database.C.Unscoped().Delete(&like).Error
		return false, like, err
	}

	like.Attitude = attitude
	err := database.C.Save(&like).Error

	return true, like, err
}

func CountBlogLikes(blogID uint, attitude models.BlogLikeAttitude) int64 {
	var count int64
	if err := database.C.Model(&models.BlogLike{}).
		Where("blog_id = ? AND attitude = ?", blogID, attitude).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
