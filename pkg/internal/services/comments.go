package services

import (
	"fmt"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
)

// NewBlogComment stores a comment on a published, commentable blog.
func NewBlogComment(actor models.Account, blog models.Blog, content string) (models.BlogComment, error) {
	var comment models.BlogComment

	if !blog.Publish {
		return comment, fmt.Errorf("unable to comment an unpublished blog")
	}
	if !blog.Commentable {
		return comment, fmt.Errorf("comments are disabled for this blog")
	}

	comment = models.BlogComment{
		Comment:   content,
		BlogID:    blog.ID,
		AccountID: actor.ID,
	}
	err := database.C.Save(&comment).Error

	return comment, err
}

func GetBlogComment(id uint) (models.BlogComment, error) {
	var comment models.BlogComment
	if err := database.C.Where("id = ?", id).First(&comment).Error; err != nil {
		return comment, err
	}
	return comment, nil
}

func ListBlogComments(blogID uint) ([]models.BlogComment, error) {
	var comments []models.BlogComment
	err := database.C.Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error

	return comments, err
}

func DeleteBlogComment(comment models.BlogComment) error {
	return database.C.Delete(&comment).Error
}
