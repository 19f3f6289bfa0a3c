package api

import (
	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/http/exts"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func createBlogComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("blogId", 0)

	var data struct {
		Comment string `json:"comment" form:"comment" validate:"required,min=3,max=255"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetBlog(services.FilterBlogPublished(database.C), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comment, err := services.NewBlogComment(user, item, data.Comment)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func deleteBlogComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("commentId", 0)

	comment, err := services.GetBlogComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Commenters remove their own comments; otherwise the permission
	// rule between the actor and the blog owner decides.
	if comment.AccountID != user.ID {
		item, err := services.GetBlog(database.C, comment.BlogID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		owner, err := services.GetAccountWithID(item.AccountID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !services.CanManageBlog(user, owner) {
			return fiber.NewError(fiber.StatusBadRequest, "you don't have the permission to delete this comment")
		}
	}

	if err := services.DeleteBlogComment(comment); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
