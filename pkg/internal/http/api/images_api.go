package api

import (
	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/http/exts"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func addBlogImages(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, blogManagerRoles...); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("blogId", 0)

	item, err := services.GetBlog(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	owner, err := services.GetAccountWithID(item.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !services.CanManageBlog(user, owner) {
		return fiber.NewError(fiber.StatusBadRequest, "you don't have the permission to add images to this blog")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no images to upload")
	}

	images, err := services.SaveBlogImages(user, item, files)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(images)
}

func deleteBlogImage(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, blogManagerRoles...); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("imageId", 0)

	image, err := services.GetBlogImage(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err := services.GetBlog(database.C, image.BlogID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	owner, err := services.GetAccountWithID(item.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !services.CanManageBlog(user, owner) {
		return fiber.NewError(fiber.StatusBadRequest, "you don't have the permission to delete this image")
	}

	if err := services.DeleteBlogImage(image); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
