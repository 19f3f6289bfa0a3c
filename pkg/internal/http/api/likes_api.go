package api

import (
	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/http/exts"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func reactBlog(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("blogId", 0)

	var data struct {
		Attitude string `json:"attitude" form:"attitude" validate:"required,oneof=like dislike"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	attitude := lo.Ternary(
		data.Attitude == "like",
		models.LikeAttitudePositive,
		models.LikeAttitudeNegative,
	)

	item, err := services.GetBlog(services.FilterBlogPublished(database.C), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	positive, like, err := services.ReactBlog(user, item.ID, attitude)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(lo.Ternary(positive, fiber.StatusCreated, fiber.StatusNoContent)).JSON(like)
}
