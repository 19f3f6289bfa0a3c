package api

import (
	"github.com/al-alloush/blogapi/pkg/internal/http/exts"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listSourceCategories(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}

	sources, err := services.ListSourceCategories()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(sources)
}

func getSourceCategory(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}
	id, _ := c.ParamsInt("sourceId", 0)

	source, err := services.GetSourceCategory(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(source)
}

func upsertSourceCategory(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}

	var data struct {
		ID   *uint  `json:"id" form:"id"`
		Name string `json:"name" form:"name" validate:"required,max=100"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	source, err := services.UpsertSourceCategory(data.ID, data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(source)
}

func deleteSourceCategory(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}
	id, _ := c.ParamsInt("sourceId", 0)

	source, err := services.GetSourceCategory(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "this category does not exist")
	}

	if err := services.DeleteSourceCategory(source); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func listCategory(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}

	lang := c.Query("lang")
	if len(lang) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "lang is required")
	}

	categories, err := services.ListCategoriesByLanguage(lang)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(categories)
}

func getCategoryName(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}
	id, _ := c.ParamsInt("sourceId", 0)

	lang := c.Query("lang")
	if len(lang) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "lang is required")
	}

	category, err := services.ResolveCategoryName(uint(id), lang)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(category)
}

func upsertCategory(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}

	var data struct {
		SourceID uint   `json:"source_id" form:"source_id" validate:"required"`
		Language string `json:"language" form:"language" validate:"required,max=8"`
		Name     string `json:"name" form:"name" validate:"required,min=3,max=100"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.UpsertCategory(data.SourceID, data.Language, data.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func deleteCategory(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, models.RoleSuperAdmin); err != nil {
		return err
	}
	id, _ := c.ParamsInt("categoryId", 0)

	category, err := services.GetCategory(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "this category does not exist")
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
