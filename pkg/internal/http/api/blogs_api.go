package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/http/exts"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	"github.com/al-alloush/blogapi/pkg/internal/services/queries"
	"github.com/gofiber/fiber/v2"
)

var blogManagerRoles = []string{models.RoleSuperAdmin, models.RoleAdmin, models.RoleEditor}

func listBlog(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)
	if page < 1 || pageSize < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "page and pageSize must be positive")
	}

	tx := services.FilterBlogRecentWindow(database.C)
	tx = services.FilterBlogPublished(tx)
	if categoryId := c.QueryInt("category", 0); categoryId > 0 {
		tx = services.FilterBlogWithCategory(tx, uint(categoryId))
	}
	tx = services.FilterBlogWithLanguages(tx, user.PreferredLanguages())
	tx = services.FilterBlogWithSearch(tx, c.Query("search"))

	count, err := services.CountBlogs(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	tx = services.SortBlogs(tx, c.Query("sort"))
	items, err := services.ListBlogs(tx, pageSize, (page-1)*pageSize)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// A page past the end of the result set is empty, not an error.
	if len(items) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	items, err = queries.CompleteBlogMeta(c.BaseURL(), items...)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page_index":  page,
		"page_size":   pageSize,
		"total_count": count,
		"data":        items,
	})
}

func getBlog(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("blogId", 0)

	item, err := services.GetBlog(services.FilterBlogPublished(database.C), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err = queries.CompleteBlogDetail(c.BaseURL(), item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

type blogForm struct {
	Title       string `form:"title" json:"title" validate:"required,max=100"`
	ShortTitle  string `form:"short_title" json:"short_title" validate:"max=100"`
	Body        string `form:"body" json:"body" validate:"required"`
	Language    string `form:"language" json:"language" validate:"max=8"`
	Publish     bool   `form:"publish" json:"publish"`
	Commentable bool   `form:"commentable" json:"commentable"`
	AtTop       bool   `form:"at_top" json:"at_top"`
	ReleaseDate string `form:"release_date" json:"release_date"`

	// Bracketed comma list of localized category ids, e.g. "[1,2,3]"
	Categories string `form:"categories" json:"categories"`
}

// parseCategoryIDs converts the bracketed comma list the clients send
// into a list of category ids.
func parseCategoryIDs(raw string) ([]uint, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if len(raw) == 0 {
		return nil, nil
	}

	var out []uint
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if len(segment) == 0 {
			continue
		}
		id, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %s: %v", segment, err)
		}
		out = append(out, uint(id))
	}

	return out, nil
}

func parseReleaseDate(raw string) (time.Time, error) {
	if len(raw) == 0 {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

func createBlog(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, blogManagerRoles...); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data blogForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	categoryIDs, err := parseCategoryIDs(data.Categories)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.CheckCategoriesExist(categoryIDs); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	releaseDate, err := parseReleaseDate(data.ReleaseDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	item, err := services.NewBlog(models.Blog{
		Title:       data.Title,
		ShortTitle:  data.ShortTitle,
		Body:        data.Body,
		Language:    data.Language,
		Publish:     data.Publish,
		Commentable: data.Commentable,
		AtTop:       data.AtTop,
		ReleaseDate: releaseDate,
		AccountID:   user.ID,
	}, categoryIDs)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files := form.File["files"]; len(files) > 0 {
			if _, err := services.SaveBlogImages(user, item, files); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func updateBlog(c *fiber.Ctx) error {
	if err := exts.EnsureRole(c, blogManagerRoles...); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("blogId", 0)

	item, err := services.GetBlog(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data blogForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	categoryIDs, err := parseCategoryIDs(data.Categories)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.CheckCategoriesExist(categoryIDs); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	owner, err := services.GetAccountWithID(item.AccountID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !services.CanManageBlog(user, owner) {
		return fiber.NewError(fiber.StatusBadRequest, "you don't have the permission to update this blog")
	}

	releaseDate, err := parseReleaseDate(data.ReleaseDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	item.Title = data.Title
	item.ShortTitle = data.ShortTitle
	item.Body = data.Body
	item.Publish = data.Publish
	item.Commentable = data.Commentable
	item.AtTop = data.AtTop
	item.ReleaseDate = releaseDate
	if len(data.Language) > 0 {
		item.Language = data.Language
	}

	item, err = services.EditBlog(item, categoryIDs)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deleteBlog(c *fiber.Ctx) error {
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
		return fiber.NewError(fiber.StatusBadRequest, "you don't have the permission to delete this blog")
	}

	if err := services.DeleteBlog(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
