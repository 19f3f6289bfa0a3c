package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		blogs := api.Group("/blogs").Name("Blogs API")
		{
			blogs.Get("/", listBlog)
			blogs.Get("/:blogId", getBlog)
			blogs.Post("/", createBlog)
			blogs.Put("/:blogId", updateBlog)
			blogs.Delete("/:blogId", deleteBlog)

			blogs.Post("/:blogId/images", addBlogImages)
			blogs.Post("/:blogId/comments", createBlogComment)
			blogs.Post("/:blogId/react", reactBlog)
		}

		api.Delete("/images/:imageId", deleteBlogImage)
		api.Delete("/comments/:commentId", deleteBlogComment)

		categories := api.Group("/categories").Name("Categories API")
		{
			categories.Get("/sources", listSourceCategories)
			categories.Get("/sources/:sourceId", getSourceCategory)
			categories.Put("/sources", upsertSourceCategory)
			categories.Delete("/sources/:sourceId", deleteSourceCategory)

			categories.Get("/", listCategory)
			categories.Get("/:sourceId", getCategoryName)
			categories.Put("/", upsertCategory)
			categories.Delete("/:categoryId", deleteCategory)
		}
	}
}
