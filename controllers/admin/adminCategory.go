package adminController

import (
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AdminListCategories lists all categories in name order.
func AdminListCategories(c *fiber.Ctx) error {
	categories, err := services.ListCategoriesForAdmin(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

func AdminGetCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)

	category, err := services.GetCategory(database.Database.Db, categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", category)
}

func AdminCreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedCategory").(*services.CategoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := services.CreateCategory(database.Database.Db, *input)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func AdminUpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)

	input, ok := c.Locals("validatedCategory").(*services.CategoryInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := services.UpdateCategory(database.Database.Db, categoryID, *input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory hard-deletes a category; referencing courses
// simply lose it from their category list.
func AdminDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)

	if err := services.DeleteCategory(database.Database.Db, categoryID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
