package catalogController

import (
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/services"

	"github.com/gofiber/fiber/v2"
)

const (
	popularCategoriesLimit  = 5
	recommendedCoursesLimit = 6
)

// BrowseCourses builds the course browse page payload: the filtered
// list, popular categories, recommended courses and the caller's
// enrollment ids.
func BrowseCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	search := c.Query("search")
	requestedCategoryID := uint(c.QueryInt("categoria_id", 0))

	// An unknown category id falls back to "no filter" instead of
	// erroring or emptying the listing.
	selectedCategory, err := services.FindCategory(db, requestedCategoryID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	categoryID := uint(0)
	if selectedCategory != nil {
		categoryID = selectedCategory.ID
	}

	courses, err := services.BrowseCourses(db, search, categoryID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	popularCategories, err := services.PopularCategories(db, popularCategoriesLimit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	recommendedCourses, err := services.RecommendedCourses(db, categoryID, recommendedCoursesLimit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	enrolledCourseIDs, err := services.EnrolledCourseIDs(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var selectedCategoryID interface{}
	if selectedCategory != nil {
		selectedCategoryID = selectedCategory.ID
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":            courses,
		"popularCategories":  popularCategories,
		"recommendedCourses": recommendedCourses,
		"search":             search,
		"selectedCategoryId": selectedCategoryID,
		"selectedCategory":   selectedCategory,
		"enrolledCourseIds":  enrolledCourseIDs,
	})
}
