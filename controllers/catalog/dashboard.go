package catalogController

import (
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/services"

	"github.com/gofiber/fiber/v2"
)

// UserDashboard returns the courses the user is enrolled in, with
// categories and enrollment counts.
func UserDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := services.EnrolledCourses(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"enrolledCourses": courses,
	})
}
