package catalogController

import (
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the authenticated user. Enrolling twice is a
// no-op and still answers success.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	if err := services.Enroll(database.Database.Db, userID, courseID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", nil)
}

// CancelEnrollment unenrolls the authenticated user. Cancelling a
// non-existent enrollment is a no-op and still answers success.
func CancelEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	if err := services.Unenroll(database.Database.Db, userID, courseID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", nil)
}
