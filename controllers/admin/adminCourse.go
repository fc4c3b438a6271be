package adminController

import (
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AdminListCourses lists all courses, newest first.
func AdminListCourses(c *fiber.Ctx) error {
	courses, err := services.ListCoursesForAdmin(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// AdminGetCourse fetches one course with its categories.
func AdminGetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := services.GetCourse(database.Database.Db, courseID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// AdminCreateCourse creates a new course, including its full category
// set when one was sent.
func AdminCreateCourse(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedCourse").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.CreateCourse(database.Database.Db, *input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse replaces the course fields; an omitted category
// list leaves the category set untouched, a present list is synced in
// full.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	input, ok := c.Locals("validatedCourse").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.UpdateCourse(database.Database.Db, courseID, *input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse hard-deletes a course and its join rows.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if err := services.DeleteCourse(database.Database.Db, courseID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
