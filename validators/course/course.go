package courseValidator

import (
	"cursohub/middleware"
	"cursohub/services"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type courseRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	DurationHours int     `json:"duration_hours"`
	Provider      string  `json:"provider"`
	Link          string  `json:"link"`
	CategoryIDs   *[]uint `json:"category_ids"`
}

// CourseBody validates the admin create/update course payload and
// parks a services.CourseInput in locals. CategoryIDs stays nil when
// the field was omitted, so the handler can tell "absent" from "[]".
func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 255 {
			errors["name"] = "Name must be at most 255 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.DurationHours < 1 {
			errors["duration_hours"] = "Duration must be at least 1 hour!"
		}

		if strings.TrimSpace(reqData.Provider) == "" {
			errors["provider"] = "Provider is required!"
		} else if len(reqData.Provider) > 255 {
			errors["provider"] = "Provider must be at most 255 characters long!"
		}

		if reqData.Link != "" {
			if len(reqData.Link) > 500 {
				errors["link"] = "Link must be at most 500 characters long!"
			} else if validate.Var(reqData.Link, "url") != nil {
				errors["link"] = "Link must be a valid URL!"
			}
		}

		if reqData.CategoryIDs != nil {
			for _, id := range *reqData.CategoryIDs {
				if id == 0 {
					errors["category_ids"] = "Category ids must be positive!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", &services.CourseInput{
			Name:          strings.TrimSpace(reqData.Name),
			Description:   strings.TrimSpace(reqData.Description),
			DurationHours: reqData.DurationHours,
			Provider:      strings.TrimSpace(reqData.Provider),
			Link:          strings.TrimSpace(reqData.Link),
			CategoryIDs:   reqData.CategoryIDs,
		})
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
