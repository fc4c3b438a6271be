package categoryValidator

import (
	"cursohub/middleware"
	"cursohub/services"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CategoryBody validates the admin create/update category payload.
func CategoryBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 255 {
			errors["name"] = "Name must be at most 255 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", &services.CategoryInput{
			Name: strings.TrimSpace(reqData.Name),
		})
		return c.Next()
	}
}

// CategoryID validates the :id path parameter.
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryIDStr := strings.TrimSpace(c.Params("id"))
		if categoryIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
		}

		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil || categoryID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		c.Locals("categoryID", uint(categoryID))
		return c.Next()
	}
}
