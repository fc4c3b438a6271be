package adminController

import (
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/services"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns the four aggregate counters.
func AdminDashboardStats(c *fiber.Ctx) error {
	totals, err := services.DashboardStats(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", totals)
}
