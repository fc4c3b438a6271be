package adminRoutes

import (
	adminController "cursohub/controllers/admin"
	"cursohub/middleware"
	categoryValidator "cursohub/validators/category"
	courseValidator "cursohub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up course/category management and the admin
// dashboard. Everything here requires the ADMIN role.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/dashboard", adminController.AdminDashboardStats)

	courseGroup := adminGroup.Group("/courses")
	courseGroup.Get("/", adminController.AdminListCourses)
	courseGroup.Post("/", courseValidator.CourseBody(), adminController.AdminCreateCourse)
	courseGroup.Get("/:id", courseValidator.CourseID(), adminController.AdminGetCourse)
	courseGroup.Put("/:id", courseValidator.CourseID(), courseValidator.CourseBody(), adminController.AdminUpdateCourse)
	courseGroup.Delete("/:id", courseValidator.CourseID(), adminController.AdminDeleteCourse)

	categoryGroup := adminGroup.Group("/categories")
	categoryGroup.Get("/", adminController.AdminListCategories)
	categoryGroup.Post("/", categoryValidator.CategoryBody(), adminController.AdminCreateCategory)
	categoryGroup.Get("/:id", categoryValidator.CategoryID(), adminController.AdminGetCategory)
	categoryGroup.Put("/:id", categoryValidator.CategoryID(), categoryValidator.CategoryBody(), adminController.AdminUpdateCategory)
	categoryGroup.Delete("/:id", categoryValidator.CategoryID(), adminController.AdminDeleteCategory)
}
