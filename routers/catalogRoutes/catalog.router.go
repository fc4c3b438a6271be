package catalogRoutes

import (
	catalogController "cursohub/controllers/catalog"
	"cursohub/middleware"
	courseValidator "cursohub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the user-facing browse, enrollment and
// dashboard routes
func SetupCatalogRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", middleware.JWTMiddleware, catalogController.BrowseCourses)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, courseValidator.CourseID(), catalogController.EnrollInCourse)
	courseGroup.Delete("/:id/unenroll", middleware.JWTMiddleware, courseValidator.CourseID(), catalogController.CancelEnrollment)

	app.Get("/dashboard", middleware.JWTMiddleware, catalogController.UserDashboard)
}
