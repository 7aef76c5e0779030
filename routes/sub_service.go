package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupSubServiceRoutes configures all sub-service related routes
func SetupSubServiceRoutes(app *fiber.App) {
	subService := app.Group("/api/subservice")

	subService.Get("/", controllers.GetAllSubServices)
	subService.Get("/parent/:parentId", controllers.GetSubServicesByParent)
	subService.Get("/:id", controllers.GetSubServiceByID)
	subService.Post("/", middleware.Protected(), middleware.RequireAdmin(), controllers.CreateSubService)
	subService.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateSubService)
	subService.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteSubService)
}
