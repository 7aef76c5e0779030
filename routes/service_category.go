package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupServiceCategoryRoutes configures all service category related routes
func SetupServiceCategoryRoutes(app *fiber.App) {
	category := app.Group("/api/servicecategory")

	category.Get("/", controllers.GetAllServiceCategories)
	category.Get("/:id", controllers.GetServiceCategoryByID)
	category.Post("/", middleware.Protected(), middleware.RequireAdmin(), controllers.CreateServiceCategory)
	category.Put("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.UpdateServiceCategory)
	category.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteServiceCategory)
}
