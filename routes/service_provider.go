package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupServiceProviderRoutes configures all service provider related routes
func SetupServiceProviderRoutes(app *fiber.App) {
	provider := app.Group("/api/serviceprovider")

	// Public routes
	provider.Post("/register", controllers.RegisterServiceProvider)
	provider.Post("/login", controllers.LoginServiceProvider)

	// Protected routes
	provider.Get("/", middleware.Protected(), middleware.RequireAdmin(), controllers.GetAllServiceProviders)
	provider.Post("/profile-image", middleware.Protected(), middleware.RequireProvider(), controllers.UploadProviderProfileImage)
	provider.Get("/:id", middleware.Protected(), middleware.RequireProvider(), controllers.GetServiceProviderByID)
	provider.Put("/:id/approve", middleware.Protected(), middleware.RequireAdmin(), controllers.ApproveServiceProvider)
	provider.Put("/:id", middleware.Protected(), middleware.RequireProvider(), controllers.UpdateServiceProvider)
	provider.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteServiceProvider)
}
