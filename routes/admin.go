package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Post("/login", controllers.AdminLogin)
	admin.Get("/profile", middleware.Protected(), middleware.RequireAdmin(), controllers.GetAdminProfile)
	admin.Post("/create", middleware.Protected(), middleware.RequireAdmin(), middleware.RequireSuperAdmin(), controllers.CreateAdmin)
	admin.Get("/customers", middleware.Protected(), middleware.RequireAdmin(), controllers.GetAllCustomers)
	admin.Get("/service-providers", middleware.Protected(), middleware.RequireAdmin(), controllers.GetAllServiceProviders)
	admin.Delete("/customer/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteCustomer)
	admin.Delete("/service-provider/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteServiceProvider)
}
