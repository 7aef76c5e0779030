package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App) {
	customer := app.Group("/api/customer")

	// Public routes
	customer.Post("/register", controllers.RegisterCustomer)
	customer.Post("/login", controllers.LoginCustomer)
	customer.Post("/password/forgot", controllers.ForgotPassword)
	customer.Post("/password/reset", controllers.ResetPassword)

	// Protected routes
	customer.Get("/", middleware.Protected(), middleware.RequireAdmin(), controllers.GetAllCustomers)
	customer.Post("/profile-image", middleware.Protected(), middleware.RequireCustomer(), controllers.UploadCustomerProfileImage)
	customer.Get("/:id", middleware.Protected(), middleware.RequireCustomer(), controllers.GetCustomerByID)
	customer.Put("/:id", middleware.Protected(), middleware.RequireCustomer(), controllers.UpdateCustomer)
	customer.Delete("/:id", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteCustomer)
}
