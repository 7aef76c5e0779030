package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupServiceRequestRoutes configures all service request related routes
func SetupServiceRequestRoutes(app *fiber.App) {
	request := app.Group("/api/servicerequest")

	// Customer creates a service request
	request.Post("/", middleware.Protected(), middleware.RequireCustomer(), controllers.CreateServiceRequest)

	// Get all service requests of a customer
	request.Get("/customer", middleware.Protected(), middleware.RequireCustomer(), controllers.GetCustomerRequests)

	// Get all service requests assigned to a provider
	request.Get("/provider", middleware.Protected(), middleware.RequireProvider(), controllers.GetProviderRequests)

	// Service provider updates the request status
	request.Put("/:id", middleware.Protected(), middleware.RequireProvider(), controllers.UpdateServiceRequestStatus)

	// Customer deletes a service request
	request.Delete("/:id", middleware.Protected(), middleware.RequireCustomer(), controllers.DeleteServiceRequest)
}
