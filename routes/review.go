package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/api/review")

	review.Post("/", middleware.Protected(), middleware.RequireCustomer(), controllers.CreateReview)
	review.Get("/provider/:service_provider_id", controllers.GetServiceProviderReviews)
	review.Get("/:id", controllers.GetReviewByID)
	review.Put("/:id", middleware.Protected(), middleware.RequireCustomer(), controllers.UpdateReview)
	review.Delete("/:id", middleware.Protected(), middleware.RequireCustomer(), controllers.DeleteReview)
}
