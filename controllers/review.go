package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

const maxReviewLength = 500

type CreateReviewInput struct {
	ServiceRequestID  uint   `json:"service_request_id"`
	ServiceProviderID uint   `json:"service_provider_id"`
	Rating            int    `json:"rating"`
	Review            string `json:"review"`
}

// CreateReview records a customer's review of a completed request; one
// review per (request, customer) pair, backed by a unique index.
func CreateReview(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	input := new(CreateReviewInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.ServiceRequestID == 0 || input.ServiceProviderID == 0 || input.Rating == 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Service request ID, provider ID, and rating are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
	}
	if len(input.Review) > maxReviewLength {
		return utils.NewAPIError(fiber.StatusBadRequest, "Review must not exceed 500 characters")
	}

	var request models.ServiceRequest
	if err := db.DB.First(&request, input.ServiceRequestID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service request not found")
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, input.ServiceProviderID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	review := models.Review{
		ServiceRequestID:  input.ServiceRequestID,
		CustomerID:        customer.ID,
		ServiceProviderID: input.ServiceProviderID,
		Rating:            input.Rating,
		Review:            input.Review,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return err
	}
	if exists {
		return utils.NewAPIError(fiber.StatusBadRequest, "You have already reviewed this service")
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Review added successfully",
		"review":  review,
	})
}

// GetServiceProviderReviews lists reviews for one provider (public)
func GetServiceProviderReviews(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("service_provider_id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service provider ID")
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, providerID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	var reviews []models.Review
	if err := db.DB.Preload("Customer").Where("service_provider_id = ?", providerID).Find(&reviews).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}

// GetReviewByID returns a single review (public)
func GetReviewByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid review ID")
	}

	var review models.Review
	if err := db.DB.Preload("Customer").First(&review, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Review not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}

type UpdateReviewInput struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// UpdateReview lets the review's author adjust rating or text
func UpdateReview(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid review ID")
	}

	input := new(UpdateReviewInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Review not found")
	}

	if review.CustomerID != customer.ID {
		return utils.NewAPIError(fiber.StatusForbidden, "You can only update your own review")
	}

	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return utils.NewAPIError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}
		review.Rating = input.Rating
	}
	if input.Review != "" {
		if len(input.Review) > maxReviewLength {
			return utils.NewAPIError(fiber.StatusBadRequest, "Review must not exceed 500 characters")
		}
		review.Review = input.Review
	}

	if err := db.DB.Save(&review).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Review updated successfully",
		"review":  review,
	})
}

// DeleteReview lets the review's author remove it
func DeleteReview(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid review ID")
	}

	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Review not found")
	}

	if review.CustomerID != customer.ID {
		return utils.NewAPIError(fiber.StatusForbidden, "You can only delete your own review")
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Review deleted successfully",
	})
}
