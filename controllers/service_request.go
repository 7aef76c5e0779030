package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

type CreateRequestInput struct {
	ServiceProviderID uint       `json:"service_provider_id"`
	ServiceCategoryID uint       `json:"service_category_id"`
	SubServiceID      *uint      `json:"sub_service_id"`
	ScheduledTime     *time.Time `json:"scheduled_time"`
	CustomerNotes     string     `json:"customer_notes"`
}

// CreateServiceRequest opens a new request against a provider (customer only)
func CreateServiceRequest(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	input := new(CreateRequestInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.ServiceProviderID == 0 || input.ServiceCategoryID == 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Service provider and category are required")
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, input.ServiceProviderID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	request := models.ServiceRequest{
		CustomerID:        customer.ID,
		ServiceProviderID: input.ServiceProviderID,
		ServiceCategoryID: input.ServiceCategoryID,
		SubServiceID:      input.SubServiceID,
		ScheduledTime:     input.ScheduledTime,
		CustomerNotes:     input.CustomerNotes,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Service request created successfully",
		"request": request,
	})
}

// GetCustomerRequests lists the caller's requests with relations expanded
func GetCustomerRequests(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	var requests []models.ServiceRequest
	err := db.DB.Preload("ServiceProvider").Preload("ServiceCategory").Preload("SubService").
		Where("customer_id = ?", customer.ID).
		Find(&requests).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": requests,
	})
}

// GetProviderRequests lists the requests assigned to the calling provider
func GetProviderRequests(c *fiber.Ctx) error {
	provider := c.Locals("serviceProvider").(*models.ServiceProvider)

	var requests []models.ServiceRequest
	err := db.DB.Preload("Customer").Preload("ServiceCategory").Preload("SubService").
		Where("service_provider_id = ?", provider.ID).
		Find(&requests).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"requests": requests,
	})
}

type UpdateRequestStatusInput struct {
	Status models.RequestStatus `json:"status"`
}

// UpdateServiceRequestStatus moves a request through its workflow; only
// the assigned provider may call it.
func UpdateServiceRequestStatus(c *fiber.Ctx) error {
	provider := c.Locals("serviceProvider").(*models.ServiceProvider)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service request ID")
	}

	input := new(UpdateRequestStatusInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if !models.ValidStatus(input.Status) {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid status value")
	}

	var request models.ServiceRequest
	if err := db.DB.First(&request, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service request not found")
	}

	if request.ServiceProviderID != provider.ID {
		return utils.NewAPIError(fiber.StatusForbidden, "Unauthorized to update this request")
	}

	if err := request.UpdateStatus(db.DB, input.Status); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service request status updated",
		"request": request,
	})
}

// DeleteServiceRequest removes a request; ownership is checked in the
// same lookup to avoid a second round trip.
func DeleteServiceRequest(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service request ID")
	}

	var request models.ServiceRequest
	if db.DB.Where("id = ? AND customer_id = ?", id, customer.ID).First(&request).RowsAffected == 0 {
		return utils.NewAPIError(fiber.StatusNotFound, "Service request not found or unauthorized")
	}

	if err := db.DB.Delete(&request).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service request deleted successfully",
	})
}
