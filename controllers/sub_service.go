package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

type SubServiceInput struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ParentServiceID uint   `json:"parent_service_id"`
}

// CreateSubService adds a sub-service under an existing category (admin only)
func CreateSubService(c *fiber.Ctx) error {
	input := new(SubServiceInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" || input.ParentServiceID == 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Sub-service name and parent service ID are required")
	}

	var parent models.ServiceCategory
	if err := db.DB.First(&parent, input.ParentServiceID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Parent service category not found")
	}

	subService := models.SubService{
		Name:            input.Name,
		Description:     input.Description,
		ParentServiceID: input.ParentServiceID,
	}

	if err := db.DB.Create(&subService).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Sub-service created successfully",
		"subService": subService,
	})
}

// GetAllSubServices lists every sub-service with its parent expanded (public)
func GetAllSubServices(c *fiber.Ctx) error {
	var subServices []models.SubService
	if err := db.DB.Preload("ParentService").Find(&subServices).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"subServices": subServices,
	})
}

// GetSubServicesByParent lists sub-services for one category (public)
func GetSubServicesByParent(c *fiber.Ctx) error {
	parentID, err := c.ParamsInt("parentId")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid parent service ID")
	}

	var parent models.ServiceCategory
	if err := db.DB.First(&parent, parentID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Parent service category not found")
	}

	var subServices []models.SubService
	if err := db.DB.Where("parent_service_id = ?", parentID).Find(&subServices).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"subServices": subServices,
	})
}

// GetSubServiceByID returns a single sub-service
func GetSubServiceByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid sub-service ID")
	}

	var subService models.SubService
	if err := db.DB.Preload("ParentService").First(&subService, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Sub-service not found")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"subService": subService,
	})
}

// UpdateSubService applies a partial update; a new parent must exist (admin only)
func UpdateSubService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid sub-service ID")
	}

	input := new(SubServiceInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var subService models.SubService
	if err := db.DB.First(&subService, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Sub-service not found")
	}

	if input.ParentServiceID != 0 {
		var parent models.ServiceCategory
		if err := db.DB.First(&parent, input.ParentServiceID).Error; err != nil {
			return utils.NewAPIError(fiber.StatusNotFound, "Parent service category not found")
		}
		subService.ParentServiceID = input.ParentServiceID
	}

	if input.Name != "" {
		subService.Name = input.Name
	}
	if input.Description != "" {
		subService.Description = input.Description
	}

	if err := db.DB.Save(&subService).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Sub-service updated successfully",
		"subService": subService,
	})
}

// DeleteSubService removes a sub-service (admin only)
func DeleteSubService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid sub-service ID")
	}

	var subService models.SubService
	if err := db.DB.First(&subService, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Sub-service not found")
	}

	if err := db.DB.Delete(&subService).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sub-service deleted successfully",
	})
}
