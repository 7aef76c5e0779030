package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

type ServiceCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreateServiceCategory adds a new category (admin only)
func CreateServiceCategory(c *fiber.Ctx) error {
	input := new(ServiceCategoryInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Service category name is required")
	}

	var existing models.ServiceCategory
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Service category already exists")
	}

	category := models.ServiceCategory{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Service category created successfully",
		"category": category,
	})
}

// GetAllServiceCategories lists every category (public)
func GetAllServiceCategories(c *fiber.Ctx) error {
	var categories []models.ServiceCategory
	if err := db.DB.Find(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}

// GetServiceCategoryByID returns a single category
func GetServiceCategoryByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service category ID")
	}

	var category models.ServiceCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service category not found")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"category": category,
	})
}

// UpdateServiceCategory applies a partial update (admin only)
func UpdateServiceCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service category ID")
	}

	input := new(ServiceCategoryInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var category models.ServiceCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service category not found")
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	if input.Icon != "" {
		category.Icon = input.Icon
	}

	if err := db.DB.Save(&category).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Service category updated successfully",
		"category": category,
	})
}

// DeleteServiceCategory removes a category (admin only)
func DeleteServiceCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service category ID")
	}

	var category models.ServiceCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service category not found")
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service category deleted successfully",
	})
}
