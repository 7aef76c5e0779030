package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

type RegisterProviderInput struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Password           string   `json:"password"`
	ServiceTypeIDs     []uint   `json:"service_type_ids"`
	SubServiceIDs      []uint   `json:"sub_service_ids"`
	Experience         int      `json:"experience"`
	Certifications     []string `json:"certifications"`
	CNICNumber         string   `json:"cnic_number"`
	CNICImages         []string `json:"cnic_images"`
	SelfieImage        string   `json:"selfie_image"`
	PreviousWorkImages []string `json:"previous_work_images"`
}

// RegisterServiceProvider handles provider sign up
func RegisterServiceProvider(c *fiber.Ctx) error {
	input := new(RegisterProviderInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" || input.CNICNumber == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Missing required fields")
	}
	if len(input.Password) < 6 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}

	// Check if provider already exists
	var existing models.ServiceProvider
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Service provider already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	var serviceTypes []models.ServiceCategory
	if len(input.ServiceTypeIDs) > 0 {
		if err := db.DB.Where("id IN ?", input.ServiceTypeIDs).Find(&serviceTypes).Error; err != nil {
			return err
		}
	}

	var subServices []models.SubService
	if len(input.SubServiceIDs) > 0 {
		if err := db.DB.Where("id IN ?", input.SubServiceIDs).Find(&subServices).Error; err != nil {
			return err
		}
	}

	provider := models.ServiceProvider{
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		Password:           string(hashedPassword),
		ProfileImage:       defaultProfileImage,
		ServiceTypes:       serviceTypes,
		SubServices:        subServices,
		Experience:         input.Experience,
		Certifications:     input.Certifications,
		CNICNumber:         input.CNICNumber,
		CNICImages:         input.CNICImages,
		SelfieImage:        input.SelfieImage,
		PreviousWorkImages: input.PreviousWorkImages,
	}

	if err := db.DB.Create(&provider).Error; err != nil {
		log.Printf("Error creating service provider: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":         true,
		"message":         "Service provider registered successfully",
		"serviceProvider": provider,
	})
}

// LoginServiceProvider authenticates a provider and issues a bearer token
func LoginServiceProvider(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var provider models.ServiceProvider
	if db.DB.Where("email = ?", input.Email).First(&provider).RowsAffected == 0 {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(input.Password)); err != nil {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.SignToken(provider.ID, "provider", provider.Email)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"token":           token,
		"serviceProvider": provider,
	})
}

// GetAllServiceProviders lists providers with their categories expanded (admin only)
func GetAllServiceProviders(c *fiber.Ctx) error {
	var providers []models.ServiceProvider
	if err := db.DB.Preload("ServiceTypes").Preload("SubServices").Find(&providers).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"count":            len(providers),
		"serviceProviders": providers,
	})
}

// GetServiceProviderByID returns a single provider
func GetServiceProviderByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service provider ID")
	}

	var provider models.ServiceProvider
	if err := db.DB.Preload("ServiceTypes").Preload("SubServices").First(&provider, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"serviceProvider": provider,
	})
}

type UpdateProviderInput struct {
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	ServiceTypeIDs     []uint   `json:"service_type_ids"`
	SubServiceIDs      []uint   `json:"sub_service_ids"`
	Experience         int      `json:"experience"`
	Certifications     []string `json:"certifications"`
	PreviousWorkImages []string `json:"previous_work_images"`
	ProfileImage       string   `json:"profile_image"`
}

// UpdateServiceProvider applies a partial update; only the provider themself may call it
func UpdateServiceProvider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service provider ID")
	}

	caller := c.Locals("serviceProvider").(*models.ServiceProvider)
	if caller.ID != uint(id) {
		return utils.NewAPIError(fiber.StatusForbidden, "You can only update your own profile")
	}

	input := new(UpdateProviderInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	if input.Name != "" {
		provider.Name = input.Name
	}
	if input.Phone != "" {
		provider.Phone = input.Phone
	}
	if input.Experience != 0 {
		provider.Experience = input.Experience
	}
	if len(input.Certifications) > 0 {
		provider.Certifications = input.Certifications
	}
	if len(input.PreviousWorkImages) > 0 {
		provider.PreviousWorkImages = input.PreviousWorkImages
	}
	if input.ProfileImage != "" {
		provider.ProfileImage = input.ProfileImage
	}

	if err := db.DB.Save(&provider).Error; err != nil {
		return err
	}

	if len(input.ServiceTypeIDs) > 0 {
		var serviceTypes []models.ServiceCategory
		if err := db.DB.Where("id IN ?", input.ServiceTypeIDs).Find(&serviceTypes).Error; err != nil {
			return err
		}
		if err := db.DB.Model(&provider).Association("ServiceTypes").Replace(serviceTypes); err != nil {
			return err
		}
	}
	if len(input.SubServiceIDs) > 0 {
		var subServices []models.SubService
		if err := db.DB.Where("id IN ?", input.SubServiceIDs).Find(&subServices).Error; err != nil {
			return err
		}
		if err := db.DB.Model(&provider).Association("SubServices").Replace(subServices); err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Service provider updated successfully",
		"serviceProvider": provider,
	})
}

// ApproveServiceProvider flips the verification flags; there is no
// endpoint to reverse it.
func ApproveServiceProvider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service provider ID")
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	provider.IsVerified = true
	provider.IsApproved = true

	if err := db.DB.Save(&provider).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Service provider approved successfully",
		"serviceProvider": provider,
	})
}

// DeleteServiceProvider removes a provider (admin only)
func DeleteServiceProvider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid service provider ID")
	}

	var provider models.ServiceProvider
	if err := db.DB.First(&provider, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found")
	}

	if err := db.DB.Delete(&provider).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Service provider deleted successfully",
	})
}

// UploadProviderProfileImage stores the uploaded picture and saves its URL
func UploadProviderProfileImage(c *fiber.Ctx) error {
	provider := c.Locals("serviceProvider").(*models.ServiceProvider)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Failed to read image file")
	}
	defer file.Close()

	publicID := fmt.Sprintf("provider-%d", provider.ID)
	url, err := utils.UploadToCloudinary(file, publicID, "profile-images")
	if err != nil {
		log.Printf("Cloudinary upload failed: %v", err)
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to upload image")
	}

	provider.ProfileImage = url
	if err := db.DB.Save(provider).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Profile image updated successfully",
		"serviceProvider": provider,
	})
}
