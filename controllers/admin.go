package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

// AdminLogin authenticates an admin and issues a bearer token
func AdminLogin(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Email == "" || input.Password == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Please enter email and password")
	}

	var admin models.Admin
	if db.DB.Where("email = ?", input.Email).First(&admin).RowsAffected == 0 {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.SignToken(admin.ID, "admin", admin.Email)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"admin":   admin,
	})
}

type CreateAdminInput struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Password    string           `json:"password"`
	Role        models.AdminRole `json:"role"`
	Permissions []string         `json:"permissions"`
}

// CreateAdmin registers a new admin account (super admin only)
func CreateAdmin(c *fiber.Ctx) error {
	input := new(CreateAdminInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "All fields are required")
	}
	if input.Role != models.RoleSuperAdmin && input.Role != models.RoleModerator {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid admin role")
	}

	var existing models.Admin
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Admin with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := models.Admin{
		Name:        input.Name,
		Email:       input.Email,
		Password:    string(hashedPassword),
		Role:        input.Role,
		Permissions: input.Permissions,
	}

	if err := db.DB.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

// GetAdminProfile returns the authenticated admin's record
func GetAdminProfile(c *fiber.Ctx) error {
	admin := c.Locals("admin").(*models.Admin)

	return c.JSON(fiber.Map{
		"success": true,
		"admin":   admin,
	})
}
