package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/redis"
	"github.com/khidmathub/khidmat-backend/utils"
)

const defaultProfileImage = "https://example.com/default-profile.jpg"

type RegisterCustomerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterCustomer handles customer sign up
func RegisterCustomer(c *fiber.Ctx) error {
	input := new(RegisterCustomerInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Missing required fields")
	}
	if len(input.Password) < 6 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}

	// Check if customer already exists
	var existing models.Customer
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Customer already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	customer := models.Customer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Password:     string(hashedPassword),
		ProfileImage: defaultProfileImage,
	}

	if err := db.DB.Create(&customer).Error; err != nil {
		log.Printf("Error creating customer: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Customer registered successfully",
		"customer": customer,
	})
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginCustomer authenticates a customer and issues a bearer token
func LoginCustomer(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var customer models.Customer
	if db.DB.Where("email = ?", input.Email).First(&customer).RowsAffected == 0 {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.SignToken(customer.ID, "customer", customer.Email)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"token":    token,
		"customer": customer,
	})
}

// GetAllCustomers lists every customer (admin only)
func GetAllCustomers(c *fiber.Ctx) error {
	var customers []models.Customer
	if err := db.DB.Find(&customers).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     len(customers),
		"customers": customers,
	})
}

// GetCustomerByID returns a single customer
func GetCustomerByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Customer not found")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"customer": customer,
	})
}

type UpdateCustomerInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}

// UpdateCustomer applies a partial update; only the customer themself may call it
func UpdateCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	caller := c.Locals("customer").(*models.Customer)
	if caller.ID != uint(id) {
		return utils.NewAPIError(fiber.StatusForbidden, "You can only update your own profile")
	}

	input := new(UpdateCustomerInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Customer not found")
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	if input.Phone != "" {
		customer.Phone = input.Phone
	}
	if input.ProfileImage != "" {
		customer.ProfileImage = input.ProfileImage
	}

	if err := db.DB.Save(&customer).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

// DeleteCustomer removes a customer (admin only)
func DeleteCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid customer ID")
	}

	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Customer not found")
	}

	if err := db.DB.Delete(&customer).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Customer deleted successfully",
	})
}

// UploadCustomerProfileImage stores the uploaded picture and saves its URL
func UploadCustomerProfileImage(c *fiber.Ctx) error {
	customer := c.Locals("customer").(*models.Customer)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Failed to read image file")
	}
	defer file.Close()

	publicID := fmt.Sprintf("customer-%d", customer.ID)
	url, err := utils.UploadToCloudinary(file, publicID, "profile-images")
	if err != nil {
		log.Printf("Cloudinary upload failed: %v", err)
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to upload image")
	}

	customer.ProfileImage = url
	if err := db.DB.Save(customer).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Profile image updated successfully",
		"customer": customer,
	})
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

// ForgotPassword emails a one-time reset code to the customer
func ForgotPassword(c *fiber.Ctx) error {
	input := new(ForgotPasswordInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.Email == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Email is required")
	}

	var customer models.Customer
	if db.DB.Where("email = ?", input.Email).First(&customer).RowsAffected == 0 {
		return utils.NewAPIError(fiber.StatusNotFound, "Customer not found")
	}

	otp := utils.GenerateOTP()
	if err := redis.StoreOTP(customer.Email, otp); err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to store OTP")
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your password reset code is <strong>%s</strong>.</p>
		<p>The code expires in 10 minutes.</p>
	`, customer.Name, otp)

	if err := utils.SendEmail(customer.Email, "Password Reset Code", body); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", customer.Email, err)
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to send OTP email")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent to email",
	})
}

type ResetPasswordInput struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// ResetPassword consumes the OTP and sets the new password
func ResetPassword(c *fiber.Ctx) error {
	input := new(ResetPasswordInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if input.Email == "" || input.OTP == "" || input.Password == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Missing required fields")
	}
	if len(input.Password) < 6 {
		return utils.NewAPIError(fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}

	ok, err := redis.ConsumeOTP(input.Email, input.OTP)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to verify OTP")
	}
	if !ok {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid or expired OTP")
	}

	var customer models.Customer
	if db.DB.Where("email = ?", input.Email).First(&customer).RowsAffected == 0 {
		return utils.NewAPIError(fiber.StatusNotFound, "Customer not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewAPIError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	customer.Password = string(hashedPassword)

	if err := db.DB.Save(&customer).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully",
	})
}
