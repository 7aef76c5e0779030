package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// APIError is the typed failure raised by controllers; the terminal
// handler turns it into the response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// ErrorHandler is the single terminal handler: every failure a controller
// or middleware returns ends up here and leaves as {success, message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var apiErr *APIError
	var fiberErr *fiber.Error
	var jwtErr *jwt.ValidationError

	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
		message = apiErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = fiber.StatusNotFound
		message = "Resource not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		code = fiber.StatusBadRequest
		message = "Duplicate value entered"
	case errors.As(err, &jwtErr):
		code = fiber.StatusUnauthorized
		message = "Invalid or expired token"
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
