package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// Protected verifies the bearer token's signature and expiry and leaves
// the parsed token in locals for the role guards below.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(utils.JWTSecret()),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return utils.NewAPIError(fiber.StatusUnauthorized, "Access Denied! No token provided.")
	}
	return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid or expired token")
}

// principal pulls the subject id and role out of the verified token.
func principal(c *fiber.Ctx) (uint, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, "", fmt.Errorf("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid token claims")
	}

	id, err := extractID(claims)
	if err != nil {
		return 0, "", err
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return 0, "", fmt.Errorf("no role found in claims")
	}

	return id, role, nil
}

// extractID handles multiple potential formats of the subject ID in the token
func extractID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// RequireCustomer resolves the token subject against the customers table
// and attaches the record to the request context.
func RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, role, err := principal(c)
		if err != nil {
			return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if role != RoleCustomer {
			return utils.NewAPIError(fiber.StatusForbidden, "Access denied! Customers only.")
		}

		var customer models.Customer
		if err := db.DB.First(&customer, id).Error; err != nil {
			return utils.NewAPIError(fiber.StatusNotFound, "Customer not found!")
		}

		c.Locals("customer", &customer)
		return c.Next()
	}
}

// RequireProvider does the same for service providers.
func RequireProvider() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, role, err := principal(c)
		if err != nil {
			return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if role != RoleProvider {
			return utils.NewAPIError(fiber.StatusForbidden, "Access denied! Service providers only.")
		}

		var provider models.ServiceProvider
		if err := db.DB.First(&provider, id).Error; err != nil {
			return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found!")
		}

		c.Locals("serviceProvider", &provider)
		return c.Next()
	}
}

// RequireAdmin does the same for admins.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, role, err := principal(c)
		if err != nil {
			return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if role != RoleAdmin {
			return utils.NewAPIError(fiber.StatusForbidden, "Access denied! Admins only.")
		}

		var admin models.Admin
		if err := db.DB.First(&admin, id).Error; err != nil {
			return utils.NewAPIError(fiber.StatusNotFound, "Admin not found!")
		}

		c.Locals("admin", &admin)
		return c.Next()
	}
}

// RequireSuperAdmin must run after RequireAdmin.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := c.Locals("admin").(*models.Admin)
		if !ok {
			return utils.NewAPIError(fiber.StatusUnauthorized, "Admin not found!")
		}
		if admin.Role != models.RoleSuperAdmin {
			return utils.NewAPIError(fiber.StatusForbidden, "Access denied! Super Admins only.")
		}
		return c.Next()
	}
}

// RequireParticipant admits either a customer or a provider and records
// which kind the caller is, for the chat endpoints.
func RequireParticipant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, role, err := principal(c)
		if err != nil {
			return utils.NewAPIError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		switch role {
		case RoleCustomer:
			var customer models.Customer
			if err := db.DB.First(&customer, id).Error; err != nil {
				return utils.NewAPIError(fiber.StatusNotFound, "Customer not found!")
			}
			c.Locals("participantID", customer.ID)
			c.Locals("participantType", models.SenderCustomer)
		case RoleProvider:
			var provider models.ServiceProvider
			if err := db.DB.First(&provider, id).Error; err != nil {
				return utils.NewAPIError(fiber.StatusNotFound, "Service provider not found!")
			}
			c.Locals("participantID", provider.ID)
			c.Locals("participantType", models.SenderProvider)
		default:
			return utils.NewAPIError(fiber.StatusForbidden, "Access denied!")
		}

		return c.Next()
	}
}
