package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	appredis "github.com/khidmathub/khidmat-backend/redis"
	"github.com/khidmathub/khidmat-backend/routes"
	"github.com/khidmathub/khidmat-backend/utils"
)

var testDBCounter int64

// setupTestApp wires the full route surface against an in-memory SQLite
// store and a miniredis instance.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&models.Customer{},
		&models.ServiceProvider{},
		&models.Admin{},
		&models.ServiceCategory{},
		&models.SubService{},
		&models.ServiceRequest{},
		&models.Review{},
		&models.Chat{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gormDB

	mr := miniredis.RunT(t)
	appredis.Client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})
	routes.SetupCustomerRoutes(app)
	routes.SetupServiceProviderRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupServiceCategoryRoutes(app)
	routes.SetupSubServiceRoutes(app)
	routes.SetupServiceRequestRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupChatRoutes(app)

	return app
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hashed)
}

func seedCustomer(t *testing.T, email string) (*models.Customer, string) {
	t.Helper()
	customer := &models.Customer{
		Name:     "Test Customer",
		Email:    email,
		Phone:    fmt.Sprintf("0300%07d", atomic.AddInt64(&testDBCounter, 1)),
		Password: hashPassword(t, "secret123"),
	}
	if err := db.DB.Create(customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	token, err := utils.SignToken(customer.ID, "customer", customer.Email)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return customer, token
}

func seedProvider(t *testing.T, email string) (*models.ServiceProvider, string) {
	t.Helper()
	provider := &models.ServiceProvider{
		Name:       "Test Provider",
		Email:      email,
		Phone:      fmt.Sprintf("0311%07d", atomic.AddInt64(&testDBCounter, 1)),
		Password:   hashPassword(t, "secret123"),
		CNICNumber: fmt.Sprintf("42101%08d", atomic.AddInt64(&testDBCounter, 1)),
	}
	if err := db.DB.Create(provider).Error; err != nil {
		t.Fatalf("failed to seed provider: %v", err)
	}
	token, err := utils.SignToken(provider.ID, "provider", provider.Email)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return provider, token
}

func seedAdmin(t *testing.T, email string, role models.AdminRole) (*models.Admin, string) {
	t.Helper()
	admin := &models.Admin{
		Name:     "Test Admin",
		Email:    email,
		Password: hashPassword(t, "secret123"),
		Role:     role,
	}
	if err := db.DB.Create(admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	token, err := utils.SignToken(admin.ID, "admin", admin.Email)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return admin, token
}

func seedCategory(t *testing.T, name string) *models.ServiceCategory {
	t.Helper()
	category := &models.ServiceCategory{Name: name}
	if err := db.DB.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

// doRequest runs one request through the app and decodes the JSON body.
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	var decoded map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", raw, err)
		}
	}

	return resp.StatusCode, decoded
}
