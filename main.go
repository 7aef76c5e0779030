package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/redis"
	"github.com/khidmathub/khidmat-backend/routes"
	"github.com/khidmathub/khidmat-backend/utils"
)

func main() {
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	db.Init()
	db.Migrate()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Khidmat backend is running")
	})

	routes.SetupCustomerRoutes(app)
	routes.SetupServiceProviderRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupServiceCategoryRoutes(app)
	routes.SetupSubServiceRoutes(app)
	routes.SetupServiceRequestRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupChatRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Fatal(app.Listen(":" + port))
}
