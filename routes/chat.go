package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/controllers"
	"github.com/khidmathub/khidmat-backend/middleware"
)

// SetupChatRoutes configures all chat related routes
func SetupChatRoutes(app *fiber.App) {
	chat := app.Group("/api/chat")

	chat.Post("/message", middleware.Protected(), middleware.RequireParticipant(), controllers.SendMessage)
	chat.Get("/messages/:chatId", middleware.Protected(), middleware.RequireParticipant(), controllers.GetMessages)
	chat.Post("/", middleware.Protected(), middleware.RequireParticipant(), controllers.CreateOrGetChat)
	chat.Get("/", middleware.Protected(), middleware.RequireParticipant(), controllers.GetChats)
	chat.Delete("/:chatId", middleware.Protected(), middleware.RequireAdmin(), controllers.DeleteChat)
}
