package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
	"github.com/khidmathub/khidmat-backend/utils"
)

type CreateChatInput struct {
	ServiceProviderID uint `json:"service_provider_id"`
	CustomerID        uint `json:"customer_id"`
}

// CreateOrGetChat returns the existing chat for the pair or creates one.
// The caller supplies the other participant's id.
func CreateOrGetChat(c *fiber.Ctx) error {
	participantID := c.Locals("participantID").(uint)
	participantType := c.Locals("participantType").(models.SenderType)

	input := new(CreateChatInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var customerID, providerID uint
	switch participantType {
	case models.SenderCustomer:
		if input.ServiceProviderID == 0 {
			return utils.NewAPIError(fiber.StatusBadRequest, "Service Provider ID is required")
		}
		customerID = participantID
		providerID = input.ServiceProviderID
	case models.SenderProvider:
		if input.CustomerID == 0 {
			return utils.NewAPIError(fiber.StatusBadRequest, "Customer ID is required")
		}
		customerID = input.CustomerID
		providerID = participantID
	}

	var existing models.Chat
	if db.DB.Where("customer_id = ? AND service_provider_id = ?", customerID, providerID).
		First(&existing).RowsAffected > 0 {
		return c.JSON(fiber.Map{
			"success": true,
			"chat":    existing,
		})
	}

	chat := models.Chat{
		CustomerID:        customerID,
		ServiceProviderID: providerID,
	}

	if err := db.DB.Create(&chat).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"chat":    chat,
	})
}

// GetChats lists the caller's chats with the last message expanded
func GetChats(c *fiber.Ctx) error {
	participantID := c.Locals("participantID").(uint)
	participantType := c.Locals("participantType").(models.SenderType)

	column := "customer_id"
	if participantType == models.SenderProvider {
		column = "service_provider_id"
	}

	var chats []models.Chat
	if err := db.DB.Preload("LastMessage").Where(column+" = ?", participantID).Find(&chats).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"chats":   chats,
	})
}

type SendMessageInput struct {
	ChatID uint   `json:"chat_id"`
	Text   string `json:"text"`
	Image  string `json:"image"`
	File   string `json:"file"`
}

// SendMessage appends a message to a chat and moves the lastMessage pointer
func SendMessage(c *fiber.Ctx) error {
	participantID := c.Locals("participantID").(uint)
	participantType := c.Locals("participantType").(models.SenderType)

	input := new(SendMessageInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Cannot parse JSON")
	}

	if input.Text == "" && input.Image == "" && input.File == "" {
		return utils.NewAPIError(fiber.StatusBadRequest, "Message cannot be empty")
	}

	var chat models.Chat
	if err := db.DB.First(&chat, input.ChatID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Chat not found")
	}

	message := models.Message{
		SenderID:   participantID,
		SenderType: participantType,
		ChatID:     chat.ID,
		Text:       input.Text,
		Image:      input.Image,
		File:       input.File,
	}

	if err := db.DB.Create(&message).Error; err != nil {
		return err
	}

	chat.LastMessageID = &message.ID
	if err := db.DB.Save(&chat).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// GetMessages lists all messages in a chat, oldest first
func GetMessages(c *fiber.Ctx) error {
	chatID, err := c.ParamsInt("chatId")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid chat ID")
	}

	var messages []models.Message
	if err := db.DB.Where("chat_id = ?", chatID).Order("created_at").Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}

// DeleteChat removes a chat and every message in it (admin only)
func DeleteChat(c *fiber.Ctx) error {
	chatID, err := c.ParamsInt("chatId")
	if err != nil {
		return utils.NewAPIError(fiber.StatusBadRequest, "Invalid chat ID")
	}

	var chat models.Chat
	if err := db.DB.First(&chat, chatID).Error; err != nil {
		return utils.NewAPIError(fiber.StatusNotFound, "Chat not found")
	}

	if err := db.DB.Where("chat_id = ?", chat.ID).Delete(&models.Message{}).Error; err != nil {
		return err
	}
	if err := db.DB.Delete(&chat).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Chat deleted successfully",
	})
}
