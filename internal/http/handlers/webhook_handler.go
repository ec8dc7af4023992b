package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "chatorder/internal/log"
	"chatorder/internal/services"
)

type WebhookHandler struct {
	Chat *services.ChatService
}

// webhookRequest is the bot platform's inbound envelope; the utterance
// is the only field the core consumes.
type webhookRequest struct {
	UserRequest struct {
		Utterance string `json:"utterance"`
	} `json:"userRequest"`
}

// simpleText wraps reply text in the platform's response envelope.
func simpleText(text string) fiber.Map {
	return fiber.Map{
		"version": "2.0",
		"template": fiber.Map{
			"outputs": []fiber.Map{
				{"simpleText": fiber.Map{"text": text}},
			},
		},
	}
}

// POST /chat/order
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	var req webhookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	reply, err := h.Chat.Handle(strings.TrimSpace(req.UserRequest.Utterance))
	if err != nil {
		applog.Error(c, "chat.handle.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "temporary failure, please retry"})
	}
	return c.JSON(simpleText(reply))
}
