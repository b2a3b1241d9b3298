package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"coachdesk_backend/internals/features/payments/service"
	helper "coachdesk_backend/internals/helpers"
)

type WebhookController struct {
	Webhook *service.WebhookService
}

func NewWebhookController(webhook *service.WebhookService) *WebhookController {
	return &WebhookController{Webhook: webhook}
}

// POST /api/payments/notification — gateway status callback. No bearer
// auth; authenticity comes from the signature check.
func (ctl *WebhookController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	if err := ctl.Webhook.HandleNotification(c.UserContext(), body); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPayload):
			return helper.Error(c, fiber.StatusBadRequest, "Invalid notification payload")
		case errors.Is(err, service.ErrInvalidSignature):
			return helper.Error(c, fiber.StatusForbidden, "Invalid signature")
		case errors.Is(err, service.ErrUnknownOrder):
			return helper.Error(c, fiber.StatusNotFound, "Unknown order")
		default:
			log.Printf("[ERROR] HandleNotification: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to process notification")
		}
	}

	return helper.Success(c, "Notification processed", nil)
}
