package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/configs"
	"coachdesk_backend/internals/features/payments/controller"
	"coachdesk_backend/internals/features/payments/repository"
	"coachdesk_backend/internals/features/payments/service"
)

// PaymentUserRoutes mounts checkout under the authenticated user group.
func PaymentUserRoutes(user fiber.Router, db *gorm.DB, gateway service.SnapGateway) {
	store := repository.NewGormCheckoutStore(db)
	checkout := service.NewCheckoutService(store, store, gateway, service.CheckoutConfig{
		SuccessURL: configs.CheckoutSuccessURL,
		CancelURL:  configs.CheckoutCancelURL,
	})
	ctl := controller.NewPaymentController(checkout)

	payments := user.Group("/payments")
	payments.Post("/checkout", ctl.CreateCheckoutSession)
}

// PaymentWebhookRoutes mounts the unauthenticated gateway callback.
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	store := repository.NewGormCheckoutStore(db)
	webhook := service.NewWebhookService(store, store, configs.MidtransServerKey)
	ctl := controller.NewWebhookController(webhook)

	app.Post("/api/payments/notification", ctl.HandleNotification)
}
