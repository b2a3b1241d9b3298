package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coachdesk_backend/internals/features/payments/dto"
	"coachdesk_backend/internals/features/payments/service"
	helper "coachdesk_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	Checkout *service.CheckoutService
}

func NewPaymentController(checkout *service.CheckoutService) *PaymentController {
	return &PaymentController{Checkout: checkout}
}

// POST /api/u/payments/checkout — open a hosted checkout session for a
// batch. The price comes from the batch row, never from the client.
func (ctl *PaymentController) CreateCheckoutSession(c *fiber.Ctx) error {
	var req dto.CreatePaymentSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Reject malformed ids before touching the DB or the gateway.
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid batch_id format")
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: caller has no known email")
	}

	caller := service.Caller{
		UserID:   userID,
		Email:    email,
		FullName: helper.GetUserName(c),
	}

	payment, err := ctl.Checkout.CreateSession(c.UserContext(), caller, batchID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBatchNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Batch not found")
		case errors.Is(err, service.ErrBatchInactive):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Batch is not open for enrollment")
		case errors.Is(err, service.ErrInvalidFees):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Batch has no payable fees")
		default:
			log.Printf("[ERROR] CreateCheckoutSession: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment session")
		}
	}

	return helper.Success(c, "Checkout session created", dto.CreatePaymentSessionResponse{
		URL: payment.RedirectURL,
	})
}
