package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	enrollmentModel "coachdesk_backend/internals/features/academics/enrollments/model"
	paymentModel "coachdesk_backend/internals/features/payments/model"
)

var (
	ErrInvalidPayload   = errors.New("invalid notification payload")
	ErrInvalidSignature = errors.New("invalid notification signature")
	ErrUnknownOrder     = errors.New("unknown order id")
)

// EnrollmentStore is written to when a session settles.
type EnrollmentStore interface {
	HasEnrollment(ctx context.Context, userID, batchID uuid.UUID) (bool, error)
	CreateEnrollment(ctx context.Context, e *enrollmentModel.EnrollmentModel) error
}

type WebhookService struct {
	payments    PaymentStore
	enrollments EnrollmentStore
	serverKey   string
}

func NewWebhookService(payments PaymentStore, enrollments EnrollmentStore, serverKey string) *WebhookService {
	return &WebhookService{payments: payments, enrollments: enrollments, serverKey: serverKey}
}

// VerifySignature checks the Midtrans notification signature:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// HandleNotification processes a gateway status callback. Settlement marks
// the payment paid and creates the enrollment; terminal failures update the
// payment status only.
func (s *WebhookService) HandleNotification(ctx context.Context, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	statusCode, ok3 := body["status_code"].(string)
	grossAmount, ok4 := body["gross_amount"].(string)
	signature, ok5 := body["signature_key"].(string)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		log.Println("[ERROR] webhook: incomplete payload")
		return ErrInvalidPayload
	}

	if !VerifySignature(orderID, statusCode, grossAmount, s.serverKey, signature) {
		log.Printf("[ERROR] webhook: signature mismatch for order %s", orderID)
		return ErrInvalidSignature
	}

	payment, err := s.payments.FindPaymentByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[ERROR] webhook: order %s not found: %v", orderID, err)
		return ErrUnknownOrder
	}

	switch status {
	case "capture", "settlement":
		if payment.Status == paymentModel.PaymentStatusPaid {
			return nil // duplicate notification
		}
		now := time.Now().UTC()
		payment.Status = paymentModel.PaymentStatusPaid
		payment.PaidAt = &now
		if method, ok := body["payment_type"].(string); ok {
			payment.Method = &method
		}
		if err := s.payments.SavePayment(ctx, payment); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		return s.ensureEnrollment(ctx, payment)
	case "expire":
		payment.Status = paymentModel.PaymentStatusExpired
	case "cancel":
		payment.Status = paymentModel.PaymentStatusCanceled
	case "deny", "failure":
		payment.Status = paymentModel.PaymentStatusFailed
	default:
		log.Printf("[INFO] webhook: status %q for order %s ignored", status, orderID)
		return nil
	}

	if err := s.payments.SavePayment(ctx, payment); err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

func (s *WebhookService) ensureEnrollment(ctx context.Context, payment *paymentModel.PaymentModel) error {
	exists, err := s.enrollments.HasEnrollment(ctx, payment.UserID, payment.BatchID)
	if err != nil {
		return fmt.Errorf("enrollment lookup: %w", err)
	}
	if exists {
		return nil
	}
	e := &enrollmentModel.EnrollmentModel{
		UserID:    payment.UserID,
		BatchID:   payment.BatchID,
		PaymentID: &payment.ID,
		Status:    enrollmentModel.EnrollmentStatusActive,
	}
	if err := s.enrollments.CreateEnrollment(ctx, e); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	log.Printf("[SUCCESS] enrollment created for order %s", payment.OrderID)
	return nil
}
