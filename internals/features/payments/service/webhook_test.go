package service

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enrollmentModel "coachdesk_backend/internals/features/academics/enrollments/model"
	paymentModel "coachdesk_backend/internals/features/payments/model"
)

const testServerKey = "SB-Mid-server-test"

type fakeEnrollmentStore struct {
	enrollments []*enrollmentModel.EnrollmentModel
}

func (f *fakeEnrollmentStore) HasEnrollment(_ context.Context, userID, batchID uuid.UUID) (bool, error) {
	for _, e := range f.enrollments {
		if e.UserID == userID && e.BatchID == batchID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollmentStore) CreateEnrollment(_ context.Context, e *enrollmentModel.EnrollmentModel) error {
	f.enrollments = append(f.enrollments, e)
	return nil
}

func signNotification(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	return hex.EncodeToString(sum[:])
}

func notification(orderID, status string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           orderID,
		"transaction_status": status,
		"status_code":        "200",
		"gross_amount":       "2500000.00",
		"signature_key":      signNotification(orderID, "200", "2500000.00"),
		"payment_type":       "bank_transfer",
	}
}

func webhookFixture(t *testing.T) (*WebhookService, *fakePaymentStore, *fakeEnrollmentStore, *paymentModel.PaymentModel) {
	t.Helper()
	payments := &fakePaymentStore{}
	enrollments := &fakeEnrollmentStore{}
	payment := &paymentModel.PaymentModel{
		OrderID: "ENR-ABCDEF123456",
		UserID:  uuid.New(),
		BatchID: uuid.New(),
		Amount:  2500000,
		Status:  paymentModel.PaymentStatusPending,
	}
	require.NoError(t, payments.CreatePayment(context.Background(), payment))
	return NewWebhookService(payments, enrollments, testServerKey), payments, enrollments, payment
}

func TestVerifySignature(t *testing.T) {
	sig := signNotification("ENR-1", "200", "100.00")
	assert.True(t, VerifySignature("ENR-1", "200", "100.00", testServerKey, sig))
	assert.False(t, VerifySignature("ENR-1", "200", "100.00", testServerKey, "bogus"))
	assert.False(t, VerifySignature("ENR-2", "200", "100.00", testServerKey, sig))
}

func TestSettlementMarksPaidAndEnrolls(t *testing.T) {
	svc, _, enrollments, payment := webhookFixture(t)

	err := svc.HandleNotification(context.Background(), notification(payment.OrderID, "settlement"))
	require.NoError(t, err)

	assert.Equal(t, paymentModel.PaymentStatusPaid, payment.Status)
	require.NotNil(t, payment.PaidAt)
	require.NotNil(t, payment.Method)
	assert.Equal(t, "bank_transfer", *payment.Method)

	require.Len(t, enrollments.enrollments, 1)
	e := enrollments.enrollments[0]
	assert.Equal(t, payment.UserID, e.UserID)
	assert.Equal(t, payment.BatchID, e.BatchID)
	assert.Equal(t, enrollmentModel.EnrollmentStatusActive, e.Status)
}

func TestDuplicateSettlementIsIdempotent(t *testing.T) {
	svc, _, enrollments, payment := webhookFixture(t)
	body := notification(payment.OrderID, "settlement")

	require.NoError(t, svc.HandleNotification(context.Background(), body))
	require.NoError(t, svc.HandleNotification(context.Background(), body))

	assert.Len(t, enrollments.enrollments, 1)
}

func TestExpireUpdatesStatusWithoutEnrollment(t *testing.T) {
	svc, _, enrollments, payment := webhookFixture(t)

	err := svc.HandleNotification(context.Background(), notification(payment.OrderID, "expire"))
	require.NoError(t, err)

	assert.Equal(t, paymentModel.PaymentStatusExpired, payment.Status)
	assert.Empty(t, enrollments.enrollments)
}

func TestTamperedSignatureRejected(t *testing.T) {
	svc, _, enrollments, payment := webhookFixture(t)
	body := notification(payment.OrderID, "settlement")
	body["gross_amount"] = "1.00" // amount changed after signing

	err := svc.HandleNotification(context.Background(), body)
	require.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, paymentModel.PaymentStatusPending, payment.Status)
	assert.Empty(t, enrollments.enrollments)
}

func TestUnknownOrderRejected(t *testing.T) {
	svc, _, _, _ := webhookFixture(t)
	body := notification("ENR-DOESNOTEXIST", "settlement")

	err := svc.HandleNotification(context.Background(), body)
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestIncompletePayloadRejected(t *testing.T) {
	svc, _, _, _ := webhookFixture(t)

	err := svc.HandleNotification(context.Background(), map[string]interface{}{
		"order_id": "ENR-ABCDEF123456",
	})
	require.ErrorIs(t, err, ErrInvalidPayload)
}
