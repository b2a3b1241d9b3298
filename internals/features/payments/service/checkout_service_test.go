package service

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	batchModel "coachdesk_backend/internals/features/academics/batches/model"
	paymentModel "coachdesk_backend/internals/features/payments/model"
)

/* ===== fakes ===== */

type fakeBatchStore struct {
	batches map[uuid.UUID]*batchModel.BatchModel
}

func (f *fakeBatchStore) FindBatchByID(_ context.Context, id uuid.UUID) (*batchModel.BatchModel, error) {
	b, ok := f.batches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

type fakePaymentStore struct {
	created    []*paymentModel.PaymentModel
	failCreate bool
}

func (f *fakePaymentStore) CreatePayment(_ context.Context, p *paymentModel.PaymentModel) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	p.ID = uuid.New()
	f.created = append(f.created, p)
	return nil
}

func (f *fakePaymentStore) SavePayment(_ context.Context, p *paymentModel.PaymentModel) error {
	return nil
}

func (f *fakePaymentStore) FindPaymentByOrderID(_ context.Context, orderID string) (*paymentModel.PaymentModel, error) {
	for _, p := range f.created {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeGateway struct {
	requests []*snap.Request
	fail     bool
}

func (f *fakeGateway) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	if f.fail {
		return nil, errors.New("gateway unavailable")
	}
	f.requests = append(f.requests, req)
	return &snap.Response{
		Token:       "snap-token",
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token",
	}, nil
}

func checkoutFixture(batch *batchModel.BatchModel) (*CheckoutService, *fakeBatchStore, *fakePaymentStore, *fakeGateway) {
	batches := &fakeBatchStore{batches: map[uuid.UUID]*batchModel.BatchModel{}}
	if batch != nil {
		batches.batches[batch.ID] = batch
	}
	payments := &fakePaymentStore{}
	gateway := &fakeGateway{}
	svc := NewCheckoutService(batches, payments, gateway, CheckoutConfig{
		SuccessURL: "https://app.example.com/payment/success",
		CancelURL:  "https://app.example.com/payment/cancelled",
	})
	return svc, batches, payments, gateway
}

func activeBatch(fees float64) *batchModel.BatchModel {
	return &batchModel.BatchModel{
		ID:       uuid.New(),
		CourseID: uuid.New(),
		BranchID: uuid.New(),
		Name:     "NEET Morning Batch",
		Fees:     fees,
		IsActive: true,
	}
}

func testCaller() Caller {
	return Caller{UserID: uuid.New(), Email: "student@example.com", FullName: "Asha Student"}
}

/* ===== tests ===== */

func TestCreateSessionChargesBatchFeesInMinorUnits(t *testing.T) {
	batch := activeBatch(25000)
	svc, _, payments, gateway := checkoutFixture(batch)

	payment, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.NoError(t, err)

	require.Len(t, gateway.requests, 1)
	req := gateway.requests[0]
	assert.Equal(t, int64(2500000), req.TransactionDetails.GrossAmt)
	assert.Equal(t, int64(2500000), payment.Amount)

	require.Len(t, payments.created, 1)
	assert.Equal(t, paymentModel.PaymentStatusPending, payments.created[0].Status)
}

func TestCreateSessionRoundsFractionalFees(t *testing.T) {
	batch := activeBatch(19999.995)
	svc, _, _, gateway := checkoutFixture(batch)

	_, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000000), gateway.requests[0].TransactionDetails.GrossAmt)
}

func TestCreateSessionTruncatesItemNameOnRuneBoundary(t *testing.T) {
	batch := activeBatch(5000)
	batch.Name = "हिंदी माध्यम NEET फ़ाउंडेशन बैच, सुबह का सत्र (कक्षा ग्यारह एवं बारह)"
	svc, _, _, gateway := checkoutFixture(batch)

	_, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.NoError(t, err)

	name := (*gateway.requests[0].Items)[0].Name
	assert.True(t, utf8.ValidString(name))
	assert.Equal(t, 50, utf8.RuneCountInString(name))
}

func TestCreateSessionTagsMetadataForReconciliation(t *testing.T) {
	batch := activeBatch(5000)
	svc, _, _, gateway := checkoutFixture(batch)
	caller := testCaller()

	_, err := svc.CreateSession(context.Background(), caller, batch.ID)
	require.NoError(t, err)

	meta, ok := gateway.requests[0].Metadata.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, batch.ID.String(), meta["batch_id"])
	assert.Equal(t, caller.UserID.String(), meta["user_id"])

	cb := gateway.requests[0].Callbacks
	require.NotNil(t, cb)
	assert.Contains(t, cb.Finish, "batch_id="+batch.ID.String())
}

func TestCreateSessionUnknownBatch(t *testing.T) {
	svc, _, _, gateway := checkoutFixture(nil)

	_, err := svc.CreateSession(context.Background(), testCaller(), uuid.New())
	require.ErrorIs(t, err, ErrBatchNotFound)
	assert.Empty(t, gateway.requests, "gateway must not be called for a missing batch")
}

func TestCreateSessionInactiveBatch(t *testing.T) {
	batch := activeBatch(25000)
	batch.IsActive = false
	svc, _, payments, gateway := checkoutFixture(batch)

	_, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.ErrorIs(t, err, ErrBatchInactive)
	assert.Empty(t, gateway.requests)
	assert.Empty(t, payments.created)
}

func TestCreateSessionZeroFees(t *testing.T) {
	batch := activeBatch(0)
	svc, _, _, gateway := checkoutFixture(batch)

	_, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.ErrorIs(t, err, ErrInvalidFees)
	assert.Empty(t, gateway.requests)
}

func TestCreateSessionGatewayFailureMarksPaymentFailed(t *testing.T) {
	batch := activeBatch(25000)
	svc, _, payments, gateway := checkoutFixture(batch)
	gateway.fail = true

	_, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.Error(t, err)

	require.Len(t, payments.created, 1)
	assert.Equal(t, paymentModel.PaymentStatusFailed, payments.created[0].Status)
}

func TestCreateSessionReturnsRedirectURL(t *testing.T) {
	batch := activeBatch(12500)
	svc, _, _, _ := checkoutFixture(batch)

	payment, err := svc.CreateSession(context.Background(), testCaller(), batch.ID)
	require.NoError(t, err)
	assert.Contains(t, payment.RedirectURL, "midtrans.com")
	assert.Equal(t, "snap-token", payment.SnapToken)
}
