package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	batchModel "coachdesk_backend/internals/features/academics/batches/model"
	paymentModel "coachdesk_backend/internals/features/payments/model"
)

var (
	ErrBatchNotFound = errors.New("batch not found")
	ErrBatchInactive = errors.New("batch is not open for enrollment")
	ErrInvalidFees   = errors.New("batch fees must be positive")
)

// BatchStore reads the authoritative batch row at checkout time.
type BatchStore interface {
	FindBatchByID(ctx context.Context, id uuid.UUID) (*batchModel.BatchModel, error)
}

// PaymentStore persists the session for reconciliation.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p *paymentModel.PaymentModel) error
	SavePayment(ctx context.Context, p *paymentModel.PaymentModel) error
	FindPaymentByOrderID(ctx context.Context, orderID string) (*paymentModel.PaymentModel, error)
}

// Caller is the authenticated identity opening the session.
type Caller struct {
	UserID   uuid.UUID
	Email    string
	FullName string
}

type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

type CheckoutService struct {
	batches  BatchStore
	payments PaymentStore
	gateway  SnapGateway
	cfg      CheckoutConfig
}

func NewCheckoutService(batches BatchStore, payments PaymentStore, gateway SnapGateway, cfg CheckoutConfig) *CheckoutService {
	return &CheckoutService{batches: batches, payments: payments, gateway: gateway, cfg: cfg}
}

// CreateSession revalidates the batch price server-side and opens a hosted
// checkout session. The charged amount is always round(fees*100) in the
// smallest currency unit; nothing price-shaped is accepted from the client.
func (s *CheckoutService) CreateSession(ctx context.Context, caller Caller, batchID uuid.UUID) (*paymentModel.PaymentModel, error) {
	batch, err := s.batches.FindBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		log.Printf("[ERROR] checkout: batch lookup failed: %v", err)
		return nil, fmt.Errorf("batch lookup: %w", err)
	}
	if !batch.IsActive {
		return nil, ErrBatchInactive
	}
	if batch.Fees <= 0 {
		return nil, ErrInvalidFees
	}

	amount := int64(math.Round(batch.Fees * 100))
	orderID := newOrderID()

	meta := map[string]string{
		"batch_id": batchID.String(),
		"user_id":  caller.UserID.String(),
	}
	metaJSON, _ := json.Marshal(meta)

	// Freeze the session locally before talking to the gateway, so the
	// webhook always has a row to reconcile against.
	payment := &paymentModel.PaymentModel{
		OrderID:  orderID,
		UserID:   caller.UserID,
		BatchID:  batchID,
		Amount:   amount,
		Status:   paymentModel.PaymentStatusPending,
		Metadata: datatypes.JSON(metaJSON),
	}
	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		log.Printf("[ERROR] checkout: persist payment failed: %v", err)
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    batchID.String(),
				Name:  itemName(batch.Name),
				Price: amount,
				Qty:   1,
			},
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: caller.FullName,
			Email: caller.Email,
		},
		Callbacks: &snap.Callbacks{
			Finish: s.cfg.SuccessURL + "?batch_id=" + batchID.String(),
		},
		Metadata: meta,
	}

	resp, err := s.gateway.CreateTransaction(req)
	if err != nil {
		log.Printf("[ERROR] checkout: create gateway session failed: %v", err)
		payment.Status = paymentModel.PaymentStatusFailed
		if saveErr := s.payments.SavePayment(ctx, payment); saveErr != nil {
			log.Printf("[ERROR] checkout: mark payment failed errored: %v", saveErr)
		}
		return nil, fmt.Errorf("create gateway session: %w", err)
	}

	payment.SnapToken = resp.Token
	payment.RedirectURL = resp.RedirectURL
	if err := s.payments.SavePayment(ctx, payment); err != nil {
		// Session exists at the gateway; keep going and let the webhook
		// reconcile by order id.
		log.Printf("[ERROR] checkout: save redirect failed: %v", err)
	}

	log.Printf("[SUCCESS] checkout session %s batch=%s amount=%d", orderID, batchID, amount)
	return payment, nil
}

// Snap caps item names at 50 characters; truncate on runes so a multibyte
// batch name is never cut mid-character.
func itemName(batchName string) string {
	name := "Enrollment - " + batchName
	if runes := []rune(name); len(runes) > 50 {
		return string(runes[:50])
	}
	return name
}

func newOrderID() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
	return "ENR-" + short
}
