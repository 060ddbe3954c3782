package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-cafe-pos/internal/metrics"
	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutState string

const (
	StateIdle         CheckoutState = "idle"
	StateAwaitingCash CheckoutState = "awaiting_cash"
	StateReadyToPay   CheckoutState = "ready_to_pay"
)

// Checkout is the payment step for one cart. The zero value is Idle.
type Checkout struct {
	Method     model.PaymentMethod
	CashAmount decimal.Decimal
	Totals     model.CartTotals
}

// State is Idle until a known payment method is chosen. Cash stays in
// AwaitingCash while the tendered amount is below the total.
func (c Checkout) State() CheckoutState {
	switch c.Method {
	case model.PaymentCash:
		if c.CashAmount.LessThan(c.Totals.Total) {
			return StateAwaitingCash
		}
		return StateReadyToPay
	case model.PaymentCard, model.PaymentQRIS:
		return StateReadyToPay
	default:
		return StateIdle
	}
}

// Validate reports why the payment cannot be completed, or nil.
func (c Checkout) Validate() error {
	switch c.Method {
	case "":
		return ErrPaymentMethodRequired
	case model.PaymentCash, model.PaymentCard, model.PaymentQRIS:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, c.Method)
	}
	if c.State() == StateAwaitingCash {
		return ErrInsufficientCash
	}
	return nil
}

// Change is max(0, cash - total) for cash payments and zero for card and
// QRIS.
func (c Checkout) Change() decimal.Decimal {
	if c.Method != model.PaymentCash {
		return decimal.Zero
	}
	change := c.CashAmount.Sub(c.Totals.Total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

type CheckoutRequest struct {
	PaymentMethod model.PaymentMethod `json:"paymentMethod"`
	CashAmount    decimal.Decimal     `json:"cashAmount"`
}

type CheckoutQuote struct {
	Totals      model.CartTotals `json:"totals"`
	State       CheckoutState    `json:"state"`
	Change      decimal.Decimal  `json:"change"`
	CanComplete bool             `json:"canComplete"`
}

type CheckoutService interface {
	Quote(ctx context.Context, req CheckoutRequest) (*CheckoutQuote, error)
	Complete(ctx context.Context, req CheckoutRequest) (*model.Transaction, error)
}

type checkoutService struct {
	cartRepo        repository.CartRepository
	transactionRepo repository.TransactionRepository
	notifier        Notifier
	now             func() time.Time
}

func NewCheckoutService(cartRepo repository.CartRepository, txRepo repository.TransactionRepository, n Notifier) CheckoutService {
	return &checkoutService{
		cartRepo:        cartRepo,
		transactionRepo: txRepo,
		notifier:        orNop(n),
		now:             time.Now,
	}
}

func (s *checkoutService) load(ctx context.Context, req CheckoutRequest) ([]model.CartLine, Checkout, error) {
	lines, err := s.cartRepo.FindAll(ctx)
	if err != nil {
		return nil, Checkout{}, err
	}
	return lines, Checkout{
		Method:     req.PaymentMethod,
		CashAmount: req.CashAmount,
		Totals:     model.ComputeTotals(lines),
	}, nil
}

// Quote has no side effects.
func (s *checkoutService) Quote(ctx context.Context, req CheckoutRequest) (*CheckoutQuote, error) {
	lines, co, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := co.Validate(); errors.Is(err, ErrInvalidPaymentMethod) {
		return nil, err
	}
	return &CheckoutQuote{
		Totals:      co.Totals,
		State:       co.State(),
		Change:      co.Change(),
		CanComplete: len(lines) > 0 && co.Validate() == nil,
	}, nil
}

// Complete records the sale and empties the cart. The transaction is written
// first so a failure clearing the cart never loses a sale.
func (s *checkoutService) Complete(ctx context.Context, req CheckoutRequest) (*model.Transaction, error) {
	lines, co, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		metrics.RecordCheckoutRejected("empty_cart")
		return nil, ErrEmptyCart
	}
	if err := co.Validate(); err != nil {
		metrics.RecordCheckoutRejected(string(co.State()))
		s.notifier.Notify(ws.Failure("checkout", "Payment failed", err.Error()))
		return nil, err
	}

	items := make([]model.TransactionItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.TransactionItem{
			ID:       l.ID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	tx := model.Transaction{
		ID:            uuid.NewString(),
		Items:         items,
		Total:         co.Totals.Total,
		Date:          s.now(),
		PaymentMethod: co.Method,
		Change:        co.Change(),
		Subtotal:      co.Totals.Subtotal,
		Tax:           co.Totals.Tax,
	}
	if co.Method == model.PaymentCash {
		tx.CashAmount = co.CashAmount
	}

	if err := s.transactionRepo.Append(ctx, &tx); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("sale %s recorded but cart not cleared: %w", tx.ID, err)
	}

	metrics.RecordSale(string(co.Method), tx.Total.InexactFloat64())
	s.notifier.Notify(ws.Success("checkout", "Payment successful", "Thank you for your purchase!"))
	return &tx, nil
}
