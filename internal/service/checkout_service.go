package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liveartfest/ticketing/internal/mailer"
	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/payment"
	"github.com/liveartfest/ticketing/internal/repository"
	"github.com/liveartfest/ticketing/pkg/rabbitmq"
)

var (
	ErrNoPaymentToken = errors.New("payment token is required")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrPaymentFailed  = errors.New("payment failed")
)

type Receipt struct {
	Reference  string
	PaymentID  string
	NumTickets int
	Totals     Totals
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID uint, emailAddress, nonce string) (*Receipt, error)
}

type CheckoutConfig struct {
	Currency       string
	PaymentTimeout time.Duration
	MailTimeout    time.Duration
}

type checkoutService struct {
	tickets   repository.TicketRepository
	payments  repository.PaymentRepository
	processor payment.Processor
	mail      mailer.Sender
	publisher *rabbitmq.Publisher
	cfg       CheckoutConfig
}

func NewCheckoutService(
	tickets repository.TicketRepository,
	payments repository.PaymentRepository,
	processor payment.Processor,
	mail mailer.Sender,
	publisher *rabbitmq.Publisher,
	cfg CheckoutConfig,
) CheckoutService {
	return &checkoutService{
		tickets:   tickets,
		payments:  payments,
		processor: processor,
		mail:      mail,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Checkout charges the caller's cart and flips its tickets to purchased.
// The payment row is written pending before the gateway call, so a crash
// between charge and commit leaves an auditable record; ticket state and
// payment completion commit in one transaction. The confirmation email is
// best-effort once the sale has committed.
func (s *checkoutService) Checkout(ctx context.Context, userID uint, emailAddress, nonce string) (*Receipt, error) {
	if nonce == "" {
		return nil, ErrNoPaymentToken
	}

	tickets, err := s.tickets.FindByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(tickets) == 0 {
		return nil, ErrEmptyCart
	}

	totals := computeTotals(tickets)
	description := fmt.Sprintf("%d tickets purchased", len(tickets))

	record := &models.Payment{
		UserID:         userID,
		IdempotencyKey: payment.NewIdempotencyKey(),
		Amount:         totals.AmountMinorUnits(),
		Currency:       s.cfg.Currency,
		Status:         models.PaymentPending,
	}
	if err := s.payments.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	chargeCtx, cancel := context.WithTimeout(ctx, s.cfg.PaymentTimeout)
	defer cancel()

	result, err := s.processor.Charge(chargeCtx, payment.Request{
		Amount:         record.Amount,
		Currency:       record.Currency,
		IdempotencyKey: record.IdempotencyKey,
		CustomerID:     fmt.Sprint(userID),
		BuyerEmail:     emailAddress,
		Description:    description,
		SourceToken:    nonce,
	})
	if err != nil {
		record.Status = models.PaymentFailed
		if updateErr := s.payments.Update(ctx, nil, record); updateErr != nil {
			log.Printf("[Checkout] failed to mark payment %d failed: %v", record.ID, updateErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	now := time.Now()
	err = s.tickets.Transact(ctx, func(tx *gorm.DB) error {
		if err := s.tickets.MarkPurchased(ctx, tx, userID, now); err != nil {
			return err
		}
		record.Status = models.PaymentCompleted
		record.ProviderPaymentID = result.PaymentID
		return s.payments.Update(ctx, tx, record)
	})
	if err != nil {
		// Charged but not committed: surface loudly, the persisted pending
		// payment row carries the idempotency key for reconciliation.
		return nil, fmt.Errorf("commit purchase after payment %s: %w", result.PaymentID, err)
	}

	if s.mail != nil {
		mailCtx, cancelMail := context.WithTimeout(context.Background(), s.cfg.MailTimeout)
		defer cancelMail()
		if err := s.mail.Send(mailCtx, emailAddress, "Confirming Purchase", confirmationBody(tickets)); err != nil {
			log.Printf("[Checkout] confirmation email to %s failed: %v", emailAddress, err)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("order.completed", map[string]interface{}{
			"user_id":     userID,
			"payment_id":  result.PaymentID,
			"num_tickets": len(tickets),
			"amount":      record.Amount,
			"currency":    record.Currency,
		})
	}

	return &Receipt{
		Reference:  uuid.New().String(),
		PaymentID:  result.PaymentID,
		NumTickets: len(tickets),
		Totals:     totals,
	}, nil
}

func confirmationBody(tickets []models.Ticket) string {
	var b strings.Builder
	b.WriteString("Congratulations, you have purchased the following tickets:\n")
	for i, t := range tickets {
		if i > 0 {
			b.WriteString("\n")
		}
		var price float64
		var class string
		if t.TicketClass != nil {
			price = t.TicketClass.Price
			class = t.TicketClass.Description
		}
		names := make([]string, 0, len(t.Events))
		for _, link := range t.Events {
			if link.Event != nil {
				names = append(names, link.Event.Name)
			}
		}
		fmt.Fprintf(&b, "%v - %s - %s", price, class, strings.Join(names, ", "))
	}
	return b.String()
}
