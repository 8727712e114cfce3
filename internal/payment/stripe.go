package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
)

// StripeProcessor charges through Stripe PaymentIntents.
type StripeProcessor struct{}

func NewStripeProcessor(apiKey string) *StripeProcessor {
	stripe.Key = apiKey
	return &StripeProcessor{}
}

func (p *StripeProcessor) Charge(ctx context.Context, req Request) (*Result, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.SourceToken),
		Confirm:       stripe.Bool(true),
		ReceiptEmail:  stripe.String(req.BuyerEmail),
		Description:   stripe.String(req.Description),
	}
	params.SetIdempotencyKey(req.IdempotencyKey)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Result{PaymentID: pi.ID, Status: string(pi.Status)}, nil
}
