package payment

import (
	"context"
	"crypto/rand"
	"encoding/base64"
)

// Request describes one charge: amount in minor currency units, buyer
// identity, and an idempotency key so a retried submission is not
// double-charged.
type Request struct {
	Amount         int64
	Currency       string
	IdempotencyKey string
	CustomerID     string
	BuyerEmail     string
	Description    string
	SourceToken    string
}

type Result struct {
	PaymentID string
	Status    string
}

type Processor interface {
	Charge(ctx context.Context, req Request) (*Result, error)
}

// NewIdempotencyKey returns 32 random bytes, base64-encoded.
func NewIdempotencyKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure means no safe way to continue
	}
	return base64.StdEncoding.EncodeToString(buf)
}
