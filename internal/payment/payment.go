package payment

import (
	"context"
	"errors"
)

// ErrProvider wraps any failure returned by the external payment processor.
var ErrProvider = errors.New("payment provider error")

// Intent is a client-confirmable payment handle. Amount is in the
// settlement currency's minor units.
type Intent struct {
	ClientSecret string
	Amount       int64
}

// Processor is the external payment collaborator: submit an amount and a
// currency, receive a confirmable handle. Implementations must not retry.
type Processor interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*Intent, error)
}
