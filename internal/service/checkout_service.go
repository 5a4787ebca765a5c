package service

import (
	"context"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/payment"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const settlementCurrency = "usd"

// CheckoutService aggregates a buyer's cart into a priced payment request.
// Purely a read plus one external call; it mutates nothing.
type CheckoutService struct {
	repo      repository.CartRepository
	processor payment.Processor
	// Static storage-currency to settlement-currency rate. No conversion
	// service exists; the rate only changes by deployment.
	exchangeRate decimal.Decimal
	logger       *zap.Logger
}

func NewCheckoutService(repo repository.CartRepository, processor payment.Processor, exchangeRate float64, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		repo:         repo,
		processor:    processor,
		exchangeRate: decimal.NewFromFloat(exchangeRate),
		logger:       logger,
	}
}

// CreatePaymentIntent totals the buyer's active lines, converts to the
// settlement currency and requests a confirmable handle from the processor.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, buyerEmail string) (*domain.PaymentIntent, error) {
	lines, err := s.repo.ListLines(ctx, buyerEmail)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	amountMinor := s.toMinorUnits(total(lines))

	intent, err := s.processor.CreateIntent(ctx, amountMinor, settlementCurrency)
	if err != nil {
		s.logger.Error("payment intent creation failed",
			zap.String("buyer", buyerEmail),
			zap.Int64("amount_minor", amountMinor),
			zap.Error(err))
		return nil, err
	}

	return &domain.PaymentIntent{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
	}, nil
}

// total sums unitPrice*count over all lines in the storage currency.
func total(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		lineTotal := decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Count)))
		sum = sum.Add(lineTotal)
	}
	return sum
}

// toMinorUnits converts at the fixed rate, rounds to two decimal places and
// scales to the processor's integer minor-unit representation.
func (s *CheckoutService) toMinorUnits(storageTotal decimal.Decimal) int64 {
	converted := storageTotal.Div(s.exchangeRate).Round(2)
	return converted.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
