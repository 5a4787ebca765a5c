package cache

import (
	"context"
	"errors"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
)

// CartCache caches a buyer's full set of cart lines.
type CartCache interface {
	Get(ctx context.Context, buyerEmail string) ([]domain.CartLine, error)
	Set(ctx context.Context, buyerEmail string, lines []domain.CartLine) error
	Delete(ctx context.Context, buyerEmail string) error
}

var ErrCacheMiss = errors.New("cache miss")
