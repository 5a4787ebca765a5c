package service

import (
	"context"
	"errors"
	"time"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/cache"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type CartService struct {
	repo   repository.CartRepository
	cache  cache.CartCache
	logger *zap.Logger
	sfg    singleflight.Group // Prevents cache stampede
}

func NewCartService(repo repository.CartRepository, cache cache.CartCache, logger *zap.Logger) *CartService {
	return &CartService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *CartService) AddLine(ctx context.Context, line *domain.CartLine) (*domain.CartLine, error) {
	added, err := s.repo.AddLine(ctx, line)
	if err != nil {
		return nil, err
	}

	s.invalidate(line.BuyerEmail)
	return added, nil
}

// ListLines serves from the cache when it can; concurrent misses for the
// same buyer collapse into a single repository read.
func (s *CartService) ListLines(ctx context.Context, buyerEmail string) ([]domain.CartLine, error) {
	v, err, _ := s.sfg.Do(buyerEmail, func() (interface{}, error) {
		lines, err := s.cache.Get(ctx, buyerEmail)
		if err == nil {
			return lines, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("cart cache get failed", zap.Error(err))
		}

		lines, err = s.repo.ListLines(ctx, buyerEmail)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), buyerEmail, lines); errSet != nil {
				s.logger.Warn("cart cache set failed", zap.Error(errSet))
			}
		}()

		return lines, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.CartLine), nil
}

// AdjustLine applies an increase or decrease to a single line. Validation
// happens before any write; failures leave the stored line untouched.
func (s *CartService) AdjustLine(ctx context.Context, id primitive.ObjectID, action domain.AdjustAction) (*domain.CartLine, error) {
	if action != domain.ActionIncrease && action != domain.ActionDecrease {
		return nil, ErrInvalidAction
	}

	line, err := s.repo.AdjustLine(ctx, id, action)
	if err != nil {
		return nil, err
	}

	s.invalidate(line.BuyerEmail)
	return line, nil
}

func (s *CartService) RemoveLine(ctx context.Context, id primitive.ObjectID) error {
	line, err := s.repo.GetLine(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.RemoveLine(ctx, id); err != nil {
		return err
	}

	s.invalidate(line.BuyerEmail)
	return nil
}

func (s *CartService) ClearLines(ctx context.Context, buyerEmail string) (int64, error) {
	deleted, err := s.repo.ClearLines(ctx, buyerEmail)
	if err != nil {
		return 0, err
	}

	s.invalidate(buyerEmail)
	return deleted, nil
}

func (s *CartService) invalidate(buyerEmail string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, buyerEmail); err != nil {
		s.logger.Warn("cart cache invalidate failed", zap.Error(err))
	}
}
