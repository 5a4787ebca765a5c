package service

import (
	"context"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/events"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderService struct {
	repo      repository.OrderRepository
	publisher events.OrderPublisher
	logger    *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, publisher events.OrderPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder records an order after the buyer confirmed payment
// client-side. The insert is unconditional; the trust boundary is the
// caller's prior confirmation.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.OrderCreated(ctx, created); err != nil {
		// Event delivery is best effort; the order is already durable.
		s.logger.Warn("order created event not published",
			zap.String("order_id", created.ID.Hex()), zap.Error(err))
	}

	return created, nil
}

func (s *OrderService) History(ctx context.Context, email string) ([]domain.Order, error) {
	return s.repo.ListByParticipant(ctx, email)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus performs a single-field transition. Arbitrary transitions
// are allowed; only missing statuses and unknown orders are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.OrderStatusChanged(ctx, order); err != nil {
		s.logger.Warn("order status event not published",
			zap.String("order_id", order.ID.Hex()), zap.Error(err))
	}

	return order, nil
}

func (s *OrderService) SellerRevenue(ctx context.Context, sellerEmail string) (*domain.Revenue, error) {
	return s.repo.Revenue(ctx, sellerEmail)
}

func (s *OrderService) AdminRevenue(ctx context.Context) (*domain.Revenue, error) {
	return s.repo.Revenue(ctx, "")
}
