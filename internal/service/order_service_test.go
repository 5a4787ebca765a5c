package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockOrderRepository struct {
	m      sync.Mutex
	orders map[primitive.ObjectID]*domain.Order
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (m *mockOrderRepository) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	m.orders[order.ID] = order
	return order, nil
}

func (m *mockOrderRepository) ListByParticipant(_ context.Context, email string) ([]domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		if o.BuyerEmail == email || o.SellerEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepository) ListAll(_ context.Context) ([]domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var out []domain.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	order.Status = status
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) Revenue(_ context.Context, sellerEmail string) (*domain.Revenue, error) {
	m.m.Lock()
	defer m.m.Unlock()
	revenue := &domain.Revenue{}
	for _, o := range m.orders {
		if sellerEmail != "" && o.SellerEmail != sellerEmail {
			continue
		}
		switch o.Status {
		case domain.OrderStatusPaid:
			revenue.Paid += o.TotalPrice
		case domain.OrderStatusPending:
			revenue.Pending += o.TotalPrice
		}
	}
	return revenue, nil
}

type mockPublisher struct {
	m       sync.Mutex
	created int
	changed int
	err     error
}

func (m *mockPublisher) OrderCreated(context.Context, *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.created++
	return m.err
}

func (m *mockPublisher) OrderStatusChanged(context.Context, *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.changed++
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

func TestCreateOrder_DefaultsPendingAndPublishes(t *testing.T) {
	repo := newMockOrderRepository()
	pub := &mockPublisher{}
	svc := NewOrderService(repo, pub, zap.NewNop())

	order, err := svc.CreateOrder(context.Background(), &domain.Order{
		BuyerEmail:  "buyer@x.y",
		SellerEmail: "seller@x.y",
		TotalPrice:  100,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.False(t, order.ID.IsZero())
	assert.Equal(t, 1, pub.created)
}

func TestCreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	repo := newMockOrderRepository()
	pub := &mockPublisher{err: errors.New("broker down")}
	svc := NewOrderService(repo, pub, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), &domain.Order{BuyerEmail: "b@x.y", TotalPrice: 10})
	assert.NoError(t, err)
}

func TestUpdateStatus_RequiresStatus(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, &mockPublisher{}, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), "")
	assert.ErrorIs(t, err, ErrStatusRequired)
}

func TestUpdateStatus_NotFound_CreatesNothing(t *testing.T) {
	repo := newMockOrderRepository()
	pub := &mockPublisher{}
	svc := NewOrderService(repo, pub, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), domain.OrderStatusPaid)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	assert.Empty(t, repo.orders)
	assert.Zero(t, pub.changed)
}

func TestUpdateStatus_TransitionsAndPublishes(t *testing.T) {
	repo := newMockOrderRepository()
	pub := &mockPublisher{}
	svc := NewOrderService(repo, pub, zap.NewNop())
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &domain.Order{BuyerEmail: "b@x.y", TotalPrice: 40})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, domain.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, updated.Status)
	assert.Equal(t, 1, pub.changed)
}

func TestRevenue_FoldsOnlyPaidAndPending(t *testing.T) {
	repo := newMockOrderRepository()
	svc := NewOrderService(repo, &mockPublisher{}, zap.NewNop())
	ctx := context.Background()

	seed := []domain.Order{
		{SellerEmail: "s@x.y", TotalPrice: 100, Status: domain.OrderStatusPaid},
		{SellerEmail: "s@x.y", TotalPrice: 40, Status: domain.OrderStatusPending},
		{SellerEmail: "s@x.y", TotalPrice: 20, Status: domain.OrderStatusPaid},
		{SellerEmail: "s@x.y", TotalPrice: 999, Status: "refunded"},
		{SellerEmail: "other@x.y", TotalPrice: 500, Status: domain.OrderStatusPaid},
	}
	for i := range seed {
		_, err := svc.CreateOrder(ctx, &seed[i])
		require.NoError(t, err)
	}

	sellerRevenue, err := svc.SellerRevenue(ctx, "s@x.y")
	require.NoError(t, err)
	assert.Equal(t, 120.0, sellerRevenue.Paid)
	assert.Equal(t, 40.0, sellerRevenue.Pending)

	adminRevenue, err := svc.AdminRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 620.0, adminRevenue.Paid)
	assert.Equal(t, 40.0, adminRevenue.Pending)
}
