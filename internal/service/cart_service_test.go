package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/cache"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockCartRepository struct {
	m     sync.Mutex
	lines map[primitive.ObjectID]*domain.CartLine
	calls int
	err   error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{lines: make(map[primitive.ObjectID]*domain.CartLine)}
}

func (m *mockCartRepository) AddLine(_ context.Context, line *domain.CartLine) (*domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, existing := range m.lines {
		if existing.CartID == line.CartID && existing.BuyerEmail == line.BuyerEmail {
			return nil, repository.ErrLineExists
		}
	}
	if line.ID.IsZero() {
		line.ID = primitive.NewObjectID()
	}
	line.Price = float64(line.Count) * line.UnitPrice
	m.lines[line.ID] = line
	return line, nil
}

func (m *mockCartRepository) GetLine(_ context.Context, id primitive.ObjectID) (*domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	line, ok := m.lines[id]
	if !ok {
		return nil, repository.ErrLineNotFound
	}
	copied := *line
	return &copied, nil
}

func (m *mockCartRepository) ListLines(_ context.Context, buyerEmail string) ([]domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.CartLine
	for _, line := range m.lines {
		if line.BuyerEmail == buyerEmail {
			out = append(out, *line)
		}
	}
	return out, nil
}

// AdjustLine mirrors the conditional single-document update of the Mongo
// implementation: bounds are checked and all three fields move together.
func (m *mockCartRepository) AdjustLine(_ context.Context, id primitive.ObjectID, action domain.AdjustAction) (*domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++

	line, ok := m.lines[id]
	if !ok {
		return nil, repository.ErrLineNotFound
	}

	switch action {
	case domain.ActionIncrease:
		if line.Quantity <= 0 {
			return nil, repository.ErrOutOfStock
		}
		line.Count++
		line.Quantity--
	case domain.ActionDecrease:
		if line.Count <= 0 {
			return nil, repository.ErrCannotDecrease
		}
		line.Count--
		line.Quantity++
	}
	line.Price = float64(line.Count) * line.UnitPrice

	copied := *line
	return &copied, nil
}

func (m *mockCartRepository) RemoveLine(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if _, ok := m.lines[id]; !ok {
		return repository.ErrLineNotFound
	}
	delete(m.lines, id)
	return nil
}

func (m *mockCartRepository) ClearLines(_ context.Context, buyerEmail string) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var deleted int64
	for id, line := range m.lines {
		if line.BuyerEmail == buyerEmail {
			delete(m.lines, id)
			deleted++
		}
	}
	return deleted, nil
}

type mockCache struct {
	m       sync.Mutex
	data    map[string][]domain.CartLine
	deletes int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]domain.CartLine)}
}

func (m *mockCache) Get(_ context.Context, buyerEmail string) ([]domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	lines, ok := m.data[buyerEmail]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return lines, nil
}

func (m *mockCache) Set(_ context.Context, buyerEmail string, lines []domain.CartLine) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.data[buyerEmail] = lines
	return nil
}

func (m *mockCache) Delete(_ context.Context, buyerEmail string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.data, buyerEmail)
	m.deletes++
	return nil
}

func newTestCartService(repo repository.CartRepository, c cache.CartCache) *CartService {
	return NewCartService(repo, c, zap.NewNop())
}

func seedLine(t *testing.T, repo *mockCartRepository, count, quantity int, unitPrice float64) *domain.CartLine {
	t.Helper()
	line := &domain.CartLine{
		CartID:     "med-1",
		BuyerEmail: "buyer@example.com",
		UnitPrice:  unitPrice,
		Count:      count,
		Quantity:   quantity,
	}
	added, err := repo.AddLine(context.Background(), line)
	require.NoError(t, err)
	return added
}

func TestAdjustLine_IncreaseRecomputesPrice(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	line := seedLine(t, repo, 1, 5, 12.5)

	updated, err := svc.AdjustLine(context.Background(), line.ID, domain.ActionIncrease)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Count)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, 25.0, updated.Price)
}

func TestAdjustLine_DecreaseReturnsStock(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	line := seedLine(t, repo, 2, 3, 10)

	updated, err := svc.AdjustLine(context.Background(), line.ID, domain.ActionDecrease)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Count)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, 10.0, updated.Price)
}

func TestAdjustLine_IncreaseOutOfStock_LeavesStateUntouched(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	line := seedLine(t, repo, 3, 0, 10)

	_, err := svc.AdjustLine(context.Background(), line.ID, domain.ActionIncrease)
	assert.ErrorIs(t, err, repository.ErrOutOfStock)

	stored, err := repo.GetLine(context.Background(), line.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Count)
	assert.Equal(t, 0, stored.Quantity)
	assert.Equal(t, 30.0, stored.Price)
}

func TestAdjustLine_DecreaseAtZero_LeavesStateUntouched(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	line := seedLine(t, repo, 0, 5, 10)

	_, err := svc.AdjustLine(context.Background(), line.ID, domain.ActionDecrease)
	assert.ErrorIs(t, err, repository.ErrCannotDecrease)

	stored, err := repo.GetLine(context.Background(), line.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Count)
	assert.Equal(t, 5, stored.Quantity)
}

func TestAdjustLine_InvalidAction_NeverTouchesRepo(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	line := seedLine(t, repo, 1, 1, 10)

	_, err := svc.AdjustLine(context.Background(), line.ID, "reset")
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Zero(t, repo.calls)
}

func TestAdjustLine_NotFound(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())

	_, err := svc.AdjustLine(context.Background(), primitive.NewObjectID(), domain.ActionIncrease)
	assert.ErrorIs(t, err, repository.ErrLineNotFound)
}

// count + quantity stays constant over any successful sequence of adjusts.
func TestAdjustLine_ConservationAcrossSequence(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	line := seedLine(t, repo, 1, 4, 7.25)
	ctx := context.Background()

	actions := []domain.AdjustAction{
		domain.ActionIncrease, domain.ActionIncrease, domain.ActionDecrease,
		domain.ActionIncrease, domain.ActionDecrease, domain.ActionDecrease,
	}
	for _, action := range actions {
		updated, err := svc.AdjustLine(ctx, line.ID, action)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Count+updated.Quantity)
		assert.Equal(t, float64(updated.Count)*updated.UnitPrice, updated.Price)
		assert.GreaterOrEqual(t, updated.Count, 0)
		assert.GreaterOrEqual(t, updated.Quantity, 0)
	}
}

func TestAddLine_DuplicateRejected(t *testing.T) {
	repo := newMockCartRepository()
	svc := newTestCartService(repo, newMockCache())
	ctx := context.Background()

	_, err := svc.AddLine(ctx, &domain.CartLine{CartID: "med-9", BuyerEmail: "a@b.c", UnitPrice: 5, Count: 1, Quantity: 3})
	require.NoError(t, err)

	_, err = svc.AddLine(ctx, &domain.CartLine{CartID: "med-9", BuyerEmail: "a@b.c", UnitPrice: 5, Count: 1, Quantity: 3})
	assert.ErrorIs(t, err, repository.ErrLineExists)
}

func TestListLines_CachesAndInvalidates(t *testing.T) {
	repo := newMockCartRepository()
	cartCache := newMockCache()
	svc := newTestCartService(repo, cartCache)
	ctx := context.Background()
	line := seedLine(t, repo, 1, 2, 3)

	lines, err := svc.ListLines(ctx, line.BuyerEmail)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	deletesBefore := cartCache.deletes
	_, err = svc.AdjustLine(ctx, line.ID, domain.ActionIncrease)
	require.NoError(t, err)
	assert.Greater(t, cartCache.deletes, deletesBefore)
}
