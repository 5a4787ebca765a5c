package repository

import (
	"context"
	"errors"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrLineNotFound     = errors.New("cart line not found")
	ErrLineExists       = errors.New("cart line already exists for this buyer and item")
	ErrOutOfStock       = errors.New("stock not available")
	ErrCannotDecrease   = errors.New("count cannot go below zero")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrAdNotFound       = errors.New("ad not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// CartRepository defines cart line data operations. Consumers define this
// interface, not the MongoDB implementation.
type CartRepository interface {
	AddLine(ctx context.Context, line *domain.CartLine) (*domain.CartLine, error)
	GetLine(ctx context.Context, id primitive.ObjectID) (*domain.CartLine, error)
	ListLines(ctx context.Context, buyerEmail string) ([]domain.CartLine, error)
	AdjustLine(ctx context.Context, id primitive.ObjectID, action domain.AdjustAction) (*domain.CartLine, error)
	RemoveLine(ctx context.Context, id primitive.ObjectID) error
	ClearLines(ctx context.Context, buyerEmail string) (int64, error)
}

// OrderRepository defines order persistence and the revenue projection.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListByParticipant(ctx context.Context, email string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
	// Revenue groups orders by status and sums totalPrice. An empty
	// sellerEmail aggregates every order (the admin view).
	Revenue(ctx context.Context, sellerEmail string) (*domain.Revenue, error)
}

// UserRepository stores user profiles and role assignments.
type UserRepository interface {
	Upsert(ctx context.Context, email string, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, email string, role domain.Role) error
}

// MedicineRepository is passthrough catalog CRUD.
type MedicineRepository interface {
	Insert(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error)
	ListAll(ctx context.Context) ([]domain.Medicine, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Medicine, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AdRepository stores banner advertisement requests.
type AdRepository interface {
	Insert(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Ad, error)
	ListAll(ctx context.Context) ([]domain.Ad, error)
	ListActive(ctx context.Context) ([]domain.Ad, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.AdStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CategoryRepository stores catalog categories.
type CategoryRepository interface {
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	ListAll(ctx context.Context) ([]domain.Category, error)
	ListByAdmin(ctx context.Context, adminEmail string) ([]domain.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
