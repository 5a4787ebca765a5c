package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// OrderItem is a snapshot of a purchased cart line at order time.
type OrderItem struct {
	CartID    string  `bson:"cartId,omitempty" json:"cartId,omitempty"`
	Name      string  `bson:"name,omitempty" json:"name,omitempty"`
	UnitPrice float64 `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	Count     int     `bson:"count,omitempty" json:"count,omitempty"`
}

// Order is created after buyer-side payment confirmation. Everything but
// Status is immutable once inserted.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	SellerEmail   string             `bson:"sellerEmail" json:"sellerEmail"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	Status        OrderStatus        `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Items         []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Revenue buckets order totals by status. Only paid and pending are
// surfaced; any other status is dropped from the projection.
type Revenue struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}
