package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdjustAction is a cart line mutation requested by the buyer.
type AdjustAction string

const (
	ActionIncrease AdjustAction = "increase"
	ActionDecrease AdjustAction = "decrease"
)

// CartLine is one buyer's pending cart entry for a single catalog item.
// Count units are selected for purchase; Quantity units remain reservable
// against this line. Price is always Count * UnitPrice.
type CartLine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CartID      string             `bson:"cartId" json:"cartId"`
	BuyerEmail  string             `bson:"buyerEmail" json:"buyerEmail"`
	SellerEmail string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	UnitPrice   float64            `bson:"unitPrice" json:"unitPrice"`
	Count       int                `bson:"count" json:"count"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// PaymentIntent is the client-confirmable handle returned by the payment
// bridge. Amount is in the settlement currency's minor units.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}
