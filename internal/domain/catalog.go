package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// SellerRef identifies the seller embedded in a catalog document.
type SellerRef struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
}

// Medicine is a purchasable catalog item. No invariants beyond identity;
// managed by passthrough CRUD.
type Medicine struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Generic  string             `bson:"generic,omitempty" json:"generic,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Company  string             `bson:"company,omitempty" json:"company,omitempty"`
	Unit     string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Price    float64            `bson:"price" json:"price"`
	Discount float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Seller   SellerRef          `bson:"seller" json:"seller"`
}

type AdStatus string

const (
	AdStatusPending  AdStatus = "pending"
	AdStatusActive   AdStatus = "active"
	AdStatusInactive AdStatus = "inactive"
)

// Ad is a seller's banner advertisement request, activated by an admin.
type Ad struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Status      AdStatus           `bson:"status" json:"status"`
}

type Category struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	AdminEmail string             `bson:"adminEmail,omitempty" json:"adminEmail,omitempty"`
}
