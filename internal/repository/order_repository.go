package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	res, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return order, nil
}

func (m *mongoOrderRepository) ListByParticipant(ctx context.Context, email string) ([]domain.Order, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"buyerEmail": email},
		bson.M{"sellerEmail": email},
	}}
	return m.list(ctx, filter)
}

func (m *mongoOrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	return m.list(ctx, bson.M{})
}

func (m *mongoOrderRepository) list(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (m *mongoOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err := m.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &order, nil
}

func (m *mongoOrderRepository) Revenue(ctx context.Context, sellerEmail string) (*domain.Revenue, error) {
	pipeline := mongo.Pipeline{}
	if sellerEmail != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"sellerEmail": sellerEmail}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":          "$status",
		"totalRevenue": bson.M{"$sum": "$totalPrice"},
	}}})

	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Status       domain.OrderStatus `bson:"_id"`
		TotalRevenue float64            `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode revenue buckets: %w", err)
	}

	// Whitelist projection: only paid and pending surface, everything else
	// is dropped on purpose.
	revenue := &domain.Revenue{}
	for _, b := range buckets {
		switch b.Status {
		case domain.OrderStatusPaid:
			revenue.Paid += b.TotalRevenue
		case domain.OrderStatusPending:
			revenue.Pending += b.TotalRevenue
		}
	}
	return revenue, nil
}
