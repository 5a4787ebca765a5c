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

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (m *mongoCartRepository) AddLine(ctx context.Context, line *domain.CartLine) (*domain.CartLine, error) {
	now := time.Now()
	line.CreatedAt = now
	line.UpdatedAt = now
	line.Price = float64(line.Count) * line.UnitPrice

	// At most one active line per (buyer, item) pair. The unique compound
	// index backs this up against concurrent adds.
	filter := bson.M{"cartId": line.CartID, "buyerEmail": line.BuyerEmail}
	err := m.collection.FindOne(ctx, filter).Err()
	if err == nil {
		return nil, ErrLineExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing cart line: %w", err)
	}

	res, err := m.collection.InsertOne(ctx, line)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrLineExists
		}
		return nil, fmt.Errorf("failed to insert cart line: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		line.ID = oid
	}
	return line, nil
}

func (m *mongoCartRepository) GetLine(ctx context.Context, id primitive.ObjectID) (*domain.CartLine, error) {
	var line domain.CartLine
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&line)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}
	return &line, nil
}

func (m *mongoCartRepository) ListLines(ctx context.Context, buyerEmail string) ([]domain.CartLine, error) {
	cursor, err := m.collection.Find(ctx, bson.M{"buyerEmail": buyerEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	defer cursor.Close(ctx)

	var lines []domain.CartLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart lines: %w", err)
	}
	return lines, nil
}

// AdjustLine moves one unit between a line's count and its remaining
// quantity, recomputing price in the same document update. The precondition
// lives in the filter so the whole adjustment is a single conditional write;
// two concurrent adjusts can never observe a half-applied state.
func (m *mongoCartRepository) AdjustLine(ctx context.Context, id primitive.ObjectID, action domain.AdjustAction) (*domain.CartLine, error) {
	var filter bson.M
	var delta int

	switch action {
	case domain.ActionIncrease:
		filter = bson.M{"_id": id, "quantity": bson.M{"$gt": 0}}
		delta = 1
	case domain.ActionDecrease:
		filter = bson.M{"_id": id, "count": bson.M{"$gt": 0}}
		delta = -1
	default:
		return nil, fmt.Errorf("unsupported adjust action %q", action)
	}

	newCount := bson.M{"$add": bson.A{"$count", delta}}
	update := bson.A{bson.M{"$set": bson.M{
		"count":      newCount,
		"quantity":   bson.M{"$add": bson.A{"$quantity", -delta}},
		"price":      bson.M{"$multiply": bson.A{newCount, "$unitPrice"}},
		"updated_at": "$$NOW",
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var line domain.CartLine
	err := m.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&line)
	if err == nil {
		return &line, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to adjust cart line: %w", err)
	}

	// No match: either the line is gone or the bound check failed.
	if _, getErr := m.GetLine(ctx, id); getErr != nil {
		return nil, getErr
	}
	if action == domain.ActionIncrease {
		return nil, ErrOutOfStock
	}
	return nil, ErrCannotDecrease
}

func (m *mongoCartRepository) RemoveLine(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to remove cart line: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (m *mongoCartRepository) ClearLines(ctx context.Context, buyerEmail string) (int64, error) {
	res, err := m.collection.DeleteMany(ctx, bson.M{"buyerEmail": buyerEmail})
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart lines: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *mongoCartRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "buyerEmail", Value: 1}, {Key: "cartId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "buyerEmail", Value: 1}},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create cart indexes: %w", err)
	}
	return nil
}
