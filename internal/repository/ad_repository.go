package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAdRepository struct {
	collection *mongo.Collection
}

func NewMongoAdRepository(db *mongo.Database) AdRepository {
	return &mongoAdRepository{
		collection: db.Collection("ads"),
	}
}

func (m *mongoAdRepository) Insert(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if ad.Status == "" {
		ad.Status = domain.AdStatusPending
	}
	res, err := m.collection.InsertOne(ctx, ad)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ad: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ad.ID = oid
	}
	return ad, nil
}

func (m *mongoAdRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Ad, error) {
	return m.list(ctx, bson.M{"sellerEmail": sellerEmail})
}

func (m *mongoAdRepository) ListAll(ctx context.Context) ([]domain.Ad, error) {
	return m.list(ctx, bson.M{})
}

func (m *mongoAdRepository) ListActive(ctx context.Context) ([]domain.Ad, error) {
	return m.list(ctx, bson.M{"status": domain.AdStatusActive})
}

func (m *mongoAdRepository) list(ctx context.Context, filter bson.M) ([]domain.Ad, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	defer cursor.Close(ctx)

	var ads []domain.Ad
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode ads: %w", err)
	}
	return ads, nil
}

func (m *mongoAdRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.AdStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := m.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update ad status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAdNotFound
	}
	return nil
}

func (m *mongoAdRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrAdNotFound
	}
	return nil
}
