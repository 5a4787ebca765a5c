package repository

import (
	"context"
	"fmt"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{
		collection: db.Collection("categorys"),
	}
}

func (m *mongoCategoryRepository) Insert(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	res, err := m.collection.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return c, nil
}

func (m *mongoCategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	return m.list(ctx, bson.M{})
}

func (m *mongoCategoryRepository) ListByAdmin(ctx context.Context, adminEmail string) ([]domain.Category, error) {
	return m.list(ctx, bson.M{"adminEmail": adminEmail})
}

func (m *mongoCategoryRepository) list(ctx context.Context, filter bson.M) ([]domain.Category, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (m *mongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
