package repository

import (
	"context"
	"fmt"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoMedicineRepository struct {
	collection *mongo.Collection
}

func NewMongoMedicineRepository(db *mongo.Database) MedicineRepository {
	return &mongoMedicineRepository{
		collection: db.Collection("medicine"),
	}
}

func (m *mongoMedicineRepository) Insert(ctx context.Context, med *domain.Medicine) (*domain.Medicine, error) {
	res, err := m.collection.InsertOne(ctx, med)
	if err != nil {
		return nil, fmt.Errorf("failed to insert medicine: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		med.ID = oid
	}
	return med, nil
}

func (m *mongoMedicineRepository) ListAll(ctx context.Context) ([]domain.Medicine, error) {
	return m.list(ctx, bson.M{})
}

func (m *mongoMedicineRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Medicine, error) {
	return m.list(ctx, bson.M{"seller.email": sellerEmail})
}

func (m *mongoMedicineRepository) ListByCategory(ctx context.Context, category string) ([]domain.Medicine, error) {
	return m.list(ctx, bson.M{"category": category})
}

func (m *mongoMedicineRepository) list(ctx context.Context, filter bson.M) ([]domain.Medicine, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	defer cursor.Close(ctx)

	var medicines []domain.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, fmt.Errorf("failed to decode medicines: %w", err)
	}
	return medicines, nil
}

func (m *mongoMedicineRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrMedicineNotFound
	}
	return nil
}
