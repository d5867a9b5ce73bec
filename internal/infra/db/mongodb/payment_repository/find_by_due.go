package payment_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindPaymentsByDueIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindPaymentsByDueIdMongoRepository(db *mongo.Database) *FindPaymentsByDueIdMongoRepository {
	return &FindPaymentsByDueIdMongoRepository{
		Db: db,
	}
}

func (f *FindPaymentsByDueIdMongoRepository) Find(dueId primitive.ObjectID, userId primitive.ObjectID) ([]models.Payment, error) {
	collection := f.Db.Collection("payments")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"due_id": dueId, "user_id": userId}, opts)
	if err != nil {
		return nil, err
	}

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}
