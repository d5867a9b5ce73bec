package recurring_bill_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecurringBillByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindRecurringBillByIdMongoRepository(db *mongo.Database) *FindRecurringBillByIdMongoRepository {
	return &FindRecurringBillByIdMongoRepository{
		Db: db,
	}
}

func (f *FindRecurringBillByIdMongoRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.RecurringBill, error) {
	collection := f.Db.Collection("recurring_bills")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId})
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var bill models.RecurringBill
	if err := result.Decode(&bill); err != nil {
		return nil, err
	}

	return &bill, nil
}
