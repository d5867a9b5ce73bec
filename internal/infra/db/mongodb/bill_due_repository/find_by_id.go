package bill_due_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBillDueByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindBillDueByIdMongoRepository(db *mongo.Database) *FindBillDueByIdMongoRepository {
	return &FindBillDueByIdMongoRepository{
		Db: db,
	}
}

func (f *FindBillDueByIdMongoRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.BillDue, error) {
	collection := f.Db.Collection("bill_dues")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId})
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var due models.BillDue
	if err := result.Decode(&due); err != nil {
		return nil, err
	}

	return &due, nil
}
