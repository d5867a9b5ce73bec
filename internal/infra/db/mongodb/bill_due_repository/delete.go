package bill_due_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBillDueMongoRepository struct {
	Db *mongo.Database
}

func NewDeleteBillDueMongoRepository(db *mongo.Database) *DeleteBillDueMongoRepository {
	return &DeleteBillDueMongoRepository{
		Db: db,
	}
}

func (d *DeleteBillDueMongoRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	collection := d.Db.Collection("bill_dues")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	return err
}
