package recurring_bill_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteRecurringBillMongoRepository struct {
	Db *mongo.Database
}

func NewDeleteRecurringBillMongoRepository(db *mongo.Database) *DeleteRecurringBillMongoRepository {
	return &DeleteRecurringBillMongoRepository{
		Db: db,
	}
}

// Delete removes only the template; dues generated from it stay.
func (d *DeleteRecurringBillMongoRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	collection := d.Db.Collection("recurring_bills")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	return err
}
