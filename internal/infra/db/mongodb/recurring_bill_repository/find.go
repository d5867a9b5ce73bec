package recurring_bill_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindRecurringBillsMongoRepository struct {
	Db *mongo.Database
}

func NewFindRecurringBillsMongoRepository(db *mongo.Database) *FindRecurringBillsMongoRepository {
	return &FindRecurringBillsMongoRepository{
		Db: db,
	}
}

func (f *FindRecurringBillsMongoRepository) Find(userId primitive.ObjectID, onlyActive bool) ([]models.RecurringBill, error) {
	collection := f.Db.Collection("recurring_bills")

	filter := bson.M{"user_id": userId}
	if onlyActive {
		filter["active"] = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_month", Value: 1}})
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	bills := []models.RecurringBill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}

	return bills, nil
}
