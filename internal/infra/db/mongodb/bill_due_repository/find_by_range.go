package bill_due_repository

import (
	"context"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindBillDuesByRangeMongoRepository struct {
	Db *mongo.Database
}

func NewFindBillDuesByRangeMongoRepository(db *mongo.Database) *FindBillDuesByRangeMongoRepository {
	return &FindBillDuesByRangeMongoRepository{
		Db: db,
	}
}

// Find lists dues with a dueDate in [from, to), ordered by dueDate.
func (f *FindBillDuesByRangeMongoRepository) Find(userId primitive.ObjectID, from, to time.Time) ([]models.BillDue, error) {
	collection := f.Db.Collection("bill_dues")

	filter := bson.M{
		"user_id":  userId,
		"due_date": bson.M{"$gte": from, "$lt": to},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	dues := []models.BillDue{}
	if err := cursor.All(ctx, &dues); err != nil {
		return nil, err
	}

	return dues, nil
}
