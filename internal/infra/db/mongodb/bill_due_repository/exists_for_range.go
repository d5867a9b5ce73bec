package bill_due_repository

import (
	"context"
	"time"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExistsBillDueForRangeMongoRepository struct {
	Db *mongo.Database
}

func NewExistsBillDueForRangeMongoRepository(db *mongo.Database) *ExistsBillDueForRangeMongoRepository {
	return &ExistsBillDueForRangeMongoRepository{
		Db: db,
	}
}

// Exists is the pre-insert check that keeps month generation
// idempotent: one due per (user, bill, month).
func (e *ExistsBillDueForRangeMongoRepository) Exists(userId, billId primitive.ObjectID, from, to time.Time) (bool, error) {
	collection := e.Db.Collection("bill_dues")

	filter := bson.M{
		"user_id":  userId,
		"bill_id":  billId,
		"due_date": bson.M{"$gte": from, "$lt": to},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
