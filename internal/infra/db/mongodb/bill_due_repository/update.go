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

type UpdateBillDueMongoRepository struct {
	Db *mongo.Database
}

func NewUpdateBillDueMongoRepository(db *mongo.Database) *UpdateBillDueMongoRepository {
	return &UpdateBillDueMongoRepository{
		Db: db,
	}
}

// Update edits the editable fields of a due. AmountPaid is only ever
// touched by the payment path.
func (u *UpdateBillDueMongoRepository) Update(id primitive.ObjectID, userId primitive.ObjectID, title string, amountPlanned float64, status string) (*models.BillDue, error) {
	collection := u.Db.Collection("bill_dues")

	update := bson.M{
		"$set": bson.M{
			"title":          title,
			"amount_planned": amountPlanned,
			"status":         status,
			"updated_at":     time.Now().UTC(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userId}, update, opts)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var updated models.BillDue
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
