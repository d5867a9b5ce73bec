package recurring_bill_repository

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

type UpdateRecurringBillMongoRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringBillMongoRepository(db *mongo.Database) *UpdateRecurringBillMongoRepository {
	return &UpdateRecurringBillMongoRepository{
		Db: db,
	}
}

func (u *UpdateRecurringBillMongoRepository) Update(id primitive.ObjectID, bill *models.RecurringBillInput) (*models.RecurringBill, error) {
	collection := u.Db.Collection("recurring_bills")

	update := bson.M{
		"$set": bson.M{
			"title":              bill.Title,
			"currency":           bill.Currency,
			"amount_type":        bill.AmountType,
			"amount":             bill.Amount,
			"day_of_month":       models.ClampDayOfMonth(bill.DayOfMonth),
			"default_account_id": bill.DefaultAccountId,
			"notes":              bill.Notes,
			"active":             bill.Active,
			"updated_at":         time.Now().UTC(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": bill.UserId}, update, opts)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var updated models.RecurringBill
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
