package account_repository

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

type UpdateAccountMongoRepository struct {
	Db *mongo.Database
}

func NewUpdateAccountMongoRepository(db *mongo.Database) *UpdateAccountMongoRepository {
	return &UpdateAccountMongoRepository{
		Db: db,
	}
}

// Update never touches the balance field.
func (u *UpdateAccountMongoRepository) Update(id primitive.ObjectID, userId primitive.ObjectID, name string, currency string) (*models.Account, error) {
	collection := u.Db.Collection("accounts")

	update := bson.M{
		"$set": bson.M{
			"name":       name,
			"currency":   currency,
			"updated_at": time.Now().UTC(),
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

	var updated models.Account
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
