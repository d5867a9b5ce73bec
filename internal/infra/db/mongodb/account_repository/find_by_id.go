package account_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindAccountByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindAccountByIdMongoRepository(db *mongo.Database) *FindAccountByIdMongoRepository {
	return &FindAccountByIdMongoRepository{
		Db: db,
	}
}

func (f *FindAccountByIdMongoRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Account, error) {
	collection := f.Db.Collection("accounts")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId})
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var account models.Account
	if err := result.Decode(&account); err != nil {
		return nil, err
	}

	return &account, nil
}
