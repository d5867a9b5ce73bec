package account_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindAccountsMongoRepository struct {
	Db *mongo.Database
}

func NewFindAccountsMongoRepository(db *mongo.Database) *FindAccountsMongoRepository {
	return &FindAccountsMongoRepository{
		Db: db,
	}
}

func (f *FindAccountsMongoRepository) Find(userId primitive.ObjectID) ([]models.Account, error) {
	collection := f.Db.Collection("accounts")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}

	accounts := []models.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}
