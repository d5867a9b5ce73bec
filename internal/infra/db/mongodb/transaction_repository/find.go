package transaction_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindTransactionsMongoRepository struct {
	Db *mongo.Database
}

func NewFindTransactionsMongoRepository(db *mongo.Database) *FindTransactionsMongoRepository {
	return &FindTransactionsMongoRepository{
		Db: db,
	}
}

// transactionsFilter applies each created_at bound independently, so a
// from-only or to-only query still narrows the log.
func transactionsFilter(input *usecase.FindTransactionsInput) bson.M {
	filter := bson.M{"user_id": input.UserId}

	createdAt := bson.M{}
	if input.From != nil {
		createdAt["$gte"] = *input.From
	}
	if input.To != nil {
		createdAt["$lt"] = *input.To
	}
	if len(createdAt) > 0 {
		filter["created_at"] = createdAt
	}

	return filter
}

func (f *FindTransactionsMongoRepository) Find(input *usecase.FindTransactionsInput) ([]models.Transaction, error) {
	collection := f.Db.Collection("transactions")

	filter := transactionsFilter(input)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if input.Limit > 0 {
		opts.SetLimit(input.Limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}
