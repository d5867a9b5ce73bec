package institution_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindInstitutionsMongoRepository struct {
	Db *mongo.Database
}

func NewFindInstitutionsMongoRepository(db *mongo.Database) *FindInstitutionsMongoRepository {
	return &FindInstitutionsMongoRepository{
		Db: db,
	}
}

func (f *FindInstitutionsMongoRepository) Find(userId primitive.ObjectID) ([]models.Institution, error) {
	collection := f.Db.Collection("institutions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}

	institutions := []models.Institution{}
	if err := cursor.All(ctx, &institutions); err != nil {
		return nil, err
	}

	return institutions, nil
}
