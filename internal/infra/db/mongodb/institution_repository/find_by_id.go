package institution_repository

import (
	"context"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindInstitutionByIdMongoRepository struct {
	Db *mongo.Database
}

func NewFindInstitutionByIdMongoRepository(db *mongo.Database) *FindInstitutionByIdMongoRepository {
	return &FindInstitutionByIdMongoRepository{
		Db: db,
	}
}

func (f *FindInstitutionByIdMongoRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Institution, error) {
	collection := f.Db.Collection("institutions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId})
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var institution models.Institution
	if err := result.Decode(&institution); err != nil {
		return nil, err
	}

	return &institution, nil
}
