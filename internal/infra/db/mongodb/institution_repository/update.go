package institution_repository

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

type UpdateInstitutionMongoRepository struct {
	Db *mongo.Database
}

func NewUpdateInstitutionMongoRepository(db *mongo.Database) *UpdateInstitutionMongoRepository {
	return &UpdateInstitutionMongoRepository{
		Db: db,
	}
}

func (u *UpdateInstitutionMongoRepository) Update(id primitive.ObjectID, institution *models.InstitutionInput) (*models.Institution, error) {
	collection := u.Db.Collection("institutions")

	update := bson.M{
		"$set": bson.M{
			"name":       institution.Name,
			"kind":       institution.Kind,
			"updated_at": time.Now().UTC(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": institution.UserId}, update, opts)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var updated models.Institution
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
