package institution_repository

import (
	"context"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateInstitutionMongoRepository struct {
	Db *mongo.Database
}

func NewCreateInstitutionMongoRepository(db *mongo.Database) *CreateInstitutionMongoRepository {
	return &CreateInstitutionMongoRepository{
		Db: db,
	}
}

func (c *CreateInstitutionMongoRepository) Create(institution *models.InstitutionInput) (*models.Institution, error) {
	collection := c.Db.Collection("institutions")

	now := time.Now().UTC()
	institutionToSave := models.Institution{
		Id:        primitive.NewObjectID(),
		UserId:    institution.UserId,
		Name:      institution.Name,
		Kind:      institution.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, institutionToSave)
	if err != nil {
		return nil, err
	}

	return &institutionToSave, nil
}
