package usecase

import (
	"github.com/platahq/plata-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateInstitutionRepository interface {
	Create(institution *models.InstitutionInput) (*models.Institution, error)
}

type FindInstitutionsByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Institution, error)
}

type FindInstitutionByIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Institution, error)
}

type UpdateInstitutionRepository interface {
	Update(id primitive.ObjectID, institution *models.InstitutionInput) (*models.Institution, error)
}

// DeleteInstitutionCascadeRepository deletes the institution together
// with its accounts. Historical transactions and dues survive.
type DeleteInstitutionCascadeRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}
