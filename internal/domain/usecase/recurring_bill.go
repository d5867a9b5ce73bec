package usecase

import (
	"github.com/platahq/plata-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRecurringBillRepository interface {
	Create(bill *models.RecurringBillInput) (*models.RecurringBill, error)
}

type FindRecurringBillsByUserIdRepository interface {
	Find(userId primitive.ObjectID, onlyActive bool) ([]models.RecurringBill, error)
}

type FindRecurringBillByIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.RecurringBill, error)
}

type UpdateRecurringBillRepository interface {
	Update(id primitive.ObjectID, bill *models.RecurringBillInput) (*models.RecurringBill, error)
}

// Deleting a template does not cascade to already-generated dues.
type DeleteRecurringBillRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}
