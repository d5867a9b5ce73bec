package usecase

import (
	"github.com/platahq/plata-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateAccountRepository interface {
	Create(account *models.AccountInput) (*models.Account, error)
}

type FindAccountsByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Account, error)
}

type FindAccountByIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Account, error)
}

// UpdateAccountRepository renames the account or changes its currency.
// It never touches the balance; only ledger operations do.
type UpdateAccountRepository interface {
	Update(id primitive.ObjectID, userId primitive.ObjectID, name string, currency string) (*models.Account, error)
}

type DeleteAccountRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}
