package usecase

import (
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Each ledger operation is a single atomic read-modify-write: balances
// move and exactly one transaction record is appended, or nothing
// happens at all.

type TransferFundsRepository interface {
	Transfer(userId, fromAccountId, toAccountId primitive.ObjectID, amount float64) (*models.Transaction, error)
}

type ExchangeFundsRepository interface {
	Exchange(userId, fromAccountId, toAccountId primitive.ObjectID, sellAmount, rate float64) (*models.Transaction, error)
}

type RegisterIncomeRepository interface {
	Income(userId, accountId primitive.ObjectID, amount float64, note string) (*models.Transaction, error)
}

type FindTransactionsInput struct {
	UserId primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  int64
}

type FindTransactionsByUserIdRepository interface {
	Find(input *FindTransactionsInput) ([]models.Transaction, error)
}
