package transaction_repository

import (
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegisterIncomeMongoRepository struct {
	Db *mongo.Database
}

func NewRegisterIncomeMongoRepository(db *mongo.Database) *RegisterIncomeMongoRepository {
	return &RegisterIncomeMongoRepository{
		Db: db,
	}
}

func (r *RegisterIncomeMongoRepository) Income(userId, accountId primitive.ObjectID, amount float64, note string) (*models.Transaction, error) {
	result, err := helpers.WithTransaction(r.Db, func(sc mongo.SessionContext) (interface{}, error) {
		accounts := r.Db.Collection("accounts")

		account, err := findAccountInSession(sc, accounts, accountId)
		if err != nil {
			return nil, err
		}

		if err := models.ValidateIncome(account, userId, amount); err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		if err := setBalanceInSession(sc, accounts, account.Id, models.AddMoney(account.Balance, amount), now); err != nil {
			return nil, err
		}

		transaction := models.NewIncomeTransaction(userId, account.Id, amount, account.Currency, note, now)
		if _, err := r.Db.Collection("transactions").InsertOne(sc, transaction); err != nil {
			return nil, err
		}

		return transaction, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*models.Transaction), nil
}
