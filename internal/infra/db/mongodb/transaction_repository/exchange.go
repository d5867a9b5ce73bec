package transaction_repository

import (
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExchangeFundsMongoRepository struct {
	Db *mongo.Database
}

func NewExchangeFundsMongoRepository(db *mongo.Database) *ExchangeFundsMongoRepository {
	return &ExchangeFundsMongoRepository{
		Db: db,
	}
}

// Exchange converts sellAmount from the source account into the
// destination account's currency at the given rate, appending one FX
// record. buyAmount is computed in decimal and rounded to 8 places.
func (e *ExchangeFundsMongoRepository) Exchange(userId, fromAccountId, toAccountId primitive.ObjectID, sellAmount, rate float64) (*models.Transaction, error) {
	result, err := helpers.WithTransaction(e.Db, func(sc mongo.SessionContext) (interface{}, error) {
		accounts := e.Db.Collection("accounts")

		from, err := findAccountInSession(sc, accounts, fromAccountId)
		if err != nil {
			return nil, err
		}
		to, err := findAccountInSession(sc, accounts, toAccountId)
		if err != nil {
			return nil, err
		}

		if err := models.ValidateExchange(from, to, userId, sellAmount, rate); err != nil {
			return nil, err
		}

		buyAmount := models.MulMoney(sellAmount, rate)
		now := time.Now().UTC()

		if err := setBalanceInSession(sc, accounts, from.Id, models.SubMoney(from.Balance, sellAmount), now); err != nil {
			return nil, err
		}
		if err := setBalanceInSession(sc, accounts, to.Id, models.AddMoney(to.Balance, buyAmount), now); err != nil {
			return nil, err
		}

		transaction := models.NewFxTransaction(userId, from.Id, to.Id, sellAmount, buyAmount, rate, from.Currency, to.Currency, now)
		if _, err := e.Db.Collection("transactions").InsertOne(sc, transaction); err != nil {
			return nil, err
		}

		return transaction, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*models.Transaction), nil
}
